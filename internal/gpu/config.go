package gpu

import "github.com/gogpu/gputypes"

// PipelineConfig holds configuration shared by the glyph and fill
// pipelines.
type PipelineConfig struct {
	// TargetFormat is the color format of the render target.
	// Default: BGRA8Unorm
	TargetFormat gputypes.TextureFormat

	// SampleCount is the MSAA sample count. Must match the render
	// target the host records into.
	// Default: 4
	SampleCount uint32
}

// DefaultPipelineConfig returns default configuration.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		TargetFormat: gputypes.TextureFormatBGRA8Unorm,
		SampleCount:  4,
	}
}
