// Package render is the host-facing surface of the harbor GPU wiring.
//
// A host creates a Session on its own shared device (or standalone),
// uploads fill and glyph geometry each frame, records harbor's draws
// into its own render pass, and releases the frame's buffers after
// submission:
//
//	session, err := render.NewSession(deviceHandle, 800, 600)
//	if err != nil { ... }
//	defer session.Close()
//
//	session.UploadFill(harbor.RectangleAt(-0.5, 0.5, 1.0, 0.8, harbor.Blue))
//	session.UploadGlyphs(harbor.LayoutText("hi", 10, 40, harbor.Black, fonts), fonts)
//	session.RecordDraws(pass)
//	// ... submit ...
//	session.EndFrame()
//
// The implementation lives in internal/gpu; this package re-exports
// the types and constructors hosts integrate against.
package render

import (
	gpuimpl "github.com/tathyagarg/harbor/internal/gpu"
)

// Session owns the GPU state for one render target: the screen-size
// globals uniform, the glyph and fill pipelines, and the per-frame
// geometry buffers. See the package example for the frame flow.
type Session = gpuimpl.RenderSession

// GlobalsBuffer is the screen-size uniform at group 0, binding 0.
// Sessions own one; standalone use goes through NewGlobalsBuffer.
type GlobalsBuffer = gpuimpl.GlobalsBuffer

// PipelineConfig holds render-target configuration shared by the
// glyph and fill pipelines.
type PipelineConfig = gpuimpl.PipelineConfig

// Errors returned by session and buffer operations.
var (
	ErrNoDevice          = gpuimpl.ErrNoDevice
	ErrInvalidScreenSize = gpuimpl.ErrInvalidScreenSize
	ErrNoGeometry        = gpuimpl.ErrNoGeometry
)

// NewSession creates a session on a shared device obtained from the
// host's device handle. The provider must implement HalDevice() any
// and HalQueue() any returning hal.Device and hal.Queue; a
// harbor.DeviceHandle that exposes HAL access qualifies. Nothing
// device-level is destroyed on Close.
func NewSession(provider any, width, height float32) (*Session, error) {
	return gpuimpl.NewRenderSession(provider, width, height)
}

// NewStandaloneSession creates a session on its own Vulkan device,
// for hosts without a device of their own and for headless use. The
// session owns and destroys the device on Close.
func NewStandaloneSession(width, height float32) (*Session, error) {
	return gpuimpl.NewStandaloneSession(width, height)
}

// DefaultPipelineConfig returns the pipeline defaults (BGRA8Unorm
// target, 4x MSAA).
func DefaultPipelineConfig() PipelineConfig {
	return gpuimpl.DefaultPipelineConfig()
}
