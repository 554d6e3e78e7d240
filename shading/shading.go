package shading

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// Embedded WGSL shader source for the whole shading core.
//
//go:embed shader.wgsl
var shaderSource string

// Shader entry point names. The host's pipeline configuration selects
// one vertex entry point and the shared fragment entry point per draw.
const (
	// GlyphVertexEntryPoint maps pixel-space glyph geometry plus a
	// per-instance offset into clip space.
	GlyphVertexEntryPoint = "glyph_vs_main"

	// VertexEntryPoint passes already-NDC geometry through unchanged.
	VertexEntryPoint = "vs_main"

	// FragmentEntryPoint applies the gamma decode curve. Shared by
	// both vertex entry points.
	FragmentEntryPoint = "fs_main"
)

// Uniform binding slot for Globals, fixed by convention.
const (
	GlobalsBindGroup = 0
	GlobalsBinding   = 0
)

// ShaderSource returns the WGSL source for the shading core.
func ShaderSource() string {
	return shaderSource
}

// CompileToSPIRV compiles the embedded shader to SPIR-V uint32 words
// for backends that do not consume WGSL directly.
func CompileToSPIRV() ([]uint32, error) {
	spirvBytes, err := naga.Compile(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile shading core: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
