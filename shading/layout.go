package shading

import (
	"github.com/gogpu/gputypes"
)

// GlobalsBindGroupLayoutEntries returns the bind group layout entries
// for the Globals uniform: a single uniform buffer at binding 0 with
// vertex visibility.
func GlobalsBindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    GlobalsBinding,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
}

// GlyphVertexLayout returns the two vertex buffer layouts for the
// glyph pipeline. Buffer slot 0 advances per vertex and carries the
// glyph-local outline geometry; slot 1 advances per instance and
// carries the placement offset and color.
func GlyphVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: GlyphVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
		},
		{
			ArrayStride: GlyphInstanceStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 1}, // offset
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 2}, // color
			},
		},
	}
}

// FillVertexLayout returns the vertex buffer layout for the fill
// pipeline: interleaved NDC position and color, advancing per vertex.
func FillVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}
