package shading

import (
	"encoding/binary"
	"math"

	"golang.org/x/image/math/f32"
)

// Byte strides of the GPU-visible records. Each must match the
// corresponding struct in shader.wgsl.
const (
	// GlobalsSize is the byte size of the Globals uniform buffer.
	// Layout: screen_size (vec2<f32>) = 8 bytes.
	GlobalsSize = 8

	// GlyphVertexStride is the per-vertex stride of the glyph
	// pipeline's vertex buffer (buffer slot 0).
	// Layout: position (vec2<f32>) = 8 bytes (location 0).
	GlyphVertexStride = 8

	// GlyphInstanceStride is the per-instance stride of the glyph
	// pipeline's instance buffer (buffer slot 1).
	// Layout: offset (vec2<f32>) = 8 bytes (location 1) +
	// color (vec4<f32>) = 16 bytes (location 2). Total 24 bytes.
	GlyphInstanceStride = 24

	// VertexStride is the per-vertex stride of the fill pipeline.
	// Layout: position (vec2<f32>) = 8 bytes (location 0) +
	// color (vec4<f32>) = 16 bytes (location 1). Total 24 bytes.
	VertexStride = 24
)

// Globals is the frame-scoped uniform visible to vertex stages,
// bound at group 0, binding 0. The host rewrites it whenever the
// render-target dimensions change.
//
// Both components must be strictly positive; the vertex stages divide
// by them without checking.
type Globals struct {
	ScreenSize f32.Vec2
}

// GlyphVertex is one glyph-local outline vertex, in pixel units with
// Y increasing upward from the baseline. Shared by every instance of
// the same glyph.
type GlyphVertex struct {
	Position f32.Vec2
}

// GlyphInstance places one copy of a glyph's geometry on screen.
// Offset is in pixel units, top-left origin, Y down.
type GlyphInstance struct {
	Offset f32.Vec2
	Color  f32.Vec4
}

// Vertex is a generic colored vertex whose position the host has
// already expressed in normalized device coordinates.
type Vertex struct {
	Position f32.Vec2
	Color    f32.Vec4
}

// VertexOutput is the record a vertex stage produces and the fragment
// stage consumes after interpolation. Not host-visible; exposed here
// for the CPU reference stages and their tests.
type VertexOutput struct {
	ClipPosition f32.Vec4
	Color        f32.Vec4
}

// Bytes serializes the uniform for GPU upload.
func (g Globals) Bytes() []byte {
	buf := make([]byte, GlobalsSize)
	putF32(buf[0:], g.ScreenSize[0])
	putF32(buf[4:], g.ScreenSize[1])
	return buf
}

// BuildGlyphVertexData serializes glyph outline vertices into raw
// bytes for the glyph pipeline's buffer slot 0.
func BuildGlyphVertexData(verts []GlyphVertex) []byte {
	if len(verts) == 0 {
		return nil
	}
	data := make([]byte, len(verts)*GlyphVertexStride)
	off := 0
	for _, v := range verts {
		putF32(data[off:], v.Position[0])
		putF32(data[off+4:], v.Position[1])
		off += GlyphVertexStride
	}
	return data
}

// BuildGlyphInstanceData serializes per-instance placements into raw
// bytes for the glyph pipeline's buffer slot 1.
func BuildGlyphInstanceData(instances []GlyphInstance) []byte {
	if len(instances) == 0 {
		return nil
	}
	data := make([]byte, len(instances)*GlyphInstanceStride)
	off := 0
	for _, inst := range instances {
		putF32(data[off:], inst.Offset[0])
		putF32(data[off+4:], inst.Offset[1])
		putF32(data[off+8:], inst.Color[0])
		putF32(data[off+12:], inst.Color[1])
		putF32(data[off+16:], inst.Color[2])
		putF32(data[off+20:], inst.Color[3])
		off += GlyphInstanceStride
	}
	return data
}

// BuildVertexData serializes generic colored vertices into raw bytes
// for the fill pipeline's vertex buffer.
func BuildVertexData(verts []Vertex) []byte {
	if len(verts) == 0 {
		return nil
	}
	data := make([]byte, len(verts)*VertexStride)
	off := 0
	for _, v := range verts {
		putF32(data[off:], v.Position[0])
		putF32(data[off+4:], v.Position[1])
		putF32(data[off+8:], v.Color[0])
		putF32(data[off+12:], v.Color[1])
		putF32(data[off+16:], v.Color[2])
		putF32(data[off+20:], v.Color[3])
		off += VertexStride
	}
	return data
}

func putF32(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
}
