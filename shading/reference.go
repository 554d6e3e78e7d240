package shading

import (
	"github.com/chewxy/math32"

	"golang.org/x/image/math/f32"
)

// Gamma decode constants for the fragment stage.
//
// This is NOT the standard piecewise sRGB EOTF: the true curve divides
// by 12.92 below a threshold and only applies (c+0.055)/1.055 with
// exponent 2.4 above it. The shading core applies the upper branch to
// the whole [0,1] range, so near-zero inputs decode to small nonzero
// values. The CPU stages and shader.wgsl must stay bit-for-bit in
// agreement, so keep both in sync if this ever changes.
const (
	gammaOffset   = 0.055
	gammaScale    = 1.055
	gammaExponent = 2.4
)

// TransformGlyphVertex is the CPU reference for glyph_vs_main. It maps
// one glyph-local vertex, placed by inst, into clip space.
//
// Precondition: both components of g.ScreenSize are strictly positive.
func TransformGlyphVertex(g Globals, v GlyphVertex, inst GlyphInstance) VertexOutput {
	// Glyph-local Y points up, placement space is Y down: the offset
	// subtracts position.y. The 1-… below is the separate screen-to-NDC
	// flip; the two must not be folded together.
	worldX := v.Position[0] + inst.Offset[0]
	worldY := inst.Offset[1] - v.Position[1]

	clipX := (worldX/g.ScreenSize[0])*2 - 1
	clipY := 1 - (worldY/g.ScreenSize[1])*2

	return VertexOutput{
		ClipPosition: f32.Vec4{clipX, clipY, 0, 1},
		Color:        inst.Color,
	}
}

// TransformVertex is the CPU reference for vs_main: identity on the
// already-NDC position, color passed through.
func TransformVertex(v Vertex) VertexOutput {
	return VertexOutput{
		ClipPosition: f32.Vec4{v.Position[0], v.Position[1], 0, 1},
		Color:        v.Color,
	}
}

// ShadeFragment is the CPU reference for fs_main. The gamma decode is
// applied to each color channel; alpha passes through unchanged.
func ShadeFragment(color f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		decodeGamma(color[0]),
		decodeGamma(color[1]),
		decodeGamma(color[2]),
		color[3],
	}
}

// decodeGamma applies the single-branch gamma curve to one channel.
func decodeGamma(c float32) float32 {
	return math32.Pow((c+gammaOffset)/gammaScale, gammaExponent)
}
