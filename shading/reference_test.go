package shading

import (
	"testing"

	"github.com/chewxy/math32"

	"golang.org/x/image/math/f32"
)

const epsilon = 1e-6

func closeEnough(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func TestTransformGlyphVertexCorners(t *testing.T) {
	tests := []struct {
		name     string
		screen   f32.Vec2
		position f32.Vec2
		offset   f32.Vec2
		want     f32.Vec4
	}{
		{
			name:     "top_left",
			screen:   f32.Vec2{800, 600},
			position: f32.Vec2{0, 0},
			offset:   f32.Vec2{0, 0},
			want:     f32.Vec4{-1, 1, 0, 1},
		},
		{
			name:     "bottom_right",
			screen:   f32.Vec2{800, 600},
			position: f32.Vec2{0, 0},
			offset:   f32.Vec2{800, 600},
			want:     f32.Vec4{1, -1, 0, 1},
		},
		{
			name:     "top_left_nonuniform",
			screen:   f32.Vec2{1024, 768},
			position: f32.Vec2{0, 0},
			offset:   f32.Vec2{0, 0},
			want:     f32.Vec4{-1, 1, 0, 1},
		},
		{
			name:     "center",
			screen:   f32.Vec2{800, 600},
			position: f32.Vec2{0, 0},
			offset:   f32.Vec2{400, 300},
			want:     f32.Vec4{0, 0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := TransformGlyphVertex(
				Globals{ScreenSize: tt.screen},
				GlyphVertex{Position: tt.position},
				GlyphInstance{Offset: tt.offset},
			)
			for i := range tt.want {
				if !closeEnough(out.ClipPosition[i], tt.want[i]) {
					t.Errorf("clip[%d] = %v, want %v", i, out.ClipPosition[i], tt.want[i])
				}
			}
		})
	}
}

// TestTransformGlyphVertexScenario checks the worked example:
// 800x600 screen, glyph vertex (10,5) placed at (100,200) lands at
// world (110,195) and clip (-0.725, 0.35).
func TestTransformGlyphVertexScenario(t *testing.T) {
	out := TransformGlyphVertex(
		Globals{ScreenSize: f32.Vec2{800, 600}},
		GlyphVertex{Position: f32.Vec2{10, 5}},
		GlyphInstance{Offset: f32.Vec2{100, 200}},
	)

	if !closeEnough(out.ClipPosition[0], -0.725) {
		t.Errorf("clip.x = %v, want -0.725", out.ClipPosition[0])
	}
	if !closeEnough(out.ClipPosition[1], 0.35) {
		t.Errorf("clip.y = %v, want 0.35", out.ClipPosition[1])
	}
	if out.ClipPosition[2] != 0 || out.ClipPosition[3] != 1 {
		t.Errorf("clip.zw = (%v, %v), want (0, 1)", out.ClipPosition[2], out.ClipPosition[3])
	}
}

// The glyph stage subtracts position.y from the instance offset before
// the screen-to-NDC flip. A vertex above the baseline (positive local
// Y) must land higher on screen (larger clip Y) than the baseline.
func TestTransformGlyphVertexDualFlip(t *testing.T) {
	g := Globals{ScreenSize: f32.Vec2{800, 600}}
	inst := GlyphInstance{Offset: f32.Vec2{400, 300}}

	baseline := TransformGlyphVertex(g, GlyphVertex{}, inst)
	ascender := TransformGlyphVertex(g, GlyphVertex{Position: f32.Vec2{0, 20}}, inst)

	if ascender.ClipPosition[1] <= baseline.ClipPosition[1] {
		t.Errorf("ascender clip.y = %v not above baseline clip.y = %v",
			ascender.ClipPosition[1], baseline.ClipPosition[1])
	}
}

func TestTransformVertexIdentity(t *testing.T) {
	positions := []f32.Vec2{
		{-1, -1}, {1, 1}, {0, 0}, {-0.5, 0.25}, {0.725, -0.35},
	}
	for _, p := range positions {
		out := TransformVertex(Vertex{Position: p})
		if out.ClipPosition[0] != p[0] || out.ClipPosition[1] != p[1] {
			t.Errorf("clip.xy = (%v, %v), want (%v, %v)",
				out.ClipPosition[0], out.ClipPosition[1], p[0], p[1])
		}
		if out.ClipPosition[2] != 0 || out.ClipPosition[3] != 1 {
			t.Errorf("clip.zw = (%v, %v), want (0, 1)", out.ClipPosition[2], out.ClipPosition[3])
		}
	}
}

// Color must survive both vertex stages untouched.
func TestVertexStagesColorPassThrough(t *testing.T) {
	color := f32.Vec4{0.1, 0.5, 0.9, 0.75}

	glyph := TransformGlyphVertex(
		Globals{ScreenSize: f32.Vec2{800, 600}},
		GlyphVertex{Position: f32.Vec2{3, 7}},
		GlyphInstance{Offset: f32.Vec2{20, 40}, Color: color},
	)
	if glyph.Color != color {
		t.Errorf("glyph stage color = %v, want %v", glyph.Color, color)
	}

	fill := TransformVertex(Vertex{Position: f32.Vec2{0.5, -0.5}, Color: color})
	if fill.Color != color {
		t.Errorf("fill stage color = %v, want %v", fill.Color, color)
	}
}

// Black input does not decode to exact zero: the single-branch curve
// has no linear region, so 0 maps to (0.055/1.055)^2.4.
func TestShadeFragmentBlackIsNotZero(t *testing.T) {
	out := ShadeFragment(f32.Vec4{0, 0, 0, 1})

	want := math32.Pow(0.055/1.055, 2.4)
	for i := 0; i < 3; i++ {
		if out[i] != want {
			t.Errorf("channel %d = %v, want %v", i, out[i], want)
		}
		if out[i] <= 0 {
			t.Errorf("channel %d = %v, want small positive value", i, out[i])
		}
	}
	if out[0] > 1e-3 {
		t.Errorf("decoded black = %v, want < 1e-3", out[0])
	}
}

func TestShadeFragmentMonotonic(t *testing.T) {
	const steps = 256
	prev := ShadeFragment(f32.Vec4{0, 0, 0, 1})
	for i := 1; i <= steps; i++ {
		c := float32(i) / steps
		out := ShadeFragment(f32.Vec4{c, c, c, 1})
		for ch := 0; ch < 3; ch++ {
			if out[ch] <= prev[ch] {
				t.Fatalf("channel %d not increasing at input %v: %v <= %v",
					ch, c, out[ch], prev[ch])
			}
		}
		prev = out
	}
}

func TestShadeFragmentAlphaPassThrough(t *testing.T) {
	alphas := []float32{0, 0.25, 0.5, 1}
	for _, a := range alphas {
		out := ShadeFragment(f32.Vec4{0.3, 0.6, 0.9, a})
		if out[3] != a {
			t.Errorf("alpha = %v, want %v", out[3], a)
		}
	}
}

// The CPU reference of the fragment stage must agree with the named
// constants embedded in the WGSL source.
func TestShadeFragmentMatchesFormula(t *testing.T) {
	inputs := []float32{0, 0.04045, 0.1, 0.5, 0.9, 1}
	for _, c := range inputs {
		out := ShadeFragment(f32.Vec4{c, c, c, 1})
		want := math32.Pow((c+0.055)/1.055, 2.4)
		if out[0] != want {
			t.Errorf("input %v: got %v, want %v", c, out[0], want)
		}
	}
}
