package harbor

import (
	"math"

	"golang.org/x/image/math/f32"

	"github.com/tathyagarg/harbor/shading"
)

// RectangleVertices returns the six vertices of a solid rectangle
// anchored at the origin, extending to (width, height), for the fill
// pipeline (triangle list). Callers position it by offsetting the
// coordinates or by using RectangleAt.
func RectangleVertices(width, height float32, color RGBA) []shading.Vertex {
	c := color.Vec4()
	return []shading.Vertex{
		{Position: f32.Vec2{0, 0}, Color: c},
		{Position: f32.Vec2{width, 0}, Color: c},
		{Position: f32.Vec2{width, height}, Color: c},

		{Position: f32.Vec2{0, 0}, Color: c},
		{Position: f32.Vec2{width, height}, Color: c},
		{Position: f32.Vec2{0, height}, Color: c},
	}
}

// RectangleAt returns the six vertices of a solid rectangle for the
// fill pipeline (triangle list). Position and size are in NDC; y grows
// upward, so the rectangle extends downward from (x, y).
func RectangleAt(x, y, width, height float32, color RGBA) []shading.Vertex {
	c := color.Vec4()
	return []shading.Vertex{
		{Position: f32.Vec2{x, y}, Color: c},
		{Position: f32.Vec2{x + width, y}, Color: c},
		{Position: f32.Vec2{x + width, y - height}, Color: c},

		{Position: f32.Vec2{x, y}, Color: c},
		{Position: f32.Vec2{x + width, y - height}, Color: c},
		{Position: f32.Vec2{x, y - height}, Color: c},
	}
}

// CircleAt approximates a solid circle as a triangle fan around the
// center. Center and radius are in pixel coordinates and mapped to NDC
// with the same top-left, Y-down screen convention the glyph stage
// uses. More segments give a rounder circle; 1 or 2 produces
// degenerate geometry, and a non-positive count yields no geometry.
func CircleAt(centerX, centerY, radius float32, segments int, color RGBA, screenW, screenH float32) []shading.Vertex {
	if segments < 1 {
		return nil
	}
	c := color.Vec4()
	verts := make([]shading.Vertex, 0, segments*3)

	toClip := func(x, y float32) f32.Vec2 {
		return f32.Vec2{
			(x/screenW)*2 - 1,
			1 - (y/screenH)*2,
		}
	}

	angleIncrement := 2 * math.Pi / float64(segments)
	center := toClip(centerX, centerY)

	for i := 0; i < segments; i++ {
		theta1 := float64(i) * angleIncrement
		theta2 := float64(i+1) * angleIncrement

		x1 := centerX + radius*float32(math.Cos(theta1))
		y1 := centerY + radius*float32(math.Sin(theta1))
		x2 := centerX + radius*float32(math.Cos(theta2))
		y2 := centerY + radius*float32(math.Sin(theta2))

		verts = append(verts,
			shading.Vertex{Position: center, Color: c},
			shading.Vertex{Position: toClip(x1, y1), Color: c},
			shading.Vertex{Position: toClip(x2, y2), Color: c},
		)
	}

	return verts
}
