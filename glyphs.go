package harbor

import (
	"golang.org/x/image/math/f32"

	"github.com/tathyagarg/harbor/shading"
)

// GlyphOutline is the shared geometry of one glyph: outline vertices
// in glyph-local pixel space (origin at the baseline, Y up), drawn as
// a line list, plus the pen advance to the next glyph.
//
// Producing outlines from font data is the host's job; harbor only
// defines the shape the shading core consumes.
type GlyphOutline struct {
	Vertices     []shading.GlyphVertex
	AdvanceWidth float32
}

// GlyphSource resolves a rune to its outline geometry. Hosts back this
// with their font stack; lookups that miss should return ok=false so
// layout can still advance the pen.
type GlyphSource interface {
	// Outline returns the glyph geometry for r.
	Outline(r rune) (GlyphOutline, bool)

	// AdvanceWidth returns the pen advance for r, used when no
	// outline exists (whitespace, missing glyphs).
	AdvanceWidth(r rune) float32
}

// InstanceBatch groups glyph placements by rune so each distinct glyph
// is drawn once with all of its placements in a single instanced draw
// call. Rune order is first-appearance order, kept stable so draw
// submission is deterministic.
type InstanceBatch struct {
	order     []rune
	instances map[rune][]shading.GlyphInstance
}

// NewInstanceBatch creates an empty batch.
func NewInstanceBatch() *InstanceBatch {
	return &InstanceBatch{
		instances: make(map[rune][]shading.GlyphInstance),
	}
}

// Add records one placement of r at the given pen position.
// The offset is in pixel units, top-left origin, Y down.
func (b *InstanceBatch) Add(r rune, offsetX, offsetY float32, color RGBA) {
	if _, seen := b.instances[r]; !seen {
		b.order = append(b.order, r)
	}
	b.instances[r] = append(b.instances[r], shading.GlyphInstance{
		Offset: f32.Vec2{offsetX, offsetY},
		Color:  color.Vec4(),
	})
}

// Runes returns the distinct runes in first-appearance order.
func (b *InstanceBatch) Runes() []rune {
	return b.order
}

// Instances returns all placements recorded for r.
func (b *InstanceBatch) Instances(r rune) []shading.GlyphInstance {
	return b.instances[r]
}

// Len returns the total number of placements across all runes.
func (b *InstanceBatch) Len() int {
	n := 0
	for _, insts := range b.instances {
		n += len(insts)
	}
	return n
}

// LayoutText walks text left to right from the given pen position,
// recording one instance per rune that has an outline and advancing
// the pen by each rune's advance width. penY is the baseline in
// pixel units, top-left origin.
func LayoutText(text string, penX, penY float32, color RGBA, source GlyphSource) *InstanceBatch {
	batch := NewInstanceBatch()
	for _, r := range text {
		outline, ok := source.Outline(r)
		if !ok {
			penX += source.AdvanceWidth(r)
			continue
		}
		batch.Add(r, penX, penY, color)
		penX += outline.AdvanceWidth
	}
	return batch
}
