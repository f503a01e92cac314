package text

import "image"

// Margins describe the region reserved around the text block as fractions
// of the canvas dimensions.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// DefaultMargins mirror the layout conventions of typical word-art
// canvases: more headroom above the block than below.
var DefaultMargins = Margins{Top: 0.25, Bottom: 0.15, Left: 0.1, Right: 0.1}

// glowMarginFactor is the margin growth applied when a glow effect is
// active. Glow bleeds past the glyph bounds, so the text block must be
// pulled further in from the canvas edges.
const glowMarginFactor = 1.5

// Area converts the margins to a pixel rectangle on a canvas. A degenerate
// result collapses to the canvas center.
func (m Margins) Area(width, height int) image.Rectangle {
	r := image.Rect(
		int(float64(width)*m.Left),
		int(float64(height)*m.Top),
		width-int(float64(width)*m.Right),
		height-int(float64(height)*m.Bottom),
	)
	if r.Empty() {
		return image.Rect(width/2, height/2, width/2, height/2)
	}
	return r
}

// ExpandForEffects grows the margins when the style carries effects that
// render outside the glyph bounding box. Glow is the aggressive case: its
// halo spreads freely, so every margin gains half again its size.
func (m Margins) ExpandForEffects(hasGlow bool) Margins {
	if !hasGlow {
		return m
	}
	return Margins{
		Top:    m.Top * glowMarginFactor,
		Bottom: m.Bottom * glowMarginFactor,
		Left:   m.Left * glowMarginFactor,
		Right:  m.Right * glowMarginFactor,
	}
}
