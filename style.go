package wordart

// PaintKind discriminates the Paint variant.
type PaintKind int

const (
	// PaintSolid is a flat color.
	PaintSolid PaintKind = iota
	// PaintGradient is a full-canvas gradient field.
	PaintGradient
)

// Paint is the closed fill variant used by fill and outline effects: either
// a solid color or a gradient spec. Style files are validated into this form
// once at the boundary so builders never inspect loose maps at render time.
type Paint struct {
	Kind     PaintKind
	Color    RGBA         // PaintSolid
	Gradient GradientSpec // PaintGradient
}

// Solid creates a solid-color paint.
func Solid(c RGBA) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// GradientPaint creates a gradient paint.
func GradientPaint(spec GradientSpec) Paint {
	return Paint{Kind: PaintGradient, Gradient: spec}
}

// FillStyle paints the glyph body.
type FillStyle struct {
	Paint   Paint
	Opacity float64
}

// OutlineStyle wraps the glyph edge with a ring of the given width.
type OutlineStyle struct {
	Paint   Paint
	Width   int // ring width in pixels; the dilation iteration count
	Opacity float64
}

// ShadowStyle drops an offset, blurred copy of the glyphs behind them.
type ShadowStyle struct {
	Color   RGBA
	Opacity float64
	OffsetX int
	OffsetY int
	Blur    float64
}

// GlowStyle halos the glyphs. Opacity and Intensity multiply: either one at
// zero disables the effect. Values above 1 are read on a 0-100 scale.
type GlowStyle struct {
	Color     RGBA
	Opacity   float64
	Radius    float64
	Intensity float64
}

// InnerShadowStyle shades an edge band inside the glyph body.
type InnerShadowStyle struct {
	Color   RGBA
	Opacity float64
	OffsetX int
	OffsetY int
	Blur    float64
}

// Style is the descriptor consumed by the compositor. A nil effect pointer
// means that effect is absent; a present effect whose guard fails (opacity
// or width at zero) is treated exactly as absent.
type Style struct {
	Name string

	Fill        *FillStyle
	Outline     *OutlineStyle
	Shadow      *ShadowStyle
	Glow        *GlowStyle
	InnerShadow *InnerShadowStyle

	// Opacity scales the final composited alpha uniformly.
	// Zero means unset and is treated as fully opaque.
	Opacity float64
}

// normUnit normalizes a unit-range parameter. Values above 1 are read on a
// 0-100 scale (style files use both conventions); the result is clamped to
// [0, 1].
func normUnit(v float64) float64 {
	if v > 1 {
		v /= 100
	}
	return clamp01(v)
}

// enabled reports whether the guard for each effect passes. A nil receiver
// is disabled, so callers can test style fields directly.

func (s *FillStyle) enabled() bool {
	return s != nil && normUnit(s.Opacity) > 0
}

func (s *OutlineStyle) enabled() bool {
	return s != nil && s.Width > 0 && normUnit(s.Opacity) > 0
}

func (s *ShadowStyle) enabled() bool {
	return s != nil && normUnit(s.Opacity) > 0
}

func (s *GlowStyle) enabled() bool {
	return s != nil && normUnit(s.Opacity) > 0 && normUnit(s.Intensity) > 0
}

func (s *InnerShadowStyle) enabled() bool {
	return s != nil && normUnit(s.Opacity) > 0
}

// globalOpacity returns the style's uniform alpha scale with the zero value
// mapped to opaque.
func (s *Style) globalOpacity() float64 {
	if s == nil || s.Opacity <= 0 {
		return 1
	}
	return normUnit(s.Opacity)
}
