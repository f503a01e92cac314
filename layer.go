package wordart

// Layer names, as exposed in the CompositeResult layer map and debug dumps.
const (
	LayerShadow      = "shadow"
	LayerGlow        = "glow"
	LayerFill        = "fill"
	LayerOutline     = "outline"
	LayerInnerShadow = "inner_shadow"
)

// layerOrder is the fixed stacking order, bottom to top. Shadow and glow sit
// behind the glyph body, fill is the body, outline wraps the edge, inner
// shadow shades on top inside the glyph. This mirrors the standard
// layer-effects convention and is a hard contract of the compositor.
var layerOrder = [5]string{LayerShadow, LayerGlow, LayerFill, LayerOutline, LayerInnerShadow}

// BuildStatus tells a caller why a layer is or is not present, so
// "intentionally absent" and "invalid parameters, defaulted" stay
// distinguishable instead of both collapsing to a nil layer.
type BuildStatus int

const (
	// StatusSkipped means the effect was absent or disabled by its guard.
	StatusSkipped BuildStatus = iota
	// StatusBuilt means the layer was produced from the given parameters.
	StatusBuilt
	// StatusDefaulted means the layer was produced, but one or more
	// parameters were invalid and replaced by documented defaults.
	StatusDefaulted
)

// String returns a short status label for logs.
func (s BuildStatus) String() string {
	switch s {
	case StatusBuilt:
		return "built"
	case StatusDefaulted:
		return "defaulted"
	default:
		return "skipped"
	}
}

// LayerReport records one builder's outcome.
type LayerReport struct {
	Name   string
	Status BuildStatus
	Note   string // human-readable reason for StatusDefaulted
}

// tintMask stamps a flat color through a coverage mask: RGB channels carry
// the color, alpha carries the mask.
func tintMask(m *Mask, c RGBA) *Pixmap {
	w, h := m.Width(), m.Height()
	layer := NewPixmap(w, h)
	data := layer.Data()

	r := uint8(clamp255(c.R*255 + 0.5))
	g := uint8(clamp255(c.G*255 + 0.5))
	b := uint8(clamp255(c.B*255 + 0.5))

	src := m.Data()
	for i, a := range src {
		j := i * 4
		data[j+0] = r
		data[j+1] = g
		data[j+2] = b
		data[j+3] = a
	}
	return layer
}

// stampField stamps a full-canvas color field through a coverage mask: RGB
// channels come from the field, alpha from the mask.
func stampField(field *Pixmap, m *Mask) *Pixmap {
	w, h := m.Width(), m.Height()
	layer := NewPixmap(w, h)
	dst := layer.Data()
	src := field.Data()
	alpha := m.Data()

	for i, a := range alpha {
		j := i * 4
		if j+3 < len(src) {
			dst[j+0] = src[j+0]
			dst[j+1] = src[j+1]
			dst[j+2] = src[j+2]
		}
		dst[j+3] = a
	}
	return layer
}

// paintThrough stamps a Paint (solid color or gradient field) through a
// mask. It also reports whether the gradient had to fall back to the
// default color pair.
func paintThrough(m *Mask, p Paint) (*Pixmap, bool) {
	if p.Kind == PaintGradient {
		defaulted := len(p.Gradient.Colors) == 0
		field := RasterizeGradient(m.Width(), m.Height(), p.Gradient)
		return stampField(field, m), defaulted
	}
	return tintMask(m, p.Color), false
}
