package wordart

// innerShadowMaxAlpha caps the inner-shadow band's alpha so the fill color
// underneath stays visible even at full opacity.
const innerShadowMaxAlpha = 200

// BuildInnerShadowLayer renders the inner-shadow layer: the text mask is
// shifted inward by (-OffsetX, -OffsetY) and subtracted from the original,
// isolating the edge band on the lit side. The band is modulated by the
// source coverage — and re-modulated after any blur — so the layer is
// confined entirely within the glyph silhouette, the complement of the
// outline's ring-isolation invariant.
func BuildInnerShadowLayer(mask *Mask, s *InnerShadowStyle) (*Pixmap, LayerReport) {
	report := LayerReport{Name: LayerInnerShadow}
	if !s.enabled() {
		return nil, report
	}

	shifted := Offset(mask, -s.OffsetX, -s.OffsetY)
	band := Multiply(SubtractClamped(mask, shifted), mask)
	if s.Blur > 0 {
		// Blur would bleed the band past the edge; clamp it back inside.
		band = Multiply(Blur(band, s.Blur), mask)
	}
	band = Cap(Scale(band, normUnit(s.Opacity)), innerShadowMaxAlpha)

	report.Status = StatusBuilt
	return tintMask(band, s.Color), report
}
