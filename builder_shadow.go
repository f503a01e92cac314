package wordart

// BuildShadowLayer renders the drop-shadow layer: a copy of the text mask
// offset by (OffsetX, OffsetY), Gaussian-blurred, tinted with the shadow
// color, and scaled by opacity. The shadow occupies the full canvas and is
// never clipped to the text region; the offset may carry it past the
// original glyph bounds.
//
// Returns a nil layer when the effect's guard fails.
func BuildShadowLayer(mask *Mask, s *ShadowStyle) (*Pixmap, LayerReport) {
	report := LayerReport{Name: LayerShadow}
	if !s.enabled() {
		return nil, report
	}

	a := Offset(mask, s.OffsetX, s.OffsetY)
	if s.Blur > 0 {
		a = Blur(a, s.Blur)
	}
	a = Scale(a, normUnit(s.Opacity))

	report.Status = StatusBuilt
	return tintMask(a, s.Color), report
}
