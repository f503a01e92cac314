package wordart

// BuildOutlineLayer renders the outline ring: the text mask dilated Width
// times with a 3x3 max filter, minus the original mask. Subtracting the
// original is the ring-isolation step — the outline never occupies pixels
// inside the glyph silhouette, so it cannot cover the fill color.
//
// The ring is tinted with a solid color or stamped with a gradient field,
// then scaled by the outline opacity.
func BuildOutlineLayer(mask *Mask, s *OutlineStyle) (*Pixmap, LayerReport) {
	report := LayerReport{Name: LayerOutline}
	if !s.enabled() {
		return nil, report
	}

	ring := SubtractClamped(Dilate(mask, s.Width), mask)
	if opacity := normUnit(s.Opacity); opacity < 1 {
		ring = Scale(ring, opacity)
	}

	layer, defaulted := paintThrough(ring, s.Paint)
	report.Status = StatusBuilt
	if defaulted {
		report.Status = StatusDefaulted
		report.Note = "gradient outline had no colors; used default pair"
	}
	return layer, report
}
