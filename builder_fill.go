package wordart

// BuildFillLayer renders the glyph-body layer.
//
// A solid fill stamps the color through the binarized text mask, so the
// fill itself introduces no soft edges; any softness comes from the text
// rasterizer's anti-aliasing already baked into the input mask. A gradient
// fill rasterizes the field over the full canvas and stamps it through the
// original (soft) mask as the alpha channel.
func BuildFillLayer(mask *Mask, s *FillStyle) (*Pixmap, LayerReport) {
	report := LayerReport{Name: LayerFill}
	if !s.enabled() {
		return nil, report
	}

	opacity := normUnit(s.Opacity)

	var stamp *Mask
	if s.Paint.Kind == PaintSolid {
		stamp = Threshold(mask, 1)
	} else {
		stamp = mask
	}
	if opacity < 1 {
		stamp = Scale(stamp, opacity)
	}

	layer, defaulted := paintThrough(stamp, s.Paint)
	report.Status = StatusBuilt
	if defaulted {
		report.Status = StatusDefaulted
		report.Note = "gradient fill had no colors; used default pair"
	}
	return layer, report
}
