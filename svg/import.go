package svg

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/typefx/wordart"
)

// defaultGlowIntensity restores the raster-only glow parameter SVG cannot
// carry.
const defaultGlowIntensity = 1

// Parse reconstructs a style descriptor from an SVG document produced by
// Export or a compatible tool. Unknown elements are ignored; only invalid
// XML is an error.
func Parse(data []byte) (*wordart.Style, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("svg: parse: %w", err)
	}

	s := &wordart.Style{}
	if doc.Text != nil {
		s.Name = strings.TrimSpace(doc.Text.Content)

		if p, ok := importPaint(&doc, doc.Text.Fill); ok {
			s.Fill = &wordart.FillStyle{Paint: p, Opacity: opacityOr1(doc.Text.FillOpacity)}
		}
		if p, ok := importPaint(&doc, doc.Text.Stroke); ok {
			s.Outline = &wordart.OutlineStyle{
				Paint:   p,
				Width:   doc.Text.StrokeWidth,
				Opacity: opacityOr1(doc.Text.StrokeOpacity),
			}
		}
	}

	for _, f := range doc.Defs.Filters {
		importFilter(s, f)
	}
	return s, nil
}

// importFilter classifies a filter chain by its primitives: an arithmetic
// feComposite marks an inner shadow, an feOffset a drop shadow, and a bare
// blur a glow.
func importFilter(s *wordart.Style, f filterEl) {
	if f.ColorMatrix == nil || f.Blur == nil {
		return
	}
	color, opacity, ok := parseColorMatrix(f.ColorMatrix.Values)
	if !ok {
		return
	}

	switch {
	case f.Composite != nil && f.Composite.Operator == "arithmetic" &&
		f.Composite.K2 == -1 && f.Composite.K3 == 1 && f.Offset != nil:
		s.InnerShadow = &wordart.InnerShadowStyle{
			Color:   color,
			Opacity: opacity,
			OffsetX: int(f.Offset.Dx),
			OffsetY: int(f.Offset.Dy),
			Blur:    f.Blur.StdDeviation / blurToStdDeviation,
		}
	case f.Offset != nil:
		s.Shadow = &wordart.ShadowStyle{
			Color:   color,
			Opacity: opacity,
			OffsetX: int(f.Offset.Dx),
			OffsetY: int(f.Offset.Dy),
			Blur:    f.Blur.StdDeviation / blurToStdDeviation,
		}
	default:
		s.Glow = &wordart.GlowStyle{
			Color:     color,
			Opacity:   opacity,
			Radius:    f.Blur.StdDeviation,
			Intensity: defaultGlowIntensity,
		}
	}
}

// importPaint resolves a fill/stroke attribute to a paint: a gradient
// reference looks up the def, anything else parses as a flat color.
func importPaint(doc *document, attr string) (wordart.Paint, bool) {
	attr = strings.TrimSpace(attr)
	if attr == "" || attr == "none" {
		return wordart.Paint{}, false
	}

	if id, ok := strings.CutPrefix(attr, "url(#"); ok {
		id = strings.TrimSuffix(id, ")")

		for _, g := range doc.Defs.Linear {
			if g.ID != id {
				continue
			}
			dir, angle := endpointsToSpec(g.X1, g.Y1, g.X2, g.Y2)
			return wordart.GradientPaint(wordart.GradientSpec{
				Colors:    stopColors(g.Stops),
				Direction: dir,
				Angle:     angle,
			}), true
		}
		for _, g := range doc.Defs.Radial {
			if g.ID != id {
				continue
			}
			return wordart.GradientPaint(wordart.GradientSpec{
				Colors: stopColors(g.Stops),
				Radial: true,
			}), true
		}
		return wordart.Paint{}, false
	}

	return wordart.Solid(wordart.Hex(attr)), true
}

// opacityOr1 maps a missing opacity attribute (zero value) to opaque.
func opacityOr1(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
