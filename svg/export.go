package svg

import (
	"encoding/xml"
	"fmt"

	"github.com/typefx/wordart"
)

// Filter and gradient IDs used by the export convention.
const (
	fillGradientID   = "fillGradient"
	strokeGradientID = "strokeGradient"
	shadowFilterID   = "shadow-filter"
	glowFilterID     = "glow-filter"
	innerFilterID    = "inner-shadow-filter"
)

// Shadow blur exports at half its raster sigma: SVG's stdDeviation spreads
// roughly twice as wide as the blur parameter styles are authored in.
const blurToStdDeviation = 0.5

// Export serializes a style descriptor as an SVG document of the given
// canvas size.
func Export(s *wordart.Style, width, height int) ([]byte, error) {
	if s == nil {
		s = &wordart.Style{}
	}

	doc := document{
		Xmlns:  "http://www.w3.org/2000/svg",
		Width:  width,
		Height: height,
		Text:   &textEl{Content: s.Name},
	}

	if s.Fill != nil {
		exportPaint(&doc, s.Fill.Paint, fillGradientID)
		if s.Fill.Paint.Kind == wordart.PaintGradient {
			doc.Text.Fill = "url(#" + fillGradientID + ")"
		} else {
			doc.Text.Fill = hexColor(s.Fill.Paint.Color)
		}
		doc.Text.FillOpacity = s.Fill.Opacity
	} else {
		doc.Text.Fill = "none"
	}

	if s.Outline != nil {
		exportPaint(&doc, s.Outline.Paint, strokeGradientID)
		if s.Outline.Paint.Kind == wordart.PaintGradient {
			doc.Text.Stroke = "url(#" + strokeGradientID + ")"
		} else {
			doc.Text.Stroke = hexColor(s.Outline.Paint.Color)
		}
		doc.Text.StrokeWidth = s.Outline.Width
		doc.Text.StrokeOpacity = s.Outline.Opacity
	}

	if s.Shadow != nil {
		doc.Defs.Filters = append(doc.Defs.Filters, filterEl{
			ID: shadowFilterID,
			Offset: &feOffset{
				Dx: float64(s.Shadow.OffsetX),
				Dy: float64(s.Shadow.OffsetY),
				In: "SourceAlpha", Result: "shadowOffset",
			},
			Blur: &feGaussianBlur{
				StdDeviation: s.Shadow.Blur * blurToStdDeviation,
				In:           "shadowOffset", Result: "shadowBlur",
			},
			ColorMatrix: &feColorMatrix{
				Type:   "matrix",
				Values: colorMatrixValues(s.Shadow.Color, s.Shadow.Opacity),
				In:     "shadowBlur",
			},
		})
		doc.Uses = append(doc.Uses, useEl{ID: "shadow-use", Filter: "url(#" + shadowFilterID + ")"})
	}

	if s.Glow != nil {
		doc.Defs.Filters = append(doc.Defs.Filters, filterEl{
			ID: glowFilterID,
			Blur: &feGaussianBlur{
				StdDeviation: s.Glow.Radius,
				In:           "SourceAlpha", Result: "glowBlur",
			},
			ColorMatrix: &feColorMatrix{
				Type:   "matrix",
				Values: colorMatrixValues(s.Glow.Color, s.Glow.Opacity),
				In:     "glowBlur",
			},
		})
		doc.Uses = append(doc.Uses, useEl{ID: "glow-use", Filter: "url(#" + glowFilterID + ")"})
	}

	if s.InnerShadow != nil {
		doc.Defs.Filters = append(doc.Defs.Filters, filterEl{
			ID: innerFilterID,
			Offset: &feOffset{
				Dx: float64(s.InnerShadow.OffsetX),
				Dy: float64(s.InnerShadow.OffsetY),
				In: "SourceAlpha", Result: "shadowOffset",
			},
			Composite: &feComposite{
				In: "shadowOffset", In2: "SourceAlpha",
				Operator: "arithmetic", K2: -1, K3: 1,
				Result: "shadowDifference",
			},
			Blur: &feGaussianBlur{
				StdDeviation: s.InnerShadow.Blur * blurToStdDeviation,
				In:           "shadowDifference", Result: "shadowBlur",
			},
			ColorMatrix: &feColorMatrix{
				Type:   "matrix",
				Values: colorMatrixValues(s.InnerShadow.Color, s.InnerShadow.Opacity),
				In:     "shadowBlur",
			},
		})
		doc.Uses = append(doc.Uses, useEl{ID: "inner-shadow-use", Filter: "url(#" + innerFilterID + ")"})
	}

	out, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("svg: marshal: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// exportPaint registers a gradient paint server in defs. Solid paints need
// no server; the color rides on the text attribute.
func exportPaint(doc *document, p wordart.Paint, id string) {
	if p.Kind != wordart.PaintGradient {
		return
	}
	g := p.Gradient

	if g.Radial {
		doc.Defs.Radial = append(doc.Defs.Radial, radialGradient{
			ID: id, Cx: "50%", Cy: "50%", R: "75%",
			Stops: stopsFor(g.Colors),
		})
		return
	}

	ep := gradientEndpoints(g)
	doc.Defs.Linear = append(doc.Defs.Linear, linearGradient{
		ID: id, X1: ep[0], Y1: ep[1], X2: ep[2], Y2: ep[3],
		Stops: stopsFor(g.Colors),
	})
}
