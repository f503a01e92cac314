package svg

import "encoding/xml"

// XML element structures for the subset of SVG the interchange uses.

type document struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   int      `xml:"width,attr"`
	Height  int      `xml:"height,attr"`
	Defs    defs     `xml:"defs"`
	Text    *textEl  `xml:"text"`
	Uses    []useEl  `xml:"use"`
}

type defs struct {
	Linear  []linearGradient `xml:"linearGradient"`
	Radial  []radialGradient `xml:"radialGradient"`
	Filters []filterEl       `xml:"filter"`
}

type linearGradient struct {
	ID    string `xml:"id,attr"`
	X1    string `xml:"x1,attr"`
	Y1    string `xml:"y1,attr"`
	X2    string `xml:"x2,attr"`
	Y2    string `xml:"y2,attr"`
	Stops []stop `xml:"stop"`
}

type radialGradient struct {
	ID    string `xml:"id,attr"`
	Cx    string `xml:"cx,attr"`
	Cy    string `xml:"cy,attr"`
	R     string `xml:"r,attr"`
	Stops []stop `xml:"stop"`
}

type stop struct {
	Color  string `xml:"stop-color,attr"`
	Offset string `xml:"offset,attr"`
}

type filterEl struct {
	ID          string          `xml:"id,attr"`
	Offset      *feOffset       `xml:"feOffset"`
	Composite   *feComposite    `xml:"feComposite"`
	Blur        *feGaussianBlur `xml:"feGaussianBlur"`
	ColorMatrix *feColorMatrix  `xml:"feColorMatrix"`
}

type feOffset struct {
	Dx     float64 `xml:"dx,attr"`
	Dy     float64 `xml:"dy,attr"`
	In     string  `xml:"in,attr,omitempty"`
	Result string  `xml:"result,attr,omitempty"`
}

type feGaussianBlur struct {
	StdDeviation float64 `xml:"stdDeviation,attr"`
	In           string  `xml:"in,attr,omitempty"`
	Result       string  `xml:"result,attr,omitempty"`
}

type feComposite struct {
	In       string  `xml:"in,attr,omitempty"`
	In2      string  `xml:"in2,attr,omitempty"`
	Operator string  `xml:"operator,attr"`
	K2       float64 `xml:"k2,attr"`
	K3       float64 `xml:"k3,attr"`
	Result   string  `xml:"result,attr,omitempty"`
}

type feColorMatrix struct {
	Type   string `xml:"type,attr"`
	Values string `xml:"values,attr"`
	In     string `xml:"in,attr,omitempty"`
}

type textEl struct {
	Fill          string  `xml:"fill,attr,omitempty"`
	FillOpacity   float64 `xml:"fill-opacity,attr,omitempty"`
	Stroke        string  `xml:"stroke,attr,omitempty"`
	StrokeWidth   int     `xml:"stroke-width,attr,omitempty"`
	StrokeOpacity float64 `xml:"stroke-opacity,attr,omitempty"`
	Content       string  `xml:",chardata"`
}

type useEl struct {
	ID     string `xml:"id,attr,omitempty"`
	Filter string `xml:"filter,attr,omitempty"`
}
