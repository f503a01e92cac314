package style

// The on-disk JSON schema. Every field is optional; pointers distinguish
// "absent" from a zero value where the default is nonzero. Unknown keys
// are ignored so newer style files keep loading on older builds.

type fileStyle struct {
	Name    string   `json:"name"`
	Opacity *float64 `json:"opacity"`

	Fill        *fillSpec    `json:"fill"`
	Outline     *outlineSpec `json:"outline"`
	Shadow      *offsetSpec  `json:"shadow"`
	Glow        *glowSpec    `json:"glow"`
	OuterGlow   *glowSpec    `json:"outer_glow"`
	InnerShadow *offsetSpec  `json:"inner_shadow"`
}

// fillSpec is either a solid color (type absent or "solid") or a gradient
// (type "gradient", "linear" or "radial").
type fillSpec struct {
	Type      string   `json:"type"`
	Color     string   `json:"color"`
	Colors    []string `json:"colors"`
	Direction string   `json:"direction"`
	Angle     float64  `json:"angle"`
	Opacity   *float64 `json:"opacity"`
}

// outlineSpec carries either a flat color or an embedded gradient. Older
// files also inline the gradient keys directly on the outline object.
type outlineSpec struct {
	Color     string        `json:"color"`
	Colors    []string      `json:"colors"`
	Gradient  *gradientSpec `json:"gradient"`
	Direction string        `json:"direction"`
	Angle     float64       `json:"angle"`
	Width     float64       `json:"width"`
	Opacity   *float64      `json:"opacity"`
}

type gradientSpec struct {
	Type      string   `json:"type"`
	Colors    []string `json:"colors"`
	Direction string   `json:"direction"`
	Angle     float64  `json:"angle"`
}

// offsetSpec covers shadow and inner shadow.
type offsetSpec struct {
	Color   string   `json:"color"`
	Opacity *float64 `json:"opacity"`
	OffsetX *float64 `json:"offset_x"`
	OffsetY *float64 `json:"offset_y"`
	Blur    *float64 `json:"blur"`
}

type glowSpec struct {
	Color     string   `json:"color"`
	Opacity   *float64 `json:"opacity"`
	Radius    *float64 `json:"radius"`
	Intensity *float64 `json:"intensity"`
}
