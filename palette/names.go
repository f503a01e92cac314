package palette

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/typefx/wordart"
)

// hsvRange is an inclusive box in HSV space. Hue is in degrees; a range
// whose low hue exceeds its high hue wraps through 0 (red does this).
type hsvRange struct {
	name          string
	hLo, sLo, vLo float64
	hHi, sHi, vHi float64
}

// hueRanges is evaluated in order; the first match wins. Brown sits before
// orange because their hue bands overlap and brown is the darker, duller
// subset.
var hueRanges = []hsvRange{
	{"brown", 10, 0.20, 0.15, 40, 0.60, 0.58},
	{"red", 340, 0.50, 0.50, 10, 1, 1},
	{"orange", 10, 0.50, 0.50, 30, 1, 1},
	{"yellow", 30, 0.50, 0.50, 60, 1, 1},
	{"green", 60, 0.25, 0.25, 170, 1, 1},
	{"cyan", 170, 0.25, 0.25, 200, 1, 1},
	{"blue", 200, 0.25, 0.25, 260, 1, 1},
	{"purple", 260, 0.25, 0.25, 290, 1, 1},
	{"pink", 290, 0.25, 0.25, 340, 1, 1},
}

func (r hsvRange) contains(h, s, v float64) bool {
	if s < r.sLo || s > r.sHi || v < r.vLo || v > r.vHi {
		return false
	}
	if r.hLo > r.hHi {
		return h >= r.hLo || h <= r.hHi
	}
	return r.hLo <= h && h <= r.hHi
}

// Name classifies a color into an everyday color name: one of the hue
// names above plus white, black, and gray for the low-saturation axis.
func Name(c wordart.RGBA) string {
	h, s, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()

	if s < 0.1 {
		switch {
		case v < 0.15:
			return "black"
		case v > 0.85:
			return "white"
		default:
			return "gray"
		}
	}

	for _, r := range hueRanges {
		if r.contains(h, s, v) {
			return r.name
		}
	}
	return closestByHue(h, s, v)
}

// closestByHue picks the hue range whose midpoint is nearest in HSV,
// weighting saturation and value over hue.
func closestByHue(h, s, v float64) string {
	best, bestD := "gray", math.Inf(1)
	for _, r := range hueRanges {
		hMid := (r.hLo + r.hHi) / 2
		if r.hLo > r.hHi {
			hMid = 0
		}
		sMid := (r.sLo + r.sHi) / 2
		vMid := (r.vLo + r.vHi) / 2

		hDiff := math.Min(math.Abs(h-hMid), 360-math.Abs(h-hMid)) / 180
		sDiff := math.Abs(s - sMid)
		vDiff := math.Abs(v - vMid)
		d := math.Sqrt(hDiff*hDiff*0.8 + sDiff*sDiff*1.2 + vDiff*vDiff*1.5)
		if d < bestD {
			best, bestD = r.name, d
		}
	}
	return best
}

// Dominant extracts the leading swatch of img and names it. Muted
// mid-value grays are skipped in favor of saturated colors unless they
// cover at least half the image.
func Dominant(img image.Image) (string, Swatch, error) {
	swatches, err := Extract(img, DefaultColors, DefaultSamples)
	if err != nil {
		return "", Swatch{}, err
	}

	kept := swatches[:0:0]
	for _, sw := range swatches {
		_, s, v := colorful.Color{R: sw.Color.R, G: sw.Color.G, B: sw.Color.B}.Hsv()
		if s < 0.15 && v > 0.15 && v < 0.85 && sw.Fraction < 0.5 {
			continue
		}
		kept = append(kept, sw)
	}
	if len(kept) == 0 {
		kept = swatches
	}

	top := kept[0]
	for _, sw := range kept[1:] {
		if sw.Fraction > top.Fraction {
			top = sw
		}
	}
	return Name(top.Color), top, nil
}
