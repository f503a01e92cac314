package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/typefx/wordart"
)

// hexColor formats a color as #rrggbb. Alpha travels separately through
// opacity attributes and color-matrix rows.
func hexColor(c wordart.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(c.R*255)),
		uint8(math.Round(c.G*255)),
		uint8(math.Round(c.B*255)))
}

// colorMatrixValues builds the 5x4 matrix that replaces a blurred alpha
// silhouette with a flat color at the given opacity.
func colorMatrixValues(c wordart.RGBA, opacity float64) string {
	return fmt.Sprintf("0 0 0 0 %v   0 0 0 0 %v   0 0 0 0 %v  0 0 0 %v 0",
		c.R, c.G, c.B, opacity)
}

// parseColorMatrix extracts the color offsets and the alpha scale from a
// flat-color matrix. Returns ok=false for any other matrix shape.
func parseColorMatrix(values string) (c wordart.RGBA, opacity float64, ok bool) {
	fields := strings.Fields(values)
	if len(fields) != 20 {
		return wordart.RGBA{}, 0, false
	}

	parse := func(i int) (float64, bool) {
		v, err := strconv.ParseFloat(fields[i], 64)
		return v, err == nil
	}

	r, okR := parse(4)
	g, okG := parse(9)
	b, okB := parse(14)
	a, okA := parse(18)
	if !okR || !okG || !okB || !okA {
		return wordart.RGBA{}, 0, false
	}
	return wordart.RGB(r, g, b), a, true
}

// directionEndpoints maps named gradient directions to SVG percentage
// endpoints, and endpointDirections is its inverse.
var directionEndpoints = map[wordart.Direction][4]string{
	wordart.DirectionLeftRight:             {"0%", "50%", "100%", "50%"},
	wordart.DirectionRightLeft:             {"100%", "50%", "0%", "50%"},
	wordart.DirectionTopBottom:             {"50%", "0%", "50%", "100%"},
	wordart.DirectionBottomTop:             {"50%", "100%", "50%", "0%"},
	wordart.DirectionDiagonal:              {"0%", "0%", "100%", "100%"},
	wordart.DirectionDiagonalReverse:       {"100%", "100%", "0%", "0%"},
	wordart.DirectionDiagonalBottom:        {"0%", "100%", "100%", "0%"},
	wordart.DirectionDiagonalBottomReverse: {"100%", "0%", "0%", "100%"},
}

func gradientEndpoints(spec wordart.GradientSpec) [4]string {
	if ep, ok := directionEndpoints[spec.Direction]; ok {
		return ep
	}

	// Raw angle: endpoints on the unit square through its center. The y
	// sign flips because SVG angles grow clockwise on screen while the
	// gradient angle is counter-clockwise.
	rad := spec.Angle * math.Pi / 180
	dx, dy := math.Cos(rad)/2, -math.Sin(rad)/2
	pct := func(v float64) string {
		return fmt.Sprintf("%v%%", math.Round((0.5+v)*100))
	}
	return [4]string{pct(-dx), pct(-dy), pct(dx), pct(dy)}
}

// endpointsToSpec maps SVG endpoints back to a named direction when they
// match the canonical table, falling back to a raw angle.
func endpointsToSpec(x1, y1, x2, y2 string) (wordart.Direction, float64) {
	got := [4]string{x1, y1, x2, y2}
	for d, ep := range directionEndpoints {
		if ep == got {
			return d, 0
		}
	}

	p := func(s string) float64 {
		v, _ := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
		return v / 100
	}
	angle := math.Atan2(-(p(y2) - p(y1)), p(x2)-p(x1)) * 180 / math.Pi
	return wordart.DirectionNone, angle
}

// stopsFor spreads the gradient colors evenly over 0-100%.
func stopsFor(colors []wordart.RGBA) []stop {
	if len(colors) == 0 {
		colors = []wordart.RGBA{wordart.DefaultGradientStart, wordart.DefaultGradientEnd}
	}
	if len(colors) == 1 {
		colors = []wordart.RGBA{colors[0], colors[0]}
	}

	stops := make([]stop, len(colors))
	step := 100 / float64(len(colors)-1)
	for i, c := range colors {
		stops[i] = stop{
			Color:  hexColor(c),
			Offset: fmt.Sprintf("%v%%", math.Round(float64(i)*step)),
		}
	}
	return stops
}

func stopColors(stops []stop) []wordart.RGBA {
	colors := make([]wordart.RGBA, 0, len(stops))
	for _, s := range stops {
		colors = append(colors, wordart.Hex(s.Color))
	}
	return colors
}
