package wordart

import "sort"

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// stopsFromColors distributes a color list evenly over [0, 1].
// A single color is duplicated so the result is a flat field; an empty list
// falls back to the default pink-to-yellow pair.
func stopsFromColors(colors []RGBA) []ColorStop {
	switch len(colors) {
	case 0:
		colors = []RGBA{DefaultGradientStart, DefaultGradientEnd}
	case 1:
		colors = []RGBA{colors[0], colors[0]}
	}

	stops := make([]ColorStop, len(colors))
	step := 1.0 / float64(len(colors)-1)
	for i, c := range colors {
		stops[i] = ColorStop{Offset: float64(i) * step, Color: c}
	}
	stops[len(stops)-1].Offset = 1
	return stops
}

// sortStops sorts color stops by offset without modifying the original.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// colorAtOffset returns the interpolated color at a given offset.
// t is clamped to [0, 1]; interpolation is a plain per-component lerp in
// sRGB, which keeps gradient endpoints byte-exact against their stop colors.
// Handles edge cases: empty stops, single stop, coincident stops.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	// Edge case: no stops
	if len(stops) == 0 {
		return Transparent
	}

	// Edge case: single stop
	if len(stops) == 1 {
		return stops[0].Color
	}

	// Sort stops if needed (callers should pre-sort)
	sorted := sortStops(stops)

	t = clamp01(t)

	// Binary search for the upper stop
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)

	return stop1.Color.Lerp(stop2.Color, localT)
}
