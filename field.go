package wordart

import "math"

// GradientSpec describes a color gradient over the full canvas.
// Colors are distributed evenly along the axis. When Radial is set the
// direction/angle is ignored and the field radiates from the canvas center.
type GradientSpec struct {
	// Colors is the ordered color list. Empty falls back to the default
	// pair; a single color produces a flat field.
	Colors []RGBA

	// Direction selects a named axis. DirectionNone means Angle is used.
	Direction Direction

	// Angle is the gradient angle in degrees, used when Direction is
	// DirectionNone. 0 points right; positive turns counter-clockwise as
	// seen on screen (the y axis is flipped because raster y grows down).
	Angle float64

	// Radial selects a center-out radial field instead of a linear axis.
	Radial bool
}

// RasterizeGradient renders the gradient spec as a full-canvas RGB field.
// Every pixel is opaque; the caller stamps the field through a mask to give
// it shape. The function is pure: identical inputs produce bit-identical
// output, and degenerate input (no colors, zero canvas, zero-length axis)
// degrades to a flat or default field rather than failing.
func RasterizeGradient(width, height int, spec GradientSpec) *Pixmap {
	if width <= 0 || height <= 0 {
		return NewPixmap(0, 0)
	}
	field := NewPixmap(width, height)

	stops := stopsFromColors(spec.Colors)

	if spec.Radial {
		rasterizeRadial(field, stops)
		return field
	}

	var start, end Point
	if spec.Direction != DirectionNone {
		start, end = spec.Direction.lineEndpoints(float64(width), float64(height))
	} else {
		start, end = angleEndpoints(spec.Angle, float64(width), float64(height))
	}

	rasterizeLinear(field, stops, start, end)
	return field
}

// rasterizeLinear projects every pixel onto the gradient line and normalizes
// the projection over the canvas extent, so the first and last colors land
// exactly on the canvas edges the line enters and leaves through.
func rasterizeLinear(field *Pixmap, stops []ColorStop, start, end Point) {
	w, h := field.Width(), field.Height()
	axis := end.Sub(start)
	lengthSq := axis.Dot(axis)

	if lengthSq == 0 {
		// Zero-length axis: flat field of the first color.
		flatFill(field, stops[0].Color)
		return
	}

	// Raw projections of the four pixel-center corners bound the t range.
	right, bottom := float64(w-1), float64(h-1)
	corners := [4]Point{Pt(0, 0), Pt(right, 0), Pt(0, bottom), Pt(right, bottom)}
	projMin := math.Inf(1)
	projMax := math.Inf(-1)
	for _, c := range corners {
		p := c.Sub(start).Dot(axis) / lengthSq
		projMin = math.Min(projMin, p)
		projMax = math.Max(projMax, p)
	}

	span := projMax - projMin
	if span == 0 {
		flatFill(field, stops[0].Color)
		return
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := Pt(float64(x), float64(y)).Sub(start).Dot(axis) / lengthSq
			t := (p - projMin) / span
			field.SetPixel(x, y, colorAtOffset(stops, t).WithAlpha(1))
		}
	}
}

// rasterizeRadial maps distance from the canvas center, normalized by the
// farthest pixel, onto the stop list.
func rasterizeRadial(field *Pixmap, stops []ColorStop) {
	w, h := field.Width(), field.Height()
	center := Pt(float64(w-1)/2, float64(h-1)/2)

	// The corner is always the farthest pixel from the center.
	maxDist := center.Distance(Pt(0, 0))
	if maxDist == 0 {
		flatFill(field, stops[0].Color)
		return
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := center.Distance(Pt(float64(x), float64(y))) / maxDist
			field.SetPixel(x, y, colorAtOffset(stops, t).WithAlpha(1))
		}
	}
}

// angleEndpoints converts a gradient angle in degrees to a line through the
// canvas center. The y component is negated: screen-space counter-clockwise
// with raster y growing downward.
func angleEndpoints(angleDeg, w, h float64) (start, end Point) {
	rad := angleDeg * math.Pi / 180
	dx := math.Cos(rad)
	dy := -math.Sin(rad)

	cx, cy := (w-1)/2, (h-1)/2
	half := math.Sqrt(w*w+h*h) / 2

	start = Pt(cx-dx*half, cy-dy*half)
	end = Pt(cx+dx*half, cy+dy*half)
	return start, end
}

// flatFill fills the field with a single opaque color.
func flatFill(field *Pixmap, c RGBA) {
	field.Clear(c.WithAlpha(1))
}
