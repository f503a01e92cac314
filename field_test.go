package wordart

import (
	"bytes"
	"testing"
)

func TestRasterizeGradientAngleZeroEndpoints(t *testing.T) {
	field := RasterizeGradient(100, 40, GradientSpec{Colors: []RGBA{Red, Blue}})

	for y := 0; y < 40; y++ {
		if got := field.GetPixel(0, y); got != Red {
			t.Fatalf("leftmost column must be the first color, got %+v at y=%d", got, y)
		}
		if got := field.GetPixel(99, y); got != Blue {
			t.Fatalf("rightmost column must be the last color, got %+v at y=%d", got, y)
		}
	}

	// Monotonic left-to-right: red fades, blue rises
	mid := field.GetPixel(50, 20)
	if mid.R >= 1 || mid.B <= 0 {
		t.Errorf("middle should be blended, got %+v", mid)
	}
}

func TestRasterizeGradientSingleColorFlat(t *testing.T) {
	field := RasterizeGradient(30, 30, GradientSpec{Colors: []RGBA{Green}, Angle: 37})
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if got := field.GetPixel(x, y); got != Green {
				t.Fatalf("expected flat green everywhere, got %+v at (%d,%d)", got, x, y)
			}
		}
	}
}

func TestRasterizeGradientNamedDirections(t *testing.T) {
	cases := []struct {
		dir        Direction
		firstX, firstY int
		lastX, lastY   int
	}{
		{DirectionLeftRight, 0, 10, 39, 10},
		{DirectionRightLeft, 39, 10, 0, 10},
		{DirectionTopBottom, 10, 0, 10, 19},
		{DirectionBottomTop, 10, 19, 10, 0},
		{DirectionDiagonal, 0, 0, 39, 19},
		{DirectionDiagonalReverse, 39, 19, 0, 0},
		{DirectionDiagonalBottom, 0, 19, 39, 0},
		{DirectionDiagonalBottomReverse, 39, 0, 0, 19},
	}

	for _, tc := range cases {
		field := RasterizeGradient(40, 20, GradientSpec{Colors: []RGBA{Red, Blue}, Direction: tc.dir})
		if got := field.GetPixel(tc.firstX, tc.firstY); got != Red {
			t.Errorf("%s: expected first color at (%d,%d), got %+v", tc.dir, tc.firstX, tc.firstY, got)
		}
		if got := field.GetPixel(tc.lastX, tc.lastY); got != Blue {
			t.Errorf("%s: expected last color at (%d,%d), got %+v", tc.dir, tc.lastX, tc.lastY, got)
		}
	}
}

func TestRasterizeGradientRadial(t *testing.T) {
	field := RasterizeGradient(21, 21, GradientSpec{Colors: []RGBA{White, Black}, Radial: true})

	if got := field.GetPixel(10, 10); got != White {
		t.Errorf("center must be the first color, got %+v", got)
	}
	if got := field.GetPixel(0, 0); got != Black {
		t.Errorf("corner must be the last color, got %+v", got)
	}
	// All four corners are equidistant from the center
	for _, p := range [][2]int{{20, 0}, {0, 20}, {20, 20}} {
		if got := field.GetPixel(p[0], p[1]); got != Black {
			t.Errorf("corner (%d,%d) must match, got %+v", p[0], p[1], got)
		}
	}
}

func TestRasterizeGradientEmptyColorsDefaults(t *testing.T) {
	field := RasterizeGradient(10, 10, GradientSpec{})
	if got := field.GetPixel(0, 5); got != DefaultGradientStart {
		t.Errorf("expected default start color, got %+v", got)
	}
	if got := field.GetPixel(9, 5); got != DefaultGradientEnd {
		t.Errorf("expected default end color, got %+v", got)
	}
}

func TestRasterizeGradientDeterministic(t *testing.T) {
	spec := GradientSpec{Colors: []RGBA{Red, Green, Blue}, Angle: 33}
	a := RasterizeGradient(64, 48, spec)
	b := RasterizeGradient(64, 48, spec)
	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("identical inputs must produce bit-identical fields")
	}
}

func TestRasterizeGradientDegenerateCanvas(t *testing.T) {
	// Must not panic or divide by zero
	_ = RasterizeGradient(0, 0, GradientSpec{Colors: []RGBA{Red, Blue}})
	_ = RasterizeGradient(1, 1, GradientSpec{Colors: []RGBA{Red, Blue}})
	_ = RasterizeGradient(-3, 5, GradientSpec{Colors: []RGBA{Red, Blue}, Radial: true})

	one := RasterizeGradient(1, 1, GradientSpec{Colors: []RGBA{Red, Blue}, Radial: true})
	if got := one.GetPixel(0, 0); got != Red {
		t.Errorf("1x1 radial: expected first color, got %+v", got)
	}
}

func TestParseDirection(t *testing.T) {
	for d, name := range directionNames {
		if d == DirectionNone {
			continue
		}
		got, ok := ParseDirection(name)
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("unknown direction must not parse")
	}
}
