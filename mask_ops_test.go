package wordart

import "testing"

// rectMask builds a w x h mask with a filled rectangle, the shape every
// geometric assertion in this file reasons about.
func rectMask(w, h, x0, y0, x1, y1 int) *Mask {
	m := NewMask(w, h)
	m.FillRect(x0, y0, x1, y1, 255)
	return m
}

func TestDilateGrowth(t *testing.T) {
	m := NewMask(21, 21)
	m.Set(10, 10, 255)

	d := Dilate(m, 3)

	// One iteration grows one pixel per side; three give a 7x7 block.
	if d.At(7, 10) != 255 || d.At(13, 10) != 255 || d.At(10, 7) != 255 || d.At(10, 13) != 255 {
		t.Error("dilation should grow 3 pixels in each direction")
	}
	if d.At(6, 10) != 0 || d.At(14, 10) != 0 {
		t.Error("dilation grew too far")
	}
	// Squarish growth: the corner of the 7x7 block is covered.
	if d.At(7, 7) != 255 {
		t.Error("iterated 3x3 max filter should fill the square corner")
	}
}

func TestDilateDoesNotMutateInput(t *testing.T) {
	m := NewMask(10, 10)
	m.Set(5, 5, 255)
	_ = Dilate(m, 2)

	if m.At(4, 5) != 0 || m.At(5, 5) != 255 {
		t.Error("input mask was mutated")
	}
}

func TestDilateZeroRadius(t *testing.T) {
	m := rectMask(10, 10, 2, 2, 5, 5)
	d := Dilate(m, 0)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if d.At(x, y) != m.At(x, y) {
				t.Fatalf("radius 0 must be identity, differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestBlurIdentityAtZeroSigma(t *testing.T) {
	m := rectMask(20, 20, 5, 5, 15, 15)
	b := Blur(m, 0)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if b.At(x, y) != m.At(x, y) {
				t.Fatalf("sigma 0 must be identity, differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestBlurSoftensEdge(t *testing.T) {
	m := rectMask(40, 40, 10, 10, 30, 30)
	b := Blur(m, 2)

	if b.At(20, 20) < 250 {
		t.Errorf("center should stay nearly opaque, got %d", b.At(20, 20))
	}
	edge := b.At(9, 20)
	if edge == 0 || edge == 255 {
		t.Errorf("edge should be partially covered, got %d", edge)
	}
	if b.At(0, 0) != 0 {
		t.Errorf("far corner should stay empty, got %d", b.At(0, 0))
	}
}

func TestSubtractClamped(t *testing.T) {
	a := NewMask(4, 1)
	b := NewMask(4, 1)
	a.Set(0, 0, 200)
	b.Set(0, 0, 50)
	a.Set(1, 0, 50)
	b.Set(1, 0, 200)
	a.Set(2, 0, 255)

	out := SubtractClamped(a, b)
	if out.At(0, 0) != 150 {
		t.Errorf("200-50: expected 150, got %d", out.At(0, 0))
	}
	if out.At(1, 0) != 0 {
		t.Errorf("50-200 must clamp to 0, got %d", out.At(1, 0))
	}
	if out.At(2, 0) != 255 {
		t.Errorf("255-0: expected 255, got %d", out.At(2, 0))
	}
}

func TestScale(t *testing.T) {
	m := NewMask(3, 1)
	m.Set(0, 0, 255)
	m.Set(1, 0, 100)

	out := Scale(m, 0.5)
	if out.At(0, 0) != 128 {
		t.Errorf("255*0.5 rounds to 128, got %d", out.At(0, 0))
	}
	if out.At(1, 0) != 50 {
		t.Errorf("100*0.5: expected 50, got %d", out.At(1, 0))
	}

	out = Scale(m, 2)
	if out.At(0, 0) != 255 {
		t.Errorf("overflow must clamp to 255, got %d", out.At(0, 0))
	}
}

func TestMultiplyConfines(t *testing.T) {
	a := NewMask(2, 1)
	b := NewMask(2, 1)
	a.Set(0, 0, 255)
	b.Set(0, 0, 128)
	a.Set(1, 0, 200) // b is 0 here

	out := Multiply(a, b)
	if out.At(0, 0) != 128 {
		t.Errorf("255*128/255: expected 128, got %d", out.At(0, 0))
	}
	if out.At(1, 0) != 0 {
		t.Errorf("multiplying by empty coverage must clear, got %d", out.At(1, 0))
	}
}

func TestThreshold(t *testing.T) {
	m := NewMask(3, 1)
	m.Set(0, 0, 1)
	m.Set(1, 0, 254)

	out := Threshold(m, 1)
	if out.At(0, 0) != 255 || out.At(1, 0) != 255 {
		t.Error("values >= cutoff should become 255")
	}
	if out.At(2, 0) != 0 {
		t.Error("zero stays zero")
	}

	out = Threshold(m, 200)
	if out.At(0, 0) != 0 || out.At(1, 0) != 255 {
		t.Error("cutoff 200 should keep only the 254 pixel")
	}
}

func TestCap(t *testing.T) {
	m := NewMask(2, 1)
	m.Set(0, 0, 255)
	m.Set(1, 0, 100)

	out := Cap(m, 200)
	if out.At(0, 0) != 200 {
		t.Errorf("expected cap at 200, got %d", out.At(0, 0))
	}
	if out.At(1, 0) != 100 {
		t.Errorf("values under the cap stay, got %d", out.At(1, 0))
	}
}

func TestOffset(t *testing.T) {
	m := NewMask(10, 10)
	m.Set(2, 3, 200)

	out := Offset(m, 4, 5)
	if out.At(6, 8) != 200 {
		t.Errorf("expected value at (6,8), got %d", out.At(6, 8))
	}
	if out.At(2, 3) != 0 {
		t.Errorf("origin should be zero-filled, got %d", out.At(2, 3))
	}

	// Shifting out of bounds discards
	out = Offset(m, -5, 0)
	if !out.Empty() {
		t.Error("content shifted outside the mask should be discarded")
	}
}

func TestRingIsDisjointFromSource(t *testing.T) {
	m := rectMask(60, 40, 10, 10, 50, 30)
	ring := SubtractClamped(Dilate(m, 3), m)

	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			if ring.At(x, y) > 0 && m.At(x, y) == 255 {
				t.Fatalf("ring overlaps source interior at (%d,%d)", x, y)
			}
		}
	}
}
