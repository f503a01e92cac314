package wordart

import (
	"bytes"
	"errors"
	"testing"
)

func TestComposeSolidFill(t *testing.T) {
	mask := solidRect(100, 40, 20, 10, 79, 29)
	res, err := Compose(mask, &Style{Fill: &FillStyle{Paint: Solid(Red), Opacity: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := res.Image.GetPixel(50, 20); got != Red {
		t.Errorf("inside the glyph = %+v, want opaque red", got)
	}
	if got := res.Image.Alpha(0, 0); got != 0 {
		t.Errorf("outside the glyph must be transparent, got alpha %d", got)
	}
}

func TestComposeOutlineOnly(t *testing.T) {
	mask := solidRect(60, 60, 20, 20, 40, 40)
	res, err := Compose(mask, &Style{
		Outline: &OutlineStyle{Paint: Solid(Blue), Width: 3, Opacity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := res.Image.GetPixel(18, 30); got != Blue {
		t.Errorf("ring pixel = %+v, want opaque blue", got)
	}
	if got := res.Image.Alpha(30, 30); got != 0 {
		t.Errorf("interior must stay transparent with no fill, got alpha %d", got)
	}
	if got := res.Image.Alpha(10, 30); got != 0 {
		t.Errorf("beyond the ring must be transparent, got alpha %d", got)
	}
}

func TestComposeShadowHalfOpacity(t *testing.T) {
	mask := solidRect(40, 40, 10, 10, 20, 20)
	res, err := Compose(mask, &Style{
		Shadow: &ShadowStyle{Color: Black, Opacity: 0.5, OffsetX: 5, OffsetY: 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Image.Alpha(18, 18); got != 128 {
		t.Errorf("shadow alpha = %d, want exactly 128", got)
	}
}

func TestComposeStackingOrder(t *testing.T) {
	mask := solidRect(60, 60, 20, 20, 40, 40)
	res, err := Compose(mask, &Style{
		Fill:    &FillStyle{Paint: Solid(Red), Opacity: 1},
		Outline: &OutlineStyle{Paint: Solid(Blue), Width: 2, Opacity: 1},
		Shadow:  &ShadowStyle{Color: Black, Opacity: 1, OffsetX: 4, OffsetY: 4},
		InnerShadow: &InnerShadowStyle{
			Color: Black, Opacity: 1, OffsetX: 3, OffsetY: 3,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The opaque fill covers the shadow everywhere they overlap.
	if got := res.Image.GetPixel(28, 28); got != Red {
		t.Errorf("fill must cover the shadow, got %+v", got)
	}
	// The outline ring sits outside the fill, over the shadow.
	if got := res.Image.GetPixel(19, 30); got != Blue {
		t.Errorf("ring pixel = %+v, want blue", got)
	}
	// The inner shadow darkens the fill inside the far edge.
	if got := res.Image.GetPixel(39, 30); got.R >= 1 {
		t.Errorf("inner shadow must darken the fill edge, got %+v", got)
	}
	// The bare shadow remains visible past the outline.
	if got := res.Image.Alpha(43, 30); got == 0 {
		t.Error("shadow must remain visible beyond the outline")
	}
}

func TestComposeDeterministic(t *testing.T) {
	mask := solidRect(80, 50, 15, 10, 65, 40)
	style := &Style{
		Fill:    &FillStyle{Paint: GradientPaint(GradientSpec{Colors: []RGBA{Red, Blue}, Direction: DirectionTopBottom}), Opacity: 1},
		Outline: &OutlineStyle{Paint: Solid(White), Width: 2, Opacity: 0.8},
		Shadow:  &ShadowStyle{Color: Black, Opacity: 0.6, OffsetX: 3, OffsetY: 3, Blur: 2},
		Glow:    &GlowStyle{Color: Green, Opacity: 0.7, Radius: 4, Intensity: 0.9},
		InnerShadow: &InnerShadowStyle{
			Color: Black, Opacity: 0.5, OffsetX: 2, OffsetY: 2, Blur: 1,
		},
	}

	a, err := Compose(mask, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Compose(mask, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(a.Image.Data(), b.Image.Data()) {
		t.Error("identical inputs must produce bit-identical composites")
	}
}

func TestComposeGuardEquivalence(t *testing.T) {
	mask := solidRect(50, 50, 10, 10, 40, 40)
	fill := &FillStyle{Paint: Solid(Red), Opacity: 1}

	withDisabled, err := Compose(mask, &Style{
		Fill:    fill,
		Shadow:  &ShadowStyle{Color: Black, Opacity: 0, OffsetX: 5, OffsetY: 5},
		Outline: &OutlineStyle{Paint: Solid(Blue), Width: 0, Opacity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withAbsent, err := Compose(mask, &Style{Fill: fill})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(withDisabled.Image.Data(), withAbsent.Image.Data()) {
		t.Error("a guard-disabled effect must render identically to an absent one")
	}
}

func TestComposeGlobalOpacity(t *testing.T) {
	mask := solidRect(30, 30, 5, 5, 25, 25)
	res, err := Compose(mask, &Style{
		Fill:    &FillStyle{Paint: Solid(Red), Opacity: 1},
		Opacity: 0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Image.Alpha(15, 15); got != 128 {
		t.Errorf("global opacity must halve the final alpha, got %d", got)
	}
	if c := res.Image.GetPixel(15, 15); c.R != 1 {
		t.Errorf("global opacity must leave color channels alone, got %+v", c)
	}
}

func TestComposeStructuralErrors(t *testing.T) {
	if _, err := Compose(nil, &Style{}); !errors.Is(err, ErrNilMask) {
		t.Errorf("nil mask error = %v, want ErrNilMask", err)
	}
	if _, err := Compose(NewMask(0, 0), &Style{}); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("zero canvas error = %v, want ErrEmptyCanvas", err)
	}
}

func TestComposeEmptyInputs(t *testing.T) {
	// A nil style renders a fully transparent canvas.
	res, err := Compose(solidRect(20, 20, 5, 5, 15, 15), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range res.Image.Data() {
		if b != 0 {
			t.Fatal("nil style must produce a transparent canvas")
		}
	}

	// A zero-coverage mask renders transparent even with active effects.
	res, err = Compose(NewMask(20, 20), &Style{
		Fill:   &FillStyle{Paint: Solid(Red), Opacity: 1},
		Shadow: &ShadowStyle{Color: Black, Opacity: 1, OffsetX: 2, OffsetY: 2, Blur: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range res.Image.Data() {
		if b != 0 {
			t.Fatal("empty mask must produce a transparent canvas")
		}
	}
}

func TestComposeCaptureLayersAndReports(t *testing.T) {
	mask := solidRect(40, 40, 10, 10, 30, 30)
	c := &Compositor{CaptureLayers: true}
	res, err := c.Compose(mask, &Style{
		Fill:    &FillStyle{Paint: Solid(Red), Opacity: 1},
		Outline: &OutlineStyle{Paint: Solid(Blue), Width: 2, Opacity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Layers) != 2 {
		t.Fatalf("expected 2 captured layers, got %d", len(res.Layers))
	}
	if res.Layers[LayerFill] == nil || res.Layers[LayerOutline] == nil {
		t.Error("fill and outline layers must be captured")
	}

	if len(res.Reports) != len(layerOrder) {
		t.Fatalf("expected %d reports, got %d", len(layerOrder), len(res.Reports))
	}
	want := map[string]BuildStatus{
		LayerShadow:      StatusSkipped,
		LayerGlow:        StatusSkipped,
		LayerFill:        StatusBuilt,
		LayerOutline:     StatusBuilt,
		LayerInnerShadow: StatusSkipped,
	}
	for i, r := range res.Reports {
		if r.Name != layerOrder[i] {
			t.Errorf("report %d is %q, want stacking order %q", i, r.Name, layerOrder[i])
		}
		if r.Status != want[r.Name] {
			t.Errorf("layer %q status = %v, want %v", r.Name, r.Status, want[r.Name])
		}
	}
}
