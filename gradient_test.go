package wordart

import "testing"

func TestStopsFromColorsEmpty(t *testing.T) {
	stops := stopsFromColors(nil)
	if len(stops) != 2 {
		t.Fatalf("expected default pair, got %d stops", len(stops))
	}
	if stops[0].Color != DefaultGradientStart || stops[1].Color != DefaultGradientEnd {
		t.Error("empty color list should use the default pink-to-yellow pair")
	}
}

func TestStopsFromColorsSingle(t *testing.T) {
	stops := stopsFromColors([]RGBA{Red})
	if len(stops) != 2 {
		t.Fatalf("expected duplicated single color, got %d stops", len(stops))
	}
	if stops[0].Color != Red || stops[1].Color != Red {
		t.Error("single color should be duplicated into a flat gradient")
	}
}

func TestStopsFromColorsSpacing(t *testing.T) {
	stops := stopsFromColors([]RGBA{Red, Green, Blue})
	if stops[0].Offset != 0 || stops[2].Offset != 1 {
		t.Errorf("endpoints should land on 0 and 1, got %v and %v", stops[0].Offset, stops[2].Offset)
	}
	if stops[1].Offset != 0.5 {
		t.Errorf("middle stop should sit at 0.5, got %v", stops[1].Offset)
	}
}

func TestColorAtOffsetEndpoints(t *testing.T) {
	stops := stopsFromColors([]RGBA{Red, Blue})
	if got := colorAtOffset(stops, 0); got != Red {
		t.Errorf("t=0: expected red, got %+v", got)
	}
	if got := colorAtOffset(stops, 1); got != Blue {
		t.Errorf("t=1: expected blue, got %+v", got)
	}
}

func TestColorAtOffsetClamps(t *testing.T) {
	stops := stopsFromColors([]RGBA{Red, Blue})
	if got := colorAtOffset(stops, -3); got != Red {
		t.Errorf("t<0 should clamp to first color, got %+v", got)
	}
	if got := colorAtOffset(stops, 42); got != Blue {
		t.Errorf("t>1 should clamp to last color, got %+v", got)
	}
}

func TestColorAtOffsetMidpoint(t *testing.T) {
	stops := stopsFromColors([]RGBA{Black, White})
	mid := colorAtOffset(stops, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 {
		t.Errorf("expected mid gray, got %+v", mid)
	}
}

func TestColorAtOffsetDegenerate(t *testing.T) {
	if got := colorAtOffset(nil, 0.5); got != Transparent {
		t.Errorf("no stops: expected transparent, got %+v", got)
	}
	one := []ColorStop{{Offset: 0.3, Color: Green}}
	if got := colorAtOffset(one, 0.9); got != Green {
		t.Errorf("single stop: expected its color, got %+v", got)
	}
	coincident := []ColorStop{{Offset: 0.5, Color: Red}, {Offset: 0.5, Color: Blue}}
	// Must not divide by zero
	_ = colorAtOffset(coincident, 0.5)
}
