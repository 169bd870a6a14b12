package dial

import "testing"

func TestEvenStops(t *testing.T) {
	stops := evenStops([]RGBA{Black, Red, White})
	if len(stops) != 3 {
		t.Fatalf("evenStops returned %d stops, want 3", len(stops))
	}
	wantOffsets := []float64{0, 0.5, 1}
	for i, want := range wantOffsets {
		if stops[i].Offset != want {
			t.Errorf("stop %d offset = %v, want %v", i, stops[i].Offset, want)
		}
	}
}

func TestColorAtOffset(t *testing.T) {
	stops := evenStops([]RGBA{Black, White})

	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{"below range clamps", -1, Black},
		{"start", 0, Black},
		{"midpoint", 0.5, RGBA{0.5, 0.5, 0.5, 1}},
		{"end", 1, White},
		{"above range clamps", 2, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorAtOffset(stops, tt.t)
			if !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("colorAtOffset(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestLinearGradientBrushAxis(t *testing.T) {
	b := NewLinearGradientBrush(0, 0, 100, 0)
	b.AddColorStop(0, Black)
	b.AddColorStop(1, White)

	start := b.ColorAt(0, 50)
	mid := b.ColorAt(50, 50)
	end := b.ColorAt(100, 50)

	if !colorsEqual(start, Black, colorEpsilon) {
		t.Errorf("ColorAt(0) = %+v, want black", start)
	}
	if !colorsEqual(mid, RGBA{0.5, 0.5, 0.5, 1}, colorEpsilon) {
		t.Errorf("ColorAt(50) = %+v, want mid gray", mid)
	}
	if !colorsEqual(end, White, colorEpsilon) {
		t.Errorf("ColorAt(100) = %+v, want white", end)
	}
}

func TestRadialGradientBrushCenterToEdge(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 100, H: 100}
	b := NewRadialGradientBrush(Pt(50, 50), bounds, true)
	b.Stops = evenStops([]RGBA{White, Black})

	center := b.ColorAt(50, 50)
	edge := b.ColorAt(99.9, 50)

	if !colorsEqual(center, White, colorEpsilon) {
		t.Errorf("center color = %+v, want white", center)
	}
	if !colorsEqual(edge, Black, 0.02) {
		t.Errorf("edge color = %+v, want black", edge)
	}
}
