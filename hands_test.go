package dial

import "testing"

func TestNewHandsValidation(t *testing.T) {
	tests := []struct {
		name    string
		props   map[string]any
		wantErr bool
	}{
		{"empty", map[string]any{}, false},
		{"named specs", map[string]any{
			"time":        "3:15:30",
			"hour_spec":   map[string]any{"shape": "line", "length": 0.5, "width": 6.0},
			"minute_spec": map[string]any{"shape": "line", "length": 0.8, "width": 4.0},
			"second_spec": map[string]any{"shape": "line", "color": "red", "length": 0.9, "width": 2.0},
			"pivot_spec":  map[string]any{"color": "black", "radius": 5.0},
		}, false},
		{"triangle hand", map[string]any{
			"hour_spec": map[string]any{"shape": "triangle", "length": 0.5, "width": 12.0},
		}, false},
		{"custom polygon", map[string]any{
			"hour_spec": map[string]any{
				"shape":          "custom_polygon",
				"custom_polygon": []any{[]any{0.0, 0.1}, []any{1.0, 0.0}, []any{0.0, -0.1}},
			},
		}, false},
		{"custom polygon legacy key", map[string]any{
			"hour_spec": map[string]any{
				"shape":   "custom_polygon",
				"polygon": []any{[]any{0.0, 0.1}, []any{1.0, 0.0}, []any{0.0, -0.1}},
			},
		}, false},
		{"flexible list", map[string]any{
			"hands": []any{
				map[string]any{"type": "hour", "length": 0.5, "width": 5.0},
				map[string]any{"type": "second", "color": "red", "length": 0.9, "width": 1.0},
			},
		}, false},
		{"24h mode", map[string]any{"mode": "24h"}, false},
		{"bad time", map[string]any{"time": "25:00:00"}, true},
		{"bad mode", map[string]any{"mode": "13h"}, true},
		{"bad shape", map[string]any{
			"hour_spec": map[string]any{"shape": "arrow"},
		}, true},
		{"length over one", map[string]any{
			"hour_spec": map[string]any{"length": 1.1},
		}, true},
		{"polygon missing", map[string]any{
			"hour_spec": map[string]any{"shape": "custom_polygon"},
		}, true},
		{"polygon too small", map[string]any{
			"hour_spec": map[string]any{
				"shape":          "custom_polygon",
				"custom_polygon": []any{[]any{0.0, 0.1}, []any{1.0, 0.0}},
			},
		}, true},
		{"list entry without type", map[string]any{
			"hands": []any{map[string]any{"length": 0.5}},
		}, true},
		{"zero pivot radius", map[string]any{
			"pivot_spec": map[string]any{"radius": 0.0},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newHands(tt.props)
			if (err != nil) != tt.wantErr {
				t.Errorf("newHands error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHandsDrawAtNineOClock(t *testing.T) {
	h, err := newHands(map[string]any{
		"time":      "9:00:00",
		"hour_spec": map[string]any{"shape": "line", "color": "black", "length": 0.8, "width": 4.0},
	})
	if err != nil {
		t.Fatalf("newHands: %v", err)
	}

	pm := NewPixmap(200, 200)
	frame := Frame{Center: Pt(100, 100), Radius: 100, Scale: 1}
	if err := h.Draw(NewCanvas(pm), frame); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// At 9:00 the hour hand points due left.
	left := pm.GetPixel(40, 100)
	right := pm.GetPixel(160, 100)
	if left.A == 0 {
		t.Error("expected hand coverage left of center at 9:00")
	}
	if right.A != 0 {
		t.Error("unexpected coverage right of center at 9:00")
	}
}

func TestHandsCustomPolygonOrientation(t *testing.T) {
	// Vertices use a pivot-at-origin frame with +x toward the tip. At
	// 3:00 the hour angle is 90°, so the polygon extends to the right.
	h, err := newHands(map[string]any{
		"time": "3:00:00",
		"hour_spec": map[string]any{
			"shape":          "custom_polygon",
			"color":          "black",
			"length":         0.8,
			"custom_polygon": []any{[]any{0.0, 0.1}, []any{1.0, 0.0}, []any{0.0, -0.1}},
		},
	})
	if err != nil {
		t.Fatalf("newHands: %v", err)
	}

	pm := NewPixmap(200, 200)
	frame := Frame{Center: Pt(100, 100), Radius: 100, Scale: 1}
	if err := h.Draw(NewCanvas(pm), frame); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if pm.GetPixel(140, 100).A == 0 {
		t.Error("expected polygon coverage right of center at 3:00")
	}
	if pm.GetPixel(60, 100).A != 0 {
		t.Error("unexpected coverage left of center at 3:00")
	}
}

func TestHandsAbsentSpecsDrawNothing(t *testing.T) {
	h, err := newHands(map[string]any{"time": "6:00:00"})
	if err != nil {
		t.Fatalf("newHands: %v", err)
	}

	pm := NewPixmap(100, 100)
	frame := Frame{Center: Pt(50, 50), Radius: 50, Scale: 1}
	if err := h.Draw(NewCanvas(pm), frame); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if pm.GetPixel(50, 70).A != 0 {
		t.Error("hand drawn without a spec")
	}
}
