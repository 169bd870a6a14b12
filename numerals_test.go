package dial

import "testing"

func TestNewNumeralsValidation(t *testing.T) {
	tests := []struct {
		name    string
		props   map[string]any
		wantErr bool
	}{
		{"defaults", map[string]any{}, false},
		{"roman", map[string]any{"system": "roman"}, false},
		{"none", map[string]any{"system": "none"}, false},
		{"custom with list", map[string]any{
			"system":      "custom",
			"custom_list": []any{"A", "B", "C"},
			"visible":     []any{12, 3, 6},
		}, false},
		{"custom list covers default ring", map[string]any{
			"system":      "custom",
			"custom_list": []any{"i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix", "x", "xi", "xii"},
		}, false},
		{"custom list too short", map[string]any{
			"system":      "custom",
			"custom_list": []any{"A", "B", "C"},
		}, true},
		{"custom map", map[string]any{
			"custom_map": map[string]any{"12": "XII"},
		}, false},
		{"unknown system", map[string]any{"system": "binary"}, true},
		{"custom without list", map[string]any{"system": "custom"}, true},
		{"custom map bad key", map[string]any{
			"custom_map": map[string]any{"noon": "XII"},
		}, true},
		{"gradient color rejected", map[string]any{
			"color": map[string]any{"type": "linear", "colors": []any{"red", "blue"}},
		}, true},
		{"zero font size", map[string]any{"font_size": 0.0}, true},
		{"bad orientation", map[string]any{"orientation": "sideways"}, true},
		{"bad flip", map[string]any{"flip": "diagonal"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newNumerals(tt.props)
			if (err != nil) != tt.wantErr {
				t.Errorf("newNumerals error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNumeralsLabelText(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		idx   int
		num   int
		want  string
	}{
		{"arabic", map[string]any{}, 0, 7, "7"},
		{"roman", map[string]any{"system": "roman"}, 0, 4, "IV"},
		{"custom list by index", map[string]any{
			"system":      "custom",
			"custom_list": []any{"A", "B", "C"},
			"visible":     []any{12, 99, 6},
		}, 1, 99, "B"},
		{"map overrides system", map[string]any{
			"system":     "roman",
			"custom_map": map[string]any{"12": "·"},
		}, 0, 12, "·"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := newNumerals(tt.props)
			if err != nil {
				t.Fatalf("newNumerals: %v", err)
			}
			if got := n.labelText(tt.idx, tt.num); got != tt.want {
				t.Errorf("labelText(%d, %d) = %q, want %q", tt.idx, tt.num, got, tt.want)
			}
		})
	}
}

func TestNumeralsCustomListShorterThanLabels(t *testing.T) {
	// The label count is known at construction, so a custom_list that
	// cannot cover it fails there, not during a render.
	_, err := newNumerals(map[string]any{
		"system":      "custom",
		"custom_list": []any{"A"},
		"visible":     []any{12, 3},
	})
	if err == nil {
		t.Fatal("custom_list shorter than the label set accepted")
	}
}

func TestNumeralsNoneDrawsNothing(t *testing.T) {
	n, err := newNumerals(map[string]any{"system": "none"})
	if err != nil {
		t.Fatalf("newNumerals: %v", err)
	}

	pm := NewPixmap(100, 100)
	frame := Frame{Center: Pt(50, 50), Radius: 50, Scale: 1}
	if err := n.Draw(NewCanvas(pm), frame); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if pm.GetPixel(x, y).A != 0 {
				t.Fatalf("pixel (%d, %d) drawn with system \"none\"", x, y)
			}
		}
	}
}
