package dial

import (
	"errors"
	"testing"
)

func TestNewElement(t *testing.T) {
	tests := []struct {
		name    string
		typeTag string
		props   map[string]any
		wantErr bool
	}{
		{"face", "Face", nil, false},
		{"ticks", "Ticks", nil, false},
		{"numerals", "Numerals", nil, false},
		{"hands", "Hands", nil, false},
		{"overlay", "Overlay", map[string]any{"type": "text", "text": "hi"}, false},
		{"unknown type", "Gauge", nil, true},
		{"lowercase rejected", "face", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewElement(tt.typeTag, tt.props)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewElement(%q) error = %v, wantErr %v", tt.typeTag, err, tt.wantErr)
			}
			if err != nil {
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("error type = %T, want *ConfigError", err)
				}
				return
			}
			if e.Type() != tt.typeTag {
				t.Errorf("Type() = %q, want %q", e.Type(), tt.typeTag)
			}
		})
	}
}

func TestZOrderFixed(t *testing.T) {
	order := []struct {
		typeTag string
		props   map[string]any
		want    int
	}{
		{"Face", nil, 0},
		{"Ticks", nil, 1},
		{"Numerals", nil, 2},
		{"Overlay", map[string]any{"type": "text", "text": "x"}, 3},
		{"Hands", nil, 4},
	}

	for _, tt := range order {
		e, err := NewElement(tt.typeTag, tt.props)
		if err != nil {
			t.Fatalf("NewElement(%q): %v", tt.typeTag, err)
		}
		if e.ZOrder() != tt.want {
			t.Errorf("%s ZOrder() = %d, want %d", tt.typeTag, e.ZOrder(), tt.want)
		}
	}
}

func TestAnchorResolve(t *testing.T) {
	frame := Frame{Center: Pt(200, 200), Radius: 200, Scale: 2}

	t.Run("defaults to frame", func(t *testing.T) {
		var a anchor
		center, radius := a.resolve(frame)
		if center != frame.Center || radius != frame.Radius {
			t.Errorf("resolve = (%+v, %v), want frame geometry", center, radius)
		}
	})

	t.Run("overrides scale with frame", func(t *testing.T) {
		c := Pt(100, 50)
		r := 40.0
		a := anchor{center: &c, radius: &r}
		center, radius := a.resolve(frame)
		if center != Pt(200, 100) {
			t.Errorf("center = %+v, want (200, 100)", center)
		}
		if radius != 80 {
			t.Errorf("radius = %v, want 80", radius)
		}
	})
}

func TestParseAnchorRejectsBadRadius(t *testing.T) {
	_, err := NewElement("Face", map[string]any{"radius": -10.0})
	if err == nil {
		t.Fatal("negative anchor radius accepted")
	}
}
