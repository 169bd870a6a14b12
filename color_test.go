package dial

import (
	"errors"
	"math"
	"testing"
)

const colorEpsilon = 0.005

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    RGBA
		wantErr bool
	}{
		{"named black", "black", RGBA{0, 0, 0, 1}, false},
		{"named white", "white", RGBA{1, 1, 1, 1}, false},
		{"named red", "red", RGBA{1, 0, 0, 1}, false},
		{"named uppercase", "WHITE", RGBA{1, 1, 1, 1}, false},
		{"transparent keyword", "transparent", RGBA{0, 0, 0, 0}, false},
		{"hex rgb", "#fff", RGBA{1, 1, 1, 1}, false},
		{"hex rrggbb", "#2c3e50", RGBA{0x2c / 255.0, 0x3e / 255.0, 0x50 / 255.0, 1}, false},
		{"hex rrggbbaa", "#ff000080", RGBA{1, 0, 0, 0x80 / 255.0}, false},
		{"unknown name", "notacolor", RGBA{}, true},
		{"bad hex", "#zzz", RGBA{}, true},
		{"empty", "", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if err != nil {
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("ParseColor(%q) error type = %T, want *ConfigError", tt.token, err)
				}
				return
			}
			if !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	orig := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 0.5}
	back := FromColor(orig.Color())
	if !colorsEqual(orig, back, colorEpsilon) {
		t.Errorf("FromColor(Color()) = %+v, want %+v", back, orig)
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{0, 0, 0, 1}
	b := RGBA{1, 1, 1, 1}

	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"midpoint", 0.5, RGBA{0.5, 0.5, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Lerp(b, tt.t)
			if !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("Lerp(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}
