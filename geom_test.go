package dial

import (
	"math"
	"testing"
)

const geomEpsilon = 1e-9

func pointsEqual(a, b Point, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestPointOnCircle(t *testing.T) {
	center := Pt(100, 100)

	tests := []struct {
		name  string
		angle float64
		want  Point
	}{
		{"12 o'clock", 0, Pt(100, 50)},
		{"3 o'clock", 90, Pt(150, 100)},
		{"6 o'clock", 180, Pt(100, 150)},
		{"9 o'clock", 270, Pt(50, 100)},
		{"full turn", 360, Pt(100, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointOnCircle(center, 50, tt.angle)
			if !pointsEqual(got, tt.want, 1e-6) {
				t.Errorf("PointOnCircle(%v°) = %+v, want %+v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestDivisionAngle(t *testing.T) {
	tests := []struct {
		name     string
		n, k     int
		rotation float64
		want     float64
	}{
		{"12 divisions at 0", 12, 0, 0, 0},
		{"12 divisions at 3", 12, 3, 0, 90},
		{"12 divisions at 6", 12, 6, 0, 180},
		{"24 divisions at 6", 24, 6, 0, 90},
		{"60 divisions at 15", 60, 15, 0, 90},
		{"rotated", 12, 0, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DivisionAngle(tt.n, tt.k, tt.rotation)
			if math.Abs(got-tt.want) > geomEpsilon {
				t.Errorf("DivisionAngle(%d, %d, %v) = %v, want %v", tt.n, tt.k, tt.rotation, got, tt.want)
			}
		})
	}
}

func TestRotateAbout(t *testing.T) {
	got := RotateAbout(Pt(10, 0), Pt(0, 0), 90)
	want := Pt(0, 10)
	if !pointsEqual(got, want, 1e-6) {
		t.Errorf("RotateAbout = %+v, want %+v", got, want)
	}
}
