package fontutil

import (
	"image"
	"image/color"
	"testing"
)

func TestDefault(t *testing.T) {
	src := Default()
	if src == nil {
		t.Fatal("Default() returned nil")
	}
	if Default() != src {
		t.Error("Default() should return the same source")
	}
}

func TestFaceCaching(t *testing.T) {
	src := Default()
	a, err := src.Face(14)
	if err != nil {
		t.Fatalf("Face(14): %v", err)
	}
	b, err := src.Face(14)
	if err != nil {
		t.Fatalf("Face(14): %v", err)
	}
	if a != b {
		t.Error("same size should return the cached face")
	}
	c, err := src.Face(28)
	if err != nil {
		t.Fatalf("Face(28): %v", err)
	}
	if c == a {
		t.Error("different sizes should return different faces")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/font.ttf"); err == nil {
		t.Error("missing font file accepted")
	}
}

func TestMeasure(t *testing.T) {
	face, err := Default().Face(14)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	w, h, ascent := Measure(face, "12")
	if w <= 0 || h <= 0 || ascent <= 0 {
		t.Errorf("Measure = (%v, %v, %v), want positive dimensions", w, h, ascent)
	}
	w2, _, _ := Measure(face, "1212")
	if w2 <= w {
		t.Errorf("longer string width %v should exceed %v", w2, w)
	}
}

func TestDrawString(t *testing.T) {
	face, err := Default().Face(20)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	DrawString(dst, "8", face, color.Black, 5, 2)

	covered := false
	for y := 0; y < 30 && !covered; y++ {
		for x := 0; x < 40; x++ {
			if _, _, _, a := dst.At(x, y).RGBA(); a > 0 {
				covered = true
				break
			}
		}
	}
	if !covered {
		t.Error("DrawString left the image empty")
	}
}
