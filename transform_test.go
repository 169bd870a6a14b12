package dial

import "testing"

func TestDownsampleAverages(t *testing.T) {
	// A 2x2 block of half black, half white averages to mid gray.
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, Black)
	pm.SetPixel(1, 0, Black)
	pm.SetPixel(0, 1, White)
	pm.SetPixel(1, 1, White)

	out := downsample(pm, 2)
	if out.Width() != 1 || out.Height() != 1 {
		t.Fatalf("downsample dims = %dx%d, want 1x1", out.Width(), out.Height())
	}
	got := out.GetPixel(0, 0)
	if !colorsEqual(got, RGBA{0.5, 0.5, 0.5, 1}, colorEpsilon) {
		t.Errorf("downsample pixel = %+v, want mid gray", got)
	}
}

func TestDownsampleFactorOnePassthrough(t *testing.T) {
	pm := NewPixmap(3, 3)
	if out := downsample(pm, 1); out != pm {
		t.Error("factor 1 should return the input pixmap")
	}
}

func TestFlipHorizontal(t *testing.T) {
	pm := NewPixmap(3, 1)
	pm.SetPixel(0, 0, Red)

	out := flipHorizontal(pm)
	if got := out.GetPixel(2, 0); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("flipped pixel = %+v, want red at far edge", got)
	}
	if got := out.GetPixel(0, 0); got.A != 0 {
		t.Errorf("original corner = %+v, want transparent", got)
	}
}

func TestTranspose(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(2, 1, Red)

	out := transpose(pm)
	if out.Width() != 2 || out.Height() != 3 {
		t.Fatalf("transpose dims = %dx%d, want 2x3", out.Width(), out.Height())
	}
	if got := out.GetPixel(1, 2); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("transposed pixel = %+v, want red at (1, 2)", got)
	}
}

func TestRotateExpandsCanvas(t *testing.T) {
	pm := NewPixmap(100, 50)
	out := rotate(pm, 45)

	// The 45° bounding box of a 100x50 image is about 106x106.
	if out.Width() <= 100 || out.Height() <= 50 {
		t.Errorf("rotate dims = %dx%d, want expanded beyond 100x50", out.Width(), out.Height())
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	pm := NewPixmap(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pm.SetPixel(x, y, White)
		}
	}
	pm.SetPixel(0, 0, Red)

	// A clockwise quarter turn sends the top-left corner to the top-right.
	out := rotate(pm, 90)
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("rotate dims = %dx%d, want 4x4", out.Width(), out.Height())
	}
	if got := out.GetPixel(3, 0); !colorsEqual(got, Red, 0.02) {
		t.Errorf("rotated corner = %+v, want red", got)
	}
}
