package dial

import (
	"image"
	"testing"
)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(10, 10)

	if got := pm.GetPixel(5, 5); got.A != 0 {
		t.Errorf("fresh pixmap pixel = %+v, want transparent", got)
	}

	pm.SetPixel(5, 5, Red)
	if got := pm.GetPixel(5, 5); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("GetPixel = %+v, want red", got)
	}

	// Out-of-bounds access is a no-op.
	pm.SetPixel(-1, 5, Red)
	pm.SetPixel(10, 5, Red)
	if got := pm.GetPixel(-1, 5); got.A != 0 {
		t.Errorf("out-of-bounds GetPixel = %+v, want transparent", got)
	}
}

func TestBlendPixel(t *testing.T) {
	tests := []struct {
		name string
		dst  RGBA
		src  RGBA
		want RGBA
	}{
		{"opaque over anything", White, Red, Red},
		{"transparent leaves dst", Red, Transparent, Red},
		{"half over opaque", White, RGBA{0, 0, 0, 0.5}, RGBA{0.5, 0.5, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(1, 1)
			pm.SetPixel(0, 0, tt.dst)
			pm.BlendPixel(0, 0, tt.src)
			if got := pm.GetPixel(0, 0); !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("BlendPixel = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPixmapImageInterfaces(t *testing.T) {
	pm := NewPixmap(4, 3)
	if got := pm.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v, want (0,0)-(4,3)", got)
	}

	pm.SetPixel(1, 1, RGBA{1, 0, 0, 1})
	img := pm.ToImage()
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("ToImage pixel = (%v, %v, %v, %v), want opaque red", r, g, b, a)
	}
}
