package fontutil

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measure returns the advance width, line height, and ascent of s in
// pixels when rendered with face.
func Measure(face font.Face, s string) (w, h, ascent float64) {
	adv := font.MeasureString(face, s)
	m := face.Metrics()
	return fromFixed(adv), fromFixed(m.Ascent + m.Descent), fromFixed(m.Ascent)
}

// DrawString renders s with the top-left corner of its line box at
// (x, y) in the given solid color.
func DrawString(dst draw.Image, s string, face font.Face, col color.Color, x, y float64) {
	_, _, ascent := Measure(face, s)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y + ascent)},
	}
	d.DrawString(s)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}
