package dial

import "math"

// Raster transforms used by the compositor: the area-average downsample
// that closes the supersampling pipeline, and the post-processing
// operations (horizontal flip, arbitrary rotation, transpose).

// downsample reduces a pixmap by an integer factor using an exact
// area-average (box) filter. Averaging happens on alpha-premultiplied
// channels so transparent pixels don't bleed color into edges.
func downsample(p *Pixmap, factor int) *Pixmap {
	if factor <= 1 {
		return p
	}
	w := p.Width() / factor
	h := p.Height() / factor
	out := NewPixmap(w, h)
	n := float64(factor * factor)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for sy := 0; sy < factor; sy++ {
				for sx := 0; sx < factor; sx++ {
					c := p.GetPixel(x*factor+sx, y*factor+sy)
					r += c.R * c.A
					g += c.G * c.A
					b += c.B * c.A
					a += c.A
				}
			}
			if a == 0 {
				continue
			}
			out.SetPixel(x, y, RGBA{R: r / a, G: g / a, B: b / a, A: a / n})
		}
	}
	return out
}

// flipHorizontal mirrors a pixmap across its vertical axis.
func flipHorizontal(p *Pixmap) *Pixmap {
	w, h := p.Width(), p.Height()
	out := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetPixel(w-1-x, y, p.GetPixel(x, y))
		}
	}
	return out
}

// flipVertical mirrors a pixmap across its horizontal axis.
func flipVertical(p *Pixmap) *Pixmap {
	w, h := p.Width(), p.Height()
	out := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetPixel(x, h-1-y, p.GetPixel(x, y))
		}
	}
	return out
}

// transpose swaps the axes of a pixmap (reflection across the main
// diagonal), so a W×H input becomes H×W.
func transpose(p *Pixmap) *Pixmap {
	w, h := p.Width(), p.Height()
	out := NewPixmap(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetPixel(y, x, p.GetPixel(x, y))
		}
	}
	return out
}

// rotate returns the pixmap rotated clockwise by the given angle in
// degrees. The output expands to the rotated bounding box; exposed
// corners are transparent. Sampling is bilinear on premultiplied
// channels.
func rotate(p *Pixmap, degrees float64) *Pixmap {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	w, h := float64(p.Width()), float64(p.Height())
	outW := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin)))
	outH := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos)))
	out := NewPixmap(outW, outH)

	// Inverse mapping: for each destination pixel, rotate back into the
	// source frame around the respective centers.
	srcCX, srcCY := w/2, h/2
	dstCX, dstCY := float64(outW)/2, float64(outH)/2

	for y := 0; y < outH; y++ {
		dy := float64(y) + 0.5 - dstCY
		for x := 0; x < outW; x++ {
			dx := float64(x) + 0.5 - dstCX
			sx := dx*cos + dy*sin + srcCX - 0.5
			sy := -dx*sin + dy*cos + srcCY - 0.5
			c := sampleBilinear(p, sx, sy)
			if c.A > 0 {
				out.SetPixel(x, y, c)
			}
		}
	}
	return out
}

// sampleBilinear samples a pixmap at fractional coordinates, treating
// out-of-bounds neighbors as transparent.
func sampleBilinear(p *Pixmap, x, y float64) RGBA {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	if x0 < -1 || x0 >= p.Width() || y0 < -1 || y0 >= p.Height() {
		return Transparent
	}

	var r, g, b, a float64
	for dy := 0; dy <= 1; dy++ {
		wy := fy
		if dy == 0 {
			wy = 1 - fy
		}
		for dx := 0; dx <= 1; dx++ {
			wx := fx
			if dx == 0 {
				wx = 1 - fx
			}
			weight := wx * wy
			if weight == 0 {
				continue
			}
			c := p.GetPixel(x0+dx, y0+dy)
			r += c.R * c.A * weight
			g += c.G * c.A * weight
			b += c.B * c.A * weight
			a += c.A * weight
		}
	}
	if a == 0 {
		return Transparent
	}
	return RGBA{R: r / a, G: g / a, B: b / a, A: a}
}
