package dial

import (
	"image"
	"math"
)

// Canvas is the drawing surface elements render onto. It wraps a Pixmap
// and exposes the primitive fills the clock pipeline needs: polygon,
// circle, ring, rectangle, thick line, and image paste. Every fill
// samples its Brush once per covered pixel, so gradients work with any
// primitive. Coverage is binary (pixel-center test); edge smoothing comes
// from the compositor's supersampling, not from the primitives.
type Canvas struct {
	pm *Pixmap
}

// NewCanvas creates a canvas drawing into the given pixmap.
func NewCanvas(pm *Pixmap) *Canvas {
	return &Canvas{pm: pm}
}

// Pixmap returns the underlying pixel buffer.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pm
}

// fillRegion blends brush-sampled pixels over every pixel whose center
// lies inside the region, restricted to bounds.
func (c *Canvas) fillRegion(bounds Rect, inside func(x, y float64) bool, b Brush) {
	x0 := int(math.Floor(bounds.X))
	y0 := int(math.Floor(bounds.Y))
	x1 := int(math.Ceil(bounds.X + bounds.W))
	y1 := int(math.Ceil(bounds.Y + bounds.H))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.pm.Width() {
		x1 = c.pm.Width()
	}
	if y1 > c.pm.Height() {
		y1 = c.pm.Height()
	}

	for y := y0; y < y1; y++ {
		cy := float64(y) + 0.5
		for x := x0; x < x1; x++ {
			cx := float64(x) + 0.5
			if inside(cx, cy) {
				c.pm.BlendPixel(x, y, b.ColorAt(cx, cy))
			}
		}
	}
}

// FillCircle fills the disc around center with the given radius.
func (c *Canvas) FillCircle(center Point, radius float64, b Brush) {
	if radius <= 0 {
		return
	}
	bounds := Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius}
	r2 := radius * radius
	c.fillRegion(bounds, func(x, y float64) bool {
		dx, dy := x-center.X, y-center.Y
		return dx*dx+dy*dy <= r2
	}, b)
}

// StrokeCircle draws a circle outline of the given width, extending
// inward from radius.
func (c *Canvas) StrokeCircle(center Point, radius, width float64, b Brush) {
	if radius <= 0 || width <= 0 {
		return
	}
	inner := radius - width
	if inner < 0 {
		inner = 0
	}
	bounds := Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius}
	outer2, inner2 := radius*radius, inner*inner
	c.fillRegion(bounds, func(x, y float64) bool {
		dx, dy := x-center.X, y-center.Y
		d2 := dx*dx + dy*dy
		return d2 <= outer2 && d2 >= inner2
	}, b)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(r Rect, b Brush) {
	c.fillRegion(r, func(x, y float64) bool {
		return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
	}, b)
}

// StrokeRect draws a rectangle outline of the given width, extending
// inward from the rectangle edge.
func (c *Canvas) StrokeRect(r Rect, width float64, b Brush) {
	if width <= 0 {
		return
	}
	inner := Rect{X: r.X + width, Y: r.Y + width, W: r.W - 2*width, H: r.H - 2*width}
	c.fillRegion(r, func(x, y float64) bool {
		inOuter := x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
		inInner := inner.W > 0 && inner.H > 0 &&
			x > inner.X && x < inner.X+inner.W && y > inner.Y && y < inner.Y+inner.H
		return inOuter && !inInner
	}, b)
}

// insideRoundedRect tests a point against a rectangle with circular
// corners of the given radius.
func insideRoundedRect(r Rect, radius, x, y float64) bool {
	if x < r.X || x > r.X+r.W || y < r.Y || y > r.Y+r.H {
		return false
	}
	if radius <= 0 {
		return true
	}
	maxR := math.Min(r.W, r.H) / 2
	if radius > maxR {
		radius = maxR
	}
	// Corner test: point in a corner square must be within the corner arc.
	cx := math.Max(r.X+radius, math.Min(x, r.X+r.W-radius))
	cy := math.Max(r.Y+radius, math.Min(y, r.Y+r.H-radius))
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// FillRoundedRect fills a rectangle with circular corners.
func (c *Canvas) FillRoundedRect(r Rect, radius float64, b Brush) {
	c.fillRegion(r, func(x, y float64) bool {
		return insideRoundedRect(r, radius, x, y)
	}, b)
}

// StrokeRoundedRect draws a rounded-rectangle outline of the given width,
// extending inward from the edge.
func (c *Canvas) StrokeRoundedRect(r Rect, radius, width float64, b Brush) {
	if width <= 0 {
		return
	}
	inner := Rect{X: r.X + width, Y: r.Y + width, W: r.W - 2*width, H: r.H - 2*width}
	innerRadius := math.Max(radius-width, 0)
	c.fillRegion(r, func(x, y float64) bool {
		if !insideRoundedRect(r, radius, x, y) {
			return false
		}
		if inner.W <= 0 || inner.H <= 0 {
			return true
		}
		return !insideRoundedRect(inner, innerRadius, x, y)
	}, b)
}

// FillPolygon fills a polygon using the even-odd rule.
func (c *Canvas) FillPolygon(pts []Point, b Brush) {
	if len(pts) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	bounds := Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
	c.fillRegion(bounds, func(x, y float64) bool {
		return pointInPolygon(pts, x, y)
	}, b)
}

// pointInPolygon implements the even-odd crossing test.
func pointInPolygon(pts []Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		xi, yi := pts[i].X, pts[i].Y
		xj, yj := pts[j].X, pts[j].Y
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
		j = i
	}
	return in
}

// StrokeLine draws a straight line segment of the given width with butt
// caps, as a filled quad.
func (c *Canvas) StrokeLine(p1, p2 Point, width float64, b Brush) {
	if width <= 0 {
		return
	}
	d := p2.Sub(p1)
	length := d.Length()
	if length == 0 {
		c.FillCircle(p1, width/2, b)
		return
	}
	// Perpendicular offset of half the width on each side.
	n := Point{X: -d.Y / length, Y: d.X / length}.Mul(width / 2)
	c.FillPolygon([]Point{
		p1.Add(n), p2.Add(n), p2.Sub(n), p1.Sub(n),
	}, b)
}

// Paste alpha-blends src onto the canvas with its top-left corner at
// (atX, atY). When circular is true, pixels outside the inscribed circle
// of src's bounds are skipped.
func (c *Canvas) Paste(src image.Image, atX, atY int, circular bool) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cx, cy := float64(w)/2, float64(h)/2
	r := math.Min(cx, cy)
	r2 := r * r

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if circular {
				dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
				if dx*dx+dy*dy > r2 {
					continue
				}
			}
			col := FromColor(src.At(bounds.Min.X+x, bounds.Min.Y+y))
			c.pm.BlendPixel(atX+x, atY+y, col)
		}
	}
}
