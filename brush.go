package dial

import "math"

// Brush represents what to paint with. It is a sealed interface: only
// types in this package implement it. The drawing surface samples the
// brush once per covered pixel.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of position.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// LinearGradientBrush is a linear color transition between two points.
// Offsets outside the start→end span clamp to the edge stops.
type LinearGradientBrush struct {
	Start Point       // Point where the gradient begins (t=0)
	End   Point       // Point where the gradient ends (t=1)
	Stops []ColorStop // Color stops defining the gradient
}

// NewLinearGradientBrush creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// AddColorStop adds a color stop at the specified offset in [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// brushMarker implements the sealed Brush interface.
func (*LinearGradientBrush) brushMarker() {}

// ColorAt implements Brush by projecting the point onto the gradient axis.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	d := g.End.Sub(g.Start)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}
	t := Point{X: x, Y: y}.Sub(g.Start).Dot(d) / lengthSq
	return colorAtOffset(g.Stops, t)
}

// RadialGradientBrush is a radial color transition. The stop offset of a
// pixel is the ratio of its distance from Center to the distance from
// Center to the bounding shape's edge along the same ray, so the last
// stop always lands exactly on the shape boundary even when the center
// is off-middle.
type RadialGradientBrush struct {
	Center Point       // Gradient origin in pixel coordinates
	Bounds Rect        // Bounding shape of the fill
	Round  bool        // Bounding shape is the inscribed-circle of Bounds
	Stops  []ColorStop // Color stops defining the gradient
}

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// NewRadialGradientBrush creates a radial gradient with the given origin
// over a bounding shape. When round is true the shape is the circle
// inscribed in bounds, otherwise the rectangle itself.
func NewRadialGradientBrush(center Point, bounds Rect, round bool) *RadialGradientBrush {
	return &RadialGradientBrush{Center: center, Bounds: bounds, Round: round}
}

// AddColorStop adds a color stop at the specified offset in [0, 1].
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// brushMarker implements the sealed Brush interface.
func (*RadialGradientBrush) brushMarker() {}

// ColorAt implements Brush.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	p := Point{X: x, Y: y}
	dist := p.Distance(g.Center)
	if dist == 0 {
		return colorAtOffset(g.Stops, 0)
	}
	edge := g.edgeDistance(p.Sub(g.Center).Mul(1 / dist))
	if edge <= 0 {
		return colorAtOffset(g.Stops, 1)
	}
	return colorAtOffset(g.Stops, dist/edge)
}

// edgeDistance returns the distance from Center to the bounding shape's
// edge along the unit direction dir.
func (g *RadialGradientBrush) edgeDistance(dir Point) float64 {
	if g.Round {
		return g.circleEdgeDistance(dir)
	}
	return g.rectEdgeDistance(dir)
}

func (g *RadialGradientBrush) circleEdgeDistance(dir Point) float64 {
	bc := g.Bounds.Center()
	br := math.Min(g.Bounds.W, g.Bounds.H) / 2

	// Solve |Center + t*dir - bc|^2 = br^2 for the positive root.
	f := g.Center.Sub(bc)
	b := 2 * f.Dot(dir)
	c := f.Dot(f) - br*br
	disc := b*b - 4*c
	if disc < 0 {
		return 0
	}
	t := (-b + math.Sqrt(disc)) / 2
	if t < 0 {
		return 0
	}
	return t
}

func (g *RadialGradientBrush) rectEdgeDistance(dir Point) float64 {
	best := math.Inf(1)
	// Intersect the ray with each rectangle side; keep the nearest
	// forward hit.
	if dir.X != 0 {
		for _, edgeX := range []float64{g.Bounds.X, g.Bounds.X + g.Bounds.W} {
			t := (edgeX - g.Center.X) / dir.X
			if t > 0 {
				y := g.Center.Y + t*dir.Y
				if y >= g.Bounds.Y-1e-9 && y <= g.Bounds.Y+g.Bounds.H+1e-9 && t < best {
					best = t
				}
			}
		}
	}
	if dir.Y != 0 {
		for _, edgeY := range []float64{g.Bounds.Y, g.Bounds.Y + g.Bounds.H} {
			t := (edgeY - g.Center.Y) / dir.Y
			if t > 0 {
				x := g.Center.X + t*dir.X
				if x >= g.Bounds.X-1e-9 && x <= g.Bounds.X+g.Bounds.W+1e-9 && t < best {
					best = t
				}
			}
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// firstStopColor returns the lowest-offset stop's color, or Transparent
// when there are no stops.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}
