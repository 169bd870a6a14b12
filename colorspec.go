package dial

import "math"

// GradientKind selects the gradient geometry of a ColorSpec.
type GradientKind int

const (
	// GradientLinear sweeps colors along a straight axis.
	GradientLinear GradientKind = iota
	// GradientRadial radiates colors from a center point.
	GradientRadial
)

// GradientSpec is the declarative form of a gradient fill: an ordered
// color sequence spread evenly across [0, 1], plus an orientation (axis
// angle for linear, normalized center for radial).
type GradientSpec struct {
	Kind   GradientKind
	Colors []RGBA
	Angle  float64 // Linear: clock angle of the axis; 0 = bottom to top
	Center Point   // Radial: normalized center, (0.5, 0.5) = middle
}

// ColorSpec is a declarative color: either a solid color or a gradient
// descriptor. Resolve turns it into a Brush for a concrete bounding shape.
type ColorSpec struct {
	Solid    RGBA
	Gradient *GradientSpec
}

// SolidSpec wraps a concrete color into a ColorSpec.
func SolidSpec(c RGBA) ColorSpec {
	return ColorSpec{Solid: c}
}

// IsGradient reports whether the spec describes a gradient fill.
func (s ColorSpec) IsGradient() bool {
	return s.Gradient != nil
}

// ParseColorSpec parses a declarative color value as it appears in a
// configuration: a string token (CSS name or hex), or a gradient
// descriptor mapping with keys "type" (linear|linear_gradient|radial|
// radial_gradient), "colors" (≥2 tokens), and optionally "angle" (linear)
// or "center" ([nx, ny], radial). Anything else fails with ConfigError.
func ParseColorSpec(v any) (ColorSpec, error) {
	switch val := v.(type) {
	case string:
		c, err := ParseColor(val)
		if err != nil {
			return ColorSpec{}, err
		}
		return ColorSpec{Solid: c}, nil
	case RGBA:
		return ColorSpec{Solid: val}, nil
	case ColorSpec:
		return val, nil
	case map[string]any:
		return parseGradientSpec(val)
	default:
		return ColorSpec{}, configErrorf("color must be a string token or gradient mapping, got %T", v)
	}
}

func parseGradientSpec(m map[string]any) (ColorSpec, error) {
	kindStr, ok := m["type"].(string)
	if !ok {
		return ColorSpec{}, configErrorf("gradient spec must include a 'type' string")
	}

	var kind GradientKind
	switch kindStr {
	case "linear", "linear_gradient":
		kind = GradientLinear
	case "radial", "radial_gradient":
		kind = GradientRadial
	default:
		return ColorSpec{}, configErrorf("unsupported gradient type %q", kindStr)
	}

	rawColors, ok := m["colors"].([]any)
	if !ok {
		if typed, isTyped := m["colors"].([]string); isTyped {
			rawColors = make([]any, len(typed))
			for i, s := range typed {
				rawColors[i] = s
			}
		} else {
			return ColorSpec{}, configErrorf("gradient spec must include a 'colors' list")
		}
	}
	if len(rawColors) < 2 {
		return ColorSpec{}, configErrorf("gradient must have at least 2 color stops, got %d", len(rawColors))
	}

	colors := make([]RGBA, len(rawColors))
	for i, rc := range rawColors {
		token, isStr := rc.(string)
		if !isStr {
			return ColorSpec{}, configErrorf("gradient color stops must be string tokens, got %T", rc)
		}
		c, err := ParseColor(token)
		if err != nil {
			return ColorSpec{}, err
		}
		colors[i] = c
	}

	spec := &GradientSpec{Kind: kind, Colors: colors, Center: Point{X: 0.5, Y: 0.5}}

	if raw, present := m["angle"]; present {
		angle, err := toFloat(raw)
		if err != nil {
			return ColorSpec{}, configErrorf("gradient angle: %v", err)
		}
		spec.Angle = angle
	}
	if raw, present := m["center"]; present {
		center, err := toPoint(raw)
		if err != nil {
			return ColorSpec{}, configErrorf("gradient center: %v", err)
		}
		spec.Center = center
	}

	return ColorSpec{Gradient: spec}, nil
}

// Resolve produces a Brush valid over the given bounding shape. When
// round is true the shape is the circle inscribed in bounds, otherwise
// the rectangle itself. Solid specs pass through unchanged.
func (s ColorSpec) Resolve(bounds Rect, round bool) Brush {
	if s.Gradient == nil {
		return Solid(s.Solid)
	}

	g := s.Gradient
	stops := evenStops(g.Colors)

	switch g.Kind {
	case GradientRadial:
		center := Point{
			X: bounds.X + g.Center.X*bounds.W,
			Y: bounds.Y + g.Center.Y*bounds.H,
		}
		brush := NewRadialGradientBrush(center, bounds, round)
		brush.Stops = stops
		return brush
	default:
		return linearBrushFor(bounds, g.Angle, stops)
	}
}

// linearBrushFor builds the gradient axis across bounds at a clock angle.
// Angle 0 points bottom to top; the axis spans the projection of the
// bounds onto that direction, so the first and last stops land on
// opposite edges.
func linearBrushFor(bounds Rect, angle float64, stops []ColorStop) *LinearGradientBrush {
	rad := angle * math.Pi / 180
	dir := Point{X: math.Sin(rad), Y: -math.Cos(rad)}
	extent := (math.Abs(dir.X)*bounds.W + math.Abs(dir.Y)*bounds.H) / 2
	center := bounds.Center()
	brush := &LinearGradientBrush{
		Start: center.Sub(dir.Mul(extent)),
		End:   center.Add(dir.Mul(extent)),
		Stops: stops,
	}
	return brush
}
