package dial

// Fixed z-order keys. Lower values draw first (appear behind).
const (
	zFace     = 0
	zTicks    = 1
	zNumerals = 2
	zOverlay  = 3
	zHands    = 4
)

// Frame carries the scaled canvas geometry a render pass hands to each
// element: the canvas center and radius in working-resolution pixels,
// and the supersampling scale. Properties expressed in target-canvas
// coordinates (centers, widths, font sizes) multiply by Scale, so the
// same description renders with identical proportions at any scale.
type Frame struct {
	Center Point
	Radius float64
	Scale  float64
}

// Element is one drawable, independently configured layer of the clock
// face. Implementations are the five variants Face, Ticks, Numerals,
// Overlay, and Hands; NewElement builds one from its type tag.
type Element interface {
	// ZOrder returns the fixed draw-order key for this element type.
	ZOrder() int

	// Draw renders the element onto the canvas. It must not read or
	// write any other element's state.
	Draw(c *Canvas, frame Frame) error

	// Type returns the element's configuration type tag.
	Type() string

	// Properties returns the property map the element was built from.
	Properties() map[string]any
}

// NewElement builds an element from its configuration type tag and
// property map. Unknown tags fail with ConfigError; each variant
// validates its own properties once, at construction.
func NewElement(typeTag string, properties map[string]any) (Element, error) {
	if properties == nil {
		properties = map[string]any{}
	}
	switch typeTag {
	case "Face":
		return newFace(properties)
	case "Ticks":
		return newTicks(properties)
	case "Numerals":
		return newNumerals(properties)
	case "Hands":
		return newHands(properties)
	case "Overlay":
		return newOverlay(properties)
	default:
		return nil, configErrorf("unknown element type %q", typeTag)
	}
}

// baseElement carries what every variant shares: the original property
// map (kept for configuration round-trips) and the optional
// center/radius anchor override that enables sub-dials.
type baseElement struct {
	typeTag string
	props   map[string]any
	anchor  anchor
}

func newBaseElement(typeTag string, props map[string]any) (baseElement, error) {
	a, err := parseAnchor(props)
	if err != nil {
		return baseElement{}, err
	}
	return baseElement{typeTag: typeTag, props: props, anchor: a}, nil
}

// Type implements Element.
func (b *baseElement) Type() string {
	return b.typeTag
}

// Properties implements Element.
func (b *baseElement) Properties() map[string]any {
	return b.props
}

// anchor is an element's optional drawing center and radius, in
// target-canvas coordinates. Absent values fall back to the canvas
// geometry, which is what makes most elements track the main dial while
// sub-dials pin their own.
type anchor struct {
	center *Point
	radius *float64
}

func parseAnchor(props map[string]any) (anchor, error) {
	var a anchor
	if v, ok := props["center"]; ok && v != nil {
		p, err := toPoint(v)
		if err != nil {
			return anchor{}, configErrorf("property \"center\": %v", err)
		}
		a.center = &p
	}
	if v, ok := props["radius"]; ok && v != nil {
		r, err := toFloat(v)
		if err != nil {
			return anchor{}, configErrorf("property \"radius\": %v", err)
		}
		if r <= 0 {
			return anchor{}, configErrorf("property \"radius\" must be positive, got %g", r)
		}
		a.radius = &r
	}
	return a, nil
}

// resolve returns the element's center and radius in working-resolution
// pixels. Overrides are in target coordinates and scale with the frame.
func (a anchor) resolve(f Frame) (Point, float64) {
	center := f.Center
	radius := f.Radius
	if a.center != nil {
		center = a.center.Mul(f.Scale)
	}
	if a.radius != nil {
		radius = *a.radius * f.Scale
	}
	return center, radius
}
