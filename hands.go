package dial

import "math"

// Hands draws the hour, minute, and second hands for a fixed time, plus
// the optional pivot cap over the hand bases. Hands are configured
// either with the named hour_spec/minute_spec/second_spec properties or
// with a flexible `hands` list carrying a per-hand `type`; a hand
// without a spec is simply not drawn. Angles are continuous, so the
// hour hand at 3:30 points halfway between 3 and 4.
type Hands struct {
	baseElement
	time   TimeValue
	mode24 bool
	hour   *handSpec
	minute *handSpec
	second *handSpec
	pivot  *pivotSpec
}

// handSpec describes one hand's geometry and fill.
type handSpec struct {
	kind    string // which time component this hand tracks
	shape   string // "line", "triangle", or "custom_polygon"
	color   ColorSpec
	length  float64 // fraction of the dial radius
	width   float64 // stroke or base width in target pixels
	polygon []Point // unit-frame vertices for custom_polygon
}

// pivotSpec is the circular cap drawn over the hand bases.
type pivotSpec struct {
	color  ColorSpec
	radius float64
}

func parseHandSpec(v any, name string) (*handSpec, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, configErrorf("%s must be a mapping, got %T", name, v)
	}

	spec := &handSpec{}
	var err error

	spec.shape, err = optString(m, "shape", "line")
	if err != nil {
		return nil, err
	}
	switch spec.shape {
	case "line", "triangle", "custom_polygon":
	default:
		return nil, configErrorf("%s shape must be \"line\", \"triangle\", or \"custom_polygon\", got %q", name, spec.shape)
	}

	spec.color, err = optColorSpec(m, "color", SolidSpec(Black))
	if err != nil {
		return nil, err
	}

	spec.length, err = optFloat(m, "length", 0.6)
	if err != nil {
		return nil, err
	}
	if spec.length <= 0 || spec.length > 1 {
		return nil, configErrorf("%s length must be in (0, 1], got %g", name, spec.length)
	}

	spec.width, err = optFloat(m, "width", 2)
	if err != nil {
		return nil, err
	}
	if spec.width <= 0 {
		return nil, configErrorf("%s width must be positive, got %g", name, spec.width)
	}

	if spec.shape == "custom_polygon" {
		v, ok := m["custom_polygon"]
		if !ok || v == nil {
			v, ok = m["polygon"]
		}
		if !ok || v == nil {
			return nil, configErrorf("%s shape \"custom_polygon\" requires a custom_polygon vertex list", name)
		}
		spec.polygon, err = toPointList(v)
		if err != nil {
			return nil, configErrorf("%s custom_polygon: %v", name, err)
		}
		if len(spec.polygon) < 3 {
			return nil, configErrorf("%s custom_polygon needs at least 3 vertices, got %d", name, len(spec.polygon))
		}
	}

	return spec, nil
}

func newHands(props map[string]any) (*Hands, error) {
	base, err := newBaseElement("Hands", props)
	if err != nil {
		return nil, err
	}
	h := &Hands{baseElement: base}

	timeStr, err := optString(props, "time", "12:00:00")
	if err != nil {
		return nil, err
	}
	h.time, err = ParseClockTime(timeStr)
	if err != nil {
		return nil, err
	}

	mode, err := optString(props, "mode", "12h")
	if err != nil {
		return nil, err
	}
	switch mode {
	case "12h":
	case "24h":
		h.mode24 = true
	default:
		return nil, configErrorf("hands mode must be \"12h\" or \"24h\", got %q", mode)
	}

	if v, ok := props["hands"]; ok && v != nil {
		if err := h.parseHandList(v); err != nil {
			return nil, err
		}
	} else {
		for _, named := range []struct {
			key  string
			dst  **handSpec
			kind string
		}{
			{"hour_spec", &h.hour, "hour"},
			{"minute_spec", &h.minute, "minute"},
			{"second_spec", &h.second, "second"},
		} {
			v, ok := props[named.key]
			if !ok || v == nil {
				continue
			}
			spec, err := parseHandSpec(v, named.key)
			if err != nil {
				return nil, err
			}
			spec.kind = named.kind
			*named.dst = spec
		}
	}

	if v, ok := props["pivot_spec"]; ok && v != nil {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, configErrorf("pivot_spec must be a mapping, got %T", v)
		}
		pivot := &pivotSpec{}
		pivot.color, err = optColorSpec(m, "color", SolidSpec(Black))
		if err != nil {
			return nil, err
		}
		pivot.radius, err = optFloat(m, "radius", 5)
		if err != nil {
			return nil, err
		}
		if pivot.radius <= 0 {
			return nil, configErrorf("pivot_spec radius must be positive, got %g", pivot.radius)
		}
		h.pivot = pivot
	}

	return h, nil
}

func (h *Hands) parseHandList(v any) error {
	list, ok := v.([]any)
	if !ok {
		return configErrorf("property \"hands\" must be a list, got %T", v)
	}
	for i, item := range list {
		spec, err := parseHandSpec(item, "hands entry")
		if err != nil {
			return err
		}
		m := item.(map[string]any)
		kind, err := optString(m, "type", "")
		if err != nil {
			return err
		}
		switch kind {
		case "hour":
			spec.kind = kind
			h.hour = spec
		case "minute":
			spec.kind = kind
			h.minute = spec
		case "second":
			spec.kind = kind
			h.second = spec
		default:
			return configErrorf("hands entry %d: type must be \"hour\", \"minute\", or \"second\", got %q", i, kind)
		}
	}
	return nil
}

// ZOrder implements Element. Hands draw on top of everything.
func (h *Hands) ZOrder() int { return zHands }

// Draw implements Element.
func (h *Hands) Draw(c *Canvas, frame Frame) error {
	center, radius := h.anchor.resolve(frame)
	bounds := Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius}

	hourAngle, minuteAngle, secondAngle := h.time.HandAngles(h.mode24)

	if h.hour != nil {
		h.drawHand(c, h.hour, center, radius, hourAngle, bounds, frame.Scale)
	}
	if h.minute != nil {
		h.drawHand(c, h.minute, center, radius, minuteAngle, bounds, frame.Scale)
	}
	if h.second != nil {
		h.drawHand(c, h.second, center, radius, secondAngle, bounds, frame.Scale)
	}

	if h.pivot != nil {
		brush := h.pivot.color.Resolve(bounds, true)
		c.FillCircle(center, h.pivot.radius*frame.Scale, brush)
	}

	return nil
}

func (h *Hands) drawHand(c *Canvas, spec *handSpec, center Point, radius, angle float64, bounds Rect, scale float64) {
	brush := spec.color.Resolve(bounds, true)
	tip := PointOnCircle(center, spec.length*radius, angle)

	switch spec.shape {
	case "triangle":
		half := spec.width * scale / 2
		baseL := PointOnCircle(center, half, angle-90)
		baseR := PointOnCircle(center, half, angle+90)
		c.FillPolygon([]Point{tip, baseL, baseR}, brush)
	case "custom_polygon":
		// Vertices are given in a unit frame with the pivot at the
		// origin and +x toward the tip; scale to the hand length and
		// rotate so the tip lands on the hand angle.
		rad := (angle - 90) * math.Pi / 180
		pts := make([]Point, len(spec.polygon))
		for i, p := range spec.polygon {
			pts[i] = p.Mul(spec.length * radius).Rotate(rad).Add(center)
		}
		c.FillPolygon(pts, brush)
	default:
		c.StrokeLine(center, tip, spec.width*scale, brush)
	}
}
