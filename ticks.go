package dial

// Ticks draws the hour and minute markers around the dial. The dial is
// split into `divisions` hour divisions (12 by default, 24 for a
// 24-hour dial); minute markers always use the 60-division ring. A
// minute index that lands on an hour division is drawn by the hour spec
// alone, so each position carries exactly one marker.
type Ticks struct {
	baseElement
	divisions      int
	rotation       float64
	hour           *tickSpec
	minute         *tickSpec
	flexible       []*flexTick
	visibleHours   []int
	visibleMinutes []int
}

// tickSpec describes one ring of markers.
type tickSpec struct {
	shape  string // "line" or "circle"
	color  ColorSpec
	length float64 // fraction of the dial radius
	width  float64 // stroke width in target pixels
}

// flexTick is one entry of the flexible tick_spec list: a marker spec
// plus the division indices it covers ("all" covers every division).
type flexTick struct {
	tickSpec
	indices []int
	all     bool
}

func parseTickSpec(v any, name string, defLength, defWidth float64) (*tickSpec, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, configErrorf("%s must be a mapping, got %T", name, v)
	}

	spec := &tickSpec{}
	var err error

	spec.shape, err = optString(m, "shape", "line")
	if err != nil {
		return nil, err
	}
	if spec.shape != "line" && spec.shape != "circle" {
		return nil, configErrorf("%s shape must be \"line\" or \"circle\", got %q", name, spec.shape)
	}

	spec.color, err = optColorSpec(m, "color", SolidSpec(Black))
	if err != nil {
		return nil, err
	}

	spec.length, err = optFloat(m, "length", defLength)
	if err != nil {
		return nil, err
	}
	if spec.length <= 0 || spec.length > 1 {
		return nil, configErrorf("%s length must be in (0, 1], got %g", name, spec.length)
	}

	spec.width, err = optFloat(m, "width", defWidth)
	if err != nil {
		return nil, err
	}
	if spec.width <= 0 {
		return nil, configErrorf("%s width must be positive, got %g", name, spec.width)
	}

	return spec, nil
}

func newTicks(props map[string]any) (*Ticks, error) {
	base, err := newBaseElement("Ticks", props)
	if err != nil {
		return nil, err
	}
	t := &Ticks{baseElement: base}

	t.divisions, err = optInt(props, "divisions", 12)
	if err != nil {
		return nil, err
	}
	if t.divisions <= 0 {
		return nil, configErrorf("ticks divisions must be positive, got %d", t.divisions)
	}

	t.rotation, err = optFloat(props, "rotation", 0)
	if err != nil {
		return nil, err
	}

	if v, ok := props["hour_spec"]; ok && v != nil {
		t.hour, err = parseTickSpec(v, "hour_spec", 0.1, 2)
		if err != nil {
			return nil, err
		}
	}
	if v, ok := props["minute_spec"]; ok && v != nil {
		t.minute, err = parseTickSpec(v, "minute_spec", 0.05, 1)
		if err != nil {
			return nil, err
		}
	}

	if v, ok := props["tick_spec"]; ok && v != nil {
		t.flexible, err = parseFlexTicks(v)
		if err != nil {
			return nil, err
		}
	}

	if v, ok := props["visible_hours"]; ok && v != nil {
		t.visibleHours, err = toIntSlice(v)
		if err != nil {
			return nil, configErrorf("property \"visible_hours\": %v", err)
		}
	}
	if v, ok := props["visible_minutes"]; ok && v != nil {
		t.visibleMinutes, err = toIntSlice(v)
		if err != nil {
			return nil, configErrorf("property \"visible_minutes\": %v", err)
		}
	}

	return t, nil
}

func parseFlexTicks(v any) ([]*flexTick, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, configErrorf("tick_spec must be a list, got %T", v)
	}
	out := make([]*flexTick, 0, len(list))
	for _, item := range list {
		spec, err := parseTickSpec(item, "tick_spec", 0.1, 2)
		if err != nil {
			return nil, err
		}
		ft := &flexTick{tickSpec: *spec}

		m := item.(map[string]any)
		switch idx := m["indices"].(type) {
		case nil:
		case string:
			if idx != "all" {
				return nil, configErrorf("tick_spec indices must be \"all\" or an integer list, got %q", idx)
			}
			ft.all = true
		default:
			ft.indices, err = toIntSlice(idx)
			if err != nil {
				return nil, configErrorf("tick_spec indices: %v", err)
			}
		}
		out = append(out, ft)
	}
	return out, nil
}

// ZOrder implements Element. Ticks draw above the face, below numerals.
func (t *Ticks) ZOrder() int { return zTicks }

// Draw implements Element.
func (t *Ticks) Draw(c *Canvas, frame Frame) error {
	center, radius := t.anchor.resolve(frame)
	bounds := Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius}

	// The flexible tick_spec list replaces the legacy hour/minute specs
	// entirely when present.
	if len(t.flexible) > 0 {
		for _, ft := range t.flexible {
			indices := ft.indices
			if ft.all {
				indices = allIndices(0, t.divisions-1)
			}
			brush := ft.color.Resolve(bounds, true)
			for _, idx := range indices {
				angle := DivisionAngle(t.divisions, idx, t.rotation)
				t.drawTick(c, center, radius, angle, &ft.tickSpec, brush, frame.Scale)
			}
		}
		return nil
	}

	if t.hour != nil {
		hours := t.visibleHours
		if hours == nil {
			hours = allIndices(1, t.divisions)
		}
		brush := t.hour.color.Resolve(bounds, true)
		for _, h := range hours {
			angle := DivisionAngle(t.divisions, h%t.divisions, t.rotation)
			t.drawTick(c, center, radius, angle, t.hour, brush, frame.Scale)
		}
	}

	if t.minute != nil {
		minutes := t.visibleMinutes
		if minutes == nil {
			minutes = allIndices(0, 59)
		}
		brush := t.minute.color.Resolve(bounds, true)
		for _, m := range minutes {
			if t.hour != nil && m*t.divisions%60 == 0 {
				continue // position already marked by the hour spec
			}
			angle := DivisionAngle(60, m, t.rotation)
			t.drawTick(c, center, radius, angle, t.minute, brush, frame.Scale)
		}
	}

	return nil
}

func (t *Ticks) drawTick(c *Canvas, center Point, radius, angle float64, spec *tickSpec, brush Brush, scale float64) {
	switch spec.shape {
	case "circle":
		// Dot markers sit on the 0.9R ring; a width covering the dot
		// diameter fills it, a smaller width draws an outline.
		size := spec.length * radius
		dotCenter := PointOnCircle(center, radius*0.9, angle)
		if spec.width*scale >= size {
			c.FillCircle(dotCenter, size/2, brush)
		} else {
			c.StrokeCircle(dotCenter, size/2, spec.width*scale, brush)
		}
	default:
		// Line markers run inward from the 0.95R ring.
		outer := PointOnCircle(center, radius*0.95, angle)
		inner := PointOnCircle(center, radius*0.95-spec.length*radius, angle)
		c.StrokeLine(inner, outer, spec.width*scale, brush)
	}
}

func allIndices(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
