package dial

import "sort"

// presetStyles maps style names to ready-made element lists. The tables
// are never handed out directly; Create deep-copies the property maps
// so clocks built from the same style stay independent.
var presetStyles = map[string][]ElementConfig{
	"classic": {
		{Type: "Face", Properties: map[string]any{
			"shape":        "circle",
			"color":        "white",
			"border_color": "black",
			"border_width": 3.0,
		}},
		{Type: "Ticks", Properties: map[string]any{
			"hour_spec":   map[string]any{"shape": "line", "color": "black", "length": 0.08, "width": 3.0},
			"minute_spec": map[string]any{"shape": "line", "color": "black", "length": 0.04, "width": 1.0},
		}},
		{Type: "Numerals", Properties: map[string]any{
			"system":    "arabic",
			"color":     "black",
			"font_size": 28.0,
		}},
		{Type: "Hands", Properties: map[string]any{
			"hour_spec":   map[string]any{"shape": "line", "color": "black", "length": 0.5, "width": 6.0},
			"minute_spec": map[string]any{"shape": "line", "color": "black", "length": 0.8, "width": 4.0},
			"second_spec": map[string]any{"shape": "line", "color": "red", "length": 0.9, "width": 2.0},
			"pivot_spec":  map[string]any{"color": "black", "radius": 5.0},
		}},
	},
	"modern": {
		{Type: "Face", Properties: map[string]any{
			"shape":        "circle",
			"color":        "#2c3e50",
			"border_color": "#34495e",
			"border_width": 2.0,
		}},
		{Type: "Ticks", Properties: map[string]any{
			"hour_spec":   map[string]any{"shape": "line", "color": "#ecf0f1", "length": 0.06, "width": 4.0},
			"minute_spec": map[string]any{"shape": "line", "color": "#bdc3c7", "length": 0.03, "width": 1.0},
		}},
		{Type: "Numerals", Properties: map[string]any{
			"system":    "arabic",
			"visible":   []any{12, 3, 6, 9},
			"color":     "#ecf0f1",
			"font_size": 32.0,
		}},
		{Type: "Hands", Properties: map[string]any{
			"hour_spec":   map[string]any{"shape": "line", "color": "#ecf0f1", "length": 0.45, "width": 8.0},
			"minute_spec": map[string]any{"shape": "line", "color": "#ecf0f1", "length": 0.75, "width": 6.0},
			"second_spec": map[string]any{"shape": "line", "color": "#e74c3c", "length": 0.85, "width": 2.0},
			"pivot_spec":  map[string]any{"color": "#ecf0f1", "radius": 8.0},
		}},
	},
	"minimal": {
		{Type: "Face", Properties: map[string]any{
			"shape":        "circle",
			"color":        "white",
			"border_color": "#bdc3c7",
			"border_width": 1.0,
		}},
		{Type: "Ticks", Properties: map[string]any{
			"hour_spec": map[string]any{"shape": "line", "color": "#34495e", "length": 0.05, "width": 2.0},
		}},
		{Type: "Numerals", Properties: map[string]any{
			"system":    "arabic",
			"visible":   []any{12, 3, 6, 9},
			"color":     "#34495e",
			"font_size": 24.0,
		}},
		{Type: "Hands", Properties: map[string]any{
			"hour_spec":   map[string]any{"shape": "line", "color": "#34495e", "length": 0.4, "width": 4.0},
			"minute_spec": map[string]any{"shape": "line", "color": "#34495e", "length": 0.7, "width": 3.0},
			"pivot_spec":  map[string]any{"color": "#34495e", "radius": 4.0},
		}},
	},
}

// Styles returns the available preset style names, sorted.
func Styles() []string {
	names := make([]string, 0, len(presetStyles))
	for name := range presetStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds a 400×400 clock showing timeStr in one of the preset
// styles. Unknown styles and malformed times fail with ConfigError.
// Options apply after the preset, so WithSize and the rest override its
// defaults.
func Create(timeStr, style string, opts ...Option) (*Clock, error) {
	preset, ok := presetStyles[style]
	if !ok {
		return nil, configErrorf("unknown style %q (available: %v)", style, Styles())
	}
	if _, err := ParseClockTime(timeStr); err != nil {
		return nil, err
	}

	c, err := NewClock(400, 400, opts...)
	if err != nil {
		return nil, err
	}

	for _, ec := range preset {
		props := cloneProps(ec.Properties)
		if ec.Type == "Hands" {
			props["time"] = timeStr
		}
		e, err := NewElement(ec.Type, props)
		if err != nil {
			return nil, err
		}
		c.AddElement(e)
	}
	return c, nil
}

// cloneProps copies a property map one nested level deep, which covers
// the mapping and list values element properties use.
func cloneProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		switch val := v.(type) {
		case map[string]any:
			inner := make(map[string]any, len(val))
			for ik, iv := range val {
				inner[ik] = iv
			}
			out[k] = inner
		case []any:
			out[k] = append([]any(nil), val...)
		default:
			out[k] = v
		}
	}
	return out
}
