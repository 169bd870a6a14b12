package dial

import "fmt"

// Property maps arrive from JSON decoding or hand-written Go literals, so
// numeric values may be float64, int, or anything json.Unmarshal produces.
// These helpers normalize access; every mismatch is reported so element
// constructors can surface a ConfigError with the property name attached.

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func toPoint(v any) (Point, error) {
	pair, err := toFloatSlice(v)
	if err != nil {
		return Point{}, err
	}
	if len(pair) != 2 {
		return Point{}, fmt.Errorf("expected [x, y] pair, got %d values", len(pair))
	}
	return Point{X: pair[0], Y: pair[1]}, nil
}

func toFloatSlice(v any) ([]float64, error) {
	switch s := v.(type) {
	case []float64:
		return s, nil
	case []any:
		out := make([]float64, len(s))
		for i, item := range s {
			f, err := toFloat(item)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected list of numbers, got %T", v)
	}
}

func toIntSlice(v any) ([]int, error) {
	switch s := v.(type) {
	case []int:
		return s, nil
	case []any:
		out := make([]int, len(s))
		for i, item := range s {
			n, err := toInt(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected list of integers, got %T", v)
	}
}

func toPointList(v any) ([]Point, error) {
	raw, ok := v.([]any)
	if !ok {
		if typed, isTyped := v.([]Point); isTyped {
			return typed, nil
		}
		return nil, fmt.Errorf("expected list of [x, y] pairs, got %T", v)
	}
	out := make([]Point, len(raw))
	for i, item := range raw {
		p, err := toPoint(item)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// optString reads a string property, returning def when absent.
func optString(m map[string]any, key, def string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", configErrorf("property %q must be a string, got %T", key, v)
	}
	return s, nil
}

// optFloat reads a numeric property, returning def when absent.
func optFloat(m map[string]any, key string, def float64) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, configErrorf("property %q: %v", key, err)
	}
	return f, nil
}

// optInt reads an integer property, returning def when absent.
func optInt(m map[string]any, key string, def int) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, configErrorf("property %q: %v", key, err)
	}
	return n, nil
}

// optBool reads a boolean property, returning def when absent.
func optBool(m map[string]any, key string, def bool) (bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	b, isBool := v.(bool)
	if !isBool {
		return false, configErrorf("property %q must be a boolean, got %T", key, v)
	}
	return b, nil
}

// optColorSpec reads a color property, returning def when absent.
func optColorSpec(m map[string]any, key string, def ColorSpec) (ColorSpec, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	spec, err := ParseColorSpec(v)
	if err != nil {
		return ColorSpec{}, err
	}
	return spec, nil
}
