package dial

import "sort"

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// evenStops spreads colors evenly across [0, 1], the layout declarative
// gradient specs use when no explicit stop positions are given.
func evenStops(colors []RGBA) []ColorStop {
	stops := make([]ColorStop, len(colors))
	n := len(colors) - 1
	for i, c := range colors {
		off := 0.0
		if n > 0 {
			off = float64(i) / float64(n)
		}
		stops[i] = ColorStop{Offset: off, Color: c}
	}
	return stops
}

// sortStops returns a copy of stops ordered by offset.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset returns the interpolated color at a given offset.
// Offsets outside [0, 1] clamp to the edge stops (pad extension).
// Interpolation between adjacent stops is linear in each color channel.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Coincident stops would divide by zero.
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, localT)
}
