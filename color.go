package dial

import (
	"image/color"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	// Alpha-premultiplied 16-bit channels, as color.Color requires.
	a16 := clamp01(c.A) * 65535
	r = uint32(clamp01(c.R)*a16 + 0.5)
	g = uint32(clamp01(c.G)*a16 + 0.5)
	b = uint32(clamp01(c.B)*a16 + 0.5)
	return r, g, b, uint32(a16 + 0.5)
}

// Color converts RGBA to a non-premultiplied color.NRGBA.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// Un-premultiply so RGBA channels stay independent of alpha.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// ParseColor resolves a color token: a CSS color name ("white",
// "rebeccapurple") or a hex string ("#RGB", "#RGBA", "#RRGGBB",
// "#RRGGBBAA", with or without the '#' prefix). Unparseable tokens fail
// with ConfigError.
func ParseColor(token string) (RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(token))
	if name == "" {
		return RGBA{}, configErrorf("empty color token")
	}
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if c, ok := parseHexColor(name); ok {
		return c, nil
	}
	return RGBA{}, configErrorf("unparseable color token %q", token)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// Invalid input yields opaque black; use ParseColor when errors matter.
func Hex(hex string) RGBA {
	if c, ok := parseHexColor(hex); ok {
		return c
	}
	return RGBA{A: 1}
}

func parseHexColor(hex string) (RGBA, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return RGBA{}, false
	}
	if !ok {
		return RGBA{}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Transparent = NewRGBA(0, 0, 0, 0)
)

func rgb8(r, g, b uint8) RGBA {
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// namedColors is the CSS3 extended color keyword table.
var namedColors = map[string]RGBA{
	"aliceblue":            rgb8(240, 248, 255),
	"antiquewhite":         rgb8(250, 235, 215),
	"aqua":                 rgb8(0, 255, 255),
	"aquamarine":           rgb8(127, 255, 212),
	"azure":                rgb8(240, 255, 255),
	"beige":                rgb8(245, 245, 220),
	"bisque":               rgb8(255, 228, 196),
	"black":                rgb8(0, 0, 0),
	"blanchedalmond":       rgb8(255, 235, 205),
	"blue":                 rgb8(0, 0, 255),
	"blueviolet":           rgb8(138, 43, 226),
	"brown":                rgb8(165, 42, 42),
	"burlywood":            rgb8(222, 184, 135),
	"cadetblue":            rgb8(95, 158, 160),
	"chartreuse":           rgb8(127, 255, 0),
	"chocolate":            rgb8(210, 105, 30),
	"coral":                rgb8(255, 127, 80),
	"cornflowerblue":       rgb8(100, 149, 237),
	"cornsilk":             rgb8(255, 248, 220),
	"crimson":              rgb8(220, 20, 60),
	"cyan":                 rgb8(0, 255, 255),
	"darkblue":             rgb8(0, 0, 139),
	"darkcyan":             rgb8(0, 139, 139),
	"darkgoldenrod":        rgb8(184, 134, 11),
	"darkgray":             rgb8(169, 169, 169),
	"darkgreen":            rgb8(0, 100, 0),
	"darkgrey":             rgb8(169, 169, 169),
	"darkkhaki":            rgb8(189, 183, 107),
	"darkmagenta":          rgb8(139, 0, 139),
	"darkolivegreen":       rgb8(85, 107, 47),
	"darkorange":           rgb8(255, 140, 0),
	"darkorchid":           rgb8(153, 50, 204),
	"darkred":              rgb8(139, 0, 0),
	"darksalmon":           rgb8(233, 150, 122),
	"darkseagreen":         rgb8(143, 188, 143),
	"darkslateblue":        rgb8(72, 61, 139),
	"darkslategray":        rgb8(47, 79, 79),
	"darkslategrey":        rgb8(47, 79, 79),
	"darkturquoise":        rgb8(0, 206, 209),
	"darkviolet":           rgb8(148, 0, 211),
	"deeppink":             rgb8(255, 20, 147),
	"deepskyblue":          rgb8(0, 191, 255),
	"dimgray":              rgb8(105, 105, 105),
	"dimgrey":              rgb8(105, 105, 105),
	"dodgerblue":           rgb8(30, 144, 255),
	"firebrick":            rgb8(178, 34, 34),
	"floralwhite":          rgb8(255, 250, 240),
	"forestgreen":          rgb8(34, 139, 34),
	"fuchsia":              rgb8(255, 0, 255),
	"gainsboro":            rgb8(220, 220, 220),
	"ghostwhite":           rgb8(248, 248, 255),
	"gold":                 rgb8(255, 215, 0),
	"goldenrod":            rgb8(218, 165, 32),
	"gray":                 rgb8(128, 128, 128),
	"green":                rgb8(0, 128, 0),
	"greenyellow":          rgb8(173, 255, 47),
	"grey":                 rgb8(128, 128, 128),
	"honeydew":             rgb8(240, 255, 240),
	"hotpink":              rgb8(255, 105, 180),
	"indianred":            rgb8(205, 92, 92),
	"indigo":               rgb8(75, 0, 130),
	"ivory":                rgb8(255, 255, 240),
	"khaki":                rgb8(240, 230, 140),
	"lavender":             rgb8(230, 230, 250),
	"lavenderblush":        rgb8(255, 240, 245),
	"lawngreen":            rgb8(124, 252, 0),
	"lemonchiffon":         rgb8(255, 250, 205),
	"lightblue":            rgb8(173, 216, 230),
	"lightcoral":           rgb8(240, 128, 128),
	"lightcyan":            rgb8(224, 255, 255),
	"lightgoldenrodyellow": rgb8(250, 250, 210),
	"lightgray":            rgb8(211, 211, 211),
	"lightgreen":           rgb8(144, 238, 144),
	"lightgrey":            rgb8(211, 211, 211),
	"lightpink":            rgb8(255, 182, 193),
	"lightsalmon":          rgb8(255, 160, 122),
	"lightseagreen":        rgb8(32, 178, 170),
	"lightskyblue":         rgb8(135, 206, 250),
	"lightslategray":       rgb8(119, 136, 153),
	"lightslategrey":       rgb8(119, 136, 153),
	"lightsteelblue":       rgb8(176, 196, 222),
	"lightyellow":          rgb8(255, 255, 224),
	"lime":                 rgb8(0, 255, 0),
	"limegreen":            rgb8(50, 205, 50),
	"linen":                rgb8(250, 240, 230),
	"magenta":              rgb8(255, 0, 255),
	"maroon":               rgb8(128, 0, 0),
	"mediumaquamarine":     rgb8(102, 205, 170),
	"mediumblue":           rgb8(0, 0, 205),
	"mediumorchid":         rgb8(186, 85, 211),
	"mediumpurple":         rgb8(147, 112, 219),
	"mediumseagreen":       rgb8(60, 179, 113),
	"mediumslateblue":      rgb8(123, 104, 238),
	"mediumspringgreen":    rgb8(0, 250, 154),
	"mediumturquoise":      rgb8(72, 209, 204),
	"mediumvioletred":      rgb8(199, 21, 133),
	"midnightblue":         rgb8(25, 25, 112),
	"mintcream":            rgb8(245, 255, 250),
	"mistyrose":            rgb8(255, 228, 225),
	"moccasin":             rgb8(255, 228, 181),
	"navajowhite":          rgb8(255, 222, 173),
	"navy":                 rgb8(0, 0, 128),
	"oldlace":              rgb8(253, 245, 230),
	"olive":                rgb8(128, 128, 0),
	"olivedrab":            rgb8(107, 142, 35),
	"orange":               rgb8(255, 165, 0),
	"orangered":            rgb8(255, 69, 0),
	"orchid":               rgb8(218, 112, 214),
	"palegoldenrod":        rgb8(238, 232, 170),
	"palegreen":            rgb8(152, 251, 152),
	"paleturquoise":        rgb8(175, 238, 238),
	"palevioletred":        rgb8(219, 112, 147),
	"papayawhip":           rgb8(255, 239, 213),
	"peachpuff":            rgb8(255, 218, 185),
	"peru":                 rgb8(205, 133, 63),
	"pink":                 rgb8(255, 192, 203),
	"plum":                 rgb8(221, 160, 221),
	"powderblue":           rgb8(176, 224, 230),
	"purple":               rgb8(128, 0, 128),
	"rebeccapurple":        rgb8(102, 51, 153),
	"red":                  rgb8(255, 0, 0),
	"rosybrown":            rgb8(188, 143, 143),
	"royalblue":            rgb8(65, 105, 225),
	"saddlebrown":          rgb8(139, 69, 19),
	"salmon":               rgb8(250, 128, 114),
	"sandybrown":           rgb8(244, 164, 96),
	"seagreen":             rgb8(46, 139, 87),
	"seashell":             rgb8(255, 245, 238),
	"sienna":               rgb8(160, 82, 45),
	"silver":               rgb8(192, 192, 192),
	"skyblue":              rgb8(135, 206, 235),
	"slateblue":            rgb8(106, 90, 205),
	"slategray":            rgb8(112, 128, 144),
	"slategrey":            rgb8(112, 128, 144),
	"snow":                 rgb8(255, 250, 250),
	"springgreen":          rgb8(0, 255, 127),
	"steelblue":            rgb8(70, 130, 180),
	"tan":                  rgb8(210, 180, 140),
	"teal":                 rgb8(0, 128, 128),
	"thistle":              rgb8(216, 191, 216),
	"tomato":               rgb8(255, 99, 71),
	"transparent":          {},
	"turquoise":            rgb8(64, 224, 208),
	"violet":               rgb8(238, 130, 238),
	"wheat":                rgb8(245, 222, 179),
	"white":                rgb8(255, 255, 255),
	"whitesmoke":           rgb8(245, 245, 245),
	"yellow":               rgb8(255, 255, 0),
	"yellowgreen":          rgb8(154, 205, 50),
}
