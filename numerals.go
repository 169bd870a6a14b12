package dial

import (
	"math"
	"strconv"

	"golang.org/x/image/font"

	"github.com/gogpu/dial/internal/fontutil"
)

// Numerals draws the value labels around the dial: Arabic digits, Roman
// numerals, a caller-supplied label list, or nothing. Labels sit on the
// 0.8R ring (shifted by radius_offset) and can stand upright, point
// along the radius, or follow the tangent, with optional mirroring.
type Numerals struct {
	baseElement
	system       string
	customList   []string
	customMap    map[int]string
	values       []int
	visible      []int
	positions    []float64
	rotation     float64
	radiusOffset float64
	fontSize     float64
	fontPath     string
	color        RGBA
	orientation  string
	flip         string
}

func newNumerals(props map[string]any) (*Numerals, error) {
	base, err := newBaseElement("Numerals", props)
	if err != nil {
		return nil, err
	}
	n := &Numerals{baseElement: base}

	n.system, err = optString(props, "system", "arabic")
	if err != nil {
		return nil, err
	}
	switch n.system {
	case "arabic", "roman", "custom", "none":
	default:
		return nil, configErrorf("numeral system must be \"arabic\", \"roman\", \"custom\", or \"none\", got %q", n.system)
	}

	if v, ok := props["custom_list"]; ok && v != nil {
		list, ok := v.([]any)
		if !ok {
			return nil, configErrorf("property \"custom_list\" must be a list, got %T", v)
		}
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, configErrorf("custom_list entries must be strings, got %T", item)
			}
			n.customList = append(n.customList, s)
		}
	}

	if v, ok := props["custom_map"]; ok && v != nil {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, configErrorf("property \"custom_map\" must be a mapping, got %T", v)
		}
		n.customMap = make(map[int]string, len(m))
		for k, item := range m {
			num, atoiErr := strconv.Atoi(k)
			if atoiErr != nil {
				return nil, configErrorf("custom_map key %q is not an integer", k)
			}
			s, ok := item.(string)
			if !ok {
				return nil, configErrorf("custom_map values must be strings, got %T", item)
			}
			n.customMap[num] = s
		}
	}

	if v, ok := props["values"]; ok && v != nil {
		n.values, err = toIntSlice(v)
		if err != nil {
			return nil, configErrorf("property \"values\": %v", err)
		}
	}
	if v, ok := props["visible"]; ok && v != nil {
		n.visible, err = toIntSlice(v)
		if err != nil {
			return nil, configErrorf("property \"visible\": %v", err)
		}
	}
	if v, ok := props["positions"]; ok && v != nil {
		n.positions, err = toFloatSlice(v)
		if err != nil {
			return nil, configErrorf("property \"positions\": %v", err)
		}
	}

	n.rotation, err = optFloat(props, "rotation", 0)
	if err != nil {
		return nil, err
	}
	n.radiusOffset, err = optFloat(props, "radius_offset", 0)
	if err != nil {
		return nil, err
	}

	n.fontSize, err = optFloat(props, "font_size", 12)
	if err != nil {
		return nil, err
	}
	if n.fontSize <= 0 {
		return nil, configErrorf("numerals font_size must be positive, got %g", n.fontSize)
	}
	n.fontPath, err = optString(props, "font_path", "")
	if err != nil {
		return nil, err
	}

	colorSpec, err := optColorSpec(props, "color", SolidSpec(Black))
	if err != nil {
		return nil, err
	}
	if colorSpec.IsGradient() {
		return nil, configErrorf("numerals color must be a solid color")
	}
	n.color = colorSpec.Solid

	n.orientation, err = optString(props, "orientation", "upright")
	if err != nil {
		return nil, err
	}
	switch n.orientation {
	case "upright", "radial", "tangent":
	default:
		return nil, configErrorf("numerals orientation must be \"upright\", \"radial\", or \"tangent\", got %q", n.orientation)
	}

	n.flip, err = optString(props, "flip", "none")
	if err != nil {
		return nil, err
	}
	switch n.flip {
	case "none", "horizontal", "vertical", "both":
	default:
		return nil, configErrorf("numerals flip must be \"none\", \"horizontal\", \"vertical\", or \"both\", got %q", n.flip)
	}

	if n.system == "custom" {
		if len(n.customList) == 0 {
			return nil, configErrorf("numeral system \"custom\" requires a non-empty custom_list")
		}
		if count := len(n.labels()); len(n.customList) < count {
			return nil, configErrorf("custom_list has %d entries but %d labels are placed", len(n.customList), count)
		}
	}

	return n, nil
}

// labels returns the label values in placement order: explicit values,
// the visible subset, or the standard 1..12 ring.
func (n *Numerals) labels() []int {
	if n.values != nil {
		return n.values
	}
	if n.visible != nil {
		return n.visible
	}
	return allIndices(1, 12)
}

// ZOrder implements Element.
func (n *Numerals) ZOrder() int { return zNumerals }

// Draw implements Element.
func (n *Numerals) Draw(c *Canvas, frame Frame) error {
	if n.system == "none" {
		return nil
	}

	center, radius := n.anchor.resolve(frame)

	var src *fontutil.Source
	if n.fontPath != "" {
		loaded, err := fontutil.Load(n.fontPath)
		if err != nil {
			return &ResourceError{Path: n.fontPath, Err: err}
		}
		src = loaded
	} else {
		src = fontutil.Default()
	}
	face, err := src.Face(n.fontSize * frame.Scale)
	if err != nil {
		return &ResourceError{Path: n.fontPath, Err: err}
	}

	labels := n.labels()

	ring := radius * (0.8 + n.radiusOffset)
	for idx, num := range labels {
		text := n.labelText(idx, num)

		var angle float64
		switch {
		case idx < len(n.positions):
			angle = n.positions[idx]
		case len(labels) <= 12:
			angle = float64(num%12) * 30
		default:
			angle = 360 / float64(len(labels)) * float64(idx)
		}
		angle += n.rotation

		pos := PointOnCircle(center, ring, angle)
		n.drawLabel(c, text, face, pos, angle)
	}
	return nil
}

func (n *Numerals) labelText(idx, num int) string {
	if s, ok := n.customMap[num]; ok {
		return s
	}
	switch n.system {
	case "roman":
		return romanNumeral(num)
	case "custom":
		if idx < len(n.customList) {
			return n.customList[idx]
		}
		return strconv.Itoa(num)
	default:
		return strconv.Itoa(num)
	}
}

// drawLabel renders one label centered on pos. Upright unmirrored text
// goes straight onto the canvas; anything rotated or mirrored renders
// into a scratch pixmap first, gets transformed, and is pasted back.
func (n *Numerals) drawLabel(c *Canvas, text string, face font.Face, pos Point, angle float64) {
	w, h, _ := fontutil.Measure(face, text)

	if n.orientation == "upright" && n.flip == "none" {
		fontutil.DrawString(c.Pixmap(), text, face, n.color.Color(), pos.X-w/2, pos.Y-h/2)
		return
	}

	tmp := NewPixmap(int(math.Ceil(w)), int(math.Ceil(h)))
	fontutil.DrawString(tmp, text, face, n.color.Color(), 0, 0)

	if n.flip == "horizontal" || n.flip == "both" {
		tmp = flipHorizontal(tmp)
	}
	if n.flip == "vertical" || n.flip == "both" {
		tmp = flipVertical(tmp)
	}

	var rot float64
	switch n.orientation {
	case "radial":
		rot = angle
	case "tangent":
		rot = angle + 90
	}
	if rot != 0 {
		tmp = rotate(tmp, rot)
	}

	atX := int(math.Round(pos.X - float64(tmp.Width())/2))
	atY := int(math.Round(pos.Y - float64(tmp.Height())/2))
	c.Paste(tmp.ToImage(), atX, atY, false)
}
