package dial

import (
	"math"
	"strconv"
	"time"

	"github.com/gogpu/dial/internal/fontutil"
)

// Overlay draws a small framed window on the dial: a date window
// showing a day-of-month, or a free text label. The window is a
// rounded rectangle sized to its text plus padding, centered on an
// explicit position or, by default, below the dial center.
type Overlay struct {
	baseElement
	kind        string // "date_window" or "text"
	position    *Point
	text        string
	day         int // resolved day-of-month for date windows
	fontSize    float64
	fontPath    string
	textColor   RGBA
	background  *ColorSpec
	borderColor *ColorSpec
	padding     float64
	cornerRad   float64
}

func newOverlay(props map[string]any) (*Overlay, error) {
	base, err := newBaseElement("Overlay", props)
	if err != nil {
		return nil, err
	}
	o := &Overlay{baseElement: base}

	o.kind, err = optString(props, "type", "date_window")
	if err != nil {
		return nil, err
	}
	switch o.kind {
	case "date_window", "text":
	default:
		return nil, configErrorf("overlay type must be \"date_window\" or \"text\", got %q", o.kind)
	}

	if v, ok := props["position"]; ok && v != nil {
		p, pErr := toPoint(v)
		if pErr != nil {
			return nil, configErrorf("property \"position\": %v", pErr)
		}
		o.position = &p
	}

	o.text, err = optString(props, "text", "")
	if err != nil {
		return nil, err
	}

	dateStr, err := optString(props, "date", "")
	if err != nil {
		return nil, err
	}
	if dateStr != "" {
		t, parseErr := time.Parse("2006-01-02", dateStr)
		if parseErr != nil {
			return nil, configErrorf("property \"date\" must be YYYY-MM-DD, got %q", dateStr)
		}
		o.day = t.Day()
	} else {
		o.day = time.Now().Day()
	}

	o.fontSize, err = optFloat(props, "font_size", 14)
	if err != nil {
		return nil, err
	}
	if o.fontSize <= 0 {
		return nil, configErrorf("overlay font_size must be positive, got %g", o.fontSize)
	}
	o.fontPath, err = optString(props, "font_path", "")
	if err != nil {
		return nil, err
	}

	textColor, err := optColorSpec(props, "text_color", SolidSpec(Black))
	if err != nil {
		return nil, err
	}
	if textColor.IsGradient() {
		return nil, configErrorf("overlay text_color must be a solid color")
	}
	o.textColor = textColor.Solid

	if v, ok := props["background_color"]; ok && v != nil {
		spec, specErr := ParseColorSpec(v)
		if specErr != nil {
			return nil, specErr
		}
		o.background = &spec
	}
	if v, ok := props["border_color"]; ok && v != nil {
		spec, specErr := ParseColorSpec(v)
		if specErr != nil {
			return nil, specErr
		}
		o.borderColor = &spec
	}

	o.padding, err = optFloat(props, "padding", 4)
	if err != nil {
		return nil, err
	}
	if o.padding < 0 {
		return nil, configErrorf("overlay padding must be non-negative, got %g", o.padding)
	}

	o.cornerRad, err = optFloat(props, "corner_radius", 0)
	if err != nil {
		return nil, err
	}
	if o.cornerRad < 0 {
		return nil, configErrorf("overlay corner_radius must be non-negative, got %g", o.cornerRad)
	}

	return o, nil
}

// ZOrder implements Element. Overlays draw under the hands.
func (o *Overlay) ZOrder() int { return zOverlay }

// Draw implements Element.
func (o *Overlay) Draw(c *Canvas, frame Frame) error {
	label := o.text
	if o.kind == "date_window" {
		label = strconv.Itoa(o.day)
	}
	if label == "" {
		return nil
	}

	var src *fontutil.Source
	if o.fontPath != "" {
		loaded, err := fontutil.Load(o.fontPath)
		if err != nil {
			return &ResourceError{Path: o.fontPath, Err: err}
		}
		src = loaded
	} else {
		src = fontutil.Default()
	}
	face, err := src.Face(o.fontSize * frame.Scale)
	if err != nil {
		return &ResourceError{Path: o.fontPath, Err: err}
	}

	var pos Point
	if o.position != nil {
		pos = o.position.Mul(frame.Scale)
	} else {
		center, radius := o.anchor.resolve(frame)
		pos = center.Add(Pt(0, 0.3*radius))
	}

	w, h, _ := fontutil.Measure(face, label)
	pad := o.padding * frame.Scale
	window := Rect{
		X: pos.X - w/2 - pad,
		Y: pos.Y - h/2 - pad,
		W: w + 2*pad,
		H: h + 2*pad,
	}

	if o.background != nil {
		brush := o.background.Resolve(window, false)
		c.FillRoundedRect(window, o.cornerRad*frame.Scale, brush)
	}
	if o.borderColor != nil {
		brush := o.borderColor.Resolve(window, false)
		width := math.Max(1, frame.Scale)
		c.StrokeRoundedRect(window, o.cornerRad*frame.Scale, width, brush)
	}

	fontutil.DrawString(c.Pixmap(), label, face, o.textColor.Color(), pos.X-w/2, pos.Y-h/2)
	return nil
}
