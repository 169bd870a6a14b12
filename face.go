package dial

import (
	"image"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	// Decoders for background images referenced by image_path.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Face is the clock background element: a filled circle, square, or
// full-canvas rectangle, optionally bordered, optionally backed by an
// image instead of a color fill.
type Face struct {
	baseElement
	shape       string
	fill        ColorSpec
	borderColor *ColorSpec
	borderWidth float64
	imagePath   string
}

func newFace(props map[string]any) (*Face, error) {
	base, err := newBaseElement("Face", props)
	if err != nil {
		return nil, err
	}
	f := &Face{baseElement: base}

	f.shape, err = optString(props, "shape", "circle")
	if err != nil {
		return nil, err
	}
	switch f.shape {
	case "circle", "square", "rectangle":
	default:
		return nil, configErrorf("face shape must be \"circle\", \"square\", or \"rectangle\", got %q", f.shape)
	}

	f.fill, err = optColorSpec(props, "color", SolidSpec(White))
	if err != nil {
		return nil, err
	}

	f.borderWidth, err = optFloat(props, "border_width", 0)
	if err != nil {
		return nil, err
	}
	if f.borderWidth < 0 {
		return nil, configErrorf("face border_width must be non-negative, got %g", f.borderWidth)
	}

	if v, ok := props["border_color"]; ok && v != nil {
		spec, specErr := ParseColorSpec(v)
		if specErr != nil {
			return nil, specErr
		}
		f.borderColor = &spec
	}

	f.imagePath, err = optString(props, "image_path", "")
	if err != nil {
		return nil, err
	}

	return f, nil
}

// ZOrder implements Element. The face draws behind everything else.
func (f *Face) ZOrder() int { return zFace }

// Draw implements Element.
func (f *Face) Draw(c *Canvas, frame Frame) error {
	center, radius := f.anchor.resolve(frame)

	var bounds Rect
	if f.shape == "rectangle" {
		bounds = Rect{W: float64(c.Pixmap().Width()), H: float64(c.Pixmap().Height())}
	} else {
		bounds = Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius}
	}
	circular := f.shape == "circle"

	if f.imagePath != "" {
		if err := f.drawImageBackground(c, bounds, circular); err != nil {
			return err
		}
	} else {
		brush := f.fill.Resolve(bounds, circular)
		if circular {
			c.FillCircle(center, radius, brush)
		} else {
			c.FillRect(bounds, brush)
		}
	}

	if f.borderWidth > 0 && f.borderColor != nil {
		width := f.borderWidth * frame.Scale
		brush := f.borderColor.Resolve(bounds, circular)
		if circular {
			c.StrokeCircle(center, radius, width, brush)
		} else {
			c.StrokeRect(bounds, width, brush)
		}
	}

	return nil
}

// drawImageBackground loads the background image, scales it to the face
// bounds, and pastes it (circle-masked for circular faces). A missing or
// undecodable file is a ResourceError; there is no fallback fill.
func (f *Face) drawImageBackground(c *Canvas, bounds Rect, circular bool) error {
	file, err := os.Open(f.imagePath) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return &ResourceError{Path: f.imagePath, Err: err}
	}
	defer func() {
		_ = file.Close()
	}()

	src, _, err := image.Decode(file)
	if err != nil {
		return &ResourceError{Path: f.imagePath, Err: err}
	}

	w := int(math.Round(bounds.W))
	h := int(math.Round(bounds.H))
	if circular {
		// Square crop target so the circular mask is centered.
		if w < h {
			h = w
		} else {
			w = h
		}
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	atX := int(math.Round(bounds.X + (bounds.W-float64(w))/2))
	atY := int(math.Round(bounds.Y + (bounds.H-float64(h))/2))
	c.Paste(scaled, atX, atY, circular)
	return nil
}
