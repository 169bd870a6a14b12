package dial

import (
	"context"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Clock is a declarative clock face: a canvas description plus an
// ordered set of elements. Rendering composites the elements by their
// fixed z-order onto a supersampled working canvas, downsamples, and
// applies post-processing. The finished image is cached until the
// element set changes.
type Clock struct {
	width, height int
	background    ColorSpec
	backgroundRaw any
	antialias     bool
	scaleFactor   int
	elements      []Element
	post          PostProcess

	rendered image.Image
}

// NewClock creates an empty clock canvas. Dimensions must be positive;
// by default the background is opaque white and rendering supersamples
// at factor 2.
func NewClock(width, height int, opts ...Option) (*Clock, error) {
	if width <= 0 || height <= 0 {
		return nil, configErrorf("canvas size must be positive, got %dx%d", width, height)
	}
	c := &Clock{
		width:       width,
		height:      height,
		background:  SolidSpec(White),
		antialias:   true,
		scaleFactor: 2,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Width returns the target canvas width in pixels.
func (c *Clock) Width() int { return c.width }

// Height returns the target canvas height in pixels.
func (c *Clock) Height() int { return c.height }

// AddElement appends an element and invalidates any cached render.
func (c *Clock) AddElement(e Element) {
	c.elements = append(c.elements, e)
	c.rendered = nil
}

// ClearElements removes all elements and invalidates any cached render.
func (c *Clock) ClearElements() {
	c.elements = nil
	c.rendered = nil
}

// Elements returns the clock's elements in insertion order.
func (c *Clock) Elements() []Element {
	return c.elements
}

// Render composites the clock and returns the finished image. Elements
// draw in z-order; elements with equal z-order keep their insertion
// order. Any element failure aborts the render with that element's
// error. The result is cached until the element set changes.
func (c *Clock) Render() (image.Image, error) {
	if c.rendered != nil {
		return c.rendered, nil
	}

	scale := c.scaleFactor
	if !c.antialias {
		scale = 1
	}
	ww, wh := c.width*scale, c.height*scale

	Logger().LogAttrs(context.Background(), slog.LevelDebug, "render start",
		slog.Int("width", c.width), slog.Int("height", c.height), slog.Int("scale", scale),
		slog.Int("elements", len(c.elements)))

	pm := NewPixmap(ww, wh)
	canvas := NewCanvas(pm)

	full := Rect{W: float64(ww), H: float64(wh)}
	canvas.FillRect(full, c.background.Resolve(full, false))

	frame := Frame{
		Center: Pt(float64(ww)/2, float64(wh)/2),
		Radius: float64(min(ww, wh)) / 2,
		Scale:  float64(scale),
	}

	ordered := make([]Element, len(c.elements))
	copy(ordered, c.elements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZOrder() < ordered[j].ZOrder()
	})

	for _, e := range ordered {
		if err := e.Draw(canvas, frame); err != nil {
			return nil, err
		}
	}

	pm = downsample(pm, scale)
	pm = c.post.apply(pm)

	c.rendered = pm.ToImage()
	Logger().LogAttrs(context.Background(), slog.LevelInfo, "render done",
		slog.Int("width", pm.Width()), slog.Int("height", pm.Height()))
	return c.rendered, nil
}

// Save renders the clock (or reuses the cached render) and writes it to
// path. The format follows the file extension: .png (the default for
// unknown extensions), .jpg/.jpeg, .gif, .bmp, and .tif/.tiff. JPEG has
// no alpha channel, so transparent regions are matted onto white.
func (c *Clock) Save(path string) error {
	img, err := c.Render()
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return &ResourceError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, matteWhite(img), &jpeg.Options{Quality: 95})
	case ".gif":
		err = gif.Encode(f, img, nil)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return &ResourceError{Path: path, Err: err}
	}
	return nil
}

// matteWhite composites an image over an opaque white background for
// formats without an alpha channel.
func matteWhite(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := FromColor(img.At(x, y))
			blended := RGBA{
				R: c.R*c.A + (1 - c.A),
				G: c.G*c.A + (1 - c.A),
				B: c.B*c.A + (1 - c.A),
				A: 1,
			}
			out.Set(x, y, blended.Color())
		}
	}
	return out
}
