package dial

// Option configures a Clock at construction.
type Option func(*Clock) error

// WithBackground sets the canvas background. The value takes any form
// ParseColorSpec accepts: a CSS name or hex token, an RGBA, a ColorSpec,
// or a gradient descriptor mapping. The default background is opaque
// white; pass "transparent" for an alpha canvas.
func WithBackground(v any) Option {
	return func(c *Clock) error {
		spec, err := ParseColorSpec(v)
		if err != nil {
			return err
		}
		c.background = spec
		c.backgroundRaw = v
		return nil
	}
}

// WithAntialias toggles supersampled rendering. Antialiasing is on by
// default; turning it off renders at the target resolution directly.
func WithAntialias(on bool) Option {
	return func(c *Clock) error {
		c.antialias = on
		return nil
	}
}

// WithScaleFactor sets the supersampling factor used when antialiasing
// is on. The default is 2; factors below 1 are rejected.
func WithScaleFactor(factor int) Option {
	return func(c *Clock) error {
		if factor < 1 {
			return configErrorf("scale factor must be at least 1, got %d", factor)
		}
		c.scaleFactor = factor
		return nil
	}
}

// WithPostProcess sets the whole-image transforms applied after
// compositing.
func WithPostProcess(pp PostProcess) Option {
	return func(c *Clock) error {
		c.post = pp
		return nil
	}
}

// WithSize overrides the canvas dimensions.
func WithSize(width, height int) Option {
	return func(c *Clock) error {
		if width <= 0 || height <= 0 {
			return configErrorf("canvas size must be positive, got %dx%d", width, height)
		}
		c.width = width
		c.height = height
		return nil
	}
}
