package dial

import (
	"encoding/json"
	"io"
	"os"
)

// ElementConfig is the serialized form of one element: its type tag and
// the property map its constructor validates.
type ElementConfig struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// PostProcessConfig is the serialized form of the post-processing step.
type PostProcessConfig struct {
	FlipHorizontal bool    `json:"flip_horizontal,omitempty"`
	Rotate         float64 `json:"rotate,omitempty"`
	Transpose      bool    `json:"transpose,omitempty"`
}

// Config is the complete serialized clock description.
type Config struct {
	Width           int                `json:"width"`
	Height          int                `json:"height"`
	BackgroundColor any                `json:"background_color,omitempty"`
	Antialias       *bool              `json:"antialias,omitempty"`
	ScaleFactor     int                `json:"scale_factor,omitempty"`
	Elements        []ElementConfig    `json:"elements"`
	PostProcessing  *PostProcessConfig `json:"post_processing,omitempty"`
}

// DecodeConfig reads a JSON clock description. Malformed JSON fails
// with ConfigError; the element properties are validated later, by
// FromConfig.
func DecodeConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, configErrorf("decode config: %v", err)
	}
	return cfg, nil
}

// FromConfig builds a renderable Clock from a decoded description.
// Every element constructs and validates here, so a bad property fails
// before any rendering starts.
func FromConfig(cfg Config) (*Clock, error) {
	opts := []Option{}
	if cfg.BackgroundColor != nil {
		opts = append(opts, WithBackground(cfg.BackgroundColor))
	}
	if cfg.Antialias != nil {
		opts = append(opts, WithAntialias(*cfg.Antialias))
	}
	if cfg.ScaleFactor != 0 {
		opts = append(opts, WithScaleFactor(cfg.ScaleFactor))
	}
	if cfg.PostProcessing != nil {
		opts = append(opts, WithPostProcess(PostProcess{
			FlipHorizontal: cfg.PostProcessing.FlipHorizontal,
			Rotate:         cfg.PostProcessing.Rotate,
			Transpose:      cfg.PostProcessing.Transpose,
		}))
	}

	c, err := NewClock(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return nil, err
	}

	for _, ec := range cfg.Elements {
		e, err := NewElement(ec.Type, ec.Properties)
		if err != nil {
			return nil, err
		}
		c.AddElement(e)
	}
	return c, nil
}

// FromConfigFile loads a JSON description from disk and builds the
// Clock. A missing or unreadable file is a ResourceError.
func FromConfigFile(path string) (*Clock, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

// Config reconstructs the serialized description of the clock. Elements
// keep the type tag and property map they were built from, so a decoded
// configuration survives the round trip unchanged.
func (c *Clock) Config() Config {
	cfg := Config{
		Width:           c.width,
		Height:          c.height,
		BackgroundColor: c.backgroundRaw,
		ScaleFactor:     c.scaleFactor,
	}
	antialias := c.antialias
	cfg.Antialias = &antialias

	for _, e := range c.elements {
		cfg.Elements = append(cfg.Elements, ElementConfig{
			Type:       e.Type(),
			Properties: e.Properties(),
		})
	}

	if c.post != (PostProcess{}) {
		cfg.PostProcessing = &PostProcessConfig{
			FlipHorizontal: c.post.FlipHorizontal,
			Rotate:         c.post.Rotate,
			Transpose:      c.post.Transpose,
		}
	}
	return cfg
}
