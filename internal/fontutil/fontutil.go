// Package fontutil loads fonts and renders text for the dial pipeline.
// It builds on golang.org/x/image/font with the embedded Go Regular face
// as the default; simple left-to-right glyph placement covers the digits
// and Roman numerals a clock face renders.
package fontutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Source is a parsed font that produces sized faces. Faces are cached
// per size; a Source is safe for concurrent use.
type Source struct {
	fnt *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

var (
	defaultOnce sync.Once
	defaultSrc  *Source
)

// Default returns the embedded Go Regular source, parsed once.
func Default() *Source {
	defaultOnce.Do(func() {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// The embedded font is a build-time constant; failing to
			// parse it means the binary itself is broken.
			panic("fontutil: parse embedded font: " + err.Error())
		}
		defaultSrc = &Source{fnt: fnt}
	})
	return defaultSrc
}

// Load reads and parses a font file. The caller decides how to surface
// a missing or malformed file.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Source{fnt: fnt}, nil
}

// Face returns a face for the given pixel size, creating and caching it
// on first use.
func (s *Source) Face(size float64) (font.Face, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.faces[size]; ok {
		return f, nil
	}

	f, err := opentype.NewFace(s.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("size %g: %w", size, err)
	}

	if s.faces == nil {
		s.faces = make(map[float64]font.Face)
	}
	s.faces[size] = f
	logger().LogAttrs(context.Background(), slog.LevelDebug, "face cached",
		slog.Float64("size", size))
	return f, nil
}

// loggerPtr stores the active logger, swapped atomically by SetLogger.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the package logger. The parent dial package
// propagates its logger here; by default fontutil is silent.
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return slog.New(nopHandler{})
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
