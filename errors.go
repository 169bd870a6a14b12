package dial

import "fmt"

// ConfigError reports a malformed declarative description: an unknown
// element type, an unrecognized enumerated property value, a malformed
// color or gradient spec, a bad time string, or an out-of-range numeric
// property. It is always surfaced to the caller, never silently recovered.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "dial: " + e.Msg
}

// configErrorf builds a ConfigError with fmt.Sprintf formatting.
func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// ResourceError reports a missing or unreadable external resource, such as
// a font file or a background image. It carries the offending path; no
// implicit fallback substitution occurs.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("dial: resource %q unavailable", e.Path)
	}
	return fmt.Sprintf("dial: resource %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResourceError) Unwrap() error {
	return e.Err
}
