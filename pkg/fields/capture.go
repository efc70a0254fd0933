package fields

import (
	"html"
	"strings"
)

// Regions exposes the live content of editable regions.
type Regions interface {
	// Region returns the HTML content of id and whether it exists.
	Region(id string) (string, bool)
}

// MapRegions is an in-memory Regions implementation.
type MapRegions map[string]string

// Region implements Regions.
func (m MapRegions) Region(id string) (string, bool) {
	v, ok := m[id]
	return v, ok
}

// Values maps token names onto substitution values.
type Values map[string]string

// CaptureOption customises Capture.
type CaptureOption func(*captureConfig)

type captureConfig struct {
	sanitize func(string) string
}

// WithSanitizer runs fn over every HTML-format value.
func WithSanitizer(fn func(string) string) CaptureOption {
	return func(cfg *captureConfig) {
		cfg.sanitize = fn
	}
}

// Capture reads every field of m out of regions. Missing regions yield an
// empty string. HTML fields keep their trimmed markup; text fields keep the
// trimmed text content, escaped so it can be placed back into HTML.
func Capture(m Map, regions Regions, options ...CaptureOption) Values {
	cfg := captureConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	values := make(Values, len(m))
	for _, f := range m {
		var raw string
		if regions != nil {
			raw, _ = regions.Region(f.Region)
		}

		switch f.Format {
		case FormatText:
			values[f.Token] = html.EscapeString(strings.TrimSpace(TextContent(raw)))
		default:
			value := strings.TrimSpace(raw)
			if cfg.sanitize != nil && value != "" {
				value = strings.TrimSpace(cfg.sanitize(value))
			}
			values[f.Token] = value
		}
	}
	return values
}
