package editor

import (
	"log"
	"strings"

	"github.com/goliatone/go-articlegen/pkg/assemble"
	"github.com/goliatone/go-articlegen/pkg/fields"
	"github.com/goliatone/go-articlegen/pkg/registry"
	"github.com/goliatone/go-articlegen/pkg/source"
)

// DefaultAppTitle prefixes the title label.
const DefaultAppTitle = "Generador de Artículos Científicos"

// Option configures a Session.
type Option func(*Session)

// WithRegistry replaces the built-in template registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Session) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithAssembler replaces the default document assembler.
func WithAssembler(a *assemble.Assembler) Option {
	return func(s *Session) {
		if a != nil {
			s.assembler = a
		}
	}
}

// WithFieldMap replaces the default field map.
func WithFieldMap(m fields.Map) Option {
	return func(s *Session) {
		if len(m) > 0 {
			s.fieldMap = m
		}
	}
}

// WithResolver controls how registry locations turn into loader sources.
// The default is source.Parse.
func WithResolver(fn func(location string) (source.Source, error)) Option {
	return func(s *Session) {
		if fn != nil {
			s.resolve = fn
		}
	}
}

// WithSanitizer runs fn over HTML field values before substitution.
func WithSanitizer(fn func(string) string) Option {
	return func(s *Session) {
		s.sanitize = fn
	}
}

// WithLogger routes session logs to logger. Sessions are silent by default.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAppTitle overrides the title label prefix.
func WithAppTitle(title string) Option {
	return func(s *Session) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			s.appTitle = trimmed
		}
	}
}

// WithVariant selects the initial theme variant ("light" or "dark").
func WithVariant(variant string) Option {
	return func(s *Session) {
		s.variant = strings.TrimSpace(variant)
	}
}

// WithPreviewListener registers fn to receive every regenerated preview.
func WithPreviewListener(fn func(doc []byte)) Option {
	return func(s *Session) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}

// LoadOption tunes a single LoadTemplate call.
type LoadOption func(*loadConfig)

type loadConfig struct {
	refresh bool
}

// RefreshPreview regenerates the preview after a successful load when the
// session is previewing.
func RefreshPreview() LoadOption {
	return func(cfg *loadConfig) {
		cfg.refresh = true
	}
}
