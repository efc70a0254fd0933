package articlegen

import (
	internalloader "github.com/goliatone/go-articlegen/internal/loader"
	pkgloader "github.com/goliatone/go-articlegen/pkg/loader"
)

// NewLoader constructs a template loader using the internal implementation
// while keeping the concrete type hidden from consumers. Without a
// WithFileSystem option the embedded templates are used.
func NewLoader(options ...pkgloader.Option) pkgloader.Loader {
	cfg := pkgloader.NewOptions(options...)
	if cfg.FileSystem == nil {
		cfg.FileSystem = EmbeddedTemplates()
	}
	return internalloader.New(cfg)
}
