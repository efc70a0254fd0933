// Package loader exposes the contract for fetching template resources. The
// implementation lives under internal/loader; construction helpers live in
// the top-level articlegen package.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-articlegen/pkg/source"
)

// DefaultMaxBytes caps a single template resource when no limit is set.
const DefaultMaxBytes int64 = 4 << 20

var (
	// ErrInvalidEncoding is returned for resources that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("template loader: resource is not valid UTF-8")
	// ErrTooLarge is returned when a resource exceeds the configured limit.
	ErrTooLarge = errors.New("template loader: resource too large")
	// ErrContentType is returned when an HTTP response is neither HTML nor
	// CSS.
	ErrContentType = errors.New("template loader: unexpected content type")
)

// CheckText reports whether data can be used as template text. Skeletons and
// stylesheets end up verbatim in the exported UTF-8 document.
func CheckText(data []byte) error {
	if !utf8.Valid(data) {
		return ErrInvalidEncoding
	}
	return nil
}

// Loader fetches template resources from different sources (filesystem,
// fs.FS, HTTP).
type Loader interface {
	Load(ctx context.Context, src source.Source) ([]byte, error)
}

// Func adapts a plain function into a Loader. Handy for tests and for callers
// that keep templates in memory.
type Func func(ctx context.Context, src source.Source) ([]byte, error)

// Load implements Loader.
func (f Func) Load(ctx context.Context, src source.Source) ([]byte, error) {
	return f(ctx, src)
}

// Options configures how a Loader resolves sources. Loading stays offline
// first: HTTP is only used when a client is injected or the fallback is
// enabled explicitly.
type Options struct {
	// FileSystem resolves fs sources (registry relative paths). Nil disables
	// fs sources.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means HTTP sources are disabled unless AllowHTTPFallback
	// is true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles a default HTTP client when none is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration

	// MaxBytes caps the size of one resource. Zero means DefaultMaxBytes.
	MaxBytes int64
}

// Option mutates Options prior to construction.
type Option func(*Options)

// WithFileSystem injects an fs.FS implementation for relative paths.
func WithFileSystem(files fs.FS) Option {
	return func(opts *Options) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote templates.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading with a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithMaxBytes caps the size of each fetched resource.
func WithMaxBytes(n int64) Option {
	return func(opts *Options) {
		opts.MaxBytes = n
	}
}

// Limit returns the effective resource size cap.
func (o Options) Limit() int64 {
	if o.MaxBytes > 0 {
		return o.MaxBytes
	}
	return DefaultMaxBytes
}

// NewOptions applies a set of Option values and returns the resulting
// configuration.
func NewOptions(options ...Option) Options {
	cfg := Options{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
