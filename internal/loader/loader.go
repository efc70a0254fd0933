package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgloader "github.com/goliatone/go-articlegen/pkg/loader"
	"github.com/goliatone/go-articlegen/pkg/source"
)

// Loader implements pkgloader.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	limit     int64
}

var _ pkgloader.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgloader.Options) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		limit:     options.Limit(),
	}
}

// Load fetches the raw bytes behind src.
func (l *Loader) Load(ctx context.Context, src source.Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("template loader: source is nil")
	}

	switch src.Kind() {
	case source.KindFile:
		return loadFile(ctx, src.Location(), l.limit)
	case source.KindFS:
		return loadFromFS(ctx, l.fs, src.Location(), l.limit)
	case source.KindURL:
		if !l.allowHTTP {
			return nil, errors.New("template loader: http support disabled")
		}
		return loadHTTP(ctx, l.http, src.Location(), l.timeout, l.limit)
	default:
		return nil, errors.New("template loader: unsupported source kind")
	}
}
