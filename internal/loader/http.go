package loader

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	pkgloader "github.com/goliatone/go-articlegen/pkg/loader"
)

// templateMediaTypes are the response types accepted for remote skeletons
// and stylesheets.
var templateMediaTypes = map[string]bool{
	"text/html": true,
	"text/css":  true,
}

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration, limit int64) ([]byte, error) {
	if client == nil {
		return nil, errors.New("template loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("template loader: url is required")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html, text/css")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("template loader: %s: unexpected status %s", url, resp.Status)
	}
	if err := checkContentType(resp.Header.Get("Content-Type")); err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}

	data, err := readText(resp.Body, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return data, nil
}

// checkContentType accepts HTML and CSS responses. A declared charset other
// than UTF-8 is rejected since bodies are spliced into a UTF-8 document.
func checkContentType(header string) error {
	mediaType, params, err := mime.ParseMediaType(header)
	if err != nil || !templateMediaTypes[mediaType] {
		return fmt.Errorf("%w %q", pkgloader.ErrContentType, header)
	}
	if cs, ok := params["charset"]; ok && !strings.EqualFold(cs, "utf-8") {
		return fmt.Errorf("%w: charset %q", pkgloader.ErrInvalidEncoding, cs)
	}
	return nil
}
