package loader

import (
	"fmt"
	"io"

	pkgloader "github.com/goliatone/go-articlegen/pkg/loader"
)

// readText reads at most limit bytes of template text from r. Oversized or
// non UTF-8 resources are rejected whole.
func readText(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", pkgloader.ErrTooLarge, limit)
	}
	if err := pkgloader.CheckText(data); err != nil {
		return nil, err
	}
	return data, nil
}
