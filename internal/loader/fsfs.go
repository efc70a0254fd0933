package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// loadFromFS reads registry relative paths such as
// "templates/template1.css" from the configured filesystem.
func loadFromFS(ctx context.Context, files fs.FS, name string, limit int64) ([]byte, error) {
	if files == nil {
		return nil, errors.New("template loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("template loader: fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := readText(f, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return data, nil
}
