// Package export derives download names for assembled documents and writes
// them out as standalone HTML files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxStemRunes bounds how much of the title feeds the filename.
	MaxStemRunes = 40
	// Extension is appended to every derived filename.
	Extension = ".html"
	// ContentType is served alongside exported documents.
	ContentType = "text/html; charset=utf-8"
)

// ErrTitleRequired is returned when the article title has no text.
var ErrTitleRequired = errors.New("export: article title is required")

// Filename derives the download name for title: the first 40 runes, each
// rune outside [A-Za-z0-9] replaced with '_', lowercased, with ".html"
// appended. The rule is deterministic and maps its own stem onto itself.
func Filename(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}

	runes := []rune(title)
	if len(runes) > MaxStemRunes {
		runes = runes[:MaxStemRunes]
	}

	var b strings.Builder
	b.Grow(len(runes) + len(Extension))
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	b.WriteString(Extension)
	return b.String(), nil
}

// Artifact is an exported document ready to be written or served.
type Artifact struct {
	Filename string
	Content  []byte
}

// New builds an artifact named after title.
func New(title string, content []byte) (Artifact, error) {
	name, err := Filename(title)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Filename: name, Content: content}, nil
}

// WriteTo implements io.WriterTo.
func (a Artifact) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.Content)
	return int64(n), err
}

// WriteFile stores the artifact inside dir and returns the written path.
// An empty dir means the working directory.
func (a Artifact) WriteFile(dir string) (string, error) {
	if a.Filename == "" {
		return "", errors.New("export: artifact has no filename")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("export: create %s: %w", dir, err)
		}
	}
	path := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(path, a.Content, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}
