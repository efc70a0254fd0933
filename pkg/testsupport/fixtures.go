package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-articlegen/pkg/fields"
	pkgloader "github.com/goliatone/go-articlegen/pkg/loader"
	"github.com/goliatone/go-articlegen/pkg/source"
)

// LoadDocument reads a fields document fixture (JSON or YAML). Testing
// helpers fail the test on error to keep call sites short.
func LoadDocument(t *testing.T, path string) fields.Document {
	t.Helper()

	doc, err := fields.LoadDocument(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadRegions reads a fields document and resolves it against the default
// field map.
func LoadRegions(t *testing.T, path string) fields.MapRegions {
	t.Helper()

	regions, err := LoadDocument(t, path).Resolve(fields.Default())
	if err != nil {
		t.Fatalf("resolve regions: %v", err)
	}
	return regions
}

// Skeleton renders one contenteditable div per field, each carrying its
// placeholder. It stands in for a real template skeleton in tests.
func Skeleton(m fields.Map) string {
	var b strings.Builder
	b.WriteString(`<main class="article">`)
	for _, f := range m {
		fmt.Fprintf(&b, `<div id="%s" contenteditable="true">%s</div>`, f.Region, f.Placeholder())
	}
	b.WriteString(`</main>`)
	return b.String()
}

// MapLoader serves sources from memory, keyed by source location. Missing
// entries produce an error.
func MapLoader(files map[string]string) pkgloader.Loader {
	return pkgloader.Func(func(ctx context.Context, src source.Source) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, ok := files[src.Location()]
		if !ok {
			return nil, fmt.Errorf("testsupport: no fixture for %s", src.Location())
		}
		return []byte(data), nil
	})
}

// WriteGolden writes arbitrary data as JSON to a golden file when
// UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
