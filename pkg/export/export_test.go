package export_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-articlegen/pkg/export"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World! 2024", "hello__world__2024.html"},
		{"  Título con acentos  ", "t_tulo_con_acentos.html"},
		{"ABC", "abc.html"},
		{strings.Repeat("a", 50), strings.Repeat("a", 40) + ".html"},
		{strings.Repeat("é", 45), strings.Repeat("_", 40) + ".html"},
		{strings.Repeat("a", 39) + "😀bc", strings.Repeat("a", 39) + "_.html"},
		{"😀😀 Ríos", "___r_os.html"},
	}
	for _, tt := range tests {
		got, err := export.Filename(tt.title)
		if err != nil {
			t.Fatalf("Filename(%q): %v", tt.title, err)
		}
		if got != tt.want {
			t.Fatalf("Filename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestFilename_Idempotent(t *testing.T) {
	for _, title := range []string{"Hello, World! 2024", "Estudio de caso: ríos", strings.Repeat("x-", 30)} {
		first, err := export.Filename(title)
		if err != nil {
			t.Fatalf("Filename(%q): %v", title, err)
		}
		again, err := export.Filename(title)
		if err != nil || again != first {
			t.Fatalf("non-deterministic result for %q: %q vs %q", title, first, again)
		}
		stem := strings.TrimSuffix(first, export.Extension)
		fromStem, err := export.Filename(stem)
		if err != nil {
			t.Fatalf("Filename(%q): %v", stem, err)
		}
		if fromStem != first {
			t.Fatalf("stem %q maps to %q, want %q", stem, fromStem, first)
		}
	}
}

func TestFilename_RequiresTitle(t *testing.T) {
	for _, title := range []string{"", "   \n\t"} {
		if _, err := export.Filename(title); !errors.Is(err, export.ErrTitleRequired) {
			t.Fatalf("Filename(%q) error = %v, want ErrTitleRequired", title, err)
		}
	}
}

func TestArtifact_Write(t *testing.T) {
	artifact, err := export.New("Hello, World! 2024", []byte("<html></html>"))
	if err != nil {
		t.Fatalf("new artifact: %v", err)
	}

	var buf bytes.Buffer
	if _, err := artifact.WriteTo(&buf); err != nil {
		t.Fatalf("write to: %v", err)
	}
	if buf.String() != "<html></html>" {
		t.Fatalf("unexpected content %q", buf.String())
	}

	dir := filepath.Join(t.TempDir(), "out")
	path, err := artifact.WriteFile(dir)
	if err != nil {
		t.Fatalf("write file: %v", err)
	}
	if filepath.Base(path) != "hello__world__2024.html" {
		t.Fatalf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Fatalf("unexpected file content %q", data)
	}
}
