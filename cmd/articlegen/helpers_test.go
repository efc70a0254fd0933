package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-articlegen/internal/config"
	"github.com/goliatone/go-articlegen/pkg/assemble"
)

func TestParseAssembleMode(t *testing.T) {
	cases := map[string]assemble.Mode{
		"":        assemble.ModeExport,
		"edit":    assemble.ModeEdit,
		"preview": assemble.ModePreview,
		"EXPORT":  assemble.ModeExport,
	}
	for raw, want := range cases {
		got, err := parseAssembleMode(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %v, got %v", raw, want, got)
		}
	}
	if _, err := parseAssembleMode("print"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestExportDir(t *testing.T) {
	if got := exportDir("out", "cfg"); got != "out" {
		t.Fatalf("flag should win, got %q", got)
	}
	if got := exportDir("", "cfg"); got != "cfg" {
		t.Fatalf("config should apply, got %q", got)
	}
	if got := exportDir("", ""); got != "." {
		t.Fatalf("expected current dir, got %q", got)
	}
}

func TestStaticTemplatesFS(t *testing.T) {
	embedded := staticTemplatesFS(config.DefaultConfig())
	if _, err := fs.Stat(embedded, "template1.css"); err != nil {
		t.Fatalf("embedded templates: %v", err)
	}

	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "templates"), 0o755)
	os.WriteFile(filepath.Join(dir, "templates", "custom.css"), []byte("body{}"), 0o644)

	cfg := config.DefaultConfig()
	cfg.TemplatesDir = dir
	if _, err := fs.Stat(staticTemplatesFS(cfg), "custom.css"); err != nil {
		t.Fatalf("templates_dir: %v", err)
	}
}

func TestNewSessionFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	session, err := newSession(cfg, commandLogger())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.LoadTemplate(t.Context(), templateID("", cfg)); err != nil {
		t.Fatalf("load default template: %v", err)
	}
	if !strings.HasSuffix(session.TitleLabel(), "Diseño Académico Clásico") {
		t.Fatalf("unexpected title label %q", session.TitleLabel())
	}
}

func TestNewSessionWithWrapperDir(t *testing.T) {
	dir := t.TempDir()
	wrapper := `<html><body><h6>{{ app_title }}</h6>{{ skeleton|safe }}</body></html>`
	if err := os.WriteFile(filepath.Join(dir, "document.tmpl"), []byte(wrapper), 0o644); err != nil {
		t.Fatalf("write wrapper: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.WrapperDir = dir
	cfg.AppTitle = "Revista"
	session, err := newSession(cfg, commandLogger())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.LoadTemplate(t.Context(), templateID("", cfg)); err != nil {
		t.Fatalf("load default template: %v", err)
	}
	doc, err := session.EditView(t.Context())
	if err != nil {
		t.Fatalf("edit view: %v", err)
	}
	if !strings.HasPrefix(string(doc), "<html><body><h6>Revista</h6>") {
		t.Fatalf("custom wrapper not applied: %.120s", doc)
	}
}
