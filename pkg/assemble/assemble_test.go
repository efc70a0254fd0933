package assemble_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-articlegen/pkg/assemble"
	"github.com/goliatone/go-articlegen/pkg/fields"
	"github.com/goliatone/go-articlegen/pkg/testsupport"
)

func newAssembler(t *testing.T) *assemble.Assembler {
	t.Helper()
	a, err := assemble.New()
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	return a
}

func TestAssemble_EmptyRegionsLeaveNoTokens(t *testing.T) {
	m := fields.Default()
	a := newAssembler(t)

	values := fields.Capture(m, fields.MapRegions{})
	for _, mode := range []assemble.Mode{assemble.ModeEdit, assemble.ModePreview, assemble.ModeExport} {
		out, err := a.Assemble(context.Background(), assemble.Request{
			Template: assemble.Template{HTML: testsupport.Skeleton(m), CSS: "body{margin:0}"},
			Values:   values,
			Mode:     mode,
		})
		if err != nil {
			t.Fatalf("%s: assemble: %v", mode, err)
		}
		if left := assemble.FindTokens(string(out), m.Tokens()); len(left) > 0 {
			t.Fatalf("%s: tokens left in output: %v", mode, left)
		}
		if strings.Contains(string(out), "{{") {
			t.Fatalf("%s: unexpected placeholder text in %s", mode, out)
		}
	}
}

func TestAssemble_FillsValuesAndWrapper(t *testing.T) {
	m := fields.Default()
	a := newAssembler(t)

	values := fields.Capture(m, fields.MapRegions{
		fields.RegionTitle: "<b>Hello &amp; World</b>",
		fields.RegionBody:  "<p>Body text</p>",
		"meta-doi":         "<span>10.1000/xyz</span>",
	})

	out, err := a.Assemble(context.Background(), assemble.Request{
		Template:  assemble.Template{HTML: testsupport.Skeleton(m), CSS: ".title{color:red}"},
		Values:    values,
		Mode:      assemble.ModeEdit,
		BodyClass: "dark-mode",
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="es">`,
		`<meta charset="UTF-8"`,
		"<title>Hello &amp; World</title>",
		"<style>.title{color:red}</style>",
		`<body class="dark-mode">`,
		`id="theme_claro"`,
		`id="theme_oscuro"`,
		`<div id="article-title" contenteditable="true"><b>Hello &amp; World</b></div>`,
		`<div id="article-body" contenteditable="true"><p>Body text</p></div>`,
		`<div id="meta-doi" contenteditable="true">10.1000/xyz</div>`,
		"localStorage",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestAssemble_ValuesAreNotRescanned(t *testing.T) {
	m := fields.Default()
	a := newAssembler(t)

	out, err := a.Assemble(context.Background(), assemble.Request{
		Template: assemble.Template{HTML: testsupport.Skeleton(m)},
		Values: fields.Values{
			fields.TokenBody:   "see {{NUMBER}}",
			fields.TokenNumber: "7",
		},
		Mode: assemble.ModeEdit,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, `<div id="article-body" contenteditable="true">see {{NUMBER}}</div>`) {
		t.Fatalf("value was rewritten: %s", doc)
	}
	if !strings.Contains(doc, `<div id="number" contenteditable="true">7</div>`) {
		t.Fatalf("number not substituted: %s", doc)
	}
}

func TestAssemble_UnknownTokensStayLiteral(t *testing.T) {
	a := newAssembler(t)
	out, err := a.Assemble(context.Background(), assemble.Request{
		Template: assemble.Template{HTML: `<p>{{ISSUE_VOLUME}}</p>`},
		Values:   fields.Values{},
		Mode:     assemble.ModeEdit,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(string(out), "<p>{{ISSUE_VOLUME}}</p>") {
		t.Fatalf("unknown token altered: %s", out)
	}
}

func TestAssemble_EditabilityByMode(t *testing.T) {
	m := fields.Default()
	a := newAssembler(t)

	tests := []struct {
		mode     assemble.Mode
		editable bool
	}{
		{assemble.ModeEdit, true},
		{assemble.ModePreview, false},
		{assemble.ModeExport, false},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			out, err := a.Assemble(context.Background(), assemble.Request{
				Template: assemble.Template{HTML: testsupport.Skeleton(m)},
				Values:   fields.Values{fields.TokenTitle: "Title"},
				Mode:     tt.mode,
			})
			if err != nil {
				t.Fatalf("assemble: %v", err)
			}
			got := strings.Contains(string(out), "contenteditable")
			if got != tt.editable {
				t.Fatalf("contenteditable present = %v, want %v", got, tt.editable)
			}
			if !strings.Contains(string(out), `id="article-title"`) {
				t.Fatalf("region markup lost: %s", out)
			}
		})
	}
}

func TestAssemble_Errors(t *testing.T) {
	a := newAssembler(t)

	_, err := a.Assemble(context.Background(), assemble.Request{})
	if !errors.Is(err, assemble.ErrNoSkeleton) {
		t.Fatalf("expected ErrNoSkeleton, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.Assemble(ctx, assemble.Request{Template: assemble.Template{HTML: "<p></p>"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAssemble_WithLanguage(t *testing.T) {
	a, err := assemble.New(assemble.WithLanguage("en"), assemble.WithThemeScript("/* noop */"))
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	out, err := a.Assemble(context.Background(), assemble.Request{
		Template: assemble.Template{HTML: "<p>x</p>"},
		Mode:     assemble.ModeEdit,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(string(out), `<html lang="en">`) {
		t.Fatalf("language not applied: %s", out)
	}
	if !strings.Contains(string(out), "<script>/* noop */</script>") {
		t.Fatalf("theme script not replaced: %s", out)
	}
}

func TestAssemble_WrapperDirOverridesDocument(t *testing.T) {
	dir := t.TempDir()
	wrapper := `<html lang="{{ lang }}"><body><header>{{ app_title }}</header>{{ skeleton|safe }}</body></html>`
	if err := os.WriteFile(filepath.Join(dir, "document.tmpl"), []byte(wrapper), 0o644); err != nil {
		t.Fatalf("write wrapper: %v", err)
	}

	a, err := assemble.New(
		assemble.WithWrapperDir(dir),
		assemble.WithWrapperData(map[string]any{"app_title": "Revista"}),
	)
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	out, err := a.Assemble(context.Background(), assemble.Request{
		Template: assemble.Template{HTML: "<h1>" + fields.Placeholder(fields.TokenTitle) + "</h1>"},
		Values:   fields.Values{fields.TokenTitle: "Hola"},
		Mode:     assemble.ModeEdit,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	want := `<html lang="es"><body><header>Revista</header><h1>Hola</h1></body></html>`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("custom wrapper mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_WrapperDirFallsBackToEmbedded(t *testing.T) {
	a, err := assemble.New(assemble.WithWrapperDir(t.TempDir()))
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	out, err := a.Assemble(context.Background(), assemble.Request{
		Template: assemble.Template{HTML: "<p>x</p>"},
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(string(out), `id="theme_claro"`) {
		t.Fatalf("embedded wrapper not used: %s", out)
	}
}

func TestAssemble_WrapperExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "document.html"), []byte(`<main>{{ skeleton|safe }}</main>`), 0o644); err != nil {
		t.Fatalf("write wrapper: %v", err)
	}
	a, err := assemble.New(assemble.WithWrapperDir(dir), assemble.WithWrapperExtension("html"))
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	out, err := a.Assemble(context.Background(), assemble.Request{
		Template: assemble.Template{HTML: "<p>x</p>"},
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if got := string(out); got != "<main><p>x</p></main>" {
		t.Fatalf("unexpected document %q", got)
	}

	if _, err := assemble.New(assemble.WithWrapperDir(filepath.Join(dir, "missing"))); err == nil {
		t.Fatalf("expected error for missing wrapper dir")
	}
}

func TestSubstitute(t *testing.T) {
	values := fields.Values{"A": "1", "B": "{{A}}", "EMPTY": ""}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single", "x{{A}}y", "x1y"},
		{"repeated", "{{A}}{{A}}", "11"},
		{"no rescan", "{{B}}", "{{A}}"},
		{"empty value", "[{{EMPTY}}]", "[]"},
		{"unknown", "{{C}}", "{{C}}"},
		{"spaced braces ignored", "{{ A }}", "{{ A }}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assemble.Substitute(tt.in, values); got != tt.want {
				t.Fatalf("Substitute(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFindTokens(t *testing.T) {
	got := assemble.FindTokens("{{B}} {{A}} {{A}} {{Z}}", []string{"A", "B", "C"})
	if diff := cmp.Diff([]string{"A", "B"}, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if got := assemble.FindTokens("plain", []string{"A"}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestStripEditable(t *testing.T) {
	out, err := assemble.StripEditable(`<div contenteditable="true" id="a">x</div><p CONTENTEDITABLE>y</p>`)
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	if strings.Contains(strings.ToLower(out), "contenteditable") {
		t.Fatalf("attribute left behind: %s", out)
	}
	if !strings.Contains(out, `<div id="a">x</div>`) {
		t.Fatalf("markup altered: %s", out)
	}
}

func TestParseMode(t *testing.T) {
	for raw, want := range map[string]assemble.Mode{
		"edit":    assemble.ModeEdit,
		"Preview": assemble.ModePreview,
		"":        assemble.ModePreview,
		"export":  assemble.ModeExport,
	} {
		got, err := assemble.ParseMode(raw)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := assemble.ParseMode("draft"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
