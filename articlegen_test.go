package articlegen_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-articlegen"
	"github.com/goliatone/go-articlegen/pkg/assemble"
	"github.com/goliatone/go-articlegen/pkg/export"
	"github.com/goliatone/go-articlegen/pkg/fields"
	"github.com/goliatone/go-articlegen/pkg/registry"
)

func TestEmbeddedSkeletonCarriesEveryField(t *testing.T) {
	data, err := fs.ReadFile(articlegen.TemplatesFS(), "template.html")
	if err != nil {
		t.Fatalf("read skeleton: %v", err)
	}
	skeleton := string(data)
	for _, f := range fields.Default() {
		if !strings.Contains(skeleton, f.Placeholder()) {
			t.Errorf("skeleton missing %s", f.Placeholder())
		}
		if !strings.Contains(skeleton, fmt.Sprintf(`id="%s"`, f.Region)) {
			t.Errorf("skeleton missing region %s", f.Region)
		}
	}
}

func TestEmbeddedTemplatesResolveRegistry(t *testing.T) {
	for _, entry := range registry.Default().List() {
		for _, location := range []string{entry.HTML, entry.CSS} {
			if _, err := fs.ReadFile(articlegen.EmbeddedTemplates(), strings.TrimPrefix(location, "/")); err != nil {
				t.Errorf("%s: %v", entry.ID, err)
			}
		}
	}
}

func TestAssembleDocument(t *testing.T) {
	doc, err := articlegen.AssembleDocument(context.Background(), nil, articlegen.Request{
		Template: "template3",
		Regions: map[string]string{
			fields.RegionTitle: "Ríos andinos",
			"meta-doi":         "<em>10.1234/abc</em>",
		},
		Mode: assemble.ModePreview,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	out := string(doc)
	if strings.Contains(out, "contenteditable") {
		t.Fatalf("preview is editable")
	}
	if left := assemble.FindTokens(out, fields.Default().Tokens()); len(left) > 0 {
		t.Fatalf("tokens left: %v", left)
	}
	for _, want := range []string{"<title>Ríos andinos</title>", `<span id="meta-doi">10.1234/abc</span>`, "#c0392b"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestExportDocument(t *testing.T) {
	artifact, err := articlegen.ExportDocument(context.Background(), nil, articlegen.Request{
		Template: "template1",
		Regions:  map[string]string{fields.RegionTitle: "Hello, World! 2024"},
		Variant:  registry.VariantDark,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if artifact.Filename != "hello__world__2024.html" {
		t.Fatalf("filename = %q", artifact.Filename)
	}
	if !strings.Contains(string(artifact.Content), `<body class="dark-mode">`) {
		t.Fatalf("dark variant not applied")
	}

	_, err = articlegen.ExportDocument(context.Background(), nil, articlegen.Request{Template: "template1"})
	if !errors.Is(err, export.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	_, err = articlegen.ExportDocument(context.Background(), nil, articlegen.Request{Template: "template7"})
	if !errors.Is(err, registry.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}
