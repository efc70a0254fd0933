package articlegen

import (
	"context"
	"fmt"

	"github.com/goliatone/go-articlegen/pkg/assemble"
	"github.com/goliatone/go-articlegen/pkg/editor"
	"github.com/goliatone/go-articlegen/pkg/export"
	pkgloader "github.com/goliatone/go-articlegen/pkg/loader"
)

// NewSession creates an editor session backed by loader, or by the embedded
// templates when loader is nil.
func NewSession(loader pkgloader.Loader, options ...editor.Option) (*editor.Session, error) {
	if loader == nil {
		loader = NewLoader()
	}
	return editor.New(loader, options...)
}

// Request describes a one-shot assembly.
type Request struct {
	// Template is the registry id to load.
	Template string
	// Regions maps region ids onto their HTML content.
	Regions map[string]string
	// Mode selects edit, preview or export output.
	Mode assemble.Mode
	// Variant picks the light or dark variant.
	Variant string
}

// AssembleDocument loads a template, fills it with req.Regions and returns
// the assembled document. It is the simplest entry point for callers that
// just want HTML output.
func AssembleDocument(ctx context.Context, loader pkgloader.Loader, req Request, options ...editor.Option) ([]byte, error) {
	session, err := prepare(ctx, loader, req, options...)
	if err != nil {
		return nil, err
	}
	return session.Render(ctx, req.Mode)
}

// ExportDocument is AssembleDocument in export mode, returning the artifact
// named after the article title.
func ExportDocument(ctx context.Context, loader pkgloader.Loader, req Request, options ...editor.Option) (export.Artifact, error) {
	session, err := prepare(ctx, loader, req, options...)
	if err != nil {
		return export.Artifact{}, err
	}
	return session.Export(ctx)
}

func prepare(ctx context.Context, loader pkgloader.Loader, req Request, options ...editor.Option) (*editor.Session, error) {
	if req.Variant != "" {
		options = append(options, editor.WithVariant(req.Variant))
	}
	session, err := NewSession(loader, options...)
	if err != nil {
		return nil, err
	}
	if _, err := session.LoadTemplate(ctx, req.Template); err != nil {
		return nil, err
	}
	if err := session.SetRegions(req.Regions); err != nil {
		return nil, fmt.Errorf("articlegen: %w", err)
	}
	return session, nil
}
