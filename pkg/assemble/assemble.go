package assemble

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-articlegen/pkg/fields"
	"github.com/goliatone/go-articlegen/pkg/render/template"
	"github.com/goliatone/go-articlegen/pkg/render/template/gotemplate"
)

// DocumentTitleToken carries the plain-text title into the <title> element.
const DocumentTitleToken = "DOCUMENT_TITLE"

const defaultLanguage = "es"

// ErrNoSkeleton is returned when the template state holds no HTML skeleton.
var ErrNoSkeleton = errors.New("assemble: template skeleton is empty")

// Mode selects how editability markers are treated.
type Mode int

const (
	// ModeEdit keeps contenteditable attributes so the output can serve as
	// the live editing surface.
	ModeEdit Mode = iota
	// ModePreview removes contenteditable attributes.
	ModePreview
	// ModeExport removes contenteditable attributes, same as preview.
	ModeExport
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModePreview:
		return "preview"
	case ModeExport:
		return "export"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// KeepsEditable reports whether contenteditable survives assembly.
func (m Mode) KeepsEditable() bool {
	return m == ModeEdit
}

// ParseMode maps "edit", "preview" and "export" onto a Mode.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "edit":
		return ModeEdit, nil
	case "", "preview":
		return ModePreview, nil
	case "export":
		return ModeExport, nil
	default:
		return 0, fmt.Errorf("assemble: unknown mode %q", raw)
	}
}

// Template is the HTML/CSS pair being filled.
type Template struct {
	HTML string
	CSS  string
}

// Request describes one assembly.
type Request struct {
	Template Template
	Values   fields.Values
	Mode     Mode
	// Lang overrides the assembler's document language.
	Lang string
	// BodyClass sets the initial class of <body>, e.g. "dark-mode".
	BodyClass string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithTemplateRenderer swaps the engine rendering the document wrapper. The
// renderer must provide a "document" template.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(a *Assembler) {
		if renderer != nil {
			a.renderer = renderer
		}
	}
}

// WithLanguage sets the default lang attribute.
func WithLanguage(lang string) Option {
	return func(a *Assembler) {
		if trimmed := strings.TrimSpace(lang); trimmed != "" {
			a.lang = trimmed
		}
	}
}

// WithWrapperDir loads the document wrapper from dir first. Templates missing
// there fall back to the embedded ones.
func WithWrapperDir(dir string) Option {
	return func(a *Assembler) {
		a.wrapperDir = strings.TrimSpace(dir)
	}
}

// WithWrapperExtension changes the wrapper file extension. With anything
// other than ".tmpl" the wrapper dir must provide the document itself.
func WithWrapperExtension(ext string) Option {
	return func(a *Assembler) {
		a.wrapperExt = strings.TrimSpace(ext)
	}
}

// WithWrapperData exposes extra values to every wrapper template, e.g.
// the application title for a custom header.
func WithWrapperData(data map[string]any) Option {
	return func(a *Assembler) {
		if len(data) == 0 {
			return
		}
		if a.wrapperData == nil {
			a.wrapperData = make(map[string]any, len(data))
		}
		for key, value := range data {
			a.wrapperData[key] = value
		}
	}
}

// WithThemeScript replaces the injected theme toggle script.
func WithThemeScript(script string) Option {
	return func(a *Assembler) {
		a.themeScript = script
	}
}

// Assembler builds documents. It holds no per-document state and is safe for
// concurrent use.
type Assembler struct {
	renderer    template.TemplateRenderer
	lang        string
	themeScript string

	wrapperDir  string
	wrapperExt  string
	wrapperData map[string]any
}

// New constructs an Assembler backed by the embedded wrapper template.
func New(options ...Option) (*Assembler, error) {
	a := &Assembler{
		lang:        defaultLanguage,
		themeScript: ThemeScript(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	if a.renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(a.wrapperDir),
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithExtension(a.wrapperExt),
			gotemplate.WithGlobalData(a.wrapperData),
		)
		if err != nil {
			return nil, fmt.Errorf("assemble: configure template renderer: %w", err)
		}
		a.renderer = engine
	}
	return a, nil
}

// Assemble produces the complete document for req.
func (a *Assembler) Assemble(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("assemble: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Template.HTML) == "" {
		return nil, ErrNoSkeleton
	}

	lang := a.lang
	if trimmed := strings.TrimSpace(req.Lang); trimmed != "" {
		lang = trimmed
	}

	wrapped, err := a.renderer.RenderTemplate(documentTemplate, map[string]any{
		"lang":         lang,
		"title":        fields.Placeholder(DocumentTitleToken),
		"css":          req.Template.CSS,
		"body_class":   strings.TrimSpace(req.BodyClass),
		"skeleton":     req.Template.HTML,
		"theme_script": a.themeScript,
	})
	if err != nil {
		return nil, fmt.Errorf("assemble: render document wrapper: %w", err)
	}

	filled := Substitute(wrapped, withDocumentTitle(req.Values))
	if req.Mode.KeepsEditable() {
		return []byte(filled), nil
	}

	cleaned, err := StripEditable(filled)
	if err != nil {
		return nil, err
	}
	return []byte(cleaned), nil
}

func withDocumentTitle(values fields.Values) fields.Values {
	out := make(fields.Values, len(values)+1)
	for token, value := range values {
		out[token] = value
	}
	if _, ok := out[DocumentTitleToken]; !ok {
		title := strings.TrimSpace(fields.TextContent(values[fields.TokenTitle]))
		out[DocumentTitleToken] = html.EscapeString(title)
	}
	return out
}
