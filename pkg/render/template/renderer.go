package template

import (
	"io"
)

// TemplateRenderer wraps an article skeleton into a full document. Named
// templates come from the engine's filesystem; RenderString takes the
// template body directly. Output is returned and, when writers are given,
// also written to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}

