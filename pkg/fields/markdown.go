package fields

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// MarkdownToHTML converts a Markdown region body into HTML.
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("fields: convert markdown: %w", err)
	}
	return buf.String(), nil
}

// MarkdownInline converts src and unwraps a lone paragraph so short values
// such as titles or dates do not gain block markup.
func MarkdownInline(src string) (string, error) {
	out, err := MarkdownToHTML(src)
	if err != nil {
		return "", err
	}
	trimmed := bytes.TrimSpace([]byte(out))
	if bytes.HasPrefix(trimmed, []byte("<p>")) && bytes.HasSuffix(trimmed, []byte("</p>")) &&
		bytes.Count(trimmed, []byte("<p>")) == 1 {
		return string(trimmed[len("<p>") : len(trimmed)-len("</p>")]), nil
	}
	return string(trimmed), nil
}
