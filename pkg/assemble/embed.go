package assemble

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/*.js
var embeddedTemplates embed.FS

const (
	documentTemplate = "document"
	themeScriptName  = "theme.js"
)

// TemplatesFS exposes the embedded document wrapper so callers can copy or
// override it.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// ThemeScript returns the dark/light toggle injected into every document.
func ThemeScript() string {
	data, err := fs.ReadFile(TemplatesFS(), themeScriptName)
	if err != nil {
		return ""
	}
	return string(data)
}
