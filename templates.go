package articlegen

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html templates/*.css
var embeddedTemplates embed.FS

// EmbeddedTemplates exposes the built-in skeleton and stylesheets rooted so
// that registry locations such as "/templates/template1.css" resolve against
// it directly.
func EmbeddedTemplates() fs.FS {
	return embeddedTemplates
}

// TemplatesFS exposes only the templates directory, suitable for serving:
//
//	r.Handle("/templates/*",
//	  http.StripPrefix("/templates/",
//	    http.FileServerFS(articlegen.TemplatesFS()),
//	  ),
//	)
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
