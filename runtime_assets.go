package articlegen

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.js assets/*.css
var embeddedEditorAssets embed.FS

// EditorAssetsFS exposes the browser script and styles injected into the
// editable page. The script mirrors region edits back to the server and
// wires the preview and export controls.
//
// Typical mount:
//
//	r.Handle("/assets/*",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(articlegen.EditorAssetsFS()),
//	  ),
//	)
func EditorAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedEditorAssets, "assets")
	if err != nil {
		return embeddedEditorAssets
	}
	return sub
}
