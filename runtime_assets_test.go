package articlegen

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEditorAssetsFSContainsScript(t *testing.T) {
	data, err := fs.ReadFile(EditorAssetsFS(), "editor.js")
	if err != nil {
		t.Fatalf("expected editor script to be readable: %v", err)
	}
	if !strings.Contains(string(data), "/api/regions/") {
		t.Fatalf("expected editor script to sync regions")
	}
	if _, err := fs.ReadFile(EditorAssetsFS(), "editor.css"); err != nil {
		t.Fatalf("expected editor styles to be readable: %v", err)
	}
}

func TestEditorAssetsFSContainsPreviewChrome(t *testing.T) {
	data, err := fs.ReadFile(EditorAssetsFS(), "preview.js")
	if err != nil {
		t.Fatalf("expected preview script to be readable: %v", err)
	}
	for _, want := range []string{"/api/preview/toggle", "/api/keys", "/api/zoom/", "/api/fullscreen", "scale("} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected preview script to reference %q", want)
		}
	}
	if _, err := fs.ReadFile(EditorAssetsFS(), "preview.css"); err != nil {
		t.Fatalf("expected preview styles to be readable: %v", err)
	}
}
