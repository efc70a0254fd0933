package registry

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	// VariantLight is the default rendering variant.
	VariantLight = "light"
	// VariantDark starts the document with the dark-mode body class.
	VariantDark = "dark"

	// SkeletonKey names the HTML skeleton inside a manifest's templates.
	SkeletonKey = "article.skeleton"
	// StylesheetKey names the stylesheet inside a manifest's assets.
	StylesheetKey = "article.stylesheet"
	// BodyClassToken is the variant token carrying the initial body class.
	BodyClassToken = "body_class"
	// DisplayNameToken carries the human readable template name.
	DisplayNameToken = "display_name"
)

var _ theme.ThemeSelector = (*Registry)(nil)

// Manifest describes an entry as a go-theme manifest so template choices can
// flow through theme-aware tooling.
func (e Entry) Manifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    e.ID,
		Version: "1.0.0",
		Tokens: map[string]string{
			DisplayNameToken: e.Name,
		},
		Templates: map[string]string{
			SkeletonKey: e.HTML,
		},
		Assets: theme.Assets{
			Files: map[string]string{
				StylesheetKey: e.CSS,
			},
		},
		Variants: map[string]theme.Variant{
			VariantLight: {},
			VariantDark: {
				Tokens: map[string]string{
					BodyClassToken: "dark-mode",
				},
			},
		},
	}
}

// Select resolves a template and variant. An empty variant selects light.
func (r *Registry) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	entry, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = VariantLight
	}
	manifest := entry.Manifest()
	if _, ok := manifest.Variants[variant]; !ok {
		return nil, fmt.Errorf("registry: template %q has no variant %q", entry.ID, variant)
	}
	return &theme.Selection{
		Theme:    entry.ID,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Locations returns the skeleton and stylesheet locations of a selection.
func Locations(sel *theme.Selection) (html, css string, err error) {
	if sel == nil || sel.Manifest == nil {
		return "", "", fmt.Errorf("registry: selection has no manifest")
	}
	html = sel.Manifest.Templates[SkeletonKey]
	css = sel.Manifest.Assets.Files[StylesheetKey]
	if html == "" || css == "" {
		return "", "", fmt.Errorf("registry: theme %q is missing skeleton or stylesheet", sel.Theme)
	}
	return html, css, nil
}

// BodyClass returns the initial body class for the selected variant.
func BodyClass(sel *theme.Selection) string {
	if sel == nil || sel.Manifest == nil {
		return ""
	}
	variant, ok := sel.Manifest.Variants[sel.Variant]
	if !ok {
		return ""
	}
	return variant.Tokens[BodyClassToken]
}
