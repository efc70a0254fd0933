package fields

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a serialized set of region contents, used by the CLI to fill a
// template without an interactive editor.
type Document struct {
	// Format is the authoring format of HTML regions: "html" (default) or
	// "markdown".
	Format  string            `json:"format" yaml:"format"`
	Variant string            `json:"variant" yaml:"variant"`
	Regions map[string]string `json:"regions" yaml:"regions"`
}

// ParseDocument decodes a JSON or YAML region document.
func ParseDocument(data []byte, origin string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("fields: file %s is empty", origin)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return Document{}, fmt.Errorf("fields: parse %s: invalid JSON or YAML", origin)
		}
	}

	switch strings.ToLower(strings.TrimSpace(doc.Format)) {
	case "", "html":
		doc.Format = "html"
	case "markdown", "md":
		doc.Format = "markdown"
	default:
		return Document{}, fmt.Errorf("fields: file %s has unknown format %q", origin, doc.Format)
	}
	return doc, nil
}

// LoadDocument reads a region document from disk.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("fields: read %s: %w", path, err)
	}
	return ParseDocument(data, path)
}

// Resolve returns the regions as HTML. Markdown documents convert every
// HTML-format field of m; text-format fields and regions unknown to m are
// passed through untouched.
func (d Document) Resolve(m Map) (MapRegions, error) {
	out := make(MapRegions, len(d.Regions))
	for region, content := range d.Regions {
		field, known := m.ByRegion(region)
		if d.Format != "markdown" || !known || field.Format != FormatHTML {
			out[region] = content
			continue
		}
		converted, err := MarkdownInline(content)
		if err != nil {
			return nil, fmt.Errorf("fields: region %q: %w", region, err)
		}
		out[region] = converted
	}
	return out, nil
}
