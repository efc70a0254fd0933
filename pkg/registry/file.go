package registry

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type registryFile struct {
	Templates []Entry `json:"templates" yaml:"templates"`
}

// Parse decodes a JSON or YAML registry document.
func Parse(data []byte, origin string) (*Registry, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("registry: file %s is empty", origin)
	}

	var doc registryFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = registryFile{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return nil, fmt.Errorf("registry: parse %s: invalid JSON or YAML", origin)
		}
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("registry: file %s declares no templates", origin)
	}

	r, err := New(doc.Templates...)
	if err != nil {
		return nil, fmt.Errorf("registry: file %s: %w", origin, err)
	}
	return r, nil
}

// LoadFile reads a registry document from disk.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a registry document from an fs.FS.
func LoadFS(fsys fs.FS, name string) (*Registry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", name, err)
	}
	return Parse(data, name)
}
