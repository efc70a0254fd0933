// Package source describes where template resources live. Loaders operate on
// files, fs.FS entries, or URLs without leaking how each is fetched.
package source

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Source identifies a template resource (HTML skeleton or stylesheet).
type Source interface {
	Kind() Kind
	Location() string
}

// Kind enumerates the loader modalities.
type Kind string

const (
	KindFile Kind = "file"
	KindFS   Kind = "fs"
	KindURL  Kind = "url"
)

// fileSource identifies on-disk resources.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() Kind {
	return KindFile
}

// FromFile returns a Source pointing to a file path.
func FromFile(p string) Source {
	return fileSource{path: filepath.Clean(p)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() Kind {
	return KindFS
}

// FromFS returns a Source identifying a resource inside an fs.FS. Leading
// slashes are dropped so registry paths such as "/templates/template.html"
// stay valid fs.FS names.
func FromFS(name string) Source {
	clean := path.Clean("/" + strings.TrimSpace(name))
	return fsSource{name: strings.TrimPrefix(clean, "/")}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() Kind {
	return KindURL
}

// FromURL validates the supplied URL string and returns a Source.
func FromURL(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("source: empty URL")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("source: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}

// MustFromURL panics if the URL is invalid to surface configuration mistakes
// early.
func MustFromURL(raw string) Source {
	src, err := FromURL(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// Parse maps a registry location onto a Source: http(s) URLs become URL
// sources, "file:" prefixed paths become file sources and anything else is
// resolved inside the loader's fs.FS.
func Parse(location string) (Source, error) {
	trimmed := strings.TrimSpace(location)
	switch {
	case trimmed == "":
		return nil, fmt.Errorf("source: location is required")
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return FromURL(trimmed)
	case strings.HasPrefix(trimmed, "file:"):
		p := strings.TrimPrefix(trimmed, "file:")
		if p == "" {
			return nil, fmt.Errorf("source: empty file path in %q", location)
		}
		return FromFile(p), nil
	default:
		return FromFS(trimmed), nil
	}
}
