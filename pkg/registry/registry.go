// Package registry holds the immutable catalogue of article templates. Each
// entry maps a template identifier onto its display name and the locations of
// its HTML skeleton and stylesheet.
package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTemplateNotFound is returned when an identifier is not registered.
var ErrTemplateNotFound = errors.New("registry: template not found")

// Entry describes one selectable template.
type Entry struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	HTML string `json:"html" yaml:"html"`
	CSS  string `json:"css" yaml:"css"`
}

// Registry is an ordered, read-only set of entries. It is safe for concurrent
// use because nothing mutates it after New returns.
type Registry struct {
	order   []string
	entries map[string]Entry
}

// New validates entries and builds a Registry preserving their order.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{
		order:   make([]string, 0, len(entries)),
		entries: make(map[string]Entry, len(entries)),
	}
	for idx, entry := range entries {
		entry.ID = strings.TrimSpace(entry.ID)
		entry.Name = strings.TrimSpace(entry.Name)
		entry.HTML = strings.TrimSpace(entry.HTML)
		entry.CSS = strings.TrimSpace(entry.CSS)

		if entry.ID == "" {
			return nil, fmt.Errorf("registry: entry %d has an empty id", idx)
		}
		if _, exists := r.entries[entry.ID]; exists {
			return nil, fmt.Errorf("registry: duplicate template %q", entry.ID)
		}
		if entry.HTML == "" || entry.CSS == "" {
			return nil, fmt.Errorf("registry: template %q needs both html and css locations", entry.ID)
		}
		if entry.Name == "" {
			entry.Name = entry.ID
		}
		r.order = append(r.order, entry.ID)
		r.entries[entry.ID] = entry
	}
	return r, nil
}

// MustNew panics on invalid entries. Useful for package-level defaults.
func MustNew(entries ...Entry) *Registry {
	r, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Get resolves an identifier.
func (r *Registry) Get(id string) (Entry, error) {
	if r == nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	entry, ok := r.entries[strings.TrimSpace(id)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return entry, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, err := r.Get(id)
	return err == nil
}

// List returns the entries in registration order.
func (r *Registry) List() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// IDs returns the registered identifiers in order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// First returns the first registered entry, used as the initial selection.
func (r *Registry) First() (Entry, bool) {
	if r == nil || len(r.order) == 0 {
		return Entry{}, false
	}
	return r.entries[r.order[0]], true
}
