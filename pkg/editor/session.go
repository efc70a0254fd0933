// Package editor holds the state of one article being edited: the loaded
// template, the contents of every editable region, and the preview chrome
// (mode, zoom, fullscreen). A Session serializes all access behind a mutex,
// so it can be shared between HTTP handlers and background reloads.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/goliatone/go-articlegen/pkg/assemble"
	"github.com/goliatone/go-articlegen/pkg/export"
	"github.com/goliatone/go-articlegen/pkg/fields"
	pkgloader "github.com/goliatone/go-articlegen/pkg/loader"
	"github.com/goliatone/go-articlegen/pkg/registry"
	"github.com/goliatone/go-articlegen/pkg/richtext"
	"github.com/goliatone/go-articlegen/pkg/source"
)

// TemplateState is the template pair most recently loaded.
type TemplateState struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	HTML string `json:"-"`
	CSS  string `json:"-"`
}

// Loaded reports whether a template has been loaded.
func (t TemplateState) Loaded() bool {
	return t.ID != ""
}

// Status is a JSON-friendly snapshot of the session.
type Status struct {
	TemplateID   string  `json:"template_id"`
	TemplateName string  `json:"template_name"`
	Loaded       bool    `json:"loaded"`
	Editing      bool    `json:"editing"`
	Zoom         float64 `json:"zoom"`
	Fullscreen   bool    `json:"fullscreen"`
	Variant      string  `json:"variant"`
	Title        string  `json:"title"`
}

// Session is one editor instance.
type Session struct {
	loader    pkgloader.Loader
	registry  *registry.Registry
	assembler *assemble.Assembler
	fieldMap  fields.Map
	resolve   func(string) (source.Source, error)
	sanitize  func(string) string
	logger    *log.Logger
	appTitle  string
	listeners []func([]byte)

	// editMu serializes read-modify-write rich-text commands.
	editMu   sync.Mutex
	commands *richtext.Editor

	mu         sync.Mutex
	state      TemplateState
	regions    map[string]string
	editing    bool
	zoom       float64
	fullscreen bool
	variant    string
	titleLabel string
	preview    []byte
	loadSeq    uint64
}

var _ richtext.RegionStore = (*Session)(nil)

// New creates a session in edit mode with no template loaded.
func New(loader pkgloader.Loader, options ...Option) (*Session, error) {
	if loader == nil {
		return nil, errors.New("editor: loader is required")
	}

	s := &Session{
		loader:   loader,
		registry: registry.Default(),
		fieldMap: fields.Default(),
		resolve:  source.Parse,
		logger:   log.New(io.Discard, "", 0),
		appTitle: DefaultAppTitle,
		regions:  make(map[string]string),
		editing:  true,
		zoom:     DefaultZoom,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if err := s.fieldMap.Validate(); err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}
	if s.variant != "" && s.variant != registry.VariantLight && s.variant != registry.VariantDark {
		return nil, fmt.Errorf("editor: unknown variant %q", s.variant)
	}
	if s.assembler == nil {
		a, err := assemble.New()
		if err != nil {
			return nil, fmt.Errorf("editor: %w", err)
		}
		s.assembler = a
	}
	s.titleLabel = s.appTitle
	s.commands = richtext.New(s)
	return s, nil
}

// Registry exposes the templates the session can load.
func (s *Session) Registry() *registry.Registry {
	return s.registry
}

// FieldMap returns the field map used for capture.
func (s *Session) FieldMap() fields.Map {
	out := make(fields.Map, len(s.fieldMap))
	copy(out, s.fieldMap)
	return out
}

// LoadTemplate fetches the skeleton and stylesheet of id and makes them the
// current template. Unknown ids, fetch failures and superseded loads leave
// the current state untouched.
func (s *Session) LoadTemplate(ctx context.Context, id string, options ...LoadOption) (TemplateState, error) {
	cfg := loadConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	entry, err := s.registry.Get(id)
	if err != nil {
		s.logger.Printf("editor: %v", err)
		return TemplateState{}, err
	}

	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	variant := s.variant
	s.mu.Unlock()

	sel, err := s.registry.Select(entry.ID, variant)
	if err != nil {
		return TemplateState{}, fmt.Errorf("editor: %w", err)
	}
	htmlLocation, cssLocation, err := registry.Locations(sel)
	if err != nil {
		return TemplateState{}, fmt.Errorf("editor: %w", err)
	}

	skeleton, err := s.fetch(ctx, entry.ID, htmlLocation)
	if err != nil {
		return TemplateState{}, err
	}
	css, err := s.fetch(ctx, entry.ID, cssLocation)
	if err != nil {
		return TemplateState{}, err
	}

	s.mu.Lock()
	if seq != s.loadSeq {
		s.mu.Unlock()
		s.logger.Printf("editor: load of %q superseded", entry.ID)
		return TemplateState{}, ErrLoadSuperseded
	}
	s.state = TemplateState{
		ID:   entry.ID,
		Name: entry.Name,
		HTML: string(skeleton),
		CSS:  string(css),
	}
	s.titleLabel = s.appTitle + " - " + entry.Name
	state := s.state

	var (
		doc       []byte
		listeners []func([]byte)
	)
	if cfg.refresh && !s.editing {
		doc, err = s.renderLocked(ctx, assemble.ModePreview)
		if err == nil {
			s.preview = doc
			listeners = s.listeners
		}
	}
	s.mu.Unlock()

	s.logger.Printf("editor: template %q loaded", entry.Name)
	if err != nil {
		return state, err
	}
	notify(listeners, doc)
	return state, nil
}

// Reload refetches the current template and refreshes the preview.
func (s *Session) Reload(ctx context.Context) (TemplateState, error) {
	s.mu.Lock()
	id := s.state.ID
	s.mu.Unlock()
	if id == "" {
		return TemplateState{}, ErrNoTemplate
	}
	return s.LoadTemplate(ctx, id, RefreshPreview())
}

func (s *Session) fetch(ctx context.Context, id, location string) ([]byte, error) {
	src, err := s.resolve(location)
	if err == nil {
		var data []byte
		data, err = s.loader.Load(ctx, src)
		if err == nil {
			err = pkgloader.CheckText(data)
		}
		if err == nil {
			return data, nil
		}
	}
	s.logger.Printf("editor: load template %q from %s: %v", id, location, err)
	return nil, &LoadError{ID: id, Location: location, Err: err}
}

// State returns the current template state.
func (s *Session) State() TemplateState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status returns a snapshot for display.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		TemplateID:   s.state.ID,
		TemplateName: s.state.Name,
		Loaded:       s.state.Loaded(),
		Editing:      s.editing,
		Zoom:         s.zoom,
		Fullscreen:   s.fullscreen,
		Variant:      s.variantLocked(),
		Title:        s.titleLabel,
	}
}

// TitleLabel is the application heading, "<app title> - <template name>"
// once a template is loaded.
func (s *Session) TitleLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.titleLabel
}

// Editing reports whether the session is in edit mode.
func (s *Session) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

// Region implements richtext.RegionStore. Regions never written read as
// empty when they belong to the field map.
func (s *Session) Region(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.regions[id]; ok {
		return v, true
	}
	if _, ok := s.fieldMap.ByRegion(id); ok {
		return "", true
	}
	return "", false
}

// SetRegion implements richtext.RegionStore. Only regions named by the
// field map can be written.
func (s *Session) SetRegion(id, html string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("editor: region id is required")
	}
	if _, ok := s.fieldMap.ByRegion(id); !ok {
		return fmt.Errorf("%w %q", ErrUnknownRegion, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return ErrReadOnly
	}
	s.regions[id] = html
	return nil
}

// SetRegions writes several regions at once. Nothing is written when any id
// is unknown.
func (s *Session) SetRegions(regions map[string]string) error {
	clean := make(map[string]string, len(regions))
	for id, html := range regions {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := s.fieldMap.ByRegion(id); !ok {
			return fmt.Errorf("%w %q", ErrUnknownRegion, id)
		}
		clean[id] = html
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return ErrReadOnly
	}
	for id, html := range clean {
		s.regions[id] = html
	}
	return nil
}

// Regions returns a copy of every region written so far.
func (s *Session) Regions() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.regions))
	for id, html := range s.regions {
		out[id] = html
	}
	return out
}

// Exec runs a toolbar command against the regions.
func (s *Session) Exec(command, value string, sel richtext.Selection) error {
	s.editMu.Lock()
	defer s.editMu.Unlock()
	return richtext.Exec(s.commands, command, value, sel)
}

// InsertImage embeds image data at sel, or appends it to img.Target.
func (s *Session) InsertImage(sel richtext.Selection, img richtext.Image) error {
	s.editMu.Lock()
	defer s.editMu.Unlock()
	return s.commands.InsertImage(sel, img)
}

// Render assembles the current document in mode.
func (s *Session) Render(ctx context.Context, mode assemble.Mode) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked(ctx, mode)
}

// EditView renders the editable page.
func (s *Session) EditView(ctx context.Context) ([]byte, error) {
	return s.Render(ctx, assemble.ModeEdit)
}

// Export validates the title and produces the downloadable artifact.
func (s *Session) Export(ctx context.Context) (export.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Loaded() {
		return export.Artifact{}, ErrNoTemplate
	}
	title := s.titleTextLocked()
	if title == "" {
		return export.Artifact{}, export.ErrTitleRequired
	}
	doc, err := s.renderLocked(ctx, assemble.ModeExport)
	if err != nil {
		return export.Artifact{}, err
	}
	return export.New(title, doc)
}

func (s *Session) titleTextLocked() string {
	region := fields.RegionTitle
	if f, ok := s.fieldMap.Lookup(fields.TokenTitle); ok {
		region = f.Region
	}
	return strings.TrimSpace(fields.TextContent(s.regions[region]))
}

func (s *Session) renderLocked(ctx context.Context, mode assemble.Mode) ([]byte, error) {
	if !s.state.Loaded() {
		return nil, ErrNoTemplate
	}

	var opts []fields.CaptureOption
	if s.sanitize != nil {
		opts = append(opts, fields.WithSanitizer(s.sanitize))
	}
	values := fields.Capture(s.fieldMap, fields.MapRegions(s.regions), opts...)

	return s.assembler.Assemble(ctx, assemble.Request{
		Template:  assemble.Template{HTML: s.state.HTML, CSS: s.state.CSS},
		Values:    values,
		Mode:      mode,
		BodyClass: s.bodyClassLocked(),
	})
}

func (s *Session) variantLocked() string {
	if s.variant == "" {
		return registry.VariantLight
	}
	return s.variant
}

func (s *Session) bodyClassLocked() string {
	if !s.state.Loaded() {
		return ""
	}
	sel, err := s.registry.Select(s.state.ID, s.variant)
	if err != nil {
		return ""
	}
	return registry.BodyClass(sel)
}

func notify(listeners []func([]byte), doc []byte) {
	for _, fn := range listeners {
		fn(doc)
	}
}
