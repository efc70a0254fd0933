package editor

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/goliatone/go-articlegen/pkg/assemble"
	"github.com/goliatone/go-articlegen/pkg/registry"
)

// Zoom bounds for the preview surface.
const (
	MinZoom     = 0.5
	MaxZoom     = 2.0
	ZoomStep    = 0.1
	DefaultZoom = 1.0
)

// TogglePreview switches between edit and preview mode and reports whether
// the session is now previewing. Entering preview requires a loaded template,
// resets the zoom and renders the preview document. Leaving preview clears
// fullscreen. Region contents are untouched either way.
func (s *Session) TogglePreview(ctx context.Context) (bool, error) {
	s.mu.Lock()

	if !s.editing {
		s.editing = true
		s.fullscreen = false
		s.preview = nil
		s.mu.Unlock()
		return false, nil
	}

	if !s.state.Loaded() {
		s.mu.Unlock()
		return false, ErrNoTemplate
	}
	doc, err := s.renderLocked(ctx, assemble.ModePreview)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	s.zoom = DefaultZoom
	s.editing = false
	s.preview = doc
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, doc)
	return true, nil
}

// Preview returns the current preview document.
func (s *Session) Preview() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing {
		return nil, ErrNotPreviewing
	}
	out := make([]byte, len(s.preview))
	copy(out, s.preview)
	return out, nil
}

// SetVariant switches between the light and dark variants. A preview in
// progress is regenerated.
func (s *Session) SetVariant(ctx context.Context, variant string) error {
	variant = strings.TrimSpace(variant)
	if variant != registry.VariantLight && variant != registry.VariantDark {
		return fmt.Errorf("editor: unknown variant %q", variant)
	}

	s.mu.Lock()
	s.variant = variant
	if s.editing || !s.state.Loaded() {
		s.mu.Unlock()
		return nil
	}
	doc, err := s.renderLocked(ctx, assemble.ModePreview)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.preview = doc
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, doc)
	return nil
}

// Zoom returns the preview scale.
func (s *Session) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// ZoomIn raises the preview scale by one step, up to MaxZoom.
func (s *Session) ZoomIn() float64 {
	return s.adjustZoom(ZoomStep)
}

// ZoomOut lowers the preview scale by one step, down to MinZoom.
func (s *Session) ZoomOut() float64 {
	return s.adjustZoom(-ZoomStep)
}

// ResetZoom restores the default scale.
func (s *Session) ResetZoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zoom = DefaultZoom
	return s.zoom
}

func (s *Session) adjustZoom(delta float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zoom = clampZoom(s.zoom + delta)
	return s.zoom
}

// clampZoom snaps z to one decimal so repeated steps do not drift.
func clampZoom(z float64) float64 {
	z = math.Round(z*10) / 10
	return max(MinZoom, min(MaxZoom, z))
}

// ToggleFullscreen flips fullscreen while previewing.
func (s *Session) ToggleFullscreen() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing {
		return false, ErrNotPreviewing
	}
	s.fullscreen = !s.fullscreen
	return s.fullscreen, nil
}

// Fullscreen reports whether the preview is fullscreen.
func (s *Session) Fullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen
}

// HandleKey applies a keyboard shortcut and reports whether it was
// consumed. Escape leaves fullscreen; with ctrl held and while previewing,
// "+" or "=" zooms in, "-" or "_" zooms out and "0" resets.
func (s *Session) HandleKey(key string, ctrl bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key == "Escape" {
		if s.fullscreen {
			s.fullscreen = false
			return true
		}
		return false
	}
	if !ctrl || s.editing {
		return false
	}
	switch key {
	case "+", "=":
		s.zoom = clampZoom(s.zoom + ZoomStep)
	case "-", "_":
		s.zoom = clampZoom(s.zoom - ZoomStep)
	case "0":
		s.zoom = DefaultZoom
	default:
		return false
	}
	return true
}
