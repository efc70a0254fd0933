package editor

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-articlegen/pkg/export"
	"github.com/goliatone/go-articlegen/pkg/registry"
	"github.com/goliatone/go-articlegen/pkg/richtext"
)

var (
	// ErrTemplateFetch matches every *LoadError.
	ErrTemplateFetch = errors.New("editor: template fetch failed")
	// ErrNoTemplate is returned by operations that need a loaded template.
	ErrNoTemplate = errors.New("editor: no template loaded")
	// ErrLoadSuperseded is returned by a load that finished after a newer
	// load had started. The newer load owns the template state.
	ErrLoadSuperseded = errors.New("editor: template load superseded")
	// ErrNotPreviewing is returned by preview-only operations in edit mode.
	ErrNotPreviewing = errors.New("editor: not in preview mode")
	// ErrReadOnly is returned when regions are written while previewing.
	ErrReadOnly = errors.New("editor: regions are read-only while previewing")
	// ErrUnknownRegion is returned when writing a region the field map does
	// not name.
	ErrUnknownRegion = errors.New("editor: unknown region")
)

// LoadError reports a failed template fetch. Prior template state is kept.
type LoadError struct {
	ID       string
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("editor: load template %q from %s: %v", e.ID, e.Location, e.Err)
}

// Unwrap exposes both ErrTemplateFetch and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrTemplateFetch, e.Err}
}

// UserMessage returns the alert text shown to the person editing for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, registry.ErrTemplateNotFound):
		return "La plantilla seleccionada no existe."
	case errors.Is(err, ErrTemplateFetch):
		return "Hubo un error al cargar la plantilla seleccionada."
	case errors.Is(err, ErrNoTemplate):
		return "Por favor, selecciona y carga una plantilla primero."
	case errors.Is(err, export.ErrTitleRequired):
		return "Por favor, ingresa un título principal para el artículo."
	case errors.Is(err, richtext.ErrEmptySelection):
		return "Primero selecciona el texto que quieres convertir en enlace."
	case errors.Is(err, richtext.ErrNotImage):
		return "El archivo seleccionado no es una imagen."
	case errors.Is(err, ErrReadOnly):
		return "Vuelve al modo de edición para modificar el artículo."
	case errors.Is(err, ErrNotPreviewing):
		return "Esta acción solo está disponible en la vista previa."
	case errors.Is(err, ErrLoadSuperseded):
		return "Se seleccionó otra plantilla mientras esta se cargaba."
	case errors.Is(err, ErrUnknownRegion):
		return "La región indicada no forma parte del artículo."
	default:
		return err.Error()
	}
}
