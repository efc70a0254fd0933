package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-articlegen/pkg/editor"
	"github.com/goliatone/go-articlegen/pkg/export"
	"github.com/goliatone/go-articlegen/pkg/registry"
	"github.com/goliatone/go-articlegen/pkg/richtext"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", export.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// writeError maps err onto a status code and writes {"error": message}
// using the message shown to the person editing.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": editor.UserMessage(err)})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrTemplateNotFound),
		errors.Is(err, editor.ErrUnknownRegion):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrTemplateFetch):
		return http.StatusBadGateway
	case errors.Is(err, editor.ErrNoTemplate),
		errors.Is(err, editor.ErrNotPreviewing),
		errors.Is(err, editor.ErrReadOnly),
		errors.Is(err, editor.ErrLoadSuperseded):
		return http.StatusConflict
	case errors.Is(err, richtext.ErrNotImage):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, export.ErrTitleRequired),
		errors.Is(err, richtext.ErrEmptySelection),
		errors.Is(err, richtext.ErrInvalidSelection),
		errors.Is(err, richtext.ErrEmptyURL),
		errors.Is(err, richtext.ErrUnknownCommand):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
