package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-articlegen/pkg/editor"
	"github.com/goliatone/go-articlegen/pkg/export"
	"github.com/goliatone/go-articlegen/pkg/fields"
	"github.com/goliatone/go-articlegen/pkg/richtext"
)

const (
	editorAssetTags  = `<link rel="stylesheet" href="/assets/editor.css"><script src="/assets/editor.js"></script>`
	previewAssetTags = `<link rel="stylesheet" href="/assets/editor.css"><link rel="stylesheet" href="/assets/preview.css"><script src="/assets/preview.js"></script>`
)

func registerAPI(r chi.Router, s *Server) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.handleListTemplates)
		r.Post("/template", s.handleLoadTemplate)
		r.Get("/state", s.handleState)
		r.Post("/variant", s.handleVariant)
		r.Get("/regions", s.handleListRegions)
		r.Get("/regions/{id}", s.handleGetRegion)
		r.Put("/regions/{id}", s.handlePutRegion)
		r.Post("/preview/toggle", s.handleTogglePreview)
		r.Post("/zoom/{action}", s.handleZoom)
		r.Post("/fullscreen", s.handleFullscreen)
		r.Post("/keys", s.handleKey)
		r.Post("/format", s.handleFormat)
		r.Post("/image", s.handleImage)
	})
}

// handleEditView serves the editable page. While previewing, regions are
// read-only, so the browser is sent to the preview instead.
func (s *Server) handleEditView(w http.ResponseWriter, r *http.Request) {
	if !s.session.Editing() {
		http.Redirect(w, r, "/preview", http.StatusSeeOther)
		return
	}
	doc, err := s.session.EditView(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if s.cfg.AssetsFS != nil {
		doc = injectBeforeBodyEnd(doc, editorAssetTags)
	}
	writeHTML(w, doc)
}

func injectBeforeBodyEnd(doc []byte, snippet string) []byte {
	idx := bytes.LastIndex(doc, []byte("</body>"))
	if idx < 0 {
		return append(doc, snippet...)
	}
	out := make([]byte, 0, len(doc)+len(snippet))
	out = append(out, doc[:idx]...)
	out = append(out, snippet...)
	return append(out, doc[idx:]...)
}

// handlePreview serves the read-only document scaled to the session zoom,
// with the preview controls when editor assets are mounted.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, err := s.session.Preview()
	if err != nil {
		writeError(w, err)
		return
	}
	status := s.session.Status()
	chrome := previewChrome(status.Zoom, status.Fullscreen)
	if s.cfg.AssetsFS != nil {
		chrome += previewAssetTags
	}
	writeHTML(w, injectBeforeBodyEnd(doc, chrome))
}

// previewChrome carries zoom and fullscreen into the page: a style that
// scales the preview stage and the initial state read by preview.js.
func previewChrome(zoom float64, fullscreen bool) string {
	z := strconv.FormatFloat(zoom, 'f', -1, 64)
	return fmt.Sprintf(`<style id="articlegen-zoom">.articlegen-stage{transform: scale(%s);}</style>`+
		`<script>window.articlegenPreview={zoom:%s,fullscreen:%t};</script>`, z, z, fullscreen)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	artifact, err := s.session.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	s.logger.Printf("exported %s (%d bytes)", artifact.Filename, len(artifact.Content))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	artifact.WriteTo(w)
}

type templateInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	entries := s.session.Registry().List()
	out := make([]templateInfo, 0, len(entries))
	for _, entry := range entries {
		out = append(out, templateInfo{ID: entry.ID, Name: entry.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

type loadRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleLoadTemplate(w http.ResponseWriter, r *http.Request) {
	var req loadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		badRequest(w, "id is required")
		return
	}
	if _, err := s.session.LoadTemplate(r.Context(), req.ID, editor.RefreshPreview()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Status())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Status())
}

type variantRequest struct {
	Variant string `json:"variant"`
}

func (s *Server) handleVariant(w http.ResponseWriter, r *http.Request) {
	var req variantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.session.SetVariant(r.Context(), req.Variant); err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.session.Status())
}

type regionPayload struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}

func (s *Server) handleListRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Regions())
}

func (s *Server) handleGetRegion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	html, ok := s.session.Region(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "region not found"})
		return
	}
	writeJSON(w, http.StatusOK, regionPayload{ID: id, HTML: html})
}

func (s *Server) handlePutRegion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req regionPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.session.SetRegion(id, req.HTML); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regionPayload{ID: id, HTML: req.HTML})
}

func (s *Server) handleTogglePreview(w http.ResponseWriter, r *http.Request) {
	if _, err := s.session.TogglePreview(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Status())
}

func (s *Server) handleZoom(w http.ResponseWriter, r *http.Request) {
	var zoom float64
	switch chi.URLParam(r, "action") {
	case "in":
		zoom = s.session.ZoomIn()
	case "out":
		zoom = s.session.ZoomOut()
	case "reset":
		zoom = s.session.ResetZoom()
	default:
		badRequest(w, "action must be in, out or reset")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"zoom": zoom})
}

func (s *Server) handleFullscreen(w http.ResponseWriter, r *http.Request) {
	on, err := s.session.ToggleFullscreen()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"fullscreen": on})
}

type keyRequest struct {
	Key  string `json:"key"`
	Ctrl bool   `json:"ctrl"`
}

type keyResponse struct {
	Handled bool          `json:"handled"`
	Status  editor.Status `json:"status"`
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	handled := s.session.HandleKey(req.Key, req.Ctrl)
	writeJSON(w, http.StatusOK, keyResponse{Handled: handled, Status: s.session.Status()})
}

type formatRequest struct {
	Command   string             `json:"command"`
	Value     string             `json:"value"`
	Selection richtext.Selection `json:"selection"`
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.session.Exec(req.Command, req.Value, req.Selection); err != nil {
		writeError(w, err)
		return
	}
	html, _ := s.session.Region(req.Selection.Region)
	writeJSON(w, http.StatusOK, regionPayload{ID: req.Selection.Region, HTML: html})
}

// handleImage accepts a multipart upload in the "image" field. The optional
// region, start and end fields place the image at a selection; target picks
// the region used otherwise.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxImageBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxImageBytes); err != nil {
		badRequest(w, "invalid multipart body")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		badRequest(w, "image is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		badRequest(w, "could not read image")
		return
	}

	sel := richtext.Selection{Region: r.FormValue("region")}
	if sel.Region != "" {
		if sel.Start, err = strconv.Atoi(r.FormValue("start")); err != nil {
			badRequest(w, "start must be an integer")
			return
		}
		if sel.End, err = strconv.Atoi(r.FormValue("end")); err != nil {
			badRequest(w, "end must be an integer")
			return
		}
	}
	img := richtext.Image{Data: data, Target: r.FormValue("target")}

	if err := s.session.InsertImage(sel, img); err != nil {
		writeError(w, err)
		return
	}

	region := sel.Region
	if region == "" {
		region = img.Target
	}
	if region == "" {
		region = fields.RegionBody
	}
	html, _ := s.session.Region(region)
	writeJSON(w, http.StatusOK, regionPayload{ID: region, HTML: html})
}
