package server

import (
	"context"
	"io"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/goliatone/go-articlegen/pkg/editor"
)

const defaultMaxImageBytes = 10 << 20

// Config holds server configuration.
type Config struct {
	Addr string
	// CORSOrigins lists allowed origins. Empty allows localhost only; "*"
	// allows every origin.
	CORSOrigins []string
	// TemplatesFS is served under /templates when set.
	TemplatesFS fs.FS
	// AssetsFS is served under /assets and linked from the editable page
	// when set.
	AssetsFS fs.FS
	// MaxImageBytes caps image uploads.
	MaxImageBytes int64
}

// Server exposes one editor session over HTTP, standing in for the browser
// editor UI.
type Server struct {
	cfg        Config
	session    *editor.Session
	logger     *log.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server around session. A nil logger discards output.
func New(cfg Config, session *editor.Session, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = defaultMaxImageBytes
	}
	s := &Server{
		cfg:     cfg,
		session: session,
		logger:  logger,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(s.cfg.CORSOrigins) > 0 {
		corsOpts.AllowedOrigins = s.cfg.CORSOrigins
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", s.handleEditView)
	r.Get("/preview", s.handlePreview)
	r.Get("/export", s.handleExport)

	if s.cfg.TemplatesFS != nil {
		r.Handle("/templates/*", http.StripPrefix("/templates/", http.FileServerFS(s.cfg.TemplatesFS)))
	}
	if s.cfg.AssetsFS != nil {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServerFS(s.cfg.AssetsFS)))
	}

	registerAPI(r, s)
	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Session returns the session served.
func (s *Server) Session() *editor.Session { return s.session }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Printf("articlegen server listening on %s", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
