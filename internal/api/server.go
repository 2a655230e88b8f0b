// Package api exposes the deckforge HTTP surface: template CRUD, palette
// generation, and asynchronous export jobs.
//
// Rendering always goes through pkg/pipeline so the API and the CLI produce
// byte-identical artifacts for the same template state. Export is
// asynchronous: POST /export returns 202 with a job ID, the job worker
// renders in the background, and the artifact is fetched from the download
// endpoint once the job completes.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deckforge/deckforge/internal/store"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/pipeline"
)

// Server is the deckforge HTTP API.
type Server struct {
	templates store.TemplateRepository
	jobs      *JobManager
	runner    *pipeline.Runner
	logger    *log.Logger

	httpServer *http.Server
}

// Options configures the server.
type Options struct {
	Addr      string
	Templates store.TemplateRepository
	Jobs      store.JobStore
	Runner    *pipeline.Runner
	Logger    *log.Logger
}

// NewServer wires the router, the job manager, and the stores.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Server{
		templates: opts.Templates,
		jobs:      NewJobManager(opts.Jobs, opts.Runner, opts.Logger),
		runner:    opts.Runner,
		logger:    opts.Logger,
	}
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/templates", func(r chi.Router) {
		r.Post("/", s.handleCreateTemplate)
		r.Get("/", s.handleListTemplates)
		r.Get("/{templateID}", s.handleGetTemplate)
		r.Put("/{templateID}", s.handleUpdateTemplate)
		r.Delete("/{templateID}", s.handleDeleteTemplate)
	})

	r.Post("/palette", s.handlePalette)

	r.Post("/export/{templateID}", s.handleStartExport)
	r.Get("/export/status/{jobID}", s.handleExportStatus)
	r.Get("/export/download/{jobID}", s.handleExportDownload)

	return r
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// errorBody is the JSON error envelope shared by every endpoint.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps error codes onto HTTP statuses and emits the envelope.
func writeError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	body.Error.Message = errors.UserMessage(err)
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	writeJSON(w, statusFor(errors.GetCode(err)), body)
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeTemplateNotFound, errors.ErrCodeJobNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidColorFormat, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidMood, errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidHarmony, errors.ErrCodeValidation, errors.ErrCodeExportNotReady:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
