// Package server provides the local HTTP API of the resume builder.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/templates"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *document.Store
	registry   *templates.Registry
	renderer   *rendering.Renderer
	exports    *export.Service
	logger     *log.Logger
}

// Config holds server configuration
type Config struct {
	Port int
}

// Deps are the components the server exposes.
type Deps struct {
	Store    *document.Store
	Registry *templates.Registry
	Renderer *rendering.Renderer
	Exports  *export.Service
	Logger   *log.Logger
}

// New creates a new server instance
func New(cfg Config, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		store:    deps.Store,
		registry: deps.Registry,
		renderer: deps.Renderer,
		exports:  deps.Exports,
		logger:   logger,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // preview stream stays open
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document
	mux.HandleFunc("GET /document", s.handleGetDocument)
	mux.HandleFunc("DELETE /document", s.handleResetDocument)
	mux.HandleFunc("PATCH /document/personal-info", s.handleUpdatePersonalInfo)
	mux.HandleFunc("PUT /document/summary", s.handleUpdateSummary)
	mux.HandleFunc("POST /document/{collection}", s.handleAddEntry)
	mux.HandleFunc("PATCH /document/{collection}/{id}", s.handleUpdateEntry)
	mux.HandleFunc("DELETE /document/{collection}/{id}", s.handleRemoveEntry)

	// Templates
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /templates/active", s.handleGetActiveTemplate)
	mux.HandleFunc("PUT /templates/active", s.handleSelectTemplate)
	mux.HandleFunc("PUT /templates/overrides/typography", s.handleSetTypography)
	mux.HandleFunc("PUT /templates/overrides/colors", s.handleSetColors)
	mux.HandleFunc("DELETE /templates/overrides", s.handleResetOverrides)

	// Preview and export
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /preview/stream", s.handlePreviewStream)
	mux.HandleFunc("POST /export/pdf", s.handleExportPDF)
	mux.HandleFunc("POST /export/docx", s.handleExportDOCX)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until ctx is done, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE streaming working through the middleware.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", time.Since(start).Round(time.Microsecond),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", "err", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// errorFor writes err with the status HTTPStatus maps it to.
func (s *Server) errorFor(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.errorResponse(w, status, err.Error())
}

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &BadRequestError{Message: "invalid request body: " + err.Error()}
	}
	return nil
}
