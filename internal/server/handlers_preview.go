package server

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

// PreviewEvent is the payload of a "preview" event on the preview stream
type PreviewEvent struct {
	TemplateID string `json:"template_id"`
	HTML       string `json:"html"`
}

func (s *Server) renderPreview(doc types.ResumeDocument) (PreviewEvent, error) {
	style := s.registry.Effective()
	html, err := s.renderer.Render(doc, style)
	if err != nil {
		return PreviewEvent{}, err
	}
	return PreviewEvent{TemplateID: style.ID, HTML: html}, nil
}

// handlePreview renders the current document under the active template
func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	preview, err := s.renderPreview(s.store.Document())
	if err != nil {
		s.errorFor(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(preview.HTML)); err != nil {
		s.logger.Error("failed to write preview", "err", err)
	}
}

// handlePreviewStream sends the rendered preview now and again after every
// document change, until the client disconnects.
func (s *Server) handlePreviewStream(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	updates, cancel := s.store.Subscribe()
	defer cancel()

	send := func(doc types.ResumeDocument) bool {
		preview, err := s.renderPreview(doc)
		if err != nil {
			s.logger.Error("preview render failed", "err", err)
			return sse.WriteError(err) == nil
		}
		return sse.WriteEvent("preview", preview) == nil
	}

	if !send(s.store.Document()) {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case doc, ok := <-updates:
			if !ok || !send(doc) {
				return
			}
		}
	}
}

// handleExportPDF prints the current preview to PDF
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Document()
	preview, err := s.renderPreview(doc)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	file, err := s.exports.PDF(r.Context(), doc, preview.HTML)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.attachment(w, file)
}

// handleExportDOCX builds the DOCX export of the current document
func (s *Server) handleExportDOCX(w http.ResponseWriter, r *http.Request) {
	file, err := s.exports.DOCX(r.Context(), s.store.Document())
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.attachment(w, file)
}

// attachment writes file as a download
func (s *Server) attachment(w http.ResponseWriter, file export.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		s.logger.Error("failed to write export", "file", file.Name, "err", err)
	}
}
