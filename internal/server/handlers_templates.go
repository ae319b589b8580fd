package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// SelectTemplateRequest is the body of PUT /templates/active
type SelectTemplateRequest struct {
	ID string `json:"id"`
}

// ActiveTemplateResponse describes the selected template and its overrides
type ActiveTemplateResponse struct {
	ID        string              `json:"id"`
	Style     types.TemplateStyle `json:"style"`
	Overrides templates.Overrides `json:"overrides"`
}

// handleListTemplates lists the template catalog
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	list := s.registry.List()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": list,
		"count":     len(list),
		"selected":  s.registry.Selected(),
	})
}

// handleGetActiveTemplate returns the effective style of the selected template
func (s *Server) handleGetActiveTemplate(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.activeTemplate())
}

// handleSelectTemplate selects a template, clearing any overrides
func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	var req SelectTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFor(w, err)
		return
	}
	if err := s.registry.Select(r.Context(), req.ID); err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.activeTemplate())
}

// handleSetTypography replaces the typography override. A JSON null clears it.
func (s *Server) handleSetTypography(w http.ResponseWriter, r *http.Request) {
	var t *types.Typography
	if err := decodeJSON(w, r, &t); err != nil {
		s.errorFor(w, err)
		return
	}
	s.registry.SetTypographyOverride(r.Context(), t)
	s.jsonResponse(w, http.StatusOK, s.activeTemplate())
}

// handleSetColors replaces the color override. A JSON null clears it.
func (s *Server) handleSetColors(w http.ResponseWriter, r *http.Request) {
	var c types.Colors
	if err := decodeJSON(w, r, &c); err != nil {
		s.errorFor(w, err)
		return
	}
	s.registry.SetColorOverride(r.Context(), c)
	s.jsonResponse(w, http.StatusOK, s.activeTemplate())
}

// handleResetOverrides clears both overrides
func (s *Server) handleResetOverrides(w http.ResponseWriter, r *http.Request) {
	s.registry.ResetOverrides(r.Context())
	s.jsonResponse(w, http.StatusOK, s.activeTemplate())
}

func (s *Server) activeTemplate() ActiveTemplateResponse {
	return ActiveTemplateResponse{
		ID:        s.registry.Selected(),
		Style:     s.registry.Effective(),
		Overrides: s.registry.Overrides(),
	}
}
