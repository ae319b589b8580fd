package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

// SummaryRequest is the body of PUT /document/summary
type SummaryRequest struct {
	Summary string `json:"summary"`
}

// CustomSectionPatchRequest is the body of PATCH /document/custom-sections/{id}.
// With Type set, Content is decoded as that variant. Without it, Content is
// decoded against the section's stored type.
type CustomSectionPatchRequest struct {
	Title   *string           `json:"title,omitempty"`
	Order   *int              `json:"order,omitempty"`
	Type    types.SectionType `json:"type,omitempty"`
	Content json.RawMessage   `json:"content,omitempty"`
}

func (req CustomSectionPatchRequest) patch() (types.CustomSectionPatch, error) {
	p := types.CustomSectionPatch{Title: req.Title, Order: req.Order}
	if req.Type == "" {
		p.RawContent = req.Content
		return p, nil
	}
	content, err := types.DecodeSectionContent(req.Type, req.Content)
	if err != nil {
		return p, &BadRequestError{Message: err.Error()}
	}
	p.Content = content
	return p, nil
}

func isNoteCollection(c string) bool {
	switch c {
	case document.CollectionAchievements, document.CollectionAwards, document.CollectionCertifications:
		return true
	}
	return false
}

// handleGetDocument returns the current document
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handleResetDocument replaces the document with the empty default
func (s *Server) handleResetDocument(w http.ResponseWriter, r *http.Request) {
	s.store.Reset(r.Context())
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handleUpdatePersonalInfo merges the given fields into personal info
func (s *Server) handleUpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var patch types.PersonalInfoPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.errorFor(w, err)
		return
	}
	s.store.UpdatePersonalInfo(r.Context(), patch)
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handleUpdateSummary replaces the summary
func (s *Server) handleUpdateSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFor(w, err)
		return
	}
	s.store.UpdateSummary(r.Context(), req.Summary)
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handleAddEntry appends an entry to a collection and returns it with its id
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")

	var (
		created any
		err     error
	)
	switch {
	case collection == document.CollectionWebsites:
		created, err = add(w, r, s.store.AddWebsite)
	case collection == document.CollectionExperience:
		created, err = add(w, r, s.store.AddWorkExperience)
	case collection == document.CollectionEducation:
		created, err = add(w, r, s.store.AddEducation)
	case collection == document.CollectionSkills:
		created, err = add(w, r, s.store.AddSkill)
	case isNoteCollection(collection):
		created, err = add(w, r, func(ctx context.Context, n types.DatedNote) (types.DatedNote, error) {
			return s.store.AddNote(ctx, collection, n)
		})
	case collection == document.CollectionCustomSections:
		created, err = add(w, r, s.store.AddCustomSection)
	default:
		err = &UnknownCollectionError{Collection: collection}
	}
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateEntry merges a patch into the entry with the given id
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	id := r.PathValue("id")

	var err error
	switch {
	case collection == document.CollectionWebsites:
		err = update(w, r, id, s.store.UpdateWebsite)
	case collection == document.CollectionExperience:
		err = update(w, r, id, s.store.UpdateWorkExperience)
	case collection == document.CollectionEducation:
		err = update(w, r, id, s.store.UpdateEducation)
	case collection == document.CollectionSkills:
		err = update(w, r, id, s.store.UpdateSkill)
	case isNoteCollection(collection):
		err = update(w, r, id, func(ctx context.Context, id string, p types.DatedNotePatch) error {
			return s.store.UpdateNote(ctx, collection, id, p)
		})
	case collection == document.CollectionCustomSections:
		err = update(w, r, id, func(ctx context.Context, id string, req CustomSectionPatchRequest) error {
			p, err := req.patch()
			if err != nil {
				return err
			}
			return s.store.UpdateCustomSection(ctx, id, p)
		})
	default:
		err = &UnknownCollectionError{Collection: collection}
	}
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handleRemoveEntry removes the entry with the given id
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	id := r.PathValue("id")
	ctx := r.Context()

	var err error
	switch {
	case collection == document.CollectionWebsites:
		err = s.store.RemoveWebsite(ctx, id)
	case collection == document.CollectionExperience:
		err = s.store.RemoveWorkExperience(ctx, id)
	case collection == document.CollectionEducation:
		err = s.store.RemoveEducation(ctx, id)
	case collection == document.CollectionSkills:
		err = s.store.RemoveSkill(ctx, id)
	case isNoteCollection(collection):
		err = s.store.RemoveNote(ctx, collection, id)
	case collection == document.CollectionCustomSections:
		err = s.store.RemoveCustomSection(ctx, id)
	default:
		err = &UnknownCollectionError{Collection: collection}
	}
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// add decodes an entity of type T and passes it to fn.
func add[T any](w http.ResponseWriter, r *http.Request, fn func(context.Context, T) (T, error)) (any, error) {
	var in T
	if err := decodeJSON(w, r, &in); err != nil {
		return nil, err
	}
	return fn(r.Context(), in)
}

// update decodes a patch of type P and passes it to fn with id.
func update[P any](w http.ResponseWriter, r *http.Request, id string, fn func(context.Context, string, P) error) error {
	var patch P
	if err := decodeJSON(w, r, &patch); err != nil {
		return err
	}
	return fn(r.Context(), id, patch)
}
