// Package document owns the resume document: a closed set of typed
// operations and a Store that applies them in order and persists the result.
package document

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// DocumentKey is the storage key of the serialized document.
const DocumentKey = "resumeData"

// Store holds the current document. Mutations are serialized and applied in
// call order; after each one the full document is written to storage.
// Storage failures are logged and never undo the in-memory change.
type Store struct {
	mu     sync.Mutex
	kv     storage.KV
	logger *log.Logger
	doc    types.ResumeDocument
	subs   map[chan types.ResumeDocument]struct{}
}

// NewStore loads the persisted document from kv (or the default document) and
// returns a store over it.
func NewStore(ctx context.Context, kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		kv:     kv,
		logger: logger,
		doc:    Load(ctx, kv, logger),
		subs:   make(map[chan types.ResumeDocument]struct{}),
	}
}

// Load reads the persisted document and decodes it over the default document,
// so fields missing from older saves keep their defaults. An absent, invalid
// or unreadable value yields the default document.
func Load(ctx context.Context, kv storage.KV, logger *log.Logger) types.ResumeDocument {
	raw, ok, err := kv.Get(ctx, DocumentKey)
	if err != nil {
		logger.Warn("failed to read saved resume, starting empty", "key", DocumentKey, "err", err)
		return types.NewResumeDocument()
	}
	if !ok {
		return types.NewResumeDocument()
	}

	doc, err := Decode(raw)
	if err != nil {
		logger.Warn("discarding malformed saved resume", "key", DocumentKey, "err", err)
		return types.NewResumeDocument()
	}
	return doc
}

// Decode validates raw against the document schema and decodes it over the
// default document.
func Decode(raw string) (types.ResumeDocument, error) {
	if err := schemas.ValidateDocument(raw); err != nil {
		return types.ResumeDocument{}, err
	}
	doc := types.NewResumeDocument()
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return types.ResumeDocument{}, err
	}
	doc.Normalize()
	return doc, nil
}

// Document returns a deep copy of the current document.
func (s *Store) Document() types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Subscribe returns a channel that receives the latest document after each
// mutation, and a function that ends the subscription. A slow reader only
// ever sees the most recent snapshot.
func (s *Store) Subscribe() (<-chan types.ResumeDocument, func()) {
	ch := make(chan types.ResumeDocument, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, ch)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Reset replaces the document with the default empty one.
func (s *Store) Reset(ctx context.Context) {
	_ = s.apply(ctx, func(types.ResumeDocument) (types.ResumeDocument, error) {
		return types.NewResumeDocument(), nil
	})
}

// UpdatePersonalInfo merges the non-nil patch fields into personalInfo.
func (s *Store) UpdatePersonalInfo(ctx context.Context, patch types.PersonalInfoPatch) {
	_ = s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return UpdatePersonalInfo(doc, patch), nil
	})
}

// UpdateSummary replaces the summary.
func (s *Store) UpdateSummary(ctx context.Context, summary string) {
	_ = s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return UpdateSummary(doc, summary), nil
	})
}

// AddWebsite appends a website link and returns it with its new id.
func (s *Store) AddWebsite(ctx context.Context, w types.WebsiteLink) (types.WebsiteLink, error) {
	err := s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		var err error
		doc, w, err = AddWebsite(doc, w)
		return doc, err
	})
	return w, err
}

// UpdateWebsite merges patch into the website link with the given id.
func (s *Store) UpdateWebsite(ctx context.Context, id string, patch types.WebsiteLinkPatch) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return UpdateWebsite(doc, id, patch)
	})
}

// RemoveWebsite removes the website link with the given id.
func (s *Store) RemoveWebsite(ctx context.Context, id string) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return RemoveWebsite(doc, id)
	})
}

// AddWorkExperience appends a position and returns it with its new id.
func (s *Store) AddWorkExperience(ctx context.Context, e types.WorkExperience) (types.WorkExperience, error) {
	err := s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		var err error
		doc, e, err = AddWorkExperience(doc, e)
		return doc, err
	})
	return e, err
}

// UpdateWorkExperience merges patch into the position with the given id.
func (s *Store) UpdateWorkExperience(ctx context.Context, id string, patch types.WorkExperiencePatch) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return UpdateWorkExperience(doc, id, patch)
	})
}

// RemoveWorkExperience removes the position with the given id.
func (s *Store) RemoveWorkExperience(ctx context.Context, id string) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return RemoveWorkExperience(doc, id)
	})
}

// AddEducation appends an education entry and returns it with its new id.
func (s *Store) AddEducation(ctx context.Context, e types.Education) (types.Education, error) {
	err := s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		var err error
		doc, e, err = AddEducation(doc, e)
		return doc, err
	})
	return e, err
}

// UpdateEducation merges patch into the education entry with the given id.
func (s *Store) UpdateEducation(ctx context.Context, id string, patch types.EducationPatch) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return UpdateEducation(doc, id, patch)
	})
}

// RemoveEducation removes the education entry with the given id.
func (s *Store) RemoveEducation(ctx context.Context, id string) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return RemoveEducation(doc, id)
	})
}

// AddSkill appends a skill and returns it with its new id.
func (s *Store) AddSkill(ctx context.Context, sk types.Skill) (types.Skill, error) {
	err := s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		var err error
		doc, sk, err = AddSkill(doc, sk)
		return doc, err
	})
	return sk, err
}

// UpdateSkill merges patch into the skill with the given id.
func (s *Store) UpdateSkill(ctx context.Context, id string, patch types.SkillPatch) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return UpdateSkill(doc, id, patch)
	})
}

// RemoveSkill removes the skill with the given id.
func (s *Store) RemoveSkill(ctx context.Context, id string) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return RemoveSkill(doc, id)
	})
}

// AddNote appends an achievement, award or certification, selected by
// collection name, and returns it with its new id.
func (s *Store) AddNote(ctx context.Context, collection string, n types.DatedNote) (types.DatedNote, error) {
	err := s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		var err error
		doc, n, err = addNote(doc, collection, n)
		return doc, err
	})
	return n, err
}

// UpdateNote merges patch into the achievement, award or certification with the given id.
func (s *Store) UpdateNote(ctx context.Context, collection, id string, patch types.DatedNotePatch) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return updateNote(doc, collection, id, patch)
	})
}

// RemoveNote removes the achievement, award or certification with the given id.
func (s *Store) RemoveNote(ctx context.Context, collection, id string) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return removeNote(doc, collection, id)
	})
}

// AddCustomSection appends a custom section and returns it with its id and order.
func (s *Store) AddCustomSection(ctx context.Context, cs types.CustomSection) (types.CustomSection, error) {
	err := s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		var err error
		doc, cs, err = AddCustomSection(doc, cs)
		return doc, err
	})
	return cs, err
}

// UpdateCustomSection merges patch into the custom section with the given id.
func (s *Store) UpdateCustomSection(ctx context.Context, id string, patch types.CustomSectionPatch) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return UpdateCustomSection(doc, id, patch)
	})
}

// RemoveCustomSection removes the custom section with the given id.
func (s *Store) RemoveCustomSection(ctx context.Context, id string) error {
	return s.apply(ctx, func(doc types.ResumeDocument) (types.ResumeDocument, error) {
		return RemoveCustomSection(doc, id)
	})
}

// apply runs op against the current document. On error nothing changes and
// nothing is persisted.
func (s *Store) apply(ctx context.Context, op func(types.ResumeDocument) (types.ResumeDocument, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := op(s.doc)
	if err != nil {
		return err
	}
	s.doc = next
	s.persist(ctx)
	s.publish()
	return nil
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.doc)
	if err != nil {
		s.logger.Error("failed to encode resume", "err", err)
		return
	}
	if err := s.kv.Set(ctx, DocumentKey, string(data)); err != nil {
		s.logger.Error("failed to save resume", "key", DocumentKey, "err", err)
	}
}

func (s *Store) publish() {
	for ch := range s.subs {
		snap := s.doc.Clone()
		select {
		case ch <- snap:
		default:
			// drop the stale snapshot so the reader sees the newest one
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
