package document

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// failingKV reads like an empty store and fails every write.
type failingKV struct {
	writes int
}

func (f *failingKV) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (f *failingKV) Delete(context.Context, string) error              { return nil }
func (f *failingKV) Close() error                                      { return nil }
func (f *failingKV) Set(context.Context, string, string) error {
	f.writes++
	return errors.New("quota exceeded")
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewStore(ctx, kv, quietLogger())

	s.UpdatePersonalInfo(ctx, types.PersonalInfoPatch{FullName: strPtr("Jane Doe")})
	s.UpdateSummary(ctx, "Builds **reliable** systems")
	_, err := s.AddWebsite(ctx, types.WebsiteLink{Label: "Blog", URL: "https://jane.dev"})
	require.NoError(t, err)
	exp, err := s.AddWorkExperience(ctx, types.WorkExperience{Company: "Acme", Position: "Engineer", StartDate: "2021-01", Current: true, Description: []string{"Shipped", " "}})
	require.NoError(t, err)
	_, err = s.AddEducation(ctx, types.Education{Institution: "MIT", Degree: "BS", Field: "CS"})
	require.NoError(t, err)
	sk, err := s.AddSkill(ctx, types.Skill{Name: "Go", Category: "Lang"})
	require.NoError(t, err)
	_, err = s.AddNote(ctx, CollectionAchievements, types.DatedNote{Description: "Won", Date: "2022-03"})
	require.NoError(t, err)
	_, err = s.AddNote(ctx, CollectionCertifications, types.DatedNote{Description: "CKA"})
	require.NoError(t, err)
	_, err = s.AddCustomSection(ctx, types.CustomSection{Title: "Languages", Content: types.ListContent{Items: []string{"English"}}})
	require.NoError(t, err)
	require.NoError(t, s.UpdateWorkExperience(ctx, exp.ID, types.WorkExperiencePatch{Location: strPtr("Remote")}))
	require.NoError(t, s.RemoveSkill(ctx, sk.ID))

	reloaded := NewStore(ctx, kv, quietLogger())
	assert.Equal(t, s.Document(), reloaded.Document())
	assert.Equal(t, "Remote", reloaded.Document().WorkExperience[0].Location)
	assert.Empty(t, reloaded.Document().Skills)
}

func TestStore_MissingIDDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewStore(ctx, kv, quietLogger())

	err := s.RemoveEducation(ctx, "missing")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)

	_, ok, err := kv.Get(ctx, DocumentKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PersistFailureStillUpdates(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{}
	s := NewStore(ctx, kv, quietLogger())

	s.UpdateSummary(ctx, "still here")
	_, err := s.AddSkill(ctx, types.Skill{Name: "Go"})
	require.NoError(t, err)

	assert.Equal(t, "still here", s.Document().Summary)
	assert.Len(t, s.Document().Skills, 1)
	assert.Equal(t, 2, kv.writes)
}

func TestLoad_FallsBackOnMalformedData(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{oops"},
		{"wrong shape", `{"workExperience": "lots"}`},
		{"unknown section type", `{"customSections": [{"id": "c1", "type": "chart"}]}`},
		{"array root", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			require.NoError(t, kv.Set(ctx, DocumentKey, tt.raw))

			doc := Load(ctx, kv, quietLogger())
			assert.Equal(t, types.NewResumeDocument(), doc)
		})
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	// An older save with no websites, certifications or custom sections.
	require.NoError(t, kv.Set(ctx, DocumentKey, `{
		"personalInfo": {"fullName": "Jane Doe"},
		"summary": "Hi",
		"skills": null,
		"workExperience": [{"id": "e1", "company": "Acme", "description": null}]
	}`))

	doc := Load(ctx, kv, quietLogger())
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.NotNil(t, doc.PersonalInfo.Websites)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Certifications)
	assert.NotNil(t, doc.CustomSections)
	require.Len(t, doc.WorkExperience, 1)
	assert.NotNil(t, doc.WorkExperience[0].Description)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"customSections":[]`)
}

func TestStore_DocumentIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, storage.NewMemoryKV(), quietLogger())
	_, err := s.AddWorkExperience(ctx, types.WorkExperience{Company: "Acme", Description: []string{"one"}})
	require.NoError(t, err)

	doc := s.Document()
	doc.WorkExperience[0].Description[0] = "mutated"
	assert.Equal(t, "one", s.Document().WorkExperience[0].Description[0])
}

func TestStore_SubscribeReceivesLatest(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, storage.NewMemoryKV(), quietLogger())

	ch, cancel := s.Subscribe()
	s.UpdateSummary(ctx, "first")
	s.UpdateSummary(ctx, "second")

	select {
	case doc := <-ch:
		assert.Equal(t, "second", doc.Summary)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)

	s.UpdateSummary(ctx, "after cancel")
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewStore(ctx, kv, quietLogger())
	s.UpdateSummary(ctx, "something")

	s.Reset(ctx)
	assert.Equal(t, types.NewResumeDocument(), s.Document())
	assert.Equal(t, types.NewResumeDocument(), NewStore(ctx, kv, quietLogger()).Document())
}
