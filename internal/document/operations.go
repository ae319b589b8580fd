package document

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// The functions in this file are the closed set of document operations.
// Each takes a document value and returns a new one; the input's slices are
// never written to, so untouched branches can be shared between snapshots.

// newID generates entity ids. Tests replace it for deterministic output.
var newID = func() string { return uuid.New().String() }

// UpdatePersonalInfo merges the non-nil patch fields into personalInfo.
func UpdatePersonalInfo(doc types.ResumeDocument, patch types.PersonalInfoPatch) types.ResumeDocument {
	doc.PersonalInfo = patch.Apply(doc.PersonalInfo)
	return doc
}

// UpdateSummary replaces the summary.
func UpdateSummary(doc types.ResumeDocument, summary string) types.ResumeDocument {
	doc.Summary = summary
	return doc
}

// AddWebsite appends a website link with a fresh id.
func AddWebsite(doc types.ResumeDocument, w types.WebsiteLink) (types.ResumeDocument, types.WebsiteLink, error) {
	w.ID = newID()
	if err := w.Validate(); err != nil {
		return doc, w, &ValidationError{Collection: CollectionWebsites, Cause: err}
	}
	doc.PersonalInfo.Websites = appendItem(doc.PersonalInfo.Websites, w)
	return doc, w, nil
}

// UpdateWebsite merges patch into the website link with the given id.
func UpdateWebsite(doc types.ResumeDocument, id string, patch types.WebsiteLinkPatch) (types.ResumeDocument, error) {
	i := indexOf(doc.PersonalInfo.Websites, id, func(w types.WebsiteLink) string { return w.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionWebsites, ID: id}
	}
	updated := patch.Apply(doc.PersonalInfo.Websites[i])
	if err := updated.Validate(); err != nil {
		return doc, &ValidationError{Collection: CollectionWebsites, Cause: err}
	}
	doc.PersonalInfo.Websites = replaceAt(doc.PersonalInfo.Websites, i, updated)
	return doc, nil
}

// RemoveWebsite removes the website link with the given id.
func RemoveWebsite(doc types.ResumeDocument, id string) (types.ResumeDocument, error) {
	i := indexOf(doc.PersonalInfo.Websites, id, func(w types.WebsiteLink) string { return w.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionWebsites, ID: id}
	}
	doc.PersonalInfo.Websites = removeAt(doc.PersonalInfo.Websites, i)
	return doc, nil
}

// AddWorkExperience appends a position with a fresh id.
func AddWorkExperience(doc types.ResumeDocument, e types.WorkExperience) (types.ResumeDocument, types.WorkExperience, error) {
	e.ID = newID()
	e = settleCurrent(copyExperience(e))
	if err := e.Validate(); err != nil {
		return doc, e, &ValidationError{Collection: CollectionExperience, Cause: err}
	}
	doc.WorkExperience = appendItem(doc.WorkExperience, e)
	return doc, e, nil
}

// UpdateWorkExperience merges patch into the position with the given id.
func UpdateWorkExperience(doc types.ResumeDocument, id string, patch types.WorkExperiencePatch) (types.ResumeDocument, error) {
	if err := patch.Validate(); err != nil {
		return doc, &ValidationError{Collection: CollectionExperience, Cause: err}
	}
	i := indexOf(doc.WorkExperience, id, func(e types.WorkExperience) string { return e.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionExperience, ID: id}
	}
	doc.WorkExperience = replaceAt(doc.WorkExperience, i, settleCurrent(patch.Apply(doc.WorkExperience[i])))
	return doc, nil
}

// RemoveWorkExperience removes the position with the given id.
func RemoveWorkExperience(doc types.ResumeDocument, id string) (types.ResumeDocument, error) {
	i := indexOf(doc.WorkExperience, id, func(e types.WorkExperience) string { return e.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionExperience, ID: id}
	}
	doc.WorkExperience = removeAt(doc.WorkExperience, i)
	return doc, nil
}

// AddEducation appends an education entry with a fresh id.
func AddEducation(doc types.ResumeDocument, e types.Education) (types.ResumeDocument, types.Education, error) {
	e.ID = newID()
	if err := e.Validate(); err != nil {
		return doc, e, &ValidationError{Collection: CollectionEducation, Cause: err}
	}
	doc.Education = appendItem(doc.Education, e)
	return doc, e, nil
}

// UpdateEducation merges patch into the education entry with the given id.
func UpdateEducation(doc types.ResumeDocument, id string, patch types.EducationPatch) (types.ResumeDocument, error) {
	if err := patch.Validate(); err != nil {
		return doc, &ValidationError{Collection: CollectionEducation, Cause: err}
	}
	i := indexOf(doc.Education, id, func(e types.Education) string { return e.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionEducation, ID: id}
	}
	doc.Education = replaceAt(doc.Education, i, patch.Apply(doc.Education[i]))
	return doc, nil
}

// RemoveEducation removes the education entry with the given id.
func RemoveEducation(doc types.ResumeDocument, id string) (types.ResumeDocument, error) {
	i := indexOf(doc.Education, id, func(e types.Education) string { return e.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionEducation, ID: id}
	}
	doc.Education = removeAt(doc.Education, i)
	return doc, nil
}

// AddSkill appends a skill with a fresh id.
func AddSkill(doc types.ResumeDocument, s types.Skill) (types.ResumeDocument, types.Skill, error) {
	s.ID = newID()
	if err := s.Validate(); err != nil {
		return doc, s, &ValidationError{Collection: CollectionSkills, Cause: err}
	}
	doc.Skills = appendItem(doc.Skills, s)
	return doc, s, nil
}

// UpdateSkill merges patch into the skill with the given id.
func UpdateSkill(doc types.ResumeDocument, id string, patch types.SkillPatch) (types.ResumeDocument, error) {
	i := indexOf(doc.Skills, id, func(s types.Skill) string { return s.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionSkills, ID: id}
	}
	updated := patch.Apply(doc.Skills[i])
	if err := updated.Validate(); err != nil {
		return doc, &ValidationError{Collection: CollectionSkills, Cause: err}
	}
	doc.Skills = replaceAt(doc.Skills, i, updated)
	return doc, nil
}

// RemoveSkill removes the skill with the given id.
func RemoveSkill(doc types.ResumeDocument, id string) (types.ResumeDocument, error) {
	i := indexOf(doc.Skills, id, func(s types.Skill) string { return s.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionSkills, ID: id}
	}
	doc.Skills = removeAt(doc.Skills, i)
	return doc, nil
}

// AddAchievement appends an achievement with a fresh id.
func AddAchievement(doc types.ResumeDocument, n types.DatedNote) (types.ResumeDocument, types.DatedNote, error) {
	return addNote(doc, CollectionAchievements, n)
}

// UpdateAchievement merges patch into the achievement with the given id.
func UpdateAchievement(doc types.ResumeDocument, id string, patch types.DatedNotePatch) (types.ResumeDocument, error) {
	return updateNote(doc, CollectionAchievements, id, patch)
}

// RemoveAchievement removes the achievement with the given id.
func RemoveAchievement(doc types.ResumeDocument, id string) (types.ResumeDocument, error) {
	return removeNote(doc, CollectionAchievements, id)
}

// AddAward appends an award with a fresh id.
func AddAward(doc types.ResumeDocument, n types.DatedNote) (types.ResumeDocument, types.DatedNote, error) {
	return addNote(doc, CollectionAwards, n)
}

// UpdateAward merges patch into the award with the given id.
func UpdateAward(doc types.ResumeDocument, id string, patch types.DatedNotePatch) (types.ResumeDocument, error) {
	return updateNote(doc, CollectionAwards, id, patch)
}

// RemoveAward removes the award with the given id.
func RemoveAward(doc types.ResumeDocument, id string) (types.ResumeDocument, error) {
	return removeNote(doc, CollectionAwards, id)
}

// AddCertification appends a certification with a fresh id.
func AddCertification(doc types.ResumeDocument, n types.DatedNote) (types.ResumeDocument, types.DatedNote, error) {
	return addNote(doc, CollectionCertifications, n)
}

// UpdateCertification merges patch into the certification with the given id.
func UpdateCertification(doc types.ResumeDocument, id string, patch types.DatedNotePatch) (types.ResumeDocument, error) {
	return updateNote(doc, CollectionCertifications, id, patch)
}

// RemoveCertification removes the certification with the given id.
func RemoveCertification(doc types.ResumeDocument, id string) (types.ResumeDocument, error) {
	return removeNote(doc, CollectionCertifications, id)
}

// AddCustomSection appends a custom section with a fresh id and
// order = number of existing sections + 1. A nil content becomes an empty list.
func AddCustomSection(doc types.ResumeDocument, s types.CustomSection) (types.ResumeDocument, types.CustomSection, error) {
	s = s.Clone()
	s.ID = newID()
	s.Order = len(doc.CustomSections) + 1
	if s.Content == nil {
		s.Content = types.ListContent{Items: []string{}}
	}
	doc.CustomSections = appendItem(doc.CustomSections, s)
	return doc, s, nil
}

// UpdateCustomSection merges patch into the custom section with the given id.
func UpdateCustomSection(doc types.ResumeDocument, id string, patch types.CustomSectionPatch) (types.ResumeDocument, error) {
	i := indexOf(doc.CustomSections, id, func(s types.CustomSection) string { return s.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionCustomSections, ID: id}
	}
	cur := doc.CustomSections[i]
	patch, err := patch.Resolve(cur)
	if err != nil {
		return doc, &ValidationError{Collection: CollectionCustomSections, Cause: err}
	}
	doc.CustomSections = replaceAt(doc.CustomSections, i, patch.Apply(cur))
	return doc, nil
}

// RemoveCustomSection removes the custom section with the given id. The
// remaining sections keep their order values.
func RemoveCustomSection(doc types.ResumeDocument, id string) (types.ResumeDocument, error) {
	i := indexOf(doc.CustomSections, id, func(s types.CustomSection) string { return s.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: CollectionCustomSections, ID: id}
	}
	doc.CustomSections = removeAt(doc.CustomSections, i)
	return doc, nil
}

// notes returns a pointer to the DatedNote collection with the given name.
func notes(doc *types.ResumeDocument, collection string) (*[]types.DatedNote, error) {
	switch collection {
	case CollectionAchievements:
		return &doc.Achievements, nil
	case CollectionAwards:
		return &doc.Awards, nil
	case CollectionCertifications:
		return &doc.Certifications, nil
	}
	return nil, fmt.Errorf("%q is not a dated note collection", collection)
}

func addNote(doc types.ResumeDocument, collection string, n types.DatedNote) (types.ResumeDocument, types.DatedNote, error) {
	list, err := notes(&doc, collection)
	if err != nil {
		return doc, n, err
	}
	n.ID = newID()
	if err := n.Validate(); err != nil {
		return doc, n, &ValidationError{Collection: collection, Cause: err}
	}
	*list = appendItem(*list, n)
	return doc, n, nil
}

func updateNote(doc types.ResumeDocument, collection, id string, patch types.DatedNotePatch) (types.ResumeDocument, error) {
	if err := patch.Validate(); err != nil {
		return doc, &ValidationError{Collection: collection, Cause: err}
	}
	list, err := notes(&doc, collection)
	if err != nil {
		return doc, err
	}
	i := indexOf(*list, id, func(n types.DatedNote) string { return n.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: collection, ID: id}
	}
	*list = replaceAt(*list, i, patch.Apply((*list)[i]))
	return doc, nil
}

func removeNote(doc types.ResumeDocument, collection, id string) (types.ResumeDocument, error) {
	list, err := notes(&doc, collection)
	if err != nil {
		return doc, err
	}
	i := indexOf(*list, id, func(n types.DatedNote) string { return n.ID })
	if i < 0 {
		return doc, &NotFoundError{Collection: collection, ID: id}
	}
	*list = removeAt(*list, i)
	return doc, nil
}

// settleCurrent clears endDate on a current position.
func settleCurrent(e types.WorkExperience) types.WorkExperience {
	if e.Current {
		e.EndDate = ""
	}
	return e
}

// copyExperience detaches the caller's bullet slices from the stored entry.
func copyExperience(e types.WorkExperience) types.WorkExperience {
	e.Description = append([]string{}, e.Description...)
	e.Achievements = append([]string{}, e.Achievements...)
	e.Technologies = append([]string{}, e.Technologies...)
	return e
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func appendItem[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func replaceAt[T any](items []T, i int, item T) []T {
	out := append(make([]T, 0, len(items)), items...)
	out[i] = item
	return out
}

func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
