// Package layout computes what a resume shows and in which order. The HTML
// renderer and the DOCX exporter both consume it, so visibility and
// filtering rules live in one place.
package layout

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// Placeholder name shown when the document has none.
const PlaceholderName = "Your Name"

// Present replaces the end date of a current position.
const Present = "Present"

// Kind identifies a section.
type Kind string

// Section kinds, in their fixed display order. Custom sections follow.
const (
	KindSummary        Kind = "summary"
	KindExperience     Kind = "experience"
	KindEducation      Kind = "education"
	KindSkills         Kind = "skills"
	KindAchievements   Kind = "achievements"
	KindAwards         Kind = "awards"
	KindCertifications Kind = "certifications"
	KindCustom         Kind = "custom"
)

// Header is the name, contact line and links block.
type Header struct {
	Name    string
	Contact []string
	Links   []Link
}

// Link is a labelled URL in the header.
type Link struct {
	Label string
	URL   string
}

// Section is one visible block of the resume. Only the fields for its Kind are set.
type Section struct {
	Kind       Kind
	Title      string
	Summary    string
	Experience []ExperienceEntry
	Education  []EducationEntry
	Skills     []SkillGroup
	Notes      []NoteEntry
	Custom     *CustomEntry
}

// ExperienceEntry is a position with blank bullets removed and dates formatted.
type ExperienceEntry struct {
	Position     string
	Company      string
	Location     string
	Dates        string
	Description  []string
	Achievements []string
	Technologies []string
}

// EducationEntry is an education entry with dates formatted.
type EducationEntry struct {
	Degree      string
	Field       string
	Institution string
	Location    string
	GPA         string
	Dates       string
}

// NoteEntry is an achievement, award or certification with its date formatted.
type NoteEntry struct {
	Description string
	Date        string
}

// SkillGroup is the skills of one category, in stored order.
type SkillGroup struct {
	Category string
	Skills   []string
}

// CustomEntry is a custom section with its content filtered.
type CustomEntry struct {
	Type    types.SectionType
	Items   []string
	Text    string
	Headers []string
	Rows    [][]string
}

// BuildHeader projects personal info into the header block.
func BuildHeader(p types.PersonalInfo) Header {
	h := Header{Name: p.FullName}
	if strings.TrimSpace(h.Name) == "" {
		h.Name = PlaceholderName
	}
	for _, v := range []string{p.Email, p.Phone, p.Location} {
		if strings.TrimSpace(v) != "" {
			h.Contact = append(h.Contact, v)
		}
	}
	for _, w := range p.Websites {
		h.Links = append(h.Links, Link{Label: w.Label, URL: w.URL})
	}
	if p.LinkedIn != "" {
		h.Links = append(h.Links, Link{Label: "LinkedIn", URL: p.LinkedIn})
	}
	if p.GitHub != "" {
		h.Links = append(h.Links, Link{Label: "GitHub", URL: p.GitHub})
	}
	return h
}

// Sections returns the visible sections of doc in display order: summary,
// experience, education, skills, achievements, awards, certifications, then
// custom sections by ascending order. Empty sections are left out.
func Sections(doc types.ResumeDocument) []Section {
	var out []Section

	if strings.TrimSpace(doc.Summary) != "" {
		out = append(out, Section{Kind: KindSummary, Title: "PROFESSIONAL SUMMARY", Summary: doc.Summary})
	}
	if len(doc.WorkExperience) > 0 {
		out = append(out, Section{Kind: KindExperience, Title: "PROFESSIONAL EXPERIENCE", Experience: Experience(doc.WorkExperience)})
	}
	if len(doc.Education) > 0 {
		out = append(out, Section{Kind: KindEducation, Title: "EDUCATION", Education: EducationEntries(doc.Education)})
	}
	if len(doc.Skills) > 0 {
		out = append(out, Section{Kind: KindSkills, Title: "SKILLS", Skills: GroupSkills(doc.Skills)})
	}
	if len(doc.Achievements) > 0 {
		out = append(out, Section{Kind: KindAchievements, Title: "ACHIEVEMENTS", Notes: Notes(doc.Achievements)})
	}
	if len(doc.Awards) > 0 {
		out = append(out, Section{Kind: KindAwards, Title: "AWARDS", Notes: Notes(doc.Awards)})
	}
	if len(doc.Certifications) > 0 {
		out = append(out, Section{Kind: KindCertifications, Title: "CERTIFICATIONS", Notes: Notes(doc.Certifications)})
	}
	for _, cs := range SortedCustomSections(doc.CustomSections) {
		if entry, ok := Custom(cs); ok {
			out = append(out, Section{Kind: KindCustom, Title: strings.ToUpper(cs.Title), Custom: &entry})
		}
	}
	return out
}

// Experience projects positions, dropping blank bullets.
func Experience(items []types.WorkExperience) []ExperienceEntry {
	out := make([]ExperienceEntry, 0, len(items))
	for _, e := range items {
		out = append(out, ExperienceEntry{
			Position:     e.Position,
			Company:      e.Company,
			Location:     e.Location,
			Dates:        DateRange(e.StartDate, e.EndDate, e.Current),
			Description:  FilterBlank(e.Description),
			Achievements: FilterBlank(e.Achievements),
			Technologies: FilterBlank(e.Technologies),
		})
	}
	return out
}

// EducationEntries projects education entries.
func EducationEntries(items []types.Education) []EducationEntry {
	out := make([]EducationEntry, 0, len(items))
	for _, e := range items {
		out = append(out, EducationEntry{
			Degree:      e.Degree,
			Field:       e.Field,
			Institution: e.Institution,
			Location:    e.Location,
			GPA:         e.GPA,
			Dates:       DateRange(e.StartDate, e.EndDate, false),
		})
	}
	return out
}

// Notes projects dated notes.
func Notes(items []types.DatedNote) []NoteEntry {
	out := make([]NoteEntry, 0, len(items))
	for _, n := range items {
		out = append(out, NoteEntry{Description: n.Description, Date: FormatDate(n.Date)})
	}
	return out
}

// GroupSkills groups skill names by category. Groups appear in the order
// their first skill appears.
func GroupSkills(skills []types.Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s.Name)
	}
	return groups
}

// SortedCustomSections returns the sections sorted by ascending order. Ties
// keep their stored order. The input is not modified.
func SortedCustomSections(sections []types.CustomSection) []types.CustomSection {
	out := append([]types.CustomSection(nil), sections...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Custom filters a custom section's content. ok is false when nothing is
// left to show.
func Custom(cs types.CustomSection) (CustomEntry, bool) {
	entry := CustomEntry{Type: cs.Type()}
	switch c := cs.Content.(type) {
	case types.ListContent:
		entry.Items = FilterBlank(c.Items)
		return entry, len(entry.Items) > 0
	case types.ParagraphContent:
		entry.Text = c.Text
		return entry, strings.TrimSpace(c.Text) != ""
	case types.TableContent:
		entry.Headers = c.Headers
		entry.Rows = c.Rows
		return entry, len(c.Headers) > 0 || len(c.Rows) > 0
	}
	return entry, false
}

// LanguageSections returns the custom sections whose title mentions
// "language", in display order.
func LanguageSections(sections []types.CustomSection) []types.CustomSection {
	var out []types.CustomSection
	for _, cs := range SortedCustomSections(sections) {
		if strings.Contains(strings.ToLower(cs.Title), "language") {
			out = append(out, cs)
		}
	}
	return out
}

// LanguageItems flattens the visible lines of every language section: list
// items, paragraph text, or the first cell of each table row.
func LanguageItems(sections []types.CustomSection) []string {
	var out []string
	for _, cs := range LanguageSections(sections) {
		entry, ok := Custom(cs)
		if !ok {
			continue
		}
		switch entry.Type {
		case types.SectionList:
			out = append(out, entry.Items...)
		case types.SectionParagraph:
			out = append(out, entry.Text)
		case types.SectionTable:
			for _, row := range entry.Rows {
				if len(row) > 0 && strings.TrimSpace(row[0]) != "" {
					out = append(out, strings.Join(FilterBlank(row), " - "))
				}
			}
		}
	}
	return out
}

// FilterBlank drops empty and whitespace-only entries.
func FilterBlank(items []string) []string {
	var out []string
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// FormatDate turns "2021-01" into "January 2021". Empty input gives empty
// output; anything else that doesn't parse is returned as is.
func FormatDate(s string) string {
	if !types.IsYearMonth(s) {
		return s
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("January 2006")
}

// DateRange formats a start/end pair. A current entry ends in "Present"
// whatever its end date holds.
func DateRange(start, end string, current bool) string {
	from := FormatDate(start)
	to := FormatDate(end)
	if current {
		to = Present
	}
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	}
	return from + " - " + to
}
