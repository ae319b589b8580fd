package layout

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(sections []Section) []Kind {
	var out []Kind
	for _, s := range sections {
		out = append(out, s.Kind)
	}
	return out
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2021-01", "January 2021"},
		{"1999-12", "December 1999"},
		{"", ""},
		{"2021-13", "2021-13"},
		{"soon", "soon"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in), tt.in)
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"both", "2019-06", "2021-01", false, "June 2019 - January 2021"},
		{"current", "2021-01", "", true, "January 2021 - Present"},
		{"current ignores stored end", "2021-01", "2022-05", true, "January 2021 - Present"},
		{"start only", "2021-01", "", false, "January 2021"},
		{"end only", "", "2021-01", false, "January 2021"},
		{"nothing", "", "", false, ""},
		{"current without start", "", "", true, "Present"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateRange(tt.start, tt.end, tt.current))
		})
	}
}

func TestGroupSkills_FirstSeenOrder(t *testing.T) {
	groups := GroupSkills([]types.Skill{
		{Name: "JS", Category: "Lang"},
		{Name: "Go", Category: "Lang"},
		{Name: "SQL", Category: "DB"},
	})
	assert.Equal(t, []SkillGroup{
		{Category: "Lang", Skills: []string{"JS", "Go"}},
		{Category: "DB", Skills: []string{"SQL"}},
	}, groups)

	groups = GroupSkills([]types.Skill{
		{Name: "Postgres", Category: "DB"},
		{Name: "Go", Category: "Lang"},
		{Name: "Redis", Category: "DB"},
	})
	assert.Equal(t, "DB", groups[0].Category)
	assert.Equal(t, []string{"Postgres", "Redis"}, groups[0].Skills)
}

func TestSections_Order(t *testing.T) {
	doc := types.NewResumeDocument()
	doc.Summary = "Engineer"
	doc.WorkExperience = []types.WorkExperience{{ID: "e1", Company: "Acme"}}
	doc.Education = []types.Education{{ID: "ed1", Institution: "MIT"}}
	doc.Skills = []types.Skill{{ID: "s1", Name: "Go"}}
	doc.Achievements = []types.DatedNote{{ID: "a1", Description: "Won"}}
	doc.Awards = []types.DatedNote{{ID: "aw1", Description: "Prize"}}
	doc.Certifications = []types.DatedNote{{ID: "c1", Description: "CKA"}}
	doc.CustomSections = []types.CustomSection{
		{ID: "x", Title: "A", Order: 2, Content: types.ParagraphContent{Text: "second"}},
		{ID: "y", Title: "B", Order: 1, Content: types.ParagraphContent{Text: "first"}},
	}

	sections := Sections(doc)
	assert.Equal(t, []Kind{
		KindSummary, KindExperience, KindEducation, KindSkills,
		KindAchievements, KindAwards, KindCertifications, KindCustom, KindCustom,
	}, kinds(sections))
	assert.Equal(t, "B", sections[7].Title)
	assert.Equal(t, "A", sections[8].Title)
}

func TestSections_OmitsEmpty(t *testing.T) {
	doc := types.NewResumeDocument()
	assert.Empty(t, Sections(doc))

	doc.Summary = "   "
	doc.CustomSections = []types.CustomSection{
		{ID: "l", Title: "Blank list", Order: 1, Content: types.ListContent{Items: []string{"", "  "}}},
		{ID: "p", Title: "Blank paragraph", Order: 2, Content: types.ParagraphContent{Text: "\n"}},
		{ID: "t", Title: "Empty table", Order: 3, Content: types.TableContent{}},
		{ID: "n", Title: "No content", Order: 4},
	}
	assert.Empty(t, Sections(doc))
}

func TestSections_CustomTitleUppercased(t *testing.T) {
	doc := types.NewResumeDocument()
	doc.CustomSections = []types.CustomSection{
		{ID: "l", Title: "Volunteer Work", Order: 1, Content: types.ListContent{Items: []string{"Food bank", " "}}},
	}
	sections := Sections(doc)
	require.Len(t, sections, 1)
	assert.Equal(t, "VOLUNTEER WORK", sections[0].Title)
	assert.Equal(t, []string{"Food bank"}, sections[0].Custom.Items)
}

func TestExperience_FiltersBlankBullets(t *testing.T) {
	entries := Experience([]types.WorkExperience{{
		Position:     "Engineer",
		StartDate:    "2021-01",
		EndDate:      "2023-01",
		Current:      true,
		Description:  []string{"Built", "", "   ", "Shipped"},
		Achievements: []string{" "},
	}})
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Built", "Shipped"}, entries[0].Description)
	assert.Empty(t, entries[0].Achievements)
	assert.Equal(t, "January 2021 - Present", entries[0].Dates)
}

func TestBuildHeader(t *testing.T) {
	h := BuildHeader(types.PersonalInfo{
		Email:    "jane@example.com",
		Location: "Portland, OR",
		Websites: []types.WebsiteLink{{ID: "w", Label: "Blog", URL: "https://jane.dev"}},
		LinkedIn: "https://linkedin.com/in/jane",
		GitHub:   "https://github.com/jane",
	})
	assert.Equal(t, PlaceholderName, h.Name)
	assert.Equal(t, []string{"jane@example.com", "Portland, OR"}, h.Contact)
	assert.Equal(t, []Link{
		{Label: "Blog", URL: "https://jane.dev"},
		{Label: "LinkedIn", URL: "https://linkedin.com/in/jane"},
		{Label: "GitHub", URL: "https://github.com/jane"},
	}, h.Links)
}

func TestLanguageSections(t *testing.T) {
	sections := []types.CustomSection{
		{ID: "1", Title: "Projects", Order: 1, Content: types.ListContent{Items: []string{"x"}}},
		{ID: "2", Title: "Spoken LANGUAGES", Order: 3, Content: types.ListContent{Items: []string{"French", ""}}},
		{ID: "3", Title: "Programming languages", Order: 2, Content: types.ParagraphContent{Text: "Go, Rust"}},
		{ID: "4", Title: "Language levels", Order: 4, Content: types.TableContent{Headers: []string{"Language", "Level"}, Rows: [][]string{{"German", "B2"}}}},
	}

	found := LanguageSections(sections)
	require.Len(t, found, 3)
	assert.Equal(t, "3", found[0].ID)
	assert.Equal(t, "2", found[1].ID)

	assert.Equal(t, []string{"Go, Rust", "French", "German - B2"}, LanguageItems(sections))
}

func TestSortedCustomSections_DoesNotModifyInput(t *testing.T) {
	in := []types.CustomSection{{ID: "a", Order: 2}, {ID: "b", Order: 1}}
	out := SortedCustomSections(in)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", in[0].ID)
}
