package types

import "encoding/json"

// Patch types carry partial updates. A nil field means "leave unchanged";
// a non-nil field replaces the stored value.

// PersonalInfoPatch is a partial update of PersonalInfo. Websites are managed
// through their own operations and cannot be patched here.
type PersonalInfoPatch struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
}

// WebsiteLinkPatch is a partial update of a WebsiteLink
type WebsiteLinkPatch struct {
	Label *string `json:"label,omitempty"`
	URL   *string `json:"url,omitempty"`
}

// WorkExperiencePatch is a partial update of a WorkExperience
type WorkExperiencePatch struct {
	Company      *string   `json:"company,omitempty"`
	Position     *string   `json:"position,omitempty"`
	Location     *string   `json:"location,omitempty"`
	StartDate    *string   `json:"startDate,omitempty" validate:"omitempty,yearmonth"`
	EndDate      *string   `json:"endDate,omitempty" validate:"omitempty,yearmonth"`
	Current      *bool     `json:"current,omitempty"`
	Description  *[]string `json:"description,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
}

// EducationPatch is a partial update of an Education entry
type EducationPatch struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"startDate,omitempty" validate:"omitempty,yearmonth"`
	EndDate     *string `json:"endDate,omitempty" validate:"omitempty,yearmonth"`
	GPA         *string `json:"gpa,omitempty"`
}

// SkillPatch is a partial update of a Skill
type SkillPatch struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
}

// DatedNotePatch is a partial update of an achievement, award or certification
type DatedNotePatch struct {
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty" validate:"omitempty,yearmonth"`
}

// CustomSectionPatch is a partial update of a CustomSection. A non-nil
// Content replaces the whole content, possibly switching the variant.
// RawContent is used when the variant stays the same: it is decoded against
// the section's current type. Content wins when both are set.
type CustomSectionPatch struct {
	Title      *string
	Order      *int
	Content    SectionContent
	RawContent json.RawMessage
}

// Resolve decodes RawContent against the current type of s, leaving a patch
// whose Content is ready to apply.
func (patch CustomSectionPatch) Resolve(s CustomSection) (CustomSectionPatch, error) {
	if patch.Content != nil || len(patch.RawContent) == 0 || string(patch.RawContent) == "null" {
		return patch, nil
	}
	content, err := DecodeSectionContent(s.Type(), patch.RawContent)
	if err != nil {
		return patch, err
	}
	patch.Content = content
	patch.RawContent = nil
	return patch, nil
}

// Apply merges the patch into p and returns the result.
func (patch PersonalInfoPatch) Apply(p PersonalInfo) PersonalInfo {
	setString(&p.FullName, patch.FullName)
	setString(&p.Email, patch.Email)
	setString(&p.Phone, patch.Phone)
	setString(&p.Location, patch.Location)
	setString(&p.LinkedIn, patch.LinkedIn)
	setString(&p.GitHub, patch.GitHub)
	return p
}

// Apply merges the patch into w and returns the result.
func (patch WebsiteLinkPatch) Apply(w WebsiteLink) WebsiteLink {
	setString(&w.Label, patch.Label)
	setString(&w.URL, patch.URL)
	return w
}

// Apply merges the patch into e and returns the result.
func (patch WorkExperiencePatch) Apply(e WorkExperience) WorkExperience {
	setString(&e.Company, patch.Company)
	setString(&e.Position, patch.Position)
	setString(&e.Location, patch.Location)
	setString(&e.StartDate, patch.StartDate)
	setString(&e.EndDate, patch.EndDate)
	if patch.Current != nil {
		e.Current = *patch.Current
	}
	setStrings(&e.Description, patch.Description)
	setStrings(&e.Achievements, patch.Achievements)
	setStrings(&e.Technologies, patch.Technologies)
	return e
}

// Apply merges the patch into e and returns the result.
func (patch EducationPatch) Apply(e Education) Education {
	setString(&e.Institution, patch.Institution)
	setString(&e.Degree, patch.Degree)
	setString(&e.Field, patch.Field)
	setString(&e.Location, patch.Location)
	setString(&e.StartDate, patch.StartDate)
	setString(&e.EndDate, patch.EndDate)
	setString(&e.GPA, patch.GPA)
	return e
}

// Apply merges the patch into s and returns the result.
func (patch SkillPatch) Apply(s Skill) Skill {
	setString(&s.Name, patch.Name)
	setString(&s.Category, patch.Category)
	return s
}

// Apply merges the patch into n and returns the result.
func (patch DatedNotePatch) Apply(n DatedNote) DatedNote {
	setString(&n.Description, patch.Description)
	setString(&n.Date, patch.Date)
	return n
}

// Apply merges the patch into s and returns the result.
func (patch CustomSectionPatch) Apply(s CustomSection) CustomSection {
	setString(&s.Title, patch.Title)
	if patch.Order != nil {
		s.Order = *patch.Order
	}
	if patch.Content != nil {
		s.Content = patch.Content.clone()
	}
	return s
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setStrings(dst *[]string, v *[]string) {
	if v == nil {
		return
	}
	if *v == nil {
		*dst = []string{}
		return
	}
	*dst = append([]string{}, (*v)...)
}
