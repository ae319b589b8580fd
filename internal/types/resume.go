// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeDocument is the canonical resume data graph for one editing session.
// JSON field names match the persisted layout so older saved documents load unchanged.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Achievements   []DatedNote      `json:"achievements"`
	Awards         []DatedNote      `json:"awards"`
	Certifications []DatedNote      `json:"certifications"`
	CustomSections []CustomSection  `json:"customSections"`
}

// PersonalInfo holds the header block of the resume
type PersonalInfo struct {
	FullName string        `json:"fullName"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Location string        `json:"location"`
	Websites []WebsiteLink `json:"websites"`
	LinkedIn string        `json:"linkedin,omitempty"`
	GitHub   string        `json:"github,omitempty"`
}

// WebsiteLink is a labelled link owned by PersonalInfo
type WebsiteLink struct {
	ID    string `json:"id"`
	Label string `json:"label" validate:"required"`
	URL   string `json:"url"`
}

// WorkExperience is a single position. Dates are "YYYY-MM" or empty.
type WorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate" validate:"omitempty,yearmonth"`
	EndDate      string   `json:"endDate" validate:"omitempty,yearmonth"`
	Current      bool     `json:"current"`
	Description  []string `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

// Education is a single degree entry
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate" validate:"omitempty,yearmonth"`
	EndDate     string `json:"endDate" validate:"omitempty,yearmonth"`
	GPA         string `json:"gpa"`
}

// Skill is a named skill with a free-text category used for grouping
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
}

// DatedNote backs achievements, awards and certifications
type DatedNote struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"omitempty,yearmonth"`
}

// NewResumeDocument returns the default empty document.
// Collections are non-nil so they serialize as [] rather than null.
func NewResumeDocument() ResumeDocument {
	return ResumeDocument{
		PersonalInfo: PersonalInfo{
			Websites: []WebsiteLink{},
		},
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Achievements:   []DatedNote{},
		Awards:         []DatedNote{},
		Certifications: []DatedNote{},
		CustomSections: []CustomSection{},
	}
}

// Normalize replaces nil collections with empty ones. Decoding a document
// that carries explicit nulls would otherwise leave nil slices behind.
func (d *ResumeDocument) Normalize() {
	if d.PersonalInfo.Websites == nil {
		d.PersonalInfo.Websites = []WebsiteLink{}
	}
	if d.WorkExperience == nil {
		d.WorkExperience = []WorkExperience{}
	}
	for i := range d.WorkExperience {
		d.WorkExperience[i].normalize()
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Achievements == nil {
		d.Achievements = []DatedNote{}
	}
	if d.Awards == nil {
		d.Awards = []DatedNote{}
	}
	if d.Certifications == nil {
		d.Certifications = []DatedNote{}
	}
	if d.CustomSections == nil {
		d.CustomSections = []CustomSection{}
	}
}

func (w *WorkExperience) normalize() {
	if w.Description == nil {
		w.Description = []string{}
	}
	if w.Achievements == nil {
		w.Achievements = []string{}
	}
	if w.Technologies == nil {
		w.Technologies = []string{}
	}
}

// Clone returns a deep copy, so callers can't alias slices held by a store.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.PersonalInfo.Websites = append([]WebsiteLink{}, d.PersonalInfo.Websites...)
	out.WorkExperience = make([]WorkExperience, len(d.WorkExperience))
	for i, e := range d.WorkExperience {
		e.Description = append([]string{}, e.Description...)
		e.Achievements = append([]string{}, e.Achievements...)
		e.Technologies = append([]string{}, e.Technologies...)
		out.WorkExperience[i] = e
	}
	out.Education = append([]Education{}, d.Education...)
	out.Skills = append([]Skill{}, d.Skills...)
	out.Achievements = append([]DatedNote{}, d.Achievements...)
	out.Awards = append([]DatedNote{}, d.Awards...)
	out.Certifications = append([]DatedNote{}, d.Certifications...)
	out.CustomSections = make([]CustomSection, len(d.CustomSections))
	for i, s := range d.CustomSections {
		out.CustomSections[i] = s.Clone()
	}
	return out
}
