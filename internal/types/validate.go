package types

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the resume-specific tags registered.
//
// Registered tags:
//   - yearmonth: "YYYY-MM" or empty
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
			v := fl.Field().String()
			return v == "" || IsYearMonth(v)
		})
	})
	return validate
}

// IsYearMonth reports whether s is a "YYYY-MM" date.
func IsYearMonth(s string) bool {
	return yearMonthPattern.MatchString(s)
}

// Validate validates the WorkExperience using the validator.
func (e *WorkExperience) Validate() error {
	return Validator().Struct(e)
}

// Validate validates the Education using the validator.
func (e *Education) Validate() error {
	return Validator().Struct(e)
}

// Validate validates the Skill using the validator.
func (s *Skill) Validate() error {
	return Validator().Struct(s)
}

// Validate validates the DatedNote using the validator.
func (n *DatedNote) Validate() error {
	return Validator().Struct(n)
}

// Validate validates the WebsiteLink using the validator.
func (w *WebsiteLink) Validate() error {
	return Validator().Struct(w)
}

// Validate validates the WorkExperiencePatch using the validator.
func (p *WorkExperiencePatch) Validate() error {
	return Validator().Struct(p)
}

// Validate validates the EducationPatch using the validator.
func (p *EducationPatch) Validate() error {
	return Validator().Struct(p)
}

// Validate validates the DatedNotePatch using the validator.
func (p *DatedNotePatch) Validate() error {
	return Validator().Struct(p)
}
