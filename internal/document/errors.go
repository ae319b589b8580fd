package document

import "fmt"

// Collection names, shared with the HTTP routes.
const (
	CollectionWebsites       = "websites"
	CollectionExperience     = "experience"
	CollectionEducation      = "education"
	CollectionSkills         = "skills"
	CollectionAchievements   = "achievements"
	CollectionAwards         = "awards"
	CollectionCertifications = "certifications"
	CollectionCustomSections = "custom-sections"
)

// NotFoundError is returned when an update or remove names an id that is not
// in the collection. The document is left unchanged.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s entry %q not found", e.Collection, e.ID)
}

// ValidationError is returned when a payload fails validation
type ValidationError struct {
	Collection string
	Cause      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s entry: %v", e.Collection, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
