// Package export produces the downloadable PDF and DOCX files for a resume.
package export

import (
	"errors"
	"fmt"
)

// Kind names an export format.
type Kind string

// Supported export kinds.
const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
)

// ErrBusy is returned when an export of the same kind is already running.
var ErrBusy = errors.New("export already in progress")

// ExportError represents a failed export. No partial output is produced.
type ExportError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s export failed: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s export failed: %s", e.Kind, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
