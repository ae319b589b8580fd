// Package schemas validates persisted resume documents against the embedded
// JSON Schema before they are decoded.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// DocumentSchemaName identifies the embedded schema in errors.
const DocumentSchemaName = "resume_document.schema.json"

//go:embed resume_document.schema.json
var documentSchema string

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

// DocumentSchema returns the embedded schema source.
func DocumentSchema() string {
	return documentSchema
}

// ValidationError lists every field of a document that breaks the schema
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single schema violation. Field is a dotted path such as
// "workExperience.0.current", or "(root)" for the document itself.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// DecodeError is returned when the input is not JSON at all
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("document is not valid JSON: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// SchemaLoadError means the embedded schema itself failed to compile
type SchemaLoadError struct {
	Path  string
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Path, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func documentValidator() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Path: DocumentSchemaName, Cause: compileErr}
		}
	})
	return compiled, compileErr
}

// ValidateDocument checks raw, a serialized resume document, against the
// schema. It returns a *DecodeError for malformed JSON and a
// *ValidationError listing each violation otherwise.
func ValidateDocument(raw string) error {
	if !json.Valid([]byte(raw)) {
		var v any
		return &DecodeError{Cause: json.Unmarshal([]byte(raw), &v)}
	}

	schema, err := documentValidator()
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return &DecodeError{Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

// ValidateDocumentFile reads path and validates its content with ValidateDocument.
func ValidateDocumentFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ValidateDocument(string(data))
}
