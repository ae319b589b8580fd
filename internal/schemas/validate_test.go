package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSchema_Compiles(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(DocumentSchema()), &v))
	assert.Equal(t, "object", v["type"])

	_, err := documentValidator()
	assert.NoError(t, err)
}

func TestValidateDocument_Valid(t *testing.T) {
	err := ValidateDocumentFile(filepath.Join("testdata", "valid_document.json"))
	assert.NoError(t, err)
}

func TestValidateDocument_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateDocument(`{}`))
}

func TestValidateDocument_NullCollections(t *testing.T) {
	assert.NoError(t, ValidateDocument(`{"skills": null, "customSections": null, "summary": null}`))
}

func TestValidateDocument_WrongType(t *testing.T) {
	err := ValidateDocumentFile(filepath.Join("testdata", "wrong_type.json"))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Errors), 2)

	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "personalInfo.fullName")
	assert.Contains(t, fields, "workExperience")
}

func TestValidateDocument_UnknownSectionType(t *testing.T) {
	err := ValidateDocument(`{"customSections": [{"id": "c1", "type": "chart"}]}`)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidateDocument_NotAnObject(t *testing.T) {
	err := ValidateDocument(`[1, 2, 3]`)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "(root)", verr.Errors[0].Field)
}

func TestValidateDocument_Malformed(t *testing.T) {
	err := ValidateDocument(`{ invalid json }`)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestValidateDocumentFile_Missing(t *testing.T) {
	err := ValidateDocumentFile(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "personalInfo.fullName", Message: "Invalid type"},
			{Field: "skills", Message: "Invalid type"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. personalInfo.fullName")
	assert.Contains(t, errorMsg, "2. skills")
}

func TestSchemaLoadError_Unwrap(t *testing.T) {
	err := &SchemaLoadError{Path: DocumentSchemaName, Cause: os.ErrNotExist}
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), DocumentSchemaName)
}
