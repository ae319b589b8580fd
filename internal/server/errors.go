package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/templates"
)

// BadRequestError indicates a malformed request
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// UnknownCollectionError indicates a route named a collection that does not exist
type UnknownCollectionError struct {
	Collection string
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown collection: %s", e.Collection)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound    *document.NotFoundError
		unknownColl *UnknownCollectionError
		invalid     *document.ValidationError
		unknownTmpl *templates.UnknownTemplateError
		badRequest  *BadRequestError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &notFound), errors.As(err, &unknownColl):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &unknownTmpl), errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrBusy):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
