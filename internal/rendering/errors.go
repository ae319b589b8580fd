// Package rendering turns a resume document and a template style into the
// HTML preview page.
package rendering

import (
	"fmt"
	"strings"
)

// TemplateError reports a template set that could not be loaded. Set names
// the source, "built-in" or the custom directory.
type TemplateError struct {
	Set     string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	var b strings.Builder
	b.WriteString("preview templates")
	if e.Set != "" {
		fmt.Fprintf(&b, " (%s)", e.Set)
	}
	b.WriteString(": " + e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *TemplateError) Unwrap() error { return e.Cause }

// RenderError reports a preview that failed while executing a loaded
// template set. Layout is the layout variant being rendered.
type RenderError struct {
	Layout  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	layout := e.Layout
	if layout == "" {
		layout = "resume"
	}
	msg := fmt.Sprintf("cannot render %s preview: %s", layout, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *RenderError) Unwrap() error { return e.Cause }
