// Package rendering turns a tailored resume into LaTeX or HTML documents.
package rendering

import "fmt"

// TemplateError reports a template that could not be loaded, parsed or executed.
// Format names the renderer ("latex" or "html") the template belongs to.
type TemplateError struct {
	Format  string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("%s template error: %s", e.Format, e.Message)
	if e.Format == "" {
		msg = "template error: " + e.Message
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError covers failures outside the template itself, such as a nil resume or
// an unsupported output format.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
