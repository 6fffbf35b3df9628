// Package errors defines the coded error taxonomy shared by all
// serialization and deserialization entry points.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a serialization or deserialization failure.
type Code string

const (
	// ErrConfiguration indicates a malformed schema declaration: a duplicate
	// tag, an attribute wrapping a non-atomic type, or an unresolvable terse
	// specification. Raised at descriptor-resolution time, never deferred to
	// conversion time.
	ErrConfiguration Code = "serdes-configuration"
	// ErrMissingAttribute indicates a declared attribute is absent from the
	// source element.
	ErrMissingAttribute Code = "serdes-missing-attribute"
	// ErrMissingElement indicates a required child element is absent from the
	// source element.
	ErrMissingElement Code = "serdes-missing-element"
	// ErrParse indicates leaf text could not be parsed as its declared
	// scalar type.
	ErrParse Code = "serdes-parse"
	// ErrShape indicates a numeric buffer payload whose byte length is not a
	// multiple of the declared element stride.
	ErrShape Code = "serdes-shape"
	// ErrUnexpectedTag indicates an element carried a different tag than the
	// descriptor declares.
	ErrUnexpectedTag Code = "serdes-unexpected-tag"
	// ErrValue indicates a value of the wrong dynamic type was supplied for a
	// declared field during serialization.
	ErrValue Code = "serdes-value"
)

// Error describes a schema or conversion failure with a code and the
// element path at which it occurred.
type Error struct {
	Code    Code
	Message string
	Path    string
}

// Error formats the failure for display, including code, message, and path.
func (e *Error) Error() string {
	if e == nil {
		return "serdes <nil>"
	}
	if e.Path == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s at %s", e.Code, e.Message, e.Path)
}

// New builds an Error with a code, message, and optional path.
func New(code Code, path, msg string) *Error {
	return &Error{Code: code, Message: msg, Path: path}
}

// Newf formats a message and builds an Error.
func Newf(code Code, path, format string, args ...any) *Error {
	return New(code, path, fmt.Sprintf(format, args...))
}

// As extracts an *Error from an error returned by conversion helpers.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

// IsConfiguration reports whether err is a schema-declaration failure.
func IsConfiguration(err error) bool { return Is(err, ErrConfiguration) }

// IsMissingAttribute reports whether err is a missing source attribute.
func IsMissingAttribute(err error) bool { return Is(err, ErrMissingAttribute) }

// IsMissingElement reports whether err is a missing required child element.
func IsMissingElement(err error) bool { return Is(err, ErrMissingElement) }

// IsParse reports whether err is a leaf text parse failure.
func IsParse(err error) bool { return Is(err, ErrParse) }

// IsShape reports whether err is a numeric buffer length violation.
func IsShape(err error) bool { return Is(err, ErrShape) }
