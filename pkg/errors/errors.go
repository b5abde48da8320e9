// Package errors defines the error types reported for theme files. Every
// type here matches ErrInvalidTheme with errors.Is, so callers can tell a
// bad theme apart from an I/O failure without inspecting the type.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTheme matches any parse or validation failure of a theme.
var ErrInvalidTheme = errors.New("invalid theme")

// ParseError reports a theme file that is not well-formed YAML. Line is
// 1-based and zero when the decoder did not report one.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("parse error: %s: %v", loc, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidTheme
}

// ValidationError is one setting that parsed but is not acceptable. Field
// is the YAML path of the setting, e.g. "palette[primary].base".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTheme
}

// ValidationErrors collects every failure found in one pass.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return v[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:", len(v))
	for _, err := range v {
		fmt.Fprintf(&b, "\n  - %s: %s", err.Field, err.Message)
	}
	return b.String()
}

// Unwrap exposes each collected error to errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error {
	out := make([]error, len(v))
	for i, err := range v {
		out[i] = err
	}
	return out
}

// Field returns the first error reported for field.
func (v ValidationErrors) Field(field string) (*ValidationError, bool) {
	for _, err := range v {
		if err.Field == field {
			return err, true
		}
	}
	return nil, false
}
