package errors

import (
	"fmt"
)

// ParseError represents a configuration file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
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
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigParseError reports a per-instance settings override that could not be
// decoded or holds values outside the settings domain. It is fatal to the
// operation that triggered the resolution.
type ConfigParseError struct {
	Raw     string
	Message string
	Err     error
}

// NewConfigParseError constructs a ConfigParseError for the raw override string.
func NewConfigParseError(raw string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ConfigParseError{Raw: raw, Message: message, Err: err}
}

func (e *ConfigParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("settings override %q: %s", e.Raw, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
