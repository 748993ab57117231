// Package errors provides the structured error type used at the Pressroom
// host boundary: document files, clipboard files, and configuration. The
// editing core's own functions are total and never return errors on
// well-typed input; everything here belongs to the surrounding tooling.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeDocument   ErrorType = "document"
	ErrorTypeClipboard  ErrorType = "clipboard"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeInternal   ErrorType = "internal"
)

// PressroomError is a structured error type with context.
type PressroomError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	FilePath    string
	Recoverable bool
}

// Error implements the error interface.
func (e *PressroomError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause error.
func (e *PressroomError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison on type and code.
func (e *PressroomError) Is(target error) bool {
	var t *PressroomError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error.
func (e *PressroomError) WithContext(key string, value interface{}) *PressroomError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithFile adds the file the error originated from.
func (e *PressroomError) WithFile(path string) *PressroomError {
	e.FilePath = path
	return e
}

// NewValidationError creates a document validation error.
func NewValidationError(code, message string) *PressroomError {
	return &PressroomError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewDocumentError creates a document load/store error.
func NewDocumentError(code, message string, cause error) *PressroomError {
	return &PressroomError{
		Type:        ErrorTypeDocument,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewClipboardError creates a clipboard payload error.
func NewClipboardError(code, message string, cause error) *PressroomError {
	return &PressroomError{
		Type:        ErrorTypeClipboard,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string, cause error) *PressroomError {
	return &PressroomError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewIOError creates a filesystem error.
func NewIOError(code, message string, cause error) *PressroomError {
	return &PressroomError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}
