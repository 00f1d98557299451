package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput     = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON    = errors.New("invalid JSON format")
	ErrMultipleJSON   = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound   = errors.New("file not found")
	ErrFileEmpty      = errors.New("file is empty")
	ErrRootNotObject  = errors.New("the document root must be a JSON object")
	ErrNoFields       = errors.New("the document has no keys to infer a schema from")
	ErrBadClassName   = errors.New("class name is not a valid exported Go identifier")
	ErrIdentCollision = errors.New("two fields sanitize to the same Go identifier")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeParsing  ErrorType = "parsing"
	ErrorTypeSchema   ErrorType = "schema"
	ErrorTypeEmission ErrorType = "emission"
	ErrorTypeIO       ErrorType = "io"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewSchemaError creates a new error related to schema inference
func NewSchemaError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSchema,
		Message: message,
		Err:     err,
	}
}

// NewEmissionError creates a new error related to code emission
func NewEmissionError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeEmission,
		Message: message,
		Err:     err,
	}
}

// NewIOError creates a new error related to reading or writing files
func NewIOError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeSchema:
			return fmt.Sprintf("Schema inference error: %s", appErr.Message)
		case ErrorTypeEmission:
			return fmt.Sprintf("Code emission error: %s", appErr.Message)
		case ErrorTypeIO:
			return fmt.Sprintf("File error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON object."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrRootNotObject) {
		return "Error: The example document must be a JSON object at the top level."
	}
	if errors.Is(err, ErrNoFields) {
		return "Error: The example document is an empty object; there are no fields to infer."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
