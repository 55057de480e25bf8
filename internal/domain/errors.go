package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrCredentialRequired  = errors.New("extraction credential required")
	ErrInvalidCredential   = errors.New("invalid extraction credential")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrExtractionFailed    = errors.New("document extraction failed")
)

// ValidationError collects every failing field of an input, not just the
// first, so the caller can surface all problems at once.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add records a failure for a field. The first message per field wins.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
