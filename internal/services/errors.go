package services

import (
	"errors"
	"fmt"
)

// Error taxonomy. NotFound and invalid-input errors always surface to the
// caller and are never auto-corrected; ErrEmptyCurriculum reports a
// partial-success enrollment whose binding stands; ErrPersistence is fatal
// to the operation in progress but leaves no corrupt in-memory state
// behind, because every operation re-reads its stores.
var (
	ErrRollNotFound     = errors.New("roll number not found")
	ErrStudentNotFound  = errors.New("student has no attendance record")
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrUnknownSection   = errors.New("unknown section")
	ErrUnknownRole      = errors.New("unknown role")
	ErrDuplicateCode    = errors.New("subject code already exists")
	ErrDuplicateSection = errors.New("section already exists")
	ErrEmptyCurriculum  = errors.New("section has no curriculum")
	ErrInvalidCounters  = errors.New("present days cannot exceed working days or be negative")
	ErrInvalidInput     = errors.New("invalid input")
	ErrPersistence      = errors.New("persistence failure")
	ErrNotAssigned      = errors.New("teacher is not assigned to this section")
)

// ValidationError is a single-field business rule failure. It unwraps to
// ErrInvalidInput so callers can match the whole class with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

// NewValidationError builds a field-level validation error.
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// persistErr tags a store failure with the ErrPersistence sentinel while
// keeping the underlying detail in the message.
func persistErr(err error) error {
	return fmt.Errorf("%w: %s", ErrPersistence, err)
}
