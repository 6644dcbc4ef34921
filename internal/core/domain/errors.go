package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ErrClaimNotFound is returned when a claim id is absent from the claim set
var ErrClaimNotFound = fmt.Errorf("claim %w", ErrNotFound)

// ValidationError reports malformed or missing input. No record is created or changed.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a validation error for field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrInvalidInput) match any validation error
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// CoercionWarning is a non-fatal notice that an input was replaced by the value it was read as
type CoercionWarning struct {
	Field string
	Input string
	Value float64
}

func (w *CoercionWarning) Error() string {
	return fmt.Sprintf("%s %q is not a valid amount, recorded as %g", w.Field, w.Input, w.Value)
}
