package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a request collides with current state,
	// e.g. re-enqueueing a session whose job already completed
	ErrConflict = errors.New("conflicting state")

	// ErrTerminalJob is returned for updates against a completed or failed job
	ErrTerminalJob = errors.New("job already terminal")

	// ErrLeaseLost is returned when a worker reports on a job it no longer holds
	ErrLeaseLost = errors.New("lease not held")

	// ErrSystemProject is returned when deleting a protected system project
	ErrSystemProject = errors.New("system project is protected")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
