package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingConfigField is wrapped by MissingFieldError.
	ErrMissingConfigField = errors.New("missing config field")

	// ErrUnknownConfigField is wrapped by UnknownFieldError.
	ErrUnknownConfigField = errors.New("unknown config field")
)

// MissingFieldError is returned by Build when a required field was never set.
type MissingFieldError struct {
	Kind  Kind
	Field Field
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("incorrectly configured %s, missing '%s' def", e.Kind.RunnerName(), e.Field)
}

// Unwrap returns ErrMissingConfigField so callers can use errors.Is.
func (e *MissingFieldError) Unwrap() error { return ErrMissingConfigField }

// UnknownFieldError is returned by Build in strict mode when a flag or
// argument name is not recognized by the runner kind.
type UnknownFieldError struct {
	Kind  Kind
	Field Field
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s does not accept '%s'", e.Kind.RunnerName(), e.Field)
}

// Unwrap returns ErrUnknownConfigField so callers can use errors.Is.
func (e *UnknownFieldError) Unwrap() error { return ErrUnknownConfigField }
