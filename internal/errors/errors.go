// internal/errors/errors.go
package appErrors

import (
	"fmt"
	"strings"
)

// ValidationError carries every rule violation found in a lead payload.
// Details are complete, never just the first failure.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Details, "; "))
}

// Helper constructor
func NewValidationError(details ...string) error {
	return &ValidationError{Details: details}
}

// ErrUnauthorized is a sentinel error for a missing or wrong API key.
type ErrUnauthorized struct{}

func (e *ErrUnauthorized) Error() string {
	return "unauthorized"
}

func NewUnauthorized() error {
	return &ErrUnauthorized{}
}
