package substance

import (
	"errors"
	"fmt"
)

// ErrNotImplemented indicates a substance kind that does not provide a
// composition tag.
var ErrNotImplemented = errors.New("substance does not implement composition tagging")

// ValidationError indicates a component violates mixture composition rules.
// The offending component is never appended: validation runs fully before the
// mixture is touched, so callers can assume no partial mutation occurred.
type ValidationError struct {
	Identifier string // Component that failed validation
	Message    string // Error message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid component %q: %s", e.Identifier, e.Message)
}

// newValidationError creates a new validation error.
func newValidationError(identifier, format string, args ...any) *ValidationError {
	return &ValidationError{
		Identifier: identifier,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NotFoundError indicates no component with the requested identifier exists
// in the mixture.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no component with identifier %q found", e.Identifier)
}
