package record

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a record fails validation.
var ErrInvalid = errors.New("invalid record")

// ValidationError reports which field failed validation and why.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: %s %s", e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalid) checks.
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
