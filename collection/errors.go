package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIdentifier is returned when Add sees an identifier that
	// already exists. The first record is retained untouched.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrNotFound is returned when Update or Remove targets an unknown
	// identifier.
	ErrNotFound = errors.New("record not found")
)

// DuplicateError reports a rejected Add.
type DuplicateError struct {
	Collection string
	Identifier string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate identifier %q in collection %q", e.Identifier, e.Collection)
}

// Unwrap allows errors.Is(err, ErrDuplicateIdentifier) checks.
func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateIdentifier
}

// NotFoundError reports a missed lookup on a write path.
type NotFoundError struct {
	Collection string
	Identifier string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record %q not found in collection %q", e.Identifier, e.Collection)
}

// Unwrap allows errors.Is(err, ErrNotFound) checks.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
