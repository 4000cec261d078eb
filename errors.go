package bibgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bibgo/biblio"
	"github.com/hupe1980/bibgo/collection"
	"github.com/hupe1980/bibgo/index"
	"github.com/hupe1980/bibgo/record"
)

var (
	// ErrCollectionNotFound is returned when an operation names a collection
	// the catalog does not hold.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrDuplicateCollection is returned when a collection with the same name
	// already exists in the catalog.
	ErrDuplicateCollection = errors.New("duplicate collection")

	// ErrRecordNotFound is returned when an operation targets an identifier
	// that is not present in the addressed collection.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateIdentifier is returned when AddRecord sees an identifier
	// that is already present in the collection. The stored record is kept
	// unchanged; use UpdateRecord to replace it.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrInvalidRecord is returned when a record fails validation before a
	// write. Use errors.As with *record.ValidationError for the field detail.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrUnsupportedStyle is returned by Cite for citation styles the
	// formatter does not know.
	ErrUnsupportedStyle = errors.New("unsupported citation style")

	// ErrIndexInconsistency is returned when the inverted index detects a
	// retraction for a posting it never stored. The catalog rebuilds the
	// index from live collection content before returning this error, so the
	// catalog is consistent again by the time the caller sees it.
	ErrIndexInconsistency = errors.New("index inconsistency")

	// ErrCatalogClosed is returned by every operation invoked after Close.
	ErrCatalogClosed = errors.New("catalog closed")
)

// translateError maps internal package errors to the public error taxonomy.
// Public sentinels pass through unchanged so callers can rely on errors.Is
// regardless of which layer produced the failure.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrCollectionNotFound),
		errors.Is(err, ErrDuplicateCollection),
		errors.Is(err, ErrCatalogClosed):
		return err
	case errors.Is(err, collection.ErrDuplicateIdentifier):
		return fmt.Errorf("%w: %w", ErrDuplicateIdentifier, err)
	case errors.Is(err, collection.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	case errors.Is(err, record.ErrInvalid):
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	case errors.Is(err, index.ErrInconsistency):
		return fmt.Errorf("%w: %w", ErrIndexInconsistency, err)
	case errors.Is(err, biblio.ErrUnsupportedStyle):
		return fmt.Errorf("%w: %w", ErrUnsupportedStyle, err)
	}

	return err
}
