package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrConflict is returned by conditional writes when the blob already exists.
var ErrConflict = errors.New("blob already exists")

// Store is an abstraction for accessing whole data blobs (archive objects,
// manifests). Implementations must be safe for concurrent use.
type Store interface {
	// Open opens a blob for reading. The caller must close the returned reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Create creates a blob for streaming writes. The blob becomes visible to
	// readers when Close returns without error.
	Create(ctx context.Context, name string) (WritableBlob, error)

	// Put writes a small blob in one call. Implementations make the write as
	// atomic as the backend allows.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// WritableBlob is a write handle returned by Store.Create.
type WritableBlob interface {
	io.Writer
	io.Closer
	// Sync flushes buffered data to the backend where the backend supports it.
	Sync() error
}

// ConditionalPutter is implemented by stores that support an atomic
// create. PutIfNotExists writes the blob only when no blob with that name
// exists yet and returns ErrConflict otherwise.
type ConditionalPutter interface {
	PutIfNotExists(ctx context.Context, name string, data []byte) error
}
