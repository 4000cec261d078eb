package archive

import "errors"

var (
	// ErrNotFound is returned when no archive exists in the store, that is
	// when the CURRENT pointer is missing.
	ErrNotFound = errors.New("archive not found")

	// ErrConcurrentCommit is returned when another writer published the same
	// archive version first. The losing writer's objects stay in the store
	// as garbage until pruned.
	ErrConcurrentCommit = errors.New("concurrent archive commit")

	// ErrIncompatibleVersion is returned when a manifest was written by a
	// newer format than this package reads.
	ErrIncompatibleVersion = errors.New("incompatible archive format version")
)

// CorruptObjectError reports an archived object whose stored bytes do not
// match the checksum recorded in the manifest.
type CorruptObjectError struct {
	Object string
	Want   uint32
	Got    uint32
}

func (e *CorruptObjectError) Error() string {
	return "corrupt archive object " + e.Object
}
