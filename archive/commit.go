package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/bibgo/blobstore"
)

// CommitStore publishes which manifest is current. Write and publish are
// separate steps: the writer first puts all objects and the manifest, then
// commits the manifest name. Readers only ever follow a committed pointer,
// so they never observe a half-written archive.
type CommitStore interface {
	// Current returns the name of the committed manifest, or ErrNotFound
	// when nothing has been committed yet.
	Current(ctx context.Context) (string, error)

	// Commit publishes the manifest with the given sequence number.
	// Implementations that can detect racing writers return
	// ErrConcurrentCommit for the losers.
	Commit(ctx context.Context, manifest string, seq uint64) error
}

// BlobCommitStore keeps the CURRENT pointer as a blob in the store itself.
//
// When the store supports conditional writes (blobstore.ConditionalPutter),
// a per-version commit marker makes racing commits lose with
// ErrConcurrentCommit. Otherwise the commit is last-writer-wins, which is
// fine for a single writer.
type BlobCommitStore struct {
	store blobstore.Store
}

// NewBlobCommitStore creates a commit store over the given blob store.
func NewBlobCommitStore(store blobstore.Store) *BlobCommitStore {
	return &BlobCommitStore{store: store}
}

// Current reads the CURRENT pointer.
func (s *BlobCommitStore) Current(ctx context.Context) (string, error) {
	rc, err := s.store.Open(ctx, CurrentName)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(string(content))
	if name == "" {
		return "", fmt.Errorf("empty %s pointer", CurrentName)
	}
	return name, nil
}

// Commit writes the per-version marker when the store supports it, then
// updates CURRENT.
func (s *BlobCommitStore) Commit(ctx context.Context, manifest string, seq uint64) error {
	if cp, ok := s.store.(blobstore.ConditionalPutter); ok {
		if err := cp.PutIfNotExists(ctx, commitMarkerName(seq), []byte(manifest)); err != nil {
			if errors.Is(err, blobstore.ErrConflict) {
				return ErrConcurrentCommit
			}
			return err
		}
	}
	return s.store.Put(ctx, CurrentName, []byte(manifest))
}
