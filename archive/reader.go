package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/bibgo/blobstore"
	"github.com/hupe1980/bibgo/codec"
	"github.com/hupe1980/bibgo/collection"
	internalhash "github.com/hupe1980/bibgo/internal/hash"
	"github.com/hupe1980/bibgo/resource"
)

// ReaderOptions configures a Reader. The zero value is usable.
type ReaderOptions struct {
	// Commits resolves the current manifest. Defaults to a BlobCommitStore
	// over the reader's blob store. Use the same implementation that wrote
	// the archive.
	Commits CommitStore

	// Resources throttles archive IO when it carries an IO limit. May be nil.
	Resources *resource.Controller
}

// Reader loads archived catalog snapshots.
type Reader struct {
	store   blobstore.Store
	commits CommitStore
	rc      *resource.Controller
}

// NewReader creates a Reader over the given blob store.
func NewReader(store blobstore.Store, opts ReaderOptions) *Reader {
	r := &Reader{
		store:   store,
		commits: opts.Commits,
		rc:      opts.Resources,
	}
	if r.commits == nil {
		r.commits = NewBlobCommitStore(store)
	}
	return r
}

// Manifest resolves and loads the committed manifest.
func (r *Reader) Manifest(ctx context.Context) (*Manifest, error) {
	name, err := r.commits.Current(ctx)
	if err != nil {
		return nil, err
	}
	return r.loadManifest(ctx, name)
}

// ManifestAt loads the manifest of a specific version, committed or not.
func (r *Reader) ManifestAt(ctx context.Context, seq uint64) (*Manifest, error) {
	return r.loadManifest(ctx, manifestName(seq))
}

// Versions lists all manifests in the store, oldest first. Corrupted or
// unreadable manifests are skipped so one bad object cannot hide the rest.
func (r *Reader) Versions(ctx context.Context) ([]*Manifest, error) {
	names, err := r.store.List(ctx, ManifestPrefix)
	if err != nil {
		return nil, err
	}

	var manifests []*Manifest
	for _, name := range names {
		if _, err := parseManifestSeq(name); err != nil {
			continue
		}
		m, err := r.loadManifest(ctx, name)
		if err != nil {
			continue
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

// Read loads every collection of the committed archive version.
func (r *Reader) Read(ctx context.Context) ([]collection.Snapshot, error) {
	m, err := r.Manifest(ctx)
	if err != nil {
		return nil, err
	}
	return r.ReadManifest(ctx, m)
}

// ReadManifest loads every collection the given manifest references.
func (r *Reader) ReadManifest(ctx context.Context, m *Manifest) ([]collection.Snapshot, error) {
	c, ok := codec.ByName(m.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown archive codec %q", m.Codec)
	}
	if !m.Compression.Valid() {
		return nil, fmt.Errorf("unsupported compression: %q", m.Compression)
	}

	snaps := make([]collection.Snapshot, 0, len(m.Collections))
	for _, entry := range m.Collections {
		snap, err := r.readCollection(ctx, c, m.Compression, entry)
		if err != nil {
			return nil, fmt.Errorf("read archived collection %q: %w", entry.Name, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// loadManifest opens and decodes one manifest object.
func (r *Reader) loadManifest(ctx context.Context, name string) (*Manifest, error) {
	rc, err := r.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("manifest %s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	if err := manifestCodec.Unmarshal(content, m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", name, err)
	}
	if m.FormatVersion > FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrIncompatibleVersion, m.FormatVersion)
	}
	return m, nil
}

// readCollection fetches one archived object, verifies it against its
// entry and decodes the snapshot.
func (r *Reader) readCollection(ctx context.Context, c codec.Codec, comp Compression, entry Entry) (collection.Snapshot, error) {
	rc, err := r.store.Open(ctx, entry.Object)
	if err != nil {
		return collection.Snapshot{}, err
	}
	defer rc.Close()

	stored, err := io.ReadAll(resource.NewRateLimitedReader(ctx, rc, r.rc))
	if err != nil {
		return collection.Snapshot{}, err
	}

	if got := internalhash.CRC32C(stored); got != entry.Checksum {
		return collection.Snapshot{}, &CorruptObjectError{
			Object: entry.Object,
			Want:   entry.Checksum,
			Got:    got,
		}
	}

	dr, err := comp.newReader(bytes.NewReader(stored))
	if err != nil {
		return collection.Snapshot{}, err
	}
	defer dr.Close()

	encoded, err := io.ReadAll(dr)
	if err != nil {
		return collection.Snapshot{}, err
	}

	var snap collection.Snapshot
	if err := c.Unmarshal(encoded, &snap); err != nil {
		return collection.Snapshot{}, err
	}
	return snap, nil
}
