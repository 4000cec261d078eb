package archive

import (
	"context"
	"errors"
	"fmt"
	"hash"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/bibgo/blobstore"
	"github.com/hupe1980/bibgo/codec"
	"github.com/hupe1980/bibgo/collection"
	internalhash "github.com/hupe1980/bibgo/internal/hash"
	"github.com/hupe1980/bibgo/resource"
)

// manifestCodec encodes manifests. Always JSON, whatever codec the
// collection objects use, so archives stay self-describing.
var manifestCodec codec.Codec = codec.GoJSON{}

// WriterOptions configures a Writer. The zero value is usable.
type WriterOptions struct {
	// Codec encodes collection snapshots. Defaults to codec.Default.
	Codec codec.Codec

	// Compression applied to collection objects. Defaults to CompressionZstd.
	Compression Compression

	// ZstdLevel selects the zstd encoder level. Zero means zstd.SpeedDefault.
	ZstdLevel zstd.EncoderLevel

	// Commits publishes manifests. Defaults to a BlobCommitStore over the
	// writer's blob store.
	Commits CommitStore

	// Resources throttles archive IO when it carries an IO limit. May be nil.
	Resources *resource.Controller
}

// Writer exports catalog snapshots as versioned archives.
//
// Each Write puts one object per collection, then the manifest, then
// commits the manifest name. A failed write can leave unreferenced
// objects behind; they are overwritten by the next export of the same
// version or removed by DeleteVersion.
type Writer struct {
	store   blobstore.Store
	commits CommitStore
	codec   codec.Codec
	comp    Compression
	level   zstd.EncoderLevel
	rc      *resource.Controller
}

// NewWriter creates a Writer over the given blob store.
func NewWriter(store blobstore.Store, opts WriterOptions) *Writer {
	w := &Writer{
		store:   store,
		commits: opts.Commits,
		codec:   opts.Codec,
		comp:    opts.Compression,
		level:   opts.ZstdLevel,
		rc:      opts.Resources,
	}
	if w.commits == nil {
		w.commits = NewBlobCommitStore(store)
	}
	if w.codec == nil {
		w.codec = codec.Default
	}
	if w.comp == "" {
		w.comp = CompressionZstd
	}
	return w
}

// Write exports the snapshots as the next archive version and commits it.
// On ErrConcurrentCommit another writer published this version first; the
// caller may retry, which picks up a fresh sequence number.
func (w *Writer) Write(ctx context.Context, snaps []collection.Snapshot) (*Manifest, error) {
	seq, err := w.nextSeq(ctx)
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		FormatVersion: FormatVersion,
		Seq:           seq,
		ExportedAt:    time.Now().UTC(),
		Codec:         w.codec.Name(),
		Compression:   w.comp,
		Collections:   make([]Entry, 0, len(snaps)),
	}

	for i, snap := range snaps {
		entry, err := w.writeCollection(ctx, seq, i, snap)
		if err != nil {
			return nil, fmt.Errorf("archive collection %q: %w", snap.Name, err)
		}
		m.Collections = append(m.Collections, entry)
	}

	data, err := manifestCodec.Marshal(m)
	if err != nil {
		return nil, err
	}

	name := manifestName(seq)
	if err := w.store.Put(ctx, name, data); err != nil {
		return nil, err
	}
	if err := w.commits.Commit(ctx, name, seq); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteVersion removes a manifest and its collection objects. The
// committed version is refused.
func (w *Writer) DeleteVersion(ctx context.Context, seq uint64) error {
	current, err := w.commits.Current(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if current == manifestName(seq) {
		return fmt.Errorf("version %d is current", seq)
	}

	objects, err := w.store.List(ctx, objectPrefix(seq))
	if err != nil {
		return err
	}
	for _, object := range objects {
		if err := w.store.Delete(ctx, object); err != nil {
			return err
		}
	}
	if err := w.store.Delete(ctx, commitMarkerName(seq)); err != nil {
		return err
	}
	return w.store.Delete(ctx, manifestName(seq))
}

// nextSeq derives the next version from the committed one.
func (w *Writer) nextSeq(ctx context.Context) (uint64, error) {
	current, err := w.commits.Current(ctx)
	if errors.Is(err, ErrNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	seq, err := parseManifestSeq(current)
	if err != nil {
		return 0, err
	}
	return seq + 1, nil
}

// writeCollection encodes, compresses and streams one snapshot into the
// store, returning its manifest entry.
func (w *Writer) writeCollection(ctx context.Context, seq uint64, i int, snap collection.Snapshot) (Entry, error) {
	encoded, err := w.codec.Marshal(snap)
	if err != nil {
		return Entry{}, err
	}

	object := objectName(seq, i, w.comp)

	wb, err := w.store.Create(ctx, object)
	if err != nil {
		return Entry{}, err
	}

	// Meter the stored bytes between the compressor and the (optionally
	// rate limited) blob, so Size and Checksum describe what landed in the
	// store.
	meter := newMeteredWriter(resource.NewRateLimitedWriter(ctx, wb, w.rc))
	cw, err := w.comp.newWriter(meter, w.level)
	if err != nil {
		_ = wb.Close()
		return Entry{}, err
	}

	if _, err := cw.Write(encoded); err != nil {
		_ = cw.Close()
		_ = wb.Close()
		return Entry{}, err
	}
	if err := cw.Close(); err != nil {
		_ = wb.Close()
		return Entry{}, err
	}
	if err := wb.Close(); err != nil {
		return Entry{}, err
	}

	return Entry{
		Name:     snap.Name,
		Object:   object,
		Records:  len(snap.Records),
		Size:     meter.n,
		RawSize:  int64(len(encoded)),
		Checksum: meter.crc.Sum32(),
	}, nil
}

// meteredWriter counts bytes and keeps a running CRC32C of them.
type meteredWriter struct {
	w   io.Writer
	n   int64
	crc hash.Hash32
}

func newMeteredWriter(w io.Writer) *meteredWriter {
	return &meteredWriter{w: w, crc: internalhash.NewCRC32C()}
}

func (m *meteredWriter) Write(p []byte) (int, error) {
	n, err := m.w.Write(p)
	m.n += int64(n)
	m.crc.Write(p[:n])
	return n, err
}
