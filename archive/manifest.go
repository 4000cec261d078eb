package archive

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// ManifestPrefix is the object name prefix for manifests.
	ManifestPrefix = "MANIFEST"
	// CurrentName is the object holding the name of the live manifest.
	CurrentName = "CURRENT"
	// FormatVersion is the manifest format written by this package.
	// Version 1: JSON manifest, one object per collection.
	FormatVersion = 1
)

// Manifest describes one archived catalog state. It is always stored as
// JSON so readers can bootstrap without out-of-band configuration; the
// codec named inside it governs the collection objects only.
type Manifest struct {
	FormatVersion int         `json:"format_version"`
	Seq           uint64      `json:"seq"`
	ExportedAt    time.Time   `json:"exported_at"`
	Codec         string      `json:"codec"`
	Compression   Compression `json:"compression"`
	Collections   []Entry     `json:"collections"`
}

// Entry locates one archived collection.
type Entry struct {
	// Name is the collection name. It lives here rather than in the object
	// key, so arbitrary names never produce colliding keys.
	Name string `json:"name"`
	// Object is the blob holding the encoded, compressed collection.
	Object string `json:"object"`
	// Records is the number of records in the collection.
	Records int `json:"records"`
	// Size is the stored size of the object in bytes.
	Size int64 `json:"size"`
	// RawSize is the encoded size before compression.
	RawSize int64 `json:"raw_size"`
	// Checksum is the CRC32C of the stored object bytes.
	Checksum uint32 `json:"checksum"`
}

// Records returns the total record count across all collections.
func (m *Manifest) Records() int {
	var n int
	for _, e := range m.Collections {
		n += e.Records
	}
	return n
}

// manifestName returns the object name for a manifest sequence number,
// e.g. "MANIFEST-000042".
func manifestName(seq uint64) string {
	return fmt.Sprintf("%s-%06d", ManifestPrefix, seq)
}

// parseManifestSeq extracts the sequence number from a manifest object name.
func parseManifestSeq(name string) (uint64, error) {
	rest, ok := strings.CutPrefix(name, ManifestPrefix+"-")
	if !ok {
		return 0, fmt.Errorf("not a manifest name: %q", name)
	}
	seq, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid manifest name %q: %w", name, err)
	}
	return seq, nil
}

// objectName returns the blob name for the i-th collection of an export.
// Keys are positional; the collection name is recorded in the entry.
func objectName(seq uint64, i int, c Compression) string {
	return fmt.Sprintf("collections/%06d/%04d.json%s", seq, i, c.ext())
}

// objectPrefix returns the common prefix of all collection objects of an
// export.
func objectPrefix(seq uint64) string {
	return fmt.Sprintf("collections/%06d/", seq)
}

// commitMarkerName returns the blob name of the per-version commit marker
// used by conditional commit publication.
func commitMarkerName(seq uint64) string {
	return fmt.Sprintf("COMMIT-%06d", seq)
}
