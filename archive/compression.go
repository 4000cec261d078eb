package archive

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the algorithm applied to collection objects.
// The value is stored in the manifest, so it is a format constant.
type Compression string

const (
	// CompressionNone stores objects uncompressed.
	CompressionNone Compression = "none"
	// CompressionZstd uses zstd streams. Best ratio for the JSON-encoded
	// collections this package writes; the default.
	CompressionZstd Compression = "zstd"
	// CompressionLZ4 uses LZ4 frames. Faster than zstd at a lower ratio.
	CompressionLZ4 Compression = "lz4"
)

// Valid reports whether c is a known compression.
func (c Compression) Valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionLZ4:
		return true
	}
	return false
}

// ext returns the object name suffix for the compression.
func (c Compression) ext() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// nopWriteCloser passes writes through and makes Close a no-op, so the
// uncompressed path has the same shape as the compressed ones.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// newWriter wraps w with the compression's stream encoder. Closing the
// returned writer flushes the stream but does not close w.
func (c Compression) newWriter(w io.Writer, level zstd.EncoderLevel) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZstd:
		if level == 0 {
			level = zstd.SpeedDefault
		}
		return zstd.NewWriter(w, zstd.WithEncoderLevel(level))
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %q", c)
	}
}

// newReader wraps r with the compression's stream decoder.
func (c Compression) newReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %q", c)
	}
}
