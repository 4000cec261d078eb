package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
// - For records and collection snapshots, JSON is stable and portable.
// - Timestamps round-trip through RFC 3339 with nanosecond precision.
// - Funcs, channels, complex numbers, etc are not supported.
//
// If you need custom encoding (e.g. protobuf/msgpack), implement Codec and set
// it on the catalog or archive writer where supported.
//
// Performance note:
//   - If you need the most portable/lowest-dependency option, use JSON.
//   - Bibgo's default codec may change over time; persisted archives always
//     record the codec name so it can be validated on load.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-created archives. Existing persisted archives are
// self-describing (they store the codec name in their manifest) and are opened
// by selecting the appropriate codec by name.
var Default Codec = GoJSON{}
