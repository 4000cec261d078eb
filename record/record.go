// Package record defines the bibliographic record value type shared by the
// catalog, the keyword index and the merge logic.
package record

import (
	"slices"
	"strings"
	"time"
)

// Record is a single bibliographic entry.
//
// The identifier is the record's identity: it never changes after
// construction and is unique within a collection. Keywords are kept in
// normalized form (lower-cased, de-duplicated, sorted). LastUpdated is
// stamped by the catalog clock on every mutation and is only consulted when
// two catalogs are merged.
type Record struct {
	Identifier  string    `json:"identifier"`
	Title       string    `json:"title,omitempty"`
	Abstract    string    `json:"abstract,omitempty"`
	Authors     []string  `json:"authors,omitempty"`
	Year        int       `json:"year,omitempty"`
	Keywords    []string  `json:"keywords,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// Clone returns a deep copy of the record. Slice fields are duplicated so
// the copy never aliases the original.
func (r Record) Clone() Record {
	out := r
	out.Authors = slices.Clone(r.Authors)
	out.Keywords = slices.Clone(r.Keywords)
	return out
}

// Equal reports whether two records carry the same content. Timestamps are
// compared with time.Time.Equal so the wall-clock representation does not
// matter.
func (r Record) Equal(o Record) bool {
	return r.Identifier == o.Identifier &&
		r.Title == o.Title &&
		r.Abstract == o.Abstract &&
		slices.Equal(r.Authors, o.Authors) &&
		r.Year == o.Year &&
		slices.Equal(r.Keywords, o.Keywords) &&
		r.LastUpdated.Equal(o.LastUpdated)
}

// Validate checks the record's identity. The optional isValid hook plugs an
// external identifier scheme (ISBN checksums, DOI patterns) into the check;
// a nil hook accepts every non-empty identifier.
func (r Record) Validate(isValid func(string) bool) error {
	if strings.TrimSpace(r.Identifier) == "" {
		return &ValidationError{Field: "identifier", Reason: "must not be empty"}
	}
	if isValid != nil && !isValid(r.Identifier) {
		return &ValidationError{Field: "identifier", Reason: "rejected by validator"}
	}
	return nil
}

// NormalizeKeywords lower-cases, trims, de-duplicates and sorts a keyword
// list. Returns nil when nothing remains.
func NormalizeKeywords(keywords []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(keywords))

	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}

	slices.Sort(out)
	return out
}
