package record

import (
	"slices"
	"strings"
	"time"
)

// NewBuilder creates a new record builder.
//
// The builder is immutable - each method returns a new builder with the
// updated value, so partially configured builders can be shared safely.
//
// Example:
//
//	rec, err := record.NewBuilder().
//	    WithIdentifier("DOC-001").
//	    WithTitle("Quantum Systems").
//	    WithAuthors("Doe, Jane").
//	    WithYear(2023).
//	    WithKeywords("quantum", "physics").
//	    Build()
func NewBuilder() Builder {
	return Builder{}
}

// Builder is an immutable fluent builder for records. Build normalizes the
// keyword set and validates the identifier.
type Builder struct {
	rec Record
}

// WithIdentifier sets the record identifier.
func (b Builder) WithIdentifier(id string) Builder {
	b.rec.Identifier = strings.TrimSpace(id)
	return b
}

// WithTitle sets the title.
func (b Builder) WithTitle(title string) Builder {
	b.rec.Title = title
	return b
}

// WithAbstract sets the abstract.
func (b Builder) WithAbstract(abstract string) Builder {
	b.rec.Abstract = abstract
	return b
}

// WithAuthors sets the author list. Order is preserved.
func (b Builder) WithAuthors(authors ...string) Builder {
	b.rec.Authors = slices.Clone(authors)
	return b
}

// WithYear sets the publication year. Zero means unknown and renders as
// "n.d." in citations.
func (b Builder) WithYear(year int) Builder {
	b.rec.Year = year
	return b
}

// WithKeywords sets the keyword set. Keywords are normalized on Build.
func (b Builder) WithKeywords(keywords ...string) Builder {
	b.rec.Keywords = slices.Clone(keywords)
	return b
}

// WithLastUpdated sets the modification timestamp. The catalog overwrites
// it on every mutation; setting it manually only matters for merge inputs
// constructed outside a catalog.
func (b Builder) WithLastUpdated(t time.Time) Builder {
	b.rec.LastUpdated = t
	return b
}

// Build validates and returns the record.
func (b Builder) Build() (Record, error) {
	rec := b.rec.Clone()
	rec.Keywords = NormalizeKeywords(rec.Keywords)
	if len(rec.Authors) == 0 {
		rec.Authors = nil
	}
	if err := rec.Validate(nil); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// MustBuild returns the record, panicking on validation failure.
func (b Builder) MustBuild() Record {
	rec, err := b.Build()
	if err != nil {
		panic(err)
	}
	return rec
}
