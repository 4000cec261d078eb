// Package collection implements the named record container. A collection
// owns its records and nothing else: the keyword index lives with the
// catalog, and collections hold no reference back to it.
package collection

import (
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/bibgo/record"
)

// Collection is a named set of records keyed by identifier. All methods are
// safe for concurrent use; writes take the collection's exclusive lock.
type Collection struct {
	mu          sync.RWMutex
	name        string
	description string
	createdAt   time.Time
	records     map[string]record.Record
}

// New creates an empty collection.
func New(name, description string, createdAt time.Time) *Collection {
	return &Collection{
		name:        name,
		description: description,
		createdAt:   createdAt,
		records:     make(map[string]record.Record),
	}
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// Description returns the collection description.
func (c *Collection) Description() string {
	return c.description
}

// CreatedAt returns the creation timestamp.
func (c *Collection) CreatedAt() time.Time {
	return c.createdAt
}

// Add stores a new record. Adding an identifier that already exists returns
// ErrDuplicateIdentifier and leaves the first record untouched.
func (c *Collection) Add(rec record.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[rec.Identifier]; ok {
		return &DuplicateError{Collection: c.name, Identifier: rec.Identifier}
	}

	c.records[rec.Identifier] = rec.Clone()
	return nil
}

// Update replaces the record stored under rec.Identifier wholesale and
// returns the previous content. Callers need the previous content to
// retract index postings before indexing the replacement.
func (c *Collection) Update(rec record.Record) (record.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, ok := c.records[rec.Identifier]
	if !ok {
		return record.Record{}, &NotFoundError{Collection: c.name, Identifier: rec.Identifier}
	}

	c.records[rec.Identifier] = rec.Clone()
	return old, nil
}

// Remove deletes a record and returns its last content for posting
// retraction.
func (c *Collection) Remove(id string) (record.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, ok := c.records[id]
	if !ok {
		return record.Record{}, &NotFoundError{Collection: c.name, Identifier: id}
	}

	delete(c.records, id)
	return old, nil
}

// Get returns a copy of the record stored under id.
func (c *Collection) Get(id string) (record.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[id]
	if !ok {
		return record.Record{}, false
	}
	return rec.Clone(), true
}

// Len returns the number of records.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Records returns a copy of all records sorted by identifier.
func (c *Collection) Records() []record.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recordsLocked()
}

func (c *Collection) recordsLocked() []record.Record {
	out := make([]record.Record, 0, len(c.records))
	for _, rec := range c.records {
		out = append(out, rec.Clone())
	}
	slices.SortFunc(out, func(a, b record.Record) int {
		return strings.Compare(a.Identifier, b.Identifier)
	})
	return out
}

// Search matches term case-insensitively as a substring of the requested
// fields (default: title, abstract, keywords). The snapshot is taken when
// Search is called; the returned sequence is lazy and restartable, so
// ranging over it twice replays the same snapshot even if the collection
// changed in between. An empty term matches every record.
func (c *Collection) Search(term string, fields ...record.Field) iter.Seq[record.Record] {
	if len(fields) == 0 {
		fields = record.DefaultFields()
	}
	needle := strings.ToLower(term)
	snapshot := c.Records()

	return func(yield func(record.Record) bool) {
		for _, rec := range snapshot {
			if !matches(rec, needle, fields) {
				continue
			}
			if !yield(rec.Clone()) {
				return
			}
		}
	}
}

func matches(rec record.Record, needle string, fields []record.Field) bool {
	for _, f := range fields {
		for _, v := range rec.Values(f) {
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
	}
	return false
}
