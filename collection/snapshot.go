package collection

import (
	"time"

	"github.com/hupe1980/bibgo/record"
)

// Snapshot is the exportable value form of a collection. Records are sorted
// by identifier so encoded output is deterministic.
type Snapshot struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	Records     []record.Record `json:"records"`
}

// Snapshot captures the collection under its read lock.
func (c *Collection) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		Name:        c.name,
		Description: c.description,
		CreatedAt:   c.createdAt,
		Records:     c.recordsLocked(),
	}
}

// FromSnapshot materializes a collection from its value form. Records with
// an empty identifier are skipped; on identifier collision the last entry
// wins.
func FromSnapshot(s Snapshot) *Collection {
	c := New(s.Name, s.Description, s.CreatedAt)
	for _, rec := range s.Records {
		if rec.Identifier == "" {
			continue
		}
		c.records[rec.Identifier] = rec.Clone()
	}
	return c
}
