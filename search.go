package bibgo

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/bibgo/record"
)

// SearchBuilder provides a fluent API for substring search over live
// collection content.
//
// Example:
//
//	hits, err := catalog.Search("turing").
//		Fields(record.FieldTitle, record.FieldAuthors).
//		Limit(10).
//		Execute(ctx)
type SearchBuilder struct {
	catalog *Catalog
	term    string
	fields  []record.Field
	in      string
	limit   int
}

// Search starts a fluent search for a term. Matching is case-insensitive
// substring containment; the unconfigured builder scans the default fields
// of every collection with no limit.
func (c *Catalog) Search(term string) *SearchBuilder {
	return &SearchBuilder{
		catalog: c,
		term:    term,
	}
}

// Fields restricts matching to the given record fields.
// The default is record.DefaultFields().
func (sb *SearchBuilder) Fields(fields ...record.Field) *SearchBuilder {
	sb.fields = fields
	return sb
}

// In restricts the search to a single collection.
// The default searches all collections.
func (sb *SearchBuilder) In(name string) *SearchBuilder {
	sb.in = name
	return sb
}

// Limit caps the number of hits. Zero means unlimited.
func (sb *SearchBuilder) Limit(n int) *SearchBuilder {
	sb.limit = n
	return sb
}

// Execute runs the search and materializes all hits, ordered by collection
// name and record identifier.
func (sb *SearchBuilder) Execute(ctx context.Context) ([]SearchHit, error) {
	var hits []SearchHit

	for hit, err := range sb.Stream(ctx) {
		if err != nil {
			return nil, err
		}

		hits = append(hits, hit)
	}

	return hits, nil
}

// MustExecute is like Execute but panics on error.
// Useful in examples and tests.
func (sb *SearchBuilder) MustExecute(ctx context.Context) []SearchHit {
	hits, err := sb.Execute(ctx)
	if err != nil {
		panic(err)
	}

	return hits
}

// Stream returns hits lazily as an iterator. The content snapshot is taken
// when Stream is called, so ranging over the sequence twice replays the same
// state. Hits arrive ordered by collection name and record identifier, and
// early termination stops the scan.
func (sb *SearchBuilder) Stream(ctx context.Context) iter.Seq2[SearchHit, error] {
	type part struct {
		name string
		seq  iter.Seq[record.Record]
	}

	var (
		parts   []part
		initErr error
	)

	switch {
	case sb.catalog.closed.Load():
		initErr = ErrCatalogClosed
	case sb.in != "":
		coll, ok := sb.catalog.Collection(sb.in)
		if !ok {
			initErr = fmt.Errorf("%w: %q", ErrCollectionNotFound, sb.in)
			break
		}

		parts = append(parts, part{name: sb.in, seq: coll.Search(sb.term, sb.fields...)})
	default:
		for _, name := range sb.catalog.Collections() {
			coll, ok := sb.catalog.Collection(name)
			if !ok {
				continue
			}

			parts = append(parts, part{name: name, seq: coll.Search(sb.term, sb.fields...)})
		}
	}

	return func(yield func(SearchHit, error) bool) {
		if initErr != nil {
			yield(SearchHit{}, initErr)
			return
		}

		start := time.Now()
		hits := 0

	scan:
		for _, p := range parts {
			for rec := range p.seq {
				if sb.limit > 0 && hits >= sb.limit {
					break scan
				}

				hits++

				if !yield(SearchHit{Collection: p.name, Record: rec}, nil) {
					break scan
				}
			}
		}

		sb.catalog.metrics.RecordSearch(hits, time.Since(start), nil)
		sb.catalog.logger.LogSearch(ctx, sb.term, hits, nil)
	}
}

// First returns the first hit in (collection, identifier) order.
// ErrRecordNotFound is returned when nothing matches.
func (sb *SearchBuilder) First(ctx context.Context) (SearchHit, error) {
	for hit, err := range sb.Stream(ctx) {
		return hit, err
	}

	return SearchHit{}, fmt.Errorf("%w: no match for %q", ErrRecordNotFound, sb.term)
}

// Count returns the number of hits without materializing them.
func (sb *SearchBuilder) Count(ctx context.Context) (int, error) {
	count := 0

	for _, err := range sb.Stream(ctx) {
		if err != nil {
			return 0, err
		}

		count++
	}

	return count, nil
}

// Exists reports whether at least one record matches.
func (sb *SearchBuilder) Exists(ctx context.Context) (bool, error) {
	for _, err := range sb.Stream(ctx) {
		if err != nil {
			return false, err
		}

		return true, nil
	}

	return false, nil
}
