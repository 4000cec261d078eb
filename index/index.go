// Package index implements the catalog's global keyword inverted index
// using Roaring Bitmaps for the posting lists.
//
// Architecture:
//   - Interner: posting (collection, record identifier) -> dense uint32 ID
//   - Inverted index: term -> bitmap of interned posting IDs
//   - Term registry: interned ID -> the term set it was indexed under
//
// Postings are interned so bitmaps stay compact; released IDs are recycled
// through a free list. The index is derived state: only the catalog write
// path and Rebuild mutate it, and collections hold no reference to it.
package index

import (
	"slices"
	"strings"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bibgo/record"
	"github.com/hupe1980/bibgo/token"
)

// ID is a dense internal handle for a posting. It is strictly 32-bit so it
// can be stored in Roaring Bitmaps.
type ID uint32

// Posting locates one indexed record occurrence.
type Posting struct {
	Collection string `json:"collection"`
	Record     string `json:"record"`
}

// Entry pairs a posting with its precomputed term set. Used by rebuild
// paths that tokenize outside the index lock.
type Entry struct {
	Posting Posting
	Terms   []string
}

// Index is the global keyword inverted index. All methods are safe for
// concurrent use. Write operations that touch more than one term hold the
// exclusive lock for the whole operation, so readers never observe a
// half-updated index.
type Index struct {
	mu sync.RWMutex

	// Inverted index: term -> bitmap of interned posting IDs.
	terms map[string]*roaring.Bitmap

	// Posting interner. termsOf records the term set each posting was
	// indexed under; retraction works from this recorded set.
	ids     map[Posting]ID
	byID    map[ID]Posting
	termsOf map[ID][]string
	free    []ID
	next    ID
}

// New creates an empty index.
func New() *Index {
	return &Index{
		terms:   make(map[string]*roaring.Bitmap),
		ids:     make(map[Posting]ID),
		byID:    make(map[ID]Posting),
		termsOf: make(map[ID][]string),
	}
}

// IndexRecord adds a posting for every term of the record (title, abstract
// and keywords, normalized by the token package). Indexing identical
// content twice is a no-op; indexing changed content unions the term sets.
// A record without any term creates no posting.
func (ix *Index) IndexRecord(collection string, rec record.Record) {
	terms := token.Terms(rec)
	if len(terms) == 0 {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.indexLocked(Posting{Collection: collection, Record: rec.Identifier}, terms)
}

// DeindexRecord retracts the record's postings. It must be called with the
// record content as it existed before the mutation; content that does not
// match the indexed term set reports an InconsistencyError and leaves the
// index untouched.
func (ix *Index) DeindexRecord(collection string, rec record.Record) error {
	terms := token.Terms(rec)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	return ix.deindexLocked(Posting{Collection: collection, Record: rec.Identifier}, terms)
}

// Reindex retracts the postings of old and indexes rec under a single lock
// acquisition, so the swap is never observable half-done. old must be the
// content stored before the update.
func (ix *Index) Reindex(collection string, old, rec record.Record) error {
	oldTerms := token.Terms(old)
	newTerms := token.Terms(rec)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if err := ix.deindexLocked(Posting{Collection: collection, Record: old.Identifier}, oldTerms); err != nil {
		return err
	}
	if len(newTerms) > 0 {
		ix.indexLocked(Posting{Collection: collection, Record: rec.Identifier}, newTerms)
	}
	return nil
}

// RemoveCollection retracts every posting of the collection and returns the
// number of postings removed. Retraction works from the recorded term sets,
// so it needs no record content.
func (ix *Index) RemoveCollection(collection string) int {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	count := 0
	for p, id := range ix.ids {
		if p.Collection != collection {
			continue
		}
		ix.retractLocked(p, id)
		count++
	}
	return count
}

// Query normalizes term with the same tokenization rule used for indexing
// and returns the matching postings sorted by (collection, record). A term
// that tokenizes to nothing, or that is absent from the index, yields an
// empty result and never an error. Input that tokenizes to several tokens
// is answered with their intersection.
func (ix *Index) Query(term string) []Posting {
	tokens := token.Tokenize(term)
	if len(tokens) == 0 {
		return nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(tokens) == 1 {
		bm, ok := ix.terms[tokens[0]]
		if !ok {
			return nil
		}
		return ix.materializeLocked(bm)
	}

	bms := make([]*roaring.Bitmap, 0, len(tokens))
	for _, t := range tokens {
		bm, ok := ix.terms[t]
		if !ok {
			return nil
		}
		bms = append(bms, bm)
	}

	// Intersect smallest set first to keep intermediate results minimal.
	slices.SortFunc(bms, func(a, b *roaring.Bitmap) int {
		return int(a.GetCardinality()) - int(b.GetCardinality())
	})

	result := bms[0].Clone()
	for _, bm := range bms[1:] {
		result.And(bm)
		if result.IsEmpty() {
			return nil
		}
	}
	return ix.materializeLocked(result)
}

// Rebuild replaces the entire index content from a catalog snapshot
// (collection name -> records). Fresh state is constructed off-lock and
// swapped in atomically; recovery only, not part of the hot write path.
func (ix *Index) Rebuild(snapshot map[string][]record.Record) {
	var entries []Entry
	for name, recs := range snapshot {
		for _, rec := range recs {
			entries = append(entries, Entry{
				Posting: Posting{Collection: name, Record: rec.Identifier},
				Terms:   token.Terms(rec),
			})
		}
	}
	ix.RebuildEntries(entries)
}

// RebuildEntries replaces the entire index content with pretokenized
// entries. Entries without terms are skipped.
func (ix *Index) RebuildEntries(entries []Entry) {
	next := New()
	for _, e := range entries {
		if len(e.Terms) == 0 {
			continue
		}
		next.indexLocked(e.Posting, e.Terms)
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.terms = next.terms
	ix.ids = next.ids
	ix.byID = next.byID
	ix.termsOf = next.termsOf
	ix.free = next.free
	ix.next = next.next
}

// Len returns the number of indexed records (distinct postings).
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.ids)
}

// Stats holds index statistics.
type Stats struct {
	Terms     int    // distinct terms
	Postings  uint64 // sum of all posting list cardinalities
	Records   int    // distinct indexed records
	SizeBytes uint64 // estimated bitmap memory
}

// GetStats returns statistics about the index.
func (ix *Index) GetStats() Stats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	stats := Stats{
		Terms:   len(ix.terms),
		Records: len(ix.ids),
	}
	for _, bm := range ix.terms {
		stats.Postings += bm.GetCardinality()
		stats.SizeBytes += bm.GetSizeInBytes()
	}
	return stats
}

// indexLocked adds a posting under every term. Caller must hold ix.mu.
func (ix *Index) indexLocked(p Posting, terms []string) {
	id, ok := ix.ids[p]
	if !ok {
		id = ix.internLocked(p)
	}

	for _, t := range terms {
		bm, ok := ix.terms[t]
		if !ok {
			bm = roaring.New()
			ix.terms[t] = bm
		}
		bm.Add(uint32(id))
	}

	ix.termsOf[id] = unionSorted(ix.termsOf[id], terms)
}

// deindexLocked verifies the given content against the recorded term set
// before touching any bitmap; a reported inconsistency leaves the index
// unchanged. Caller must hold ix.mu.
func (ix *Index) deindexLocked(p Posting, terms []string) error {
	id, tracked := ix.ids[p]

	// A record whose content never produced a term has no posting.
	if len(terms) == 0 {
		if tracked {
			return &InconsistencyError{Posting: p, Reason: "posting tracked for termless content"}
		}
		return nil
	}

	if !tracked {
		return &InconsistencyError{Posting: p, Reason: "posting not tracked"}
	}
	if !slices.Equal(ix.termsOf[id], terms) {
		return &InconsistencyError{Posting: p, Reason: "content does not match indexed terms"}
	}
	for _, t := range terms {
		bm, ok := ix.terms[t]
		if !ok || !bm.Contains(uint32(id)) {
			return &InconsistencyError{Posting: p, Term: t, Reason: "posting missing from term bitmap"}
		}
	}

	for _, t := range terms {
		bm := ix.terms[t]
		bm.Remove(uint32(id))
		if bm.IsEmpty() {
			delete(ix.terms, t)
		}
	}
	ix.releaseLocked(p, id)
	return nil
}

// retractLocked removes a posting using its recorded term set. Caller must
// hold ix.mu.
func (ix *Index) retractLocked(p Posting, id ID) {
	for _, t := range ix.termsOf[id] {
		bm, ok := ix.terms[t]
		if !ok {
			continue
		}
		bm.Remove(uint32(id))
		if bm.IsEmpty() {
			delete(ix.terms, t)
		}
	}
	ix.releaseLocked(p, id)
}

func (ix *Index) internLocked(p Posting) ID {
	var id ID
	if n := len(ix.free); n > 0 {
		id = ix.free[n-1]
		ix.free = ix.free[:n-1]
	} else {
		id = ix.next
		ix.next++
	}
	ix.ids[p] = id
	ix.byID[id] = p
	return id
}

func (ix *Index) releaseLocked(p Posting, id ID) {
	delete(ix.ids, p)
	delete(ix.byID, id)
	delete(ix.termsOf, id)
	ix.free = append(ix.free, id)
}

// materializeLocked converts a bitmap into sorted postings. Caller must
// hold at least ix.mu.RLock().
func (ix *Index) materializeLocked(bm *roaring.Bitmap) []Posting {
	out := make([]Posting, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		p, ok := ix.byID[ID(it.Next())]
		if !ok {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Posting) int {
		if c := strings.Compare(a.Collection, b.Collection); c != 0 {
			return c
		}
		return strings.Compare(a.Record, b.Record)
	})
	return out
}

// unionSorted merges two sorted term slices without duplicates.
func unionSorted(stored, terms []string) []string {
	if len(stored) == 0 {
		return slices.Clone(terms)
	}
	if slices.Equal(stored, terms) {
		return stored
	}

	out := make([]string, 0, len(stored)+len(terms))
	out = append(out, stored...)
	out = append(out, terms...)
	slices.Sort(out)
	return slices.Compact(out)
}
