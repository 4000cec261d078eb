package bibgo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/bibgo/archive"
	"github.com/hupe1980/bibgo/biblio"
	"github.com/hupe1980/bibgo/codec"
	"github.com/hupe1980/bibgo/collection"
	"github.com/hupe1980/bibgo/index"
	"github.com/hupe1980/bibgo/internal/pool"
	"github.com/hupe1980/bibgo/merge"
	"github.com/hupe1980/bibgo/record"
	"github.com/hupe1980/bibgo/resource"
	"github.com/hupe1980/bibgo/token"
)

// rebuildBatch is the number of records tokenized per worker task during an
// index rebuild.
const rebuildBatch = 256

// Citation styles accepted by Cite, re-exported so callers of the facade do
// not need to import the biblio package.
const (
	StyleAPA = biblio.StyleAPA
	StyleMLA = biblio.StyleMLA
)

// SearchHit is a search match together with the collection it came from.
type SearchHit struct {
	Collection string
	Record     record.Record
}

// CatalogStats summarizes catalog content and index size.
type CatalogStats struct {
	Collections int
	Records     int
	Index       index.Stats
}

// Catalog is an in-memory bibliographic catalog: a set of named collections
// plus one keyword index spanning all of them.
//
// Every mutation goes through the catalog so collection content and index
// postings stay in lockstep. Handles obtained via Collection are safe for
// concurrent reads, but mutating them directly bypasses the index.
type Catalog struct {
	mu          sync.RWMutex
	collections map[string]*collection.Collection

	index *index.Index

	codec     codec.Codec
	now       func() time.Time
	isValidID func(string) bool
	resources *resource.Controller

	rebuildWorkers int

	metrics MetricsCollector
	logger  *Logger

	closed atomic.Bool
}

// New creates an empty catalog.
func New(optFns ...Option) *Catalog {
	opts := applyOptions(optFns...)

	return &Catalog{
		collections:    make(map[string]*collection.Collection),
		index:          index.New(),
		codec:          opts.codec,
		now:            opts.clock,
		isValidID:      opts.identifierValid,
		resources:      opts.resources,
		rebuildWorkers: opts.rebuildWorkers,
		metrics:        opts.metricsCollector,
		logger:         opts.logger,
	}
}

// AddCollection creates an empty collection under the given name.
func (c *Catalog) AddCollection(ctx context.Context, name, description string) error {
	if c.closed.Load() {
		return ErrCatalogClosed
	}

	if name == "" {
		err := fmt.Errorf("collection name must not be empty")
		c.logger.LogCollection(ctx, "add", name, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.collections[name]; ok {
		err := fmt.Errorf("%w: %q", ErrDuplicateCollection, name)
		c.logger.LogCollection(ctx, "add", name, err)
		return err
	}

	c.collections[name] = collection.New(name, description, c.now())
	c.logger.LogCollection(ctx, "add", name, nil)

	return nil
}

// RemoveCollection drops a collection. All of its postings are retracted
// from the index before the collection becomes unreachable.
func (c *Catalog) RemoveCollection(ctx context.Context, name string) error {
	if c.closed.Load() {
		return ErrCatalogClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.collections[name]; !ok {
		err := fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
		c.logger.LogCollection(ctx, "remove", name, err)
		return err
	}

	c.index.RemoveCollection(name)
	delete(c.collections, name)
	c.logger.LogCollection(ctx, "remove", name, nil)

	return nil
}

// Collections returns the names of all collections in sorted order.
func (c *Catalog) Collections() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.namesLocked()
}

// Collection returns a read handle for the named collection.
func (c *Catalog) Collection(name string) (*collection.Collection, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	coll, ok := c.collections[name]

	return coll, ok
}

// AddRecord validates rec, stamps its LastUpdated from the catalog clock and
// inserts it into the named collection. The identifier must be new to the
// collection; adding an existing identifier returns ErrDuplicateIdentifier
// and leaves the stored record unchanged.
func (c *Catalog) AddRecord(ctx context.Context, name string, rec record.Record) error {
	start := time.Now()

	if c.closed.Load() {
		return ErrCatalogClosed
	}

	err := c.addRecord(name, rec)

	duration := time.Since(start)
	c.metrics.RecordAdd(duration, err)
	c.logger.LogAdd(ctx, name, rec.Identifier, err)

	return err
}

func (c *Catalog) addRecord(name string, rec record.Record) error {
	coll, err := c.lookup(name)
	if err != nil {
		return err
	}

	if err := rec.Validate(c.isValidID); err != nil {
		return translateError(err)
	}

	rec = c.stamp(rec)

	if err := coll.Add(rec); err != nil {
		return translateError(err)
	}

	c.index.IndexRecord(name, rec)

	return nil
}

// UpdateRecord replaces the record stored under rec.Identifier. The postings
// of the old content are retracted and the new content is indexed as one
// atomic index operation.
func (c *Catalog) UpdateRecord(ctx context.Context, name string, rec record.Record) error {
	start := time.Now()

	if c.closed.Load() {
		return ErrCatalogClosed
	}

	err := c.updateRecord(ctx, name, rec)

	duration := time.Since(start)
	c.metrics.RecordUpdate(duration, err)
	c.logger.LogUpdate(ctx, name, rec.Identifier, err)

	return err
}

func (c *Catalog) updateRecord(ctx context.Context, name string, rec record.Record) error {
	coll, err := c.lookup(name)
	if err != nil {
		return err
	}

	if err := rec.Validate(c.isValidID); err != nil {
		return translateError(err)
	}

	rec = c.stamp(rec)

	old, err := coll.Update(rec)
	if err != nil {
		return translateError(err)
	}

	if err := c.index.Reindex(name, old, rec); err != nil {
		return c.recoverIndex(ctx, err)
	}

	return nil
}

// RemoveRecord removes the record with the given identifier from the named
// collection, retracts its postings and returns the removed content.
func (c *Catalog) RemoveRecord(ctx context.Context, name, identifier string) (record.Record, error) {
	start := time.Now()

	if c.closed.Load() {
		return record.Record{}, ErrCatalogClosed
	}

	old, err := c.removeRecord(ctx, name, identifier)

	duration := time.Since(start)
	c.metrics.RecordRemove(duration, err)
	c.logger.LogRemove(ctx, name, identifier, err)

	return old, err
}

func (c *Catalog) removeRecord(ctx context.Context, name, identifier string) (record.Record, error) {
	coll, err := c.lookup(name)
	if err != nil {
		return record.Record{}, err
	}

	old, err := coll.Remove(identifier)
	if err != nil {
		return record.Record{}, translateError(err)
	}

	if err := c.index.DeindexRecord(name, old); err != nil {
		return old, c.recoverIndex(ctx, err)
	}

	return old, nil
}

// stamp normalizes keywords and sets LastUpdated from the catalog clock.
func (c *Catalog) stamp(rec record.Record) record.Record {
	rec = rec.Clone()
	rec.Keywords = record.NormalizeKeywords(rec.Keywords)
	rec.LastUpdated = c.now()

	return rec
}

// Query returns the postings for a single keyword, sorted by collection name
// and record identifier. Unknown terms return an empty result and no error.
func (c *Catalog) Query(ctx context.Context, term string) ([]index.Posting, error) {
	start := time.Now()

	if c.closed.Load() {
		return nil, ErrCatalogClosed
	}

	postings := c.index.Query(term)

	duration := time.Since(start)
	c.metrics.RecordQuery(len(postings), duration, nil)
	c.logger.LogQuery(ctx, term, len(postings), nil)

	return postings, nil
}

// FindRecord looks an identifier up across every collection in sorted name
// order and returns the first match together with its collection name.
func (c *Catalog) FindRecord(ctx context.Context, identifier string) (string, record.Record, error) {
	if c.closed.Load() {
		return "", record.Record{}, ErrCatalogClosed
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, name := range c.namesLocked() {
		if rec, ok := c.collections[name].Get(identifier); ok {
			return name, rec, nil
		}
	}

	return "", record.Record{}, fmt.Errorf("%w: %q", ErrRecordNotFound, identifier)
}

// Cite formats the record stored under the identifier in the named
// collection as a citation string.
func (c *Catalog) Cite(ctx context.Context, name, identifier string, style biblio.Style) (string, error) {
	if c.closed.Load() {
		return "", ErrCatalogClosed
	}

	coll, err := c.lookup(name)
	if err != nil {
		return "", err
	}

	rec, ok := coll.Get(identifier)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRecordNotFound, identifier)
	}

	text, err := biblio.FormatCitation(rec, style)
	if err != nil {
		return "", translateError(err)
	}

	return text, nil
}

// Export serializes a point-in-time snapshot of the named collection with
// the configured codec.
func (c *Catalog) Export(ctx context.Context, name string) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrCatalogClosed
	}

	coll, err := c.lookup(name)
	if err != nil {
		c.logger.LogExport(ctx, name, 0, err)
		return nil, err
	}

	data, err := c.codec.Marshal(coll.Snapshot())
	if err != nil {
		err = fmt.Errorf("encode snapshot: %w", err)
		c.logger.LogExport(ctx, name, 0, err)
		return nil, err
	}

	c.logger.LogExport(ctx, name, len(data), nil)

	return data, nil
}

// Import decodes a snapshot produced by Export and installs it as a new
// collection, indexing every record. The snapshot name must not collide with
// an existing collection.
func (c *Catalog) Import(ctx context.Context, data []byte) error {
	if c.closed.Load() {
		return ErrCatalogClosed
	}

	var snap collection.Snapshot
	if err := c.codec.Unmarshal(data, &snap); err != nil {
		err = fmt.Errorf("decode snapshot: %w", err)
		c.logger.LogCollection(ctx, "import", snap.Name, err)
		return err
	}

	if err := c.importSnapshots([]collection.Snapshot{snap}); err != nil {
		c.logger.LogCollection(ctx, "import", snap.Name, err)
		return err
	}

	c.logger.LogCollection(ctx, "import", snap.Name, nil)

	return nil
}

// ImportRecords ingests loosely structured items, such as decoded JSON
// objects or CSV rows, into the named collection. The collection is created
// when absent. Items that fail to parse or validate are skipped; their
// errors are joined and returned together with the number of records
// imported.
func (c *Catalog) ImportRecords(ctx context.Context, name string, items []map[string]any) (int, error) {
	start := time.Now()

	if c.closed.Load() {
		return 0, ErrCatalogClosed
	}

	imported, err := c.importRecords(name, items)

	duration := time.Since(start)
	failed := len(items) - imported
	c.metrics.RecordImport(imported, failed, duration)
	c.logger.LogImport(ctx, name, imported, failed, err)

	return imported, err
}

func (c *Catalog) importRecords(name string, items []map[string]any) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("collection name must not be empty")
	}

	c.mu.Lock()
	coll, ok := c.collections[name]
	if !ok {
		coll = collection.New(name, "", c.now())
		c.collections[name] = coll
	}
	c.mu.Unlock()

	var (
		imported int
		errs     []error
	)

	for i, item := range items {
		rec, err := biblio.ParseRecord(item)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, translateError(err)))
			continue
		}

		if err := rec.Validate(c.isValidID); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, translateError(err)))
			continue
		}

		rec = c.stamp(rec)

		if err := coll.Add(rec); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, translateError(err)))
			continue
		}

		c.index.IndexRecord(name, rec)
		imported++
	}

	return imported, errors.Join(errs...)
}

// MergeCollections merges the source collection into target inside this
// catalog, with source playing the remote side of the conflict rule: for an
// identifier present on both sides the strictly newer LastUpdated wins and
// ties go to the source. Postings follow each winner incrementally. The
// source collection is removed when the merge completes.
func (c *Catalog) MergeCollections(ctx context.Context, target, source string) (merge.Stats, error) {
	start := time.Now()

	if c.closed.Load() {
		return merge.Stats{}, ErrCatalogClosed
	}

	stats, records, err := c.mergeCollections(ctx, target, source)

	duration := time.Since(start)
	c.metrics.RecordMerge(records, duration)
	c.logger.LogMerge(ctx, target, source, stats, err)

	return stats, err
}

func (c *Catalog) mergeCollections(ctx context.Context, target, source string) (merge.Stats, int, error) {
	var stats merge.Stats

	if target == source {
		return stats, 0, fmt.Errorf("cannot merge collection %q into itself", target)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tgt, ok := c.collections[target]
	if !ok {
		return stats, 0, fmt.Errorf("%w: %q", ErrCollectionNotFound, target)
	}

	src, ok := c.collections[source]
	if !ok {
		return stats, 0, fmt.Errorf("%w: %q", ErrCollectionNotFound, source)
	}

	records := src.Records()

	for _, rem := range records {
		if rem.Identifier == "" {
			stats.Skipped++
			continue
		}

		loc, ok := tgt.Get(rem.Identifier)
		if !ok {
			if err := tgt.Add(rem); err != nil {
				return stats, len(records), translateError(err)
			}

			c.index.IndexRecord(target, rem)
			stats.Added++

			continue
		}

		// Same conflict rule as merge.Collections: a strictly newer target
		// record survives, ties go to the source.
		if loc.LastUpdated.After(rem.LastUpdated) {
			stats.Kept++
			continue
		}

		old, err := tgt.Update(rem)
		if err != nil {
			return stats, len(records), translateError(err)
		}

		if err := c.index.Reindex(target, old, rem); err != nil {
			return stats, len(records), c.recoverIndexLocked(ctx, err)
		}

		stats.Replaced++
	}

	c.index.RemoveCollection(source)
	delete(c.collections, source)

	return stats, len(records), nil
}

// Merge combines two catalogs into a new one without mutating either input.
// Collections present on one side only are copied; collections present on
// both sides are merged record by record, where for the same identifier the
// strictly newer LastUpdated wins and ties go to the remote side. The result
// carries local's configuration and a freshly built index.
func Merge(local, remote *Catalog) (*Catalog, error) {
	if local == nil || remote == nil {
		return nil, fmt.Errorf("both catalogs must be non-nil")
	}

	if local.closed.Load() || remote.closed.Load() {
		return nil, ErrCatalogClosed
	}

	localColls := local.snapshotCollections()
	remoteColls := remote.snapshotCollections()

	out := &Catalog{
		collections:    make(map[string]*collection.Collection, len(localColls)+len(remoteColls)),
		index:          index.New(),
		codec:          local.codec,
		now:            local.now,
		isValidID:      local.isValidID,
		resources:      local.resources,
		rebuildWorkers: local.rebuildWorkers,
		metrics:        local.metrics,
		logger:         local.logger,
	}

	names := make(map[string]struct{}, len(localColls)+len(remoteColls))
	for name := range localColls {
		names[name] = struct{}{}
	}
	for name := range remoteColls {
		names[name] = struct{}{}
	}

	for name := range names {
		loc, hasLocal := localColls[name]
		rem, hasRemote := remoteColls[name]

		switch {
		case hasLocal && hasRemote:
			merged, _ := merge.Collections(loc, rem)
			out.collections[name] = merged
		case hasLocal:
			out.collections[name] = collection.FromSnapshot(loc.Snapshot())
		default:
			out.collections[name] = collection.FromSnapshot(rem.Snapshot())
		}
	}

	// out is not shared yet, so the unlocked snapshot is safe.
	out.index.Rebuild(out.snapshotRecordsLocked())

	return out, nil
}

// Rebuild recomputes the whole index from live collection content: every
// record is tokenized on the worker pool and the result replaces the current
// posting sets in one swap.
func (c *Catalog) Rebuild(ctx context.Context) error {
	start := time.Now()

	if c.closed.Load() {
		return ErrCatalogClosed
	}

	records, err := c.rebuild(ctx)

	duration := time.Since(start)
	c.metrics.RecordRebuild(records, duration)
	c.logger.LogRebuild(ctx, records, err)

	return err
}

func (c *Catalog) rebuild(ctx context.Context) (int, error) {
	// Rebuilds are maintenance work: wait for the background slot when a
	// controller is configured.
	if err := c.resources.AcquireBackground(ctx); err != nil {
		return 0, err
	}
	defer c.resources.ReleaseBackground()

	entries, err := c.tokenize(ctx, c.snapshotRecords())
	if err != nil {
		return 0, err
	}

	c.index.RebuildEntries(entries)

	return len(entries), nil
}

// tokenize turns a content snapshot into index entries, fanning the token
// work out over the worker pool. Tasks fill disjoint ranges of the result
// slice, so no locking is needed.
func (c *Catalog) tokenize(ctx context.Context, snap map[string][]record.Record) ([]index.Entry, error) {
	total := 0
	for _, recs := range snap {
		total += len(recs)
	}

	if total == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]index.Entry, total)
	recs := make([]record.Record, total)

	i := 0
	for _, name := range names {
		for _, rec := range snap[name] {
			entries[i] = index.Entry{Posting: index.Posting{Collection: name, Record: rec.Identifier}}
			recs[i] = rec
			i++
		}
	}

	wp := pool.New(c.rebuildWorkers)
	defer wp.Close()

	var wg sync.WaitGroup

	for lo := 0; lo < total; lo += rebuildBatch {
		hi := min(lo+rebuildBatch, total)

		wg.Add(1)

		err := wp.Submit(ctx, func() {
			defer wg.Done()

			for k := lo; k < hi; k++ {
				entries[k].Terms = token.Terms(recs[k])
			}
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	wg.Wait()

	return entries, nil
}

// recoverIndex rebuilds the index from live content after the write path
// reported an inconsistency. Collection content is authoritative, so the
// rebuilt index is correct even though the original error still goes back
// to the caller.
func (c *Catalog) recoverIndex(ctx context.Context, err error) error {
	return c.recoverFrom(ctx, c.snapshotRecords(), err)
}

// recoverIndexLocked is recoverIndex for callers already holding c.mu.
func (c *Catalog) recoverIndexLocked(ctx context.Context, err error) error {
	return c.recoverFrom(ctx, c.snapshotRecordsLocked(), err)
}

func (c *Catalog) recoverFrom(ctx context.Context, snap map[string][]record.Record, err error) error {
	c.logger.ErrorContext(ctx, "index inconsistency detected, rebuilding", "error", err)

	entries, terr := c.tokenize(ctx, snap)
	if terr != nil {
		c.logger.ErrorContext(ctx, "index rebuild failed", "error", terr)
		return translateError(err)
	}

	c.index.RebuildEntries(entries)
	c.logger.LogRebuild(ctx, len(entries), nil)

	return translateError(err)
}

// Stats returns current catalog statistics.
func (c *Catalog) Stats() CatalogStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := 0
	for _, coll := range c.collections {
		records += coll.Len()
	}

	return CatalogStats{
		Collections: len(c.collections),
		Records:     records,
		Index:       c.index.GetStats(),
	}
}

// Snapshots captures every collection as a point-in-time snapshot, sorted by
// collection name. The result is the input for archive.Writer.
func (c *Catalog) Snapshots() []collection.Snapshot {
	c.mu.RLock()
	colls := make([]*collection.Collection, 0, len(c.collections))
	for _, coll := range c.collections {
		colls = append(colls, coll)
	}
	c.mu.RUnlock()

	slices.SortFunc(colls, func(a, b *collection.Collection) int {
		return strings.Compare(a.Name(), b.Name())
	})

	snaps := make([]collection.Snapshot, 0, len(colls))
	for _, coll := range colls {
		snaps = append(snaps, coll.Snapshot())
	}

	return snaps
}

// ExportArchive writes every collection to the archive as a new version and
// returns the committed manifest.
func (c *Catalog) ExportArchive(ctx context.Context, w *archive.Writer) (*archive.Manifest, error) {
	if c.closed.Load() {
		return nil, ErrCatalogClosed
	}

	snaps := c.Snapshots()

	m, err := w.Write(ctx, snaps)
	if err != nil {
		c.logger.LogArchive(ctx, "export", 0, len(snaps), err)
		return nil, err
	}

	c.logger.LogArchive(ctx, "export", m.Seq, len(snaps), nil)

	return m, nil
}

// ImportArchive loads the archive's current version and installs every
// collection in it. Collection names must not collide with existing ones;
// on a collision nothing is imported.
func (c *Catalog) ImportArchive(ctx context.Context, r *archive.Reader) error {
	if c.closed.Load() {
		return ErrCatalogClosed
	}

	m, err := r.Manifest(ctx)
	if err != nil {
		c.logger.LogArchive(ctx, "import", 0, 0, err)
		return err
	}

	return c.importManifest(ctx, r, m)
}

// ImportArchiveAt loads one specific archive version instead of the current
// one. Together with Reader.Versions this restores any retained historical
// export.
func (c *Catalog) ImportArchiveAt(ctx context.Context, r *archive.Reader, seq uint64) error {
	if c.closed.Load() {
		return ErrCatalogClosed
	}

	m, err := r.ManifestAt(ctx, seq)
	if err != nil {
		c.logger.LogArchive(ctx, "import", seq, 0, err)
		return err
	}

	return c.importManifest(ctx, r, m)
}

func (c *Catalog) importManifest(ctx context.Context, r *archive.Reader, m *archive.Manifest) error {
	snaps, err := r.ReadManifest(ctx, m)
	if err != nil {
		c.logger.LogArchive(ctx, "import", m.Seq, 0, err)
		return err
	}

	if err := c.importSnapshots(snaps); err != nil {
		c.logger.LogArchive(ctx, "import", m.Seq, len(snaps), err)
		return err
	}

	c.logger.LogArchive(ctx, "import", m.Seq, len(snaps), nil)

	return nil
}

// importSnapshots installs snapshots as new collections and indexes their
// records. Installation is all or nothing: a single name collision fails
// the whole batch before anything is added.
func (c *Catalog) importSnapshots(snaps []collection.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, snap := range snaps {
		if snap.Name == "" {
			return fmt.Errorf("snapshot has no collection name")
		}

		if _, ok := c.collections[snap.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateCollection, snap.Name)
		}
	}

	for _, snap := range snaps {
		coll := collection.FromSnapshot(snap)
		c.collections[snap.Name] = coll

		for _, rec := range coll.Records() {
			c.index.IndexRecord(snap.Name, rec)
		}
	}

	return nil
}

// lookup resolves a collection name to its handle.
func (c *Catalog) lookup(name string) (*collection.Collection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	coll, ok := c.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}

	return coll, nil
}

// namesLocked returns sorted collection names. Callers hold c.mu.
func (c *Catalog) namesLocked() []string {
	names := make([]string, 0, len(c.collections))
	for name := range c.collections {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// snapshotRecords captures the live content of every collection.
func (c *Catalog) snapshotRecords() map[string][]record.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshotRecordsLocked()
}

func (c *Catalog) snapshotRecordsLocked() map[string][]record.Record {
	snap := make(map[string][]record.Record, len(c.collections))
	for name, coll := range c.collections {
		snap[name] = coll.Records()
	}

	return snap
}

// snapshotCollections copies the collection table. The handles themselves
// are shared and internally synchronized.
func (c *Catalog) snapshotCollections() map[string]*collection.Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	colls := make(map[string]*collection.Collection, len(c.collections))
	for name, coll := range c.collections {
		colls[name] = coll
	}

	return colls
}
