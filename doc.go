// Package bibgo provides an embedded bibliographic catalog for Go.
//
// Bibgo manages named collections of bibliographic records, keeps a keyword
// index over all of them in lockstep with every write, and merges diverged
// catalog copies deterministically. Everything lives in process memory;
// collection snapshots travel through pluggable codecs and can be archived
// to local disk or object storage.
//
// # Quick Start
//
//	catalog := bibgo.New()
//	defer catalog.Close()
//
//	ctx := context.Background()
//
//	if err := catalog.AddCollection(ctx, "papers", "Distributed systems reading list"); err != nil {
//		log.Fatal(err)
//	}
//
//	rec := record.Record{
//		Identifier: "doi:10.1145/3477132.3483556",
//		Title:      "Log-structured Protocols in Delos",
//		Authors:    []string{"Balakrishnan, Mahesh"},
//		Year:       2021,
//		Keywords:   []string{"replication", "consensus"},
//	}
//	if err := catalog.AddRecord(ctx, "papers", rec); err != nil {
//		log.Fatal(err)
//	}
//
//	postings, _ := catalog.Query(ctx, "consensus")
//	for _, p := range postings {
//		fmt.Println(p.Collection, p.Record)
//	}
//
// # Collections and Records
//
// A record is identified by a caller-chosen string such as a DOI or ISBN and
// carries title, abstract, authors, year, keywords and a LastUpdated stamp.
// The catalog validates records on every write and sets LastUpdated from its
// clock, so the stamp totally orders revisions of the same identifier. An
// identifier is unique within its collection; AddRecord refuses duplicates
// and UpdateRecord replaces the stored content.
//
// # Keyword Index
//
// The index maps normalized keywords to postings, compressed as roaring
// bitmaps. It is maintained incrementally: adding a record inserts postings,
// updating retracts the old content's postings and inserts the new ones,
// removing retracts. Query returns exact keyword matches across all
// collections sorted by collection name and record identifier. Rebuild
// recomputes the whole index from live content, tokenizing records on a
// worker pool.
//
// # Search
//
// Search scans live record fields for a case-insensitive substring using a
// fluent builder:
//
//	hits, err := catalog.Search("turing").
//		Fields(record.FieldTitle, record.FieldAuthors).
//		In("papers").
//		Limit(10).
//		Execute(ctx)
//
// Stream returns the same hits as a lazy iterator, First, Count and Exists
// answer the common questions without materializing results.
//
// # Merge
//
// Merge combines two catalogs into a new one without touching either input.
// Collections present on one side are copied, collections present on both
// are merged record by record: the strictly newer LastUpdated wins, ties go
// to the remote side. MergeCollections applies the same rule to two
// collections inside one catalog. Merging is deterministic, so two replicas
// that merge each other's state converge.
//
// # Snapshots and Archives
//
// Export and Import move single collections through the configured codec.
// The archive package persists whole catalogs as versioned manifests in a
// blob store (local directory, S3, MinIO or in-memory):
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "backups", "catalog/")
//	w := archive.NewWriter(store, archive.WriterOptions{Compression: archive.CompressionZstd})
//
//	manifest, err := catalog.ExportArchive(ctx, w)
//
// # Observability
//
// Structured logging goes through a slog-backed Logger and operational
// counters through a MetricsCollector, both configured as options:
//
//	catalog := bibgo.New(
//		bibgo.WithLogger(bibgo.NewJSONLogger(slog.LevelInfo)),
//		bibgo.WithMetricsCollector(bibgo.NewBasicMetricsCollector()),
//	)
//
// Both default to no-ops.
package bibgo
