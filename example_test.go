package bibgo_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/bibgo"
	"github.com/hupe1980/bibgo/archive"
	"github.com/hupe1980/bibgo/biblio"
	"github.com/hupe1980/bibgo/blobstore"
	"github.com/hupe1980/bibgo/record"
)

func Example() {
	ctx := context.Background()

	catalog := bibgo.New()
	defer catalog.Close()

	if err := catalog.AddCollection(ctx, "papers", "Foundational papers"); err != nil {
		log.Fatal(err)
	}

	rec := record.Record{
		Identifier: "doi:10.1093/mind/LIX.236.433",
		Title:      "Computing Machinery and Intelligence",
		Authors:    []string{"Turing, Alan"},
		Year:       1950,
		Keywords:   []string{"Artificial Intelligence", "imitation game"},
	}
	if err := catalog.AddRecord(ctx, "papers", rec); err != nil {
		log.Fatal(err)
	}

	// Keywords are normalized on write, so the query uses the normalized
	// form.
	postings, err := catalog.Query(ctx, "artificial-intelligence")
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range postings {
		fmt.Printf("%s: %s\n", p.Collection, p.Record)
	}
	// Output:
	// papers: doi:10.1093/mind/LIX.236.433
}

func Example_search() {
	ctx := context.Background()

	catalog := bibgo.New()
	defer catalog.Close()

	if err := catalog.AddCollection(ctx, "papers", ""); err != nil {
		log.Fatal(err)
	}

	records := []record.Record{
		{
			Identifier: "doi:10.1002/j.1538-7305.1948.tb01338.x",
			Title:      "A Mathematical Theory of Communication",
			Authors:    []string{"Shannon, Claude"},
			Year:       1948,
			Keywords:   []string{"information theory"},
		},
		{
			Identifier: "doi:10.1145/361985.361999",
			Title:      "The Complexity of Theorem-Proving Procedures",
			Authors:    []string{"Cook, Stephen"},
			Year:       1971,
			Keywords:   []string{"complexity theory"},
		},
	}
	for _, rec := range records {
		if err := catalog.AddRecord(ctx, "papers", rec); err != nil {
			log.Fatal(err)
		}
	}

	hits, err := catalog.Search("theory").
		Fields(record.FieldTitle, record.FieldKeywords).
		Limit(10).
		Execute(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, hit := range hits {
		fmt.Println(hit.Record.Title)
	}
	// Output:
	// A Mathematical Theory of Communication
	// The Complexity of Theorem-Proving Procedures
}

func Example_citations() {
	ctx := context.Background()

	catalog := bibgo.New()
	defer catalog.Close()

	if err := catalog.AddCollection(ctx, "papers", ""); err != nil {
		log.Fatal(err)
	}

	rec := record.Record{
		Identifier: "doi:10.1093/mind/LIX.236.433",
		Title:      "Computing Machinery and Intelligence",
		Authors:    []string{"Turing, Alan"},
		Year:       1950,
	}
	if err := catalog.AddRecord(ctx, "papers", rec); err != nil {
		log.Fatal(err)
	}

	for _, style := range []biblio.Style{biblio.StyleAPA, biblio.StyleMLA} {
		text, err := catalog.Cite(ctx, "papers", rec.Identifier, style)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(text)
	}
	// Output:
	// Turing, Alan (1950). Computing Machinery and Intelligence.
	// Turing, Alan. "Computing Machinery and Intelligence." 1950.
}

func Example_merge() {
	ctx := context.Background()

	// A shared deterministic clock makes the second write strictly newer.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := 0
	clock := func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Minute)
	}

	local := bibgo.New(bibgo.WithClock(clock))
	defer local.Close()

	remote := bibgo.New(bibgo.WithClock(clock))
	defer remote.Close()

	for _, c := range []*bibgo.Catalog{local, remote} {
		if err := c.AddCollection(ctx, "papers", ""); err != nil {
			log.Fatal(err)
		}
	}

	rec := record.Record{
		Identifier: "doi:10.1093/mind/LIX.236.433",
		Title:      "Computing Machinery and Intelligence",
		Authors:    []string{"Turing, Alan"},
		Year:       1950,
	}
	if err := local.AddRecord(ctx, "papers", rec); err != nil {
		log.Fatal(err)
	}

	// The remote copy is revised later, so it wins the merge.
	rec.Title = "Computing Machinery and Intelligence, Revised"
	if err := remote.AddRecord(ctx, "papers", rec); err != nil {
		log.Fatal(err)
	}

	merged, err := bibgo.Merge(local, remote)
	if err != nil {
		log.Fatal(err)
	}

	coll, _ := merged.Collection("papers")
	winner, _ := coll.Get(rec.Identifier)
	fmt.Println(winner.Title)
	// Output:
	// Computing Machinery and Intelligence, Revised
}

func Example_archive() {
	ctx := context.Background()

	catalog := bibgo.New()
	defer catalog.Close()

	if err := catalog.AddCollection(ctx, "papers", ""); err != nil {
		log.Fatal(err)
	}

	if err := catalog.AddRecord(ctx, "papers", record.Record{
		Identifier: "doi:10.1093/mind/LIX.236.433",
		Title:      "Computing Machinery and Intelligence",
	}); err != nil {
		log.Fatal(err)
	}

	// Swap NewMemoryStore for s3.New or minio.New to archive into object
	// storage.
	store := blobstore.NewMemoryStore()

	w := archive.NewWriter(store, archive.WriterOptions{})

	manifest, err := catalog.ExportArchive(ctx, w)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("version:", manifest.Seq)

	restored := bibgo.New()
	defer restored.Close()

	r := archive.NewReader(store, archive.ReaderOptions{})
	if err := restored.ImportArchive(ctx, r); err != nil {
		log.Fatal(err)
	}

	fmt.Println("records:", restored.Stats().Records)
	// Output:
	// version: 1
	// records: 1
}

func ExampleCatalog_ImportRecords() {
	ctx := context.Background()

	catalog := bibgo.New()
	defer catalog.Close()

	items := []map[string]any{
		{
			"title":            "Structured Programming",
			"author":           "Edsger Dijkstra",
			"isbn":             "9780122005503",
			"publication_date": "1972-01-01",
			"keywords":         []any{"structured programming"},
		},
		{
			"name":   "The Mythical Man-Month",
			"author": "Frederick Brooks",
			"id":     "isbn:9780201835953",
			"year":   "1975",
		},
	}

	n, err := catalog.ImportRecords(ctx, "books", items)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("imported:", n)

	_, rec, err := catalog.FindRecord(ctx, "9780122005503")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(rec.Title, "/", rec.Authors[0], "/", rec.Year)
	// Output:
	// imported: 2
	// Structured Programming / Dijkstra, Edsger / 1972
}
