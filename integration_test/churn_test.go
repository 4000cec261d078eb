package bibgo_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bibgo"
	"github.com/hupe1980/bibgo/record"
	"github.com/hupe1980/bibgo/testutil"
	"github.com/hupe1980/bibgo/token"
)

// TestIndexConsistencyUnderChurn applies a long random mutation sequence
// and then checks the incrementally maintained index against a shadow copy
// of the live content, before and after a full rebuild.
func TestIndexConsistencyUnderChurn(t *testing.T) {
	ctx := context.Background()

	c := bibgo.New()
	defer c.Close()

	shelves := []string{"alpha", "beta", "gamma"}
	for _, name := range shelves {
		require.NoError(t, c.AddCollection(ctx, name, ""))
	}

	// shadow mirrors what the catalog should contain.
	shadow := make(map[string]map[string]record.Record)
	for _, name := range shelves {
		shadow[name] = make(map[string]record.Record)
	}

	gen := testutil.NewRNG(42)
	rnd := rand.New(rand.NewSource(42))

	identifiers := make([]string, 0, 2048)
	homes := make(map[string]string)

	const ops = 3000
	for range ops {
		shelf := shelves[rnd.Intn(len(shelves))]

		switch op := rnd.Intn(10); {
		case op < 6 || len(identifiers) == 0: // add
			rec := gen.Record()
			require.NoError(t, c.AddRecord(ctx, shelf, rec))

			shadow[shelf][rec.Identifier] = rec
			identifiers = append(identifiers, rec.Identifier)
			homes[rec.Identifier] = shelf

		case op < 8: // update with fresh keywords
			id := identifiers[rnd.Intn(len(identifiers))]
			home := homes[id]
			if home == "" {
				continue
			}

			rec := shadow[home][id]
			rec.Keywords = gen.Keywords(1 + rnd.Intn(3))
			require.NoError(t, c.UpdateRecord(ctx, home, rec))

			shadow[home][id] = rec

		default: // remove
			id := identifiers[rnd.Intn(len(identifiers))]
			home := homes[id]
			if home == "" {
				continue
			}

			_, err := c.RemoveRecord(ctx, home, id)
			require.NoError(t, err)

			delete(shadow[home], id)
			homes[id] = ""
		}
	}

	verify := func(t *testing.T) {
		t.Helper()

		// Expected postings per term, derived from the shadow through the
		// same tokenizer the index uses.
		want := make(map[string]map[string]bool)
		records := 0
		for shelf, recs := range shadow {
			records += len(recs)
			for id, rec := range recs {
				for _, term := range token.Terms(rec) {
					if want[term] == nil {
						want[term] = make(map[string]bool)
					}
					want[term][shelf+"/"+id] = true
				}
			}
		}

		require.Equal(t, records, c.Stats().Records)

		for term, wantSet := range want {
			postings, err := c.Query(ctx, term)
			require.NoError(t, err)

			got := make(map[string]bool, len(postings))
			for _, p := range postings {
				got[p.Collection+"/"+p.Record] = true
			}
			assert.Equal(t, wantSet, got, "term %q", term)
		}
	}

	verify(t)

	require.NoError(t, c.Rebuild(ctx))
	verify(t)
}

// TestConcurrentReadersAndWriters hammers the catalog from several
// goroutines. The assertions are about the end state; the run itself is
// mainly food for the race detector.
func TestConcurrentReadersAndWriters(t *testing.T) {
	ctx := context.Background()

	c := bibgo.New()
	defer c.Close()

	const (
		writers       = 4
		perWriter     = 200
		readerPairs   = 2
		totalExpected = writers * perWriter
	)

	for i := range writers {
		require.NoError(t, c.AddCollection(ctx, fmt.Sprintf("w%d", i), ""))
	}

	writeG, wctx := errgroup.WithContext(ctx)
	for i := range writers {
		writeG.Go(func() error {
			gen := testutil.NewRNG(int64(100 + i))
			shelf := fmt.Sprintf("w%d", i)

			for _, rec := range gen.Records(perWriter) {
				if err := c.AddRecord(wctx, shelf, rec); err != nil {
					return err
				}
			}
			return nil
		})
	}

	var readG errgroup.Group
	done := make(chan struct{})
	for range readerPairs {
		readG.Go(func() error {
			for {
				select {
				case <-done:
					return nil
				default:
				}

				if _, err := c.Query(ctx, "databases"); err != nil {
					return err
				}
				if _, err := c.Search("systems").Limit(5).Execute(ctx); err != nil {
					return err
				}
			}
		})
	}

	require.NoError(t, writeG.Wait())
	close(done)
	require.NoError(t, readG.Wait())

	assert.Equal(t, totalExpected, c.Stats().Records)

	postings, err := c.Query(ctx, "databases")
	require.NoError(t, err)
	require.NoError(t, c.Rebuild(ctx))

	after, err := c.Query(ctx, "databases")
	require.NoError(t, err)
	assert.Equal(t, postings, after)
}
