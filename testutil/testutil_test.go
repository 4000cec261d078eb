package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bibgo/record"
)

func TestRecords(t *testing.T) {
	rng := NewRNG(4711)

	recs := rng.Records(200)
	require.Len(t, recs, 200)

	seen := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		require.NoError(t, rec.Validate(nil))
		assert.NotEmpty(t, rec.Title)
		assert.NotEmpty(t, rec.Authors)
		assert.GreaterOrEqual(t, rec.Year, 1985)
		assert.LessOrEqual(t, rec.Year, 2025)
		assert.Equal(t, record.NormalizeKeywords(rec.Keywords), rec.Keywords)
		assert.False(t, rec.LastUpdated.IsZero())

		_, dup := seen[rec.Identifier]
		assert.False(t, dup, "duplicate identifier %s", rec.Identifier)
		seen[rec.Identifier] = struct{}{}
	}
}

func TestRecordsUniqueAcrossCalls(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.Records(10)
	b := rng.Records(10)

	seen := make(map[string]struct{})
	for _, rec := range append(a, b...) {
		_, dup := seen[rec.Identifier]
		assert.False(t, dup, "duplicate identifier %s", rec.Identifier)
		seen[rec.Identifier] = struct{}{}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Records(20)

	rng.Reset()
	b := rng.Records(20)

	assert.Equal(t, a, b)
}

func TestSnapshot(t *testing.T) {
	rng := NewRNG(42)

	snap := rng.Snapshot("papers", 30)

	assert.Equal(t, "papers", snap.Name)
	assert.Len(t, snap.Records, 30)
	assert.False(t, snap.CreatedAt.IsZero())
}

func TestKeywordsZipfSkew(t *testing.T) {
	rng := NewRNG(42)

	// With skew 1.2 the head of the vocabulary should dominate.
	counts := make(map[string]int)
	for i := 0; i < 500; i++ {
		for _, kw := range rng.Keywords(3) {
			counts[kw]++
		}
	}

	head := counts["databases"] + counts["indexing"] + counts["storage"]
	tail := counts["profiling"] + counts["scheduling-theory"]
	assert.Greater(t, head, tail*3, "head terms should dominate tail terms")
}

func TestZipfBounds(t *testing.T) {
	rng := NewRNG(42)

	for i := 0; i < 1000; i++ {
		v := rng.Zipf(10, 1.0)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}

	assert.Equal(t, 0, rng.Zipf(1, 1.0))
	assert.Equal(t, 0, rng.Zipf(0, 1.0))
}

func TestIdentifiers(t *testing.T) {
	rng := NewRNG(42)

	recs := rng.Records(5)
	ids := Identifiers(recs)

	require.Len(t, ids, 5)
	for i, rec := range recs {
		assert.Equal(t, rec.Identifier, ids[i])
	}
}
