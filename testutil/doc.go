// Package testutil provides testing utilities for Bibgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe generator for bibliographic
// records, collection snapshots and Zipf-distributed keywords.
//
// # Record Generation
//
//	rng := testutil.NewRNG(seed)
//	recs := rng.Records(100)        // 100 valid records, unique identifiers
//	snap := rng.Snapshot("papers", 50)
//
// # Determinism
//
//	rng.Reset()                     // replays the exact same records
//
// # Keyword Distribution
//
//	kws := rng.Keywords(5)          // Zipf-skewed, normalized keywords
package testutil
