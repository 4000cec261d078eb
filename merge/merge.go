// Package merge implements the deterministic two-way merge of records,
// collections and whole catalogs. Every function here is pure: inputs are
// never mutated and results are freshly allocated, so the same inputs
// always produce the same output.
package merge

import (
	"github.com/hupe1980/bibgo/collection"
	"github.com/hupe1980/bibgo/record"
)

// Stats summarizes one collection merge.
type Stats struct {
	Added    int // identifiers only present on the remote side
	Replaced int // conflicts won by remote
	Kept     int // conflicts won by local
	Skipped  int // remote records without an identifier
}

// Total returns the number of records in the merged result.
func (s Stats) Total() int {
	return s.Added + s.Replaced + s.Kept
}

// Records resolves a conflict between two versions of the same record:
// the strictly later LastUpdated wins wholesale, field by field nothing is
// combined. On an exact timestamp tie the remote version wins.
func Records(local, remote record.Record) record.Record {
	if local.LastUpdated.After(remote.LastUpdated) {
		return local.Clone()
	}
	return remote.Clone()
}

// Collections merges remote into local and returns a new collection.
//
// The identifier sets are unioned: records present on only one side are
// taken as-is, records present on both are resolved with Records. Remote
// records without an identifier are skipped. The result keeps local's
// name, description and creation time; stats only count records that
// appear on the remote side (one-sided local records are neither added nor
// kept conflicts).
func Collections(local, remote *collection.Collection) (*collection.Collection, Stats) {
	var stats Stats

	out := collection.New(local.Name(), local.Description(), local.CreatedAt())
	for _, rec := range local.Records() {
		// Snapshot copies keep the inputs untouched.
		_ = out.Add(rec)
	}

	for _, rem := range remote.Records() {
		if rem.Identifier == "" {
			stats.Skipped++
			continue
		}

		loc, ok := out.Get(rem.Identifier)
		if !ok {
			_ = out.Add(rem.Clone())
			stats.Added++
			continue
		}

		// Same rule as Records: strictly later local wins, everything
		// else (including an exact tie) goes to remote.
		if loc.LastUpdated.After(rem.LastUpdated) {
			stats.Kept++
			continue
		}
		if _, err := out.Update(rem.Clone()); err != nil {
			continue
		}
		stats.Replaced++
	}

	return out, stats
}

// Snapshots merges two collection snapshots, materializing them first.
func Snapshots(local, remote collection.Snapshot) (collection.Snapshot, Stats) {
	merged, stats := Collections(collection.FromSnapshot(local), collection.FromSnapshot(remote))
	return merged.Snapshot(), stats
}
