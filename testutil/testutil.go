package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/bibgo/collection"
	"github.com/hupe1980/bibgo/record"
)

// epoch is the base timestamp for generated records. Timestamps grow by
// one minute per record, so merge tests get a strict ordering for free.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var titleWords = []string{
	"adaptive", "incremental", "distributed", "concurrent", "scalable",
	"efficient", "consistent", "replicated", "probabilistic", "declarative",
	"indexing", "compaction", "caching", "scheduling", "consensus",
	"storage", "retrieval", "tokenization", "replication", "partitioning",
	"encoding", "deduplication", "recovery", "snapshots", "catalogs",
	"for", "of", "in", "with", "over",
}

var firstNames = []string{
	"Ada", "Alan", "Barbara", "Edsger", "Grace", "John", "Leslie", "Donald",
	"Tony", "Niklaus", "Ken", "Dennis", "Bjarne", "Frances", "Rob", "Radia",
}

var lastNames = []string{
	"Lovelace", "Turing", "Liskov", "Dijkstra", "Hopper", "McCarthy",
	"Lamport", "Knuth", "Hoare", "Wirth", "Thompson", "Ritchie",
	"Stroustrup", "Allen", "Pike", "Perlman",
}

// keywordVocab is ordered by intended frequency: Zipf sampling makes the
// first entries common and the tail rare, matching real subject headings.
var keywordVocab = []string{
	"databases", "indexing", "storage", "compression", "consensus",
	"caching", "networking", "security", "compilers", "scheduling",
	"replication", "concurrency", "hashing", "serialization", "logging",
	"benchmarking", "testing", "recovery", "cryptography", "verification",
	"virtualization", "tracing", "profiling", "scheduling-theory",
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand   *rand.Rand
	seed   int64
	nextID int
	mu     sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed and restarts identifier
// numbering, so a reset generator replays the same records.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
	r.nextID = 0
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Records generates n valid bibliographic records with unique
// identifiers. Identifiers keep counting across calls, so successive
// calls never collide. Locks only once per call.
func (r *RNG) Records(n int) []record.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]record.Record, n)
	for i := range out {
		out[i] = r.recordLocked()
	}
	return out
}

// Record generates a single valid bibliographic record.
func (r *RNG) Record() record.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recordLocked()
}

// recordLocked is the internal implementation (caller must hold lock).
func (r *RNG) recordLocked() record.Record {
	id := r.nextID
	r.nextID++

	identifier := fmt.Sprintf("doi:10.5555/bib.%06d", id)
	if id%7 == 3 {
		identifier = fmt.Sprintf("isbn:978%010d", id)
	}

	rec := record.Record{
		Identifier:  identifier,
		Title:       r.titleLocked(),
		Authors:     r.authorsLocked(),
		Year:        1985 + r.rand.Intn(41),
		Keywords:    r.keywordsLocked(2 + r.rand.Intn(4)),
		LastUpdated: epoch.Add(time.Duration(id) * time.Minute),
	}

	if r.rand.Float64() < 0.7 {
		rec.Abstract = r.abstractLocked()
	}

	return rec
}

func (r *RNG) titleLocked() string {
	words := make([]string, 3+r.rand.Intn(4))
	for i := range words {
		w := titleWords[r.rand.Intn(len(titleWords))]
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (r *RNG) authorsLocked() []string {
	authors := make([]string, 1+r.rand.Intn(3))
	for i := range authors {
		first := firstNames[r.rand.Intn(len(firstNames))]
		last := lastNames[r.rand.Intn(len(lastNames))]
		authors[i] = first + " " + last
	}
	return authors
}

func (r *RNG) abstractLocked() string {
	words := make([]string, 8+r.rand.Intn(12))
	for i := range words {
		words[i] = titleWords[r.rand.Intn(len(titleWords))]
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func (r *RNG) keywordsLocked(n int) []string {
	keywords := make([]string, n)
	for i := range keywords {
		keywords[i] = keywordVocab[r.zipfLocked(len(keywordVocab), 1.2)]
	}
	// Normalization may drop duplicates, so records can end up with
	// fewer keywords than sampled.
	return record.NormalizeKeywords(keywords)
}

// Keywords generates n Zipf-distributed keywords in normalized form.
// Head terms of the vocabulary dominate, the tail is rare.
func (r *RNG) Keywords(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keywordsLocked(n)
}

// Snapshot generates a named collection snapshot with n records.
func (r *RNG) Snapshot(name string, n int) collection.Snapshot {
	return collection.Snapshot{
		Name:      name,
		CreatedAt: epoch,
		Records:   r.Records(n),
	}
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
// This is how real-world data is distributed (power law).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	// Use rejection sampling from uniform distribution
	// This is mathematically correct for Zipf distribution
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// Identifiers extracts the identifiers of a record slice, preserving
// order. Handy for asserting query results.
func Identifiers(records []record.Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Identifier
	}
	return out
}
