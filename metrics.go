package bibgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// All methods must be safe for concurrent use.
type MetricsCollector interface {
	// RecordAdd records a single record insertion.
	RecordAdd(duration time.Duration, err error)

	// RecordUpdate records a record replacement.
	RecordUpdate(duration time.Duration, err error)

	// RecordRemove records a record removal.
	RecordRemove(duration time.Duration, err error)

	// RecordQuery records an index lookup and the number of postings returned.
	RecordQuery(postings int, duration time.Duration, err error)

	// RecordSearch records a substring scan and the number of hits returned.
	RecordSearch(hits int, duration time.Duration, err error)

	// RecordImport records a bulk import with success and failure counts.
	RecordImport(imported, failed int, duration time.Duration)

	// RecordMerge records a collection merge and the number of source records
	// examined.
	RecordMerge(records int, duration time.Duration)

	// RecordRebuild records a full index rebuild and the number of records
	// tokenized.
	RecordRebuild(records int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// It is the default when no collector is configured.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(duration time.Duration, err error)            {}
func (NoopMetricsCollector) RecordUpdate(duration time.Duration, err error)         {}
func (NoopMetricsCollector) RecordRemove(duration time.Duration, err error)         {}
func (NoopMetricsCollector) RecordQuery(postings int, duration time.Duration, err error) {
}
func (NoopMetricsCollector) RecordSearch(hits int, duration time.Duration, err error) {}
func (NoopMetricsCollector) RecordImport(imported, failed int, duration time.Duration) {
}
func (NoopMetricsCollector) RecordMerge(records int, duration time.Duration)   {}
func (NoopMetricsCollector) RecordRebuild(records int, duration time.Duration) {}

// BasicMetricsCollector is a simple in-memory metrics collector using atomic
// counters. Useful for testing and simple monitoring.
type BasicMetricsCollector struct {
	addCount  atomic.Int64
	addErrors atomic.Int64
	addNanos  atomic.Int64

	updateCount  atomic.Int64
	updateErrors atomic.Int64

	removeCount  atomic.Int64
	removeErrors atomic.Int64

	queryCount    atomic.Int64
	queryNanos    atomic.Int64
	queryPostings atomic.Int64

	searchCount atomic.Int64
	searchNanos atomic.Int64
	searchHits  atomic.Int64

	importedRecords atomic.Int64
	failedRecords   atomic.Int64

	mergedRecords atomic.Int64

	rebuildCount atomic.Int64
	rebuildNanos atomic.Int64
}

// NewBasicMetricsCollector creates a new basic metrics collector.
func NewBasicMetricsCollector() *BasicMetricsCollector {
	return &BasicMetricsCollector{}
}

func (m *BasicMetricsCollector) RecordAdd(duration time.Duration, err error) {
	m.addCount.Add(1)
	m.addNanos.Add(int64(duration))

	if err != nil {
		m.addErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordUpdate(duration time.Duration, err error) {
	m.updateCount.Add(1)

	if err != nil {
		m.updateErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordRemove(duration time.Duration, err error) {
	m.removeCount.Add(1)

	if err != nil {
		m.removeErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordQuery(postings int, duration time.Duration, err error) {
	m.queryCount.Add(1)
	m.queryNanos.Add(int64(duration))
	m.queryPostings.Add(int64(postings))
}

func (m *BasicMetricsCollector) RecordSearch(hits int, duration time.Duration, err error) {
	m.searchCount.Add(1)
	m.searchNanos.Add(int64(duration))
	m.searchHits.Add(int64(hits))
}

func (m *BasicMetricsCollector) RecordImport(imported, failed int, duration time.Duration) {
	m.importedRecords.Add(int64(imported))
	m.failedRecords.Add(int64(failed))
}

func (m *BasicMetricsCollector) RecordMerge(records int, duration time.Duration) {
	m.mergedRecords.Add(int64(records))
}

func (m *BasicMetricsCollector) RecordRebuild(records int, duration time.Duration) {
	m.rebuildCount.Add(1)
	m.rebuildNanos.Add(int64(duration))
}

// MetricsStats is a point-in-time snapshot of collected metrics.
type MetricsStats struct {
	AddCount  int64
	AddErrors int64

	UpdateCount  int64
	UpdateErrors int64

	RemoveCount  int64
	RemoveErrors int64

	QueryCount  int64
	SearchCount int64

	ImportedRecords int64
	FailedRecords   int64
	MergedRecords   int64

	RebuildCount int64

	AvgAddLatency     time.Duration
	AvgQueryLatency   time.Duration
	AvgSearchLatency  time.Duration
	AvgRebuildLatency time.Duration

	AvgQueryPostings float64
	AvgSearchHits    float64
}

// GetStats returns current statistics.
func (m *BasicMetricsCollector) GetStats() MetricsStats {
	return MetricsStats{
		AddCount:  m.addCount.Load(),
		AddErrors: m.addErrors.Load(),

		UpdateCount:  m.updateCount.Load(),
		UpdateErrors: m.updateErrors.Load(),

		RemoveCount:  m.removeCount.Load(),
		RemoveErrors: m.removeErrors.Load(),

		QueryCount:  m.queryCount.Load(),
		SearchCount: m.searchCount.Load(),

		ImportedRecords: m.importedRecords.Load(),
		FailedRecords:   m.failedRecords.Load(),
		MergedRecords:   m.mergedRecords.Load(),

		RebuildCount: m.rebuildCount.Load(),

		AvgAddLatency:     avgDuration(m.addNanos.Load(), m.addCount.Load()),
		AvgQueryLatency:   avgDuration(m.queryNanos.Load(), m.queryCount.Load()),
		AvgSearchLatency:  avgDuration(m.searchNanos.Load(), m.searchCount.Load()),
		AvgRebuildLatency: avgDuration(m.rebuildNanos.Load(), m.rebuildCount.Load()),

		AvgQueryPostings: avgCount(m.queryPostings.Load(), m.queryCount.Load()),
		AvgSearchHits:    avgCount(m.searchHits.Load(), m.searchCount.Load()),
	}
}

func avgDuration(totalNanos, count int64) time.Duration {
	if count == 0 {
		return 0
	}

	return time.Duration(totalNanos / count)
}

func avgCount(total, count int64) float64 {
	if count == 0 {
		return 0
	}

	return float64(total) / float64(count)
}
