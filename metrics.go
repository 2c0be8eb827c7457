package vecknn

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordClassify is called after each classification.
	// samples is the size of the input, found reports whether a label was
	// returned, err is nil if successful.
	RecordClassify(k, samples int, found bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordClassify(int, int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClassifyCount      atomic.Int64
	ClassifyErrors     atomic.Int64
	ClassifyEmpty      atomic.Int64
	ClassifyTotalNanos atomic.Int64
	SamplesTotal       atomic.Int64
}

// RecordClassify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClassify(k, samples int, found bool, duration time.Duration, err error) {
	b.ClassifyCount.Add(1)
	b.ClassifyTotalNanos.Add(duration.Nanoseconds())
	b.SamplesTotal.Add(int64(samples))
	switch {
	case err != nil:
		b.ClassifyErrors.Add(1)
	case !found:
		b.ClassifyEmpty.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ClassifyCount:    b.ClassifyCount.Load(),
		ClassifyErrors:   b.ClassifyErrors.Load(),
		ClassifyEmpty:    b.ClassifyEmpty.Load(),
		ClassifyAvgNanos: b.getAvgClassifyNanos(),
		SamplesTotal:     b.SamplesTotal.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgClassifyNanos() int64 {
	count := b.ClassifyCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClassifyTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClassifyCount    int64
	ClassifyErrors   int64
	ClassifyEmpty    int64
	ClassifyAvgNanos int64
	SamplesTotal     int64
}
