package vecknn

import (
	"github.com/RoaringBitmap/roaring/v2"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	parallelism      int
	filter           *roaring.Bitmap
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		parallelism:      1,
	}
}

// Option configures a Classifier.
type Option func(*options)

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the collector notified after each classification.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithParallelism splits the distance scan into n contiguous shards computed
// concurrently. The retained neighbors are identical to a sequential scan,
// including tie handling.
//
// n <= 1 scans sequentially (default).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithFilter restricts classification to samples whose position in the input
// slice is contained in the bitmap. Samples outside the filter do not get a
// distance assigned.
//
// A nil bitmap admits every sample.
func WithFilter(filter *roaring.Bitmap) Option {
	return func(o *options) {
		o.filter = filter
	}
}
