package simgraph

import (
	"math/rand"
	"runtime"
)

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
	k           int
	randSource  rand.Source
}

// Option configures Build, LocalScale and RandomKGraph behavior.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		parallelism: runtime.GOMAXPROCS(0),
		k:           DefaultScaleK,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithLogger sets the logger. nil restores the default noop logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. nil restores the noop collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithParallelism caps the number of vertices processed concurrently.
// Values < 1 are ignored. WithParallelism(1) gives sequential construction.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.parallelism = n
		}
	}
}

// WithK sets the order of the nearest-neighbor distance used as the local
// scale (scale = distance to the k-th nearest neighbor). Values < 1 are
// ignored. Only LocalScale consults it.
func WithK(k int) Option {
	return func(o *options) {
		if k >= 1 {
			o.k = k
		}
	}
}

// WithRandSource makes RandomKGraph deterministic. Only RandomKGraph
// consults it; the default draws a clock-based seed.
func WithRandSource(src rand.Source) Option {
	return func(o *options) {
		o.randSource = src
	}
}
