package simgraph

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; a ready-made
// Prometheus implementation is provided by NewPrometheusCollector.
type MetricsCollector interface {
	// RecordVertex is called after each vertex's unit of work (neighbor
	// lookup, oracle evaluation, edge insertion). err is nil on success.
	RecordVertex(duration time.Duration, err error)

	// RecordBuild is called once per graph construction run.
	// vertices is the number of vertices processed.
	RecordBuild(vertices int, duration time.Duration, err error)

	// RecordLocalScale is called once per local-scale estimation run.
	RecordLocalScale(k int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordVertex(time.Duration, error)          {}
func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordLocalScale(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	VertexCount      atomic.Int64
	VertexErrors     atomic.Int64
	VertexTotalNanos atomic.Int64
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildVertices    atomic.Int64
	ScaleCount       atomic.Int64
	ScaleErrors      atomic.Int64
}

// RecordVertex implements MetricsCollector.
func (b *BasicMetricsCollector) RecordVertex(duration time.Duration, err error) {
	b.VertexCount.Add(1)
	b.VertexTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.VertexErrors.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(vertices int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildVertices.Add(int64(vertices))
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordLocalScale implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLocalScale(k int, duration time.Duration, err error) {
	b.ScaleCount.Add(1)
	if err != nil {
		b.ScaleErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		VertexCount:    b.VertexCount.Load(),
		VertexErrors:   b.VertexErrors.Load(),
		VertexAvgNanos: b.getAvgVertexNanos(),
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		BuildVertices:  b.BuildVertices.Load(),
		ScaleCount:     b.ScaleCount.Load(),
		ScaleErrors:    b.ScaleErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgVertexNanos() int64 {
	count := b.VertexCount.Load()
	if count == 0 {
		return 0
	}
	return b.VertexTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	VertexCount    int64
	VertexErrors   int64
	VertexAvgNanos int64
	BuildCount     int64
	BuildErrors    int64
	BuildVertices  int64
	ScaleCount     int64
	ScaleErrors    int64
}
