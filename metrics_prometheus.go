package simgraph

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Compile-time check.
var _ MetricsCollector = (*PrometheusCollector)(nil)

// PrometheusCollector exports builder metrics via prometheus.
type PrometheusCollector struct {
	vertexTotal   *prometheus.CounterVec
	vertexSeconds prometheus.Histogram
	buildTotal    *prometheus.CounterVec
	buildSeconds  prometheus.Histogram
	buildVertices prometheus.Counter
	scaleTotal    *prometheus.CounterVec
}

// NewPrometheusCollector registers the simgraph metrics with reg and returns
// the collector. Pass prometheus.DefaultRegisterer for the default registry.
// Registering twice with the same registry panics, per promauto convention.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	factory := promauto.With(reg)

	return &PrometheusCollector{
		vertexTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "simgraph_vertex_units_total",
			Help: "Total number of per-vertex work units processed",
		}, []string{"status"}),
		vertexSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "simgraph_vertex_unit_duration_seconds",
			Help:    "Duration of per-vertex work units in seconds",
			Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1},
		}),
		buildTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "simgraph_builds_total",
			Help: "Total number of graph construction runs",
		}, []string{"status"}),
		buildSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "simgraph_build_duration_seconds",
			Help:    "Duration of graph construction runs in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
		}),
		buildVertices: factory.NewCounter(prometheus.CounterOpts{
			Name: "simgraph_build_vertices_total",
			Help: "Total number of vertices across all construction runs",
		}),
		scaleTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "simgraph_local_scale_runs_total",
			Help: "Total number of local-scale estimation runs",
		}, []string{"status"}),
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordVertex implements MetricsCollector.
func (p *PrometheusCollector) RecordVertex(duration time.Duration, err error) {
	p.vertexTotal.WithLabelValues(status(err)).Inc()
	p.vertexSeconds.Observe(duration.Seconds())
}

// RecordBuild implements MetricsCollector.
func (p *PrometheusCollector) RecordBuild(vertices int, duration time.Duration, err error) {
	p.buildTotal.WithLabelValues(status(err)).Inc()
	p.buildSeconds.Observe(duration.Seconds())
	p.buildVertices.Add(float64(vertices))
}

// RecordLocalScale implements MetricsCollector.
func (p *PrometheusCollector) RecordLocalScale(k int, duration time.Duration, err error) {
	p.scaleTotal.WithLabelValues(status(err)).Inc()
}
