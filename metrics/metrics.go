// Package metrics exposes Prometheus instrumentation for topology
// generation and path queries.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/dcntopo/builder"
)

// Status label values of GenerationsTotal.
const (
	StatusOK      = "ok"
	StatusStalled = "stalled"
	StatusError   = "error"
)

// Query kinds used as the "kind" label.
const (
	KindShortest  = "shortest"
	KindKShortest = "k_shortest"
	KindDistances = "distances"
)

// Registry holds all metrics of one process or experiment.
type Registry struct {
	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	GenerationRepairs  prometheus.Histogram

	PathQueriesTotal  *prometheus.CounterVec
	PathQueryDuration *prometheus.HistogramVec
	PathHops          prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initGenerationMetrics()
	r.initPathMetrics()

	return r
}

func (r *Registry) initGenerationMetrics() {
	r.GenerationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "dcntopo_generations_total",
			Help: "Total number of topology generations",
		},
		[]string{"topology", "status"},
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dcntopo_generation_duration_seconds",
			Help:    "Topology generation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"topology"},
	)

	r.GenerationRepairs = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dcntopo_generation_repairs",
			Help:    "Rewiring steps performed per randomized generation",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100, 1000},
		},
	)
}

func (r *Registry) initPathMetrics() {
	r.PathQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "dcntopo_path_queries_total",
			Help: "Total number of path queries",
		},
		[]string{"kind"},
	)

	r.PathQueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dcntopo_path_query_duration_seconds",
			Help:    "Path query duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"kind"},
	)

	r.PathHops = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dcntopo_path_hops",
			Help:    "Hop count of returned paths",
			Buckets: prometheus.LinearBuckets(1, 1, 12),
		},
	)
}

// ObserveGeneration records one builder run. It has the signature of a
// builder.WithObserver callback.
func (r *Registry) ObserveGeneration(rep builder.Report) {
	status := StatusOK
	switch {
	case errors.Is(rep.Err, builder.ErrGenerationStalled):
		status = StatusStalled
	case rep.Err != nil:
		status = StatusError
	}
	r.GenerationsTotal.WithLabelValues(rep.Topology, status).Inc()
	r.GenerationDuration.WithLabelValues(rep.Topology).Observe(rep.Duration.Seconds())
	if rep.Topology == builder.TopologyJellyfish {
		r.GenerationRepairs.Observe(float64(rep.Repairs))
	}
}

// ObservePath records one path query of the given kind and the hop count
// of every path it returned.
func (r *Registry) ObservePath(kind string, duration time.Duration, hops ...int) {
	r.PathQueriesTotal.WithLabelValues(kind).Inc()
	r.PathQueryDuration.WithLabelValues(kind).Observe(duration.Seconds())
	for _, h := range hops {
		r.PathHops.Observe(float64(h))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
