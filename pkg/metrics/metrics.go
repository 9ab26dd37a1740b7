package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Inference metrics
	InferenceRunsTotal    *prometheus.CounterVec
	InferenceDuration     prometheus.Histogram
	WorldsScoredTotal     prometheus.Counter
	TraitCandidatesTotal  prometheus.Counter
	TraitCandidatesPruned prometheus.Counter
	PedigreeSize          prometheus.Gauge

	// Input metrics
	LoadsTotal      *prometheus.CounterVec
	LoadErrorsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initInferenceMetrics()
	r.initInputMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordInference records one completed inference run
func (r *Registry) RecordInference(status string, duration time.Duration, worlds, pruned uint64) {
	r.InferenceRunsTotal.WithLabelValues(status).Inc()
	r.InferenceDuration.Observe(duration.Seconds())
	r.WorldsScoredTotal.Add(float64(worlds))
	r.TraitCandidatesPruned.Add(float64(pruned))
}

// RecordLoad records one pedigree load attempt
func (r *Registry) RecordLoad(status string) {
	r.LoadsTotal.WithLabelValues(status).Inc()
}

// RecordLoadError records a load failure by error kind
func (r *Registry) RecordLoadError(kind string) {
	r.LoadErrorsTotal.WithLabelValues(kind).Inc()
}
