package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initInferenceMetrics() {
	r.InferenceRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "heredity_inference_runs_total",
			Help: "Total number of inference runs",
		},
		[]string{"status"},
	)

	r.InferenceDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "heredity_inference_duration_seconds",
			Help:    "Inference run duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
	)

	r.WorldsScoredTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "heredity_worlds_scored_total",
			Help: "Total number of enumerated worlds scored for joint probability",
		},
	)

	r.TraitCandidatesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "heredity_trait_candidates_total",
			Help: "Total number of trait-presence candidate sets enumerated",
		},
	)

	r.TraitCandidatesPruned = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "heredity_trait_candidates_pruned_total",
			Help: "Trait-presence candidate sets rejected by the evidence filter",
		},
	)

	r.PedigreeSize = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "heredity_pedigree_people",
			Help: "Number of people in the most recently loaded pedigree",
		},
	)
}

func (r *Registry) initInputMetrics() {
	r.LoadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "heredity_loads_total",
			Help: "Total number of pedigree load attempts",
		},
		[]string{"status"},
	)

	r.LoadErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "heredity_load_errors_total",
			Help: "Pedigree load failures by error kind",
		},
		[]string{"kind"},
	)
}
