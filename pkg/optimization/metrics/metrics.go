// Package metrics exports swarm progress as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/catalano/optimization/pkg/optimization/swarm"
)

const (
	namespace = "optimization"
	subsystem = "swarm"
	runLabel  = "run"
)

// Recorder holds the swarm metric families registered with one registry.
type Recorder struct {
	iterations  *prometheus.CounterVec
	evaluations *prometheus.CounterVec
	bestFitness *prometheus.GaugeVec
	inertia     *prometheus.GaugeVec
	improvement *prometheus.HistogramVec
}

// NewRecorder registers the swarm metrics with reg. It panics if they are
// already registered there.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		iterations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "iterations_total",
			Help:      "Completed sweeps over the swarm",
		}, []string{runLabel}),
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluations_total",
			Help:      "Objective function evaluations",
		}, []string{runLabel}),
		bestFitness: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "best_fitness",
			Help:      "Global best fitness found so far",
		}, []string{runLabel}),
		inertia: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inertia_weight",
			Help:      "Inertia weight for the next sweep",
		}, []string{runLabel}),
		improvement: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "improvement",
			Help:      "Decrease of the global best fitness per improving sweep",
			Buckets:   prometheus.ExponentialBuckets(1e-9, 10, 12),
		}, []string{runLabel}),
	}
}

// ForRun returns an observer that records the progress of one run.
func (r *Recorder) ForRun(run string) swarm.Observer {
	return &runObserver{
		iterations:  r.iterations.WithLabelValues(run),
		evaluations: r.evaluations.WithLabelValues(run),
		bestFitness: r.bestFitness.WithLabelValues(run),
		inertia:     r.inertia.WithLabelValues(run),
		improvement: r.improvement.WithLabelValues(run),
	}
}

type runObserver struct {
	iterations  prometheus.Counter
	evaluations prometheus.Counter
	bestFitness prometheus.Gauge
	inertia     prometheus.Gauge
	improvement prometheus.Observer

	lastIteration   int
	lastEvaluations int
	lastBest        float64
	seen            bool
}

func (o *runObserver) Observe(s *swarm.State) {
	// A fresh swarm restarts the counts, e.g. when an optimizer is rerun.
	if s.Phase == swarm.Initialized || s.Iteration < o.lastIteration || s.Evaluations < o.lastEvaluations {
		o.lastIteration, o.lastEvaluations, o.seen = 0, 0, false
	}
	o.iterations.Add(float64(s.Iteration - o.lastIteration))
	o.evaluations.Add(float64(s.Evaluations - o.lastEvaluations))
	o.bestFitness.Set(s.GlobalBest.Fitness)
	o.inertia.Set(s.Inertia)
	if o.seen && s.GlobalBest.Fitness < o.lastBest {
		o.improvement.Observe(o.lastBest - s.GlobalBest.Fitness)
	}

	o.lastIteration = s.Iteration
	o.lastEvaluations = s.Evaluations
	o.lastBest = s.GlobalBest.Fitness
	o.seen = true
}
