// Package metrics instruments the solver with Prometheus collectors,
// grounded on noah-isme-sma-adp-api's MetricsService registry/handler
// construction.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"school-timetabler/internal/solver"
)

// Registry holds every collector this module exposes at /metrics.
type Registry struct {
	handler http.Handler

	solveAttempts   prometheus.Counter
	solveFailures   prometheus.Counter
	constructTries  prometheus.Histogram
	saIterations    prometheus.Histogram
	saAcceptRatio   prometheus.Gauge
	saReheats       prometheus.Histogram
	bestCost        prometheus.Gauge
	solveDurationMs prometheus.Histogram
}

// New registers every collector on a fresh registry.
func New() *Registry {
	registry := prometheus.NewRegistry()

	solveAttempts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetabler_solve_requests_total",
		Help: "Total number of solve requests handled",
	})
	solveFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetabler_solve_failures_total",
		Help: "Total number of solve requests that ended in an error",
	})
	constructTries := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetabler_construct_attempts",
		Help:    "Construction attempts needed before a feasible schedule was found",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
	saIterations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetabler_sa_iterations",
		Help:    "Simulated annealing iterations completed per run",
		Buckets: prometheus.LinearBuckets(0, 1000, 15),
	})
	saAcceptRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetabler_sa_accept_ratio",
		Help: "Most recent run's accepted-move ratio",
	})
	saReheats := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetabler_sa_reheats",
		Help:    "Number of reheats triggered per run",
		Buckets: prometheus.LinearBuckets(0, 1, 10),
	})
	bestCost := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetabler_best_cost",
		Help: "Most recent run's best-known soft cost",
	})
	solveDurationMs := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetabler_solve_duration_milliseconds",
		Help:    "Wall-clock duration of a full solve run",
		Buckets: prometheus.ExponentialBuckets(10, 2, 14),
	})

	registry.MustRegister(solveAttempts, solveFailures, constructTries, saIterations, saAcceptRatio, saReheats, bestCost, solveDurationMs)

	return &Registry{
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		solveAttempts:   solveAttempts,
		solveFailures:   solveFailures,
		constructTries:  constructTries,
		saIterations:    saIterations,
		saAcceptRatio:   saAcceptRatio,
		saReheats:       saReheats,
		bestCost:        bestCost,
		solveDurationMs: solveDurationMs,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return r.handler
}

// ObserveResult folds one orchestrator.Result into every collector it
// touches. Safe to call with a failed result (Statistics.SAStats nil).
func (r *Registry) ObserveResult(result solver.Result, durationMs float64) {
	if r == nil {
		return
	}

	r.solveAttempts.Inc()
	if result.Err != nil {
		r.solveFailures.Inc()
	}
	r.solveDurationMs.Observe(durationMs)
	r.constructTries.Observe(float64(result.Statistics.ConstructAttempts))

	if sa := result.Statistics.SAStats; sa != nil {
		r.saIterations.Observe(float64(sa.Iterations))
		r.saReheats.Observe(float64(sa.Reheats))
		r.bestCost.Set(sa.BestCost)

		total := sa.Accepted + sa.Rejected
		if total > 0 {
			r.saAcceptRatio.Set(float64(sa.Accepted) / float64(total))
		}
	}
}
