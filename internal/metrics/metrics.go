// SPDX-License-Identifier: MIT

// Package metrics records solver activity in a private Prometheus registry.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/cspath/cspath"
)

// Values of the "result" label.
const (
	ResultFeasible   = "feasible"
	ResultInfeasible = "infeasible"
	ResultCancelled  = "cancelled"
	ResultError      = "error"
)

// Recorder owns the solver metrics. A nil *Recorder ignores observations.
type Recorder struct {
	reg *prometheus.Registry

	solves     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	pushes     prometheus.Counter
	pops       prometheus.Counter
	staleSkips prometheus.Counter
}

// New registers the cspath metrics against a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cspath_solves_total",
			Help: "Solver calls by strategy and result (feasible, infeasible, cancelled, error).",
		}, []string{"strategy", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cspath_solve_duration_seconds",
			Help:    "Wall-clock duration of a single solver call.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"}),
		pushes: f.NewCounter(prometheus.CounterOpts{
			Name: "cspath_heap_pushes_total",
			Help: "Labels pushed onto the search heap.",
		}),
		pops: f.NewCounter(prometheus.CounterOpts{
			Name: "cspath_heap_pops_total",
			Help: "Labels popped from the search heap.",
		}),
		staleSkips: f.NewCounter(prometheus.CounterOpts{
			Name: "cspath_heap_stale_skips_total",
			Help: "Popped labels discarded because a better one superseded them.",
		}),
	}
}

// Observe records one Solve call.
func (r *Recorder) Observe(strategy cspath.Strategy, res cspath.Result, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	name := strategy.String()
	r.solves.WithLabelValues(name, Classify(err)).Inc()
	r.duration.WithLabelValues(name).Observe(elapsed.Seconds())
	r.pushes.Add(float64(res.Stats.Pushes))
	r.pops.Add(float64(res.Stats.Pops))
	r.staleSkips.Add(float64(res.Stats.StaleSkips))
}

// Classify maps a Solve error to a result label value.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultFeasible
	case errors.Is(err, cspath.ErrInfeasible):
		return ResultInfeasible
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCancelled
	default:
		return ResultError
	}
}

// WriteTextfile writes the registry in text exposition format, for the
// node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, r.reg)
}

// Handler serves the registry over HTTP.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Registry exposes the underlying registry, e.g. for tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }
