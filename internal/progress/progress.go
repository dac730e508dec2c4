// Package progress reports pipeline progress via a percentage callback,
// optionally mirrored into Prometheus counters for long-running `-p` runs
// (spec.md §5 "progress via a percentage callback... never blocks on
// I/O"), grounded on the promauto usage in
// jinterlante1206-AleutianLocal/services/trace/agent/routing/metrics.go.
package progress

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Callback receives a monotonically non-decreasing percentage in [0, 100]
// and a short stage label. It must never block — a caller wiring this into
// a UI or log sink is responsible for buffering.
type Callback func(stage string, percent float64)

// Reporter fans a single progress update out to a Callback and, when
// enabled, to Prometheus gauges/counters. A nil Reporter is valid and a
// no-op (every method guards on r == nil), so pipeline code can pass one
// around unconditionally instead of branching on "-p" everywhere.
type Reporter struct {
	cb      Callback
	percent prometheus.Gauge
	stages  *prometheus.CounterVec
}

// New returns a Reporter invoking cb on every Report call. cb may be nil.
func New(cb Callback) *Reporter {
	return &Reporter{cb: cb}
}

// WithMetrics registers Prometheus collectors under reg and returns a
// Reporter that updates them alongside cb. Pass a fresh
// prometheus.NewRegistry() in tests to avoid cross-test collector
// collisions. The CLI's -p flag uses New, not WithMetrics.
func WithMetrics(cb Callback, reg prometheus.Registerer) *Reporter {
	r := &Reporter{
		cb: cb,
		percent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "concuss",
			Subsystem: "pipeline",
			Name:      "percent_complete",
			Help:      "Overall pipeline completion percentage of the current run.",
		}),
		stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "concuss",
			Subsystem: "pipeline",
			Name:      "stage_updates_total",
			Help:      "Number of progress updates reported per stage.",
		}, []string{"stage"}),
	}
	reg.MustRegister(r.percent, r.stages)
	return r
}

// Report invokes the callback and, if metrics are enabled, updates them.
func (r *Reporter) Report(stage string, percent float64) {
	if r == nil {
		return
	}
	if r.cb != nil {
		r.cb(stage, percent)
	}
	if r.percent != nil {
		r.percent.Set(percent)
	}
	if r.stages != nil {
		r.stages.WithLabelValues(stage).Inc()
	}
}
