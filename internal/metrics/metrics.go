// Package metrics holds the Prometheus instruments of the HTTP service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	govsn "github.com/reoring/govsn"
)

const namespace = "govsn"

// Operation labels.
const (
	OpEncode   = "encode"
	OpDecode   = "decode"
	OpValidate = "validate"
)

// Outcome labels.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics is a set of instruments bound to one registry.
type Metrics struct {
	Operations  *prometheus.CounterVec
	Diagnostics *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// New registers the instruments with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Encode, decode and validate calls by outcome.",
		}, []string{"op", "outcome"}),
		Diagnostics: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostics_total",
			Help:      "Validation diagnostics by code and level.",
		}, []string{"code", "level"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Time spent converting or validating one document.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"op"}),
	}
}

// ObserveResult records one finished operation and its diagnostics.
func (m *Metrics) ObserveResult(op string, res govsn.Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeValid
	if !res.IsValid {
		outcome = OutcomeInvalid
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
	m.Duration.WithLabelValues(op).Observe(elapsed.Seconds())
	for _, d := range res.Errors {
		m.Diagnostics.WithLabelValues(d.Code, string(d.Level)).Inc()
	}
	for _, d := range res.Warnings {
		m.Diagnostics.WithLabelValues(d.Code, string(d.Level)).Inc()
	}
}

// ObserveError records an operation that failed before producing a result.
func (m *Metrics) ObserveError(op string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, OutcomeError).Inc()
	m.Duration.WithLabelValues(op).Observe(elapsed.Seconds())
}
