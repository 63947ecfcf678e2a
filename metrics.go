package cliff

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metric names.
const (
	MetricProbesTotal          = "cliff_probes_total"
	MetricProbeDurationSeconds = "cliff_probe_duration_seconds"
	MetricBracketLo            = "cliff_bracket_lo"
	MetricBracketHi            = "cliff_bracket_hi"
)

// Metrics is an Observer that exports search progress to Prometheus:
// a counter of probes by outcome, a histogram of probe durations, and
// gauges tracking the two ends of the bracket as it narrows.
//
// The bracket gauges make the search's convergence visible on a
// dashboard: the two lines start far apart and pinch together at the
// cliff. While the upper end is still unknown, the hi gauge holds +Inf.
type Metrics struct {
	probesTotal   *prometheus.CounterVec
	probeDuration prometheus.Histogram
	bracketLo     prometheus.Gauge
	bracketHi     prometheus.Gauge
}

var _ Observer = (*Metrics)(nil)

// NewMetrics creates and registers the search metrics with reg.
// It panics on registration conflicts, like promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		probesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricProbesTotal,
			Help: "Number of load probes executed, by outcome.",
		}, []string{"outcome"}),
		probeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricProbeDurationSeconds,
			Help:    "Wall time spent probing each load level.",
			Buckets: prometheus.DefBuckets,
		}),
		bracketLo: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricBracketLo,
			Help: "Lower end of the current cliff bracket.",
		}),
		bracketHi: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricBracketHi,
			Help: "Upper end of the current cliff bracket (+Inf while unknown).",
		}),
	}

	reg.MustRegister(m.probesTotal, m.probeDuration, m.bracketLo, m.bracketHi)
	return m
}

// ObserveProbe implements Observer.
func (m *Metrics) ObserveProbe(load int, overloaded bool, elapsed time.Duration) {
	outcome := "ok"
	if overloaded {
		outcome = "overloaded"
	}
	m.probesTotal.WithLabelValues(outcome).Inc()
	m.probeDuration.Observe(elapsed.Seconds())
}

// ObserveEstimate implements Observer.
func (m *Metrics) ObserveEstimate(b Bracket) {
	m.bracketLo.Set(float64(b.Lo))
	if b.Unbounded {
		m.bracketHi.Set(math.Inf(1))
	} else {
		m.bracketHi.Set(float64(b.Hi))
	}
}
