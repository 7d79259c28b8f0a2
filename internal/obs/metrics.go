package obs

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics instruments one ATPG run: per-fault PODEM duration, the
// D-frontier size at the moment a fault resolves, and a counter split
// by detected/undetected outcome.
type Metrics struct {
	registry      *prometheus.Registry
	faultDuration prometheus.Histogram
	frontierSize  prometheus.Histogram
	faultsTotal   *prometheus.CounterVec
}

// NewMetrics builds a fresh, independently registered Metrics — callers
// should build one per run rather than sharing a package-level default,
// so concurrent runs (e.g. in tests) never collide on registration.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		faultDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "atpg_fault_duration_seconds",
			Help:    "Wall-clock duration of a single PODEM attempt.",
			Buckets: prometheus.DefBuckets,
		}),
		frontierSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "atpg_fault_frontier_size",
			Help:    "D-frontier size at the point a fault's search resolved.",
			Buckets: prometheus.LinearBuckets(0, 2, 12),
		}),
		faultsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atpg_faults_total",
			Help: "Faults attempted, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.faultDuration, m.frontierSize, m.faultsTotal)
	return m
}

// ObserveFault records one fault attempt's duration, final D-frontier
// size, and detected/undetected outcome.
func (m *Metrics) ObserveFault(duration time.Duration, frontierSize int, found bool) {
	m.faultDuration.Observe(duration.Seconds())
	m.frontierSize.Observe(float64(frontierSize))
	outcome := "undetected"
	if found {
		outcome = "detected"
	}
	m.faultsTotal.WithLabelValues(outcome).Inc()
}

// WriteExposition dumps the current metric values in Prometheus text
// exposition format, per SPEC_FULL's end-of-run metrics dump.
func (m *Metrics) WriteExposition(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
