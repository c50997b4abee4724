// Package metrics defines the Prometheus collectors for a termex run and
// writes them in the node-exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors of one run, registered on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	DocumentsIndexedTotal *prometheus.CounterVec
	TermsScored           prometheus.Gauge
	PhaseDuration         *prometheus.HistogramVec
	ReferenceCacheTotal   *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		DocumentsIndexedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "termex_documents_indexed_total",
				Help: "Total documents indexed by corpus kind.",
			},
			[]string{"corpus"},
		),
		TermsScored: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "termex_terms_scored",
				Help: "Number of distinct terms in the last ranking.",
			},
		),
		PhaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "termex_phase_duration_seconds",
				Help:    "Duration of pipeline phases.",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"phase"},
		),
		ReferenceCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "termex_reference_cache_total",
				Help: "Reference index lookups by result (store, build).",
			},
			[]string{"result"},
		),
	}

	m.Registry.MustRegister(
		m.DocumentsIndexedTotal,
		m.TermsScored,
		m.PhaseDuration,
		m.ReferenceCacheTotal,
	)

	return m
}

// ObservePhase records the time elapsed since start for phase. A nil
// receiver is a no-op so callers can run without metrics.
func (m *Metrics) ObservePhase(phase string, start time.Time) {
	if m == nil {
		return
	}
	m.PhaseDuration.WithLabelValues(phase).Observe(time.Since(start).Seconds())
}

// AddDocuments counts n indexed documents of a corpus kind.
func (m *Metrics) AddDocuments(corpus string, n int) {
	if m == nil {
		return
	}
	m.DocumentsIndexedTotal.WithLabelValues(corpus).Add(float64(n))
}

// SetTermsScored records the size of a ranking.
func (m *Metrics) SetTermsScored(n int) {
	if m == nil {
		return
	}
	m.TermsScored.Set(float64(n))
}

// CountReference records how a reference index was obtained.
func (m *Metrics) CountReference(result string) {
	if m == nil {
		return
	}
	m.ReferenceCacheTotal.WithLabelValues(result).Inc()
}

// WriteTextfile writes every collector to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
