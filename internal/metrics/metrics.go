// Package metrics exposes Prometheus instrumentation for gateway calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carbonai"

// Metrics holds the gateway collectors. A nil *Metrics records nothing.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	VideoPolls      *prometheus.CounterVec
	MissingKeys     prometheus.Counter
}

// New registers the gateway collectors with reg. Passing nil registers
// them with the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of gateway operations",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Gateway operation duration in seconds",
				Buckets:   []float64{0.5, 1, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"operation"},
		),
		VideoPolls: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "video_polls_total",
				Help:      "Video operation status checks by outcome",
			},
			[]string{"outcome"},
		),
		MissingKeys: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "credential_missing_total",
				Help:      "Number of calls made without a configured API key",
			},
		),
	}
}

// RecordRequest records one finished operation. status is "ok" or an
// error kind.
func (m *Metrics) RecordRequest(operation, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordPoll records one video status check outcome.
func (m *Metrics) RecordPoll(outcome string) {
	if m == nil {
		return
	}
	m.VideoPolls.WithLabelValues(outcome).Inc()
}

// RecordMissingKey counts a call that resolved no credential.
func (m *Metrics) RecordMissingKey() {
	if m == nil {
		return
	}
	m.MissingKeys.Inc()
}
