package provider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "atp"

// PrometheusMetrics implements Metrics with Prometheus collectors
type PrometheusMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	turns    *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them on reg
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transcript_requests_total",
			Help:      "Transcript requests by capability and outcome.",
		}, []string{"capability", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "transcript_request_duration_seconds",
			Help:      "Latency of successful transcript requests.",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120, 300, 600},
		}, []string{"capability"}),
		turns: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "transcript_turns",
			Help:      "Number of speaker turns per transcript.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"capability"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.latency, m.turns} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordSuccess records a successful transcript request
func (m *PrometheusMetrics) RecordSuccess(capability string, latency time.Duration, turns int) {
	m.requests.WithLabelValues(capability, "success").Inc()
	m.latency.WithLabelValues(capability).Observe(latency.Seconds())
	m.turns.WithLabelValues(capability).Observe(float64(turns))
}

// RecordFailure records a failed transcript request; kind becomes the outcome label
func (m *PrometheusMetrics) RecordFailure(capability string, kind string) {
	m.requests.WithLabelValues(capability, kind).Inc()
}

// NoopMetrics discards everything
type NoopMetrics struct{}

func (NoopMetrics) RecordSuccess(string, time.Duration, int) {}
func (NoopMetrics) RecordFailure(string, string)             {}
