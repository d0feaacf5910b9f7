package web

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics manages the Prometheus metrics of the web dashboard.
type Metrics struct {
	registry           *prometheus.Registry
	Assessments        *prometheus.CounterVec
	AssessmentFailures *prometheus.CounterVec
	RequestLatency     *prometheus.HistogramVec
}

// NewMetrics creates the metrics on a registry owned by the server.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Assessments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sme_health_assessments_total",
				Help: "Total number of record sets evaluated, by risk tier.",
			},
			[]string{"risk"},
		),
		AssessmentFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sme_health_assessment_failures_total",
				Help: "Total number of uploads that could not be evaluated, by HTTP status.",
			},
			[]string{"status"},
		),
		RequestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sme_health_http_request_duration_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// RecordAssessment records a successful evaluation.
func (m *Metrics) RecordAssessment(risk string) {
	m.Assessments.WithLabelValues(risk).Inc()
}

// RecordFailure records an upload rejected with the given status.
func (m *Metrics) RecordFailure(status int) {
	m.AssessmentFailures.WithLabelValues(http.StatusText(status)).Inc()
}

// RecordRequest records the latency of one request.
func (m *Metrics) RecordRequest(method, route string, duration time.Duration) {
	m.RequestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
