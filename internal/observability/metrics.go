package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce         sync.Once
	httpRequestsTotal    *prometheus.CounterVec
	httpLatencySeconds   *prometheus.HistogramVec
	googleAPICallsTotal  *prometheus.CounterVec
	reconciliationsTotal *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "graide_http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graide_http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		googleAPICallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "graide_google_api_calls_total",
			Help: "Total number of outbound Google API calls by service, operation and status.",
		}, []string{"service", "op", "status"})

		reconciliationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "graide_schema_reconciliations_total",
			Help: "Total number of schema reconciliation runs by outcome.",
		}, []string{"outcome"})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, googleAPICallsTotal, reconciliationsTotal)
	})
}

// HTTPRequests exposes the counter for served requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for served requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// GoogleAPICalls exposes the counter for outbound Google API calls.
func GoogleAPICalls() *prometheus.CounterVec {
	RegisterMetrics()
	return googleAPICallsTotal
}

// Reconciliations exposes the counter for schema reconciliation outcomes.
func Reconciliations() *prometheus.CounterVec {
	RegisterMetrics()
	return reconciliationsTotal
}
