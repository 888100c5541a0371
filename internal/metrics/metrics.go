// Package metrics holds the Prometheus collectors shared by the HTTP layer
// and the generation pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ideagen"

// Generation outcomes used as the "status" label.
const (
	OutcomeSuccess       = "success"
	OutcomeMissingFields = "missing_fields"
	OutcomeBadSelection  = "bad_selection"
	OutcomeProviderError = "provider_error"
	OutcomeInternalError = "internal_error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	GenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "total",
			Help:      "Generation endpoint outcomes",
		},
		[]string{"status"},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "call_duration_seconds",
			Help:      "Generative provider call duration in seconds",
			Buckets:   []float64{.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"provider", "model"},
	)

	ProviderCallTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "call_total",
			Help:      "Total number of generative provider calls",
		},
		[]string{"provider", "model", "status"},
	)
)

// RecordGeneration counts one endpoint outcome.
func RecordGeneration(outcome string) {
	GenerationTotal.WithLabelValues(outcome).Inc()
}

// RecordProviderCall records latency and result of one provider call.
func RecordProviderCall(provider, model string, duration time.Duration, err error) {
	status := OutcomeSuccess
	if err != nil {
		status = OutcomeProviderError
	}
	ProviderCallDuration.WithLabelValues(provider, model).Observe(duration.Seconds())
	ProviderCallTotal.WithLabelValues(provider, model, status).Inc()
}
