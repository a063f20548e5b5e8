package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	apiRequestsTotal      *prometheus.CounterVec
	apiLatencySeconds     *prometheus.HistogramVec
	apiErrorsTotal        *prometheus.CounterVec
	messagesSentTotal     *prometheus.CounterVec
	reactionsToggledTotal prometheus.Counter
	searchLatencySeconds  prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nexus_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nexus_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nexus_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		messagesSentTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nexus_messages_sent_total",
			Help: "Total number of messages created, labelled by destination kind.",
		}, []string{"destination"})

		reactionsToggledTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nexus_reactions_toggled_total",
			Help: "Total number of reaction toggles applied to messages.",
		})

		searchLatencySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nexus_search_latency_seconds",
			Help:    "Latency distribution for message search operations.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		})

		prometheus.MustRegister(
			apiRequestsTotal,
			apiLatencySeconds,
			apiErrorsTotal,
			messagesSentTotal,
			reactionsToggledTotal,
			searchLatencySeconds,
		)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// MessagesSent exposes the counter for created messages.
func MessagesSent() *prometheus.CounterVec {
	RegisterMetrics()
	return messagesSentTotal
}

// ReactionsToggled exposes the counter for reaction toggles.
func ReactionsToggled() prometheus.Counter {
	RegisterMetrics()
	return reactionsToggledTotal
}

// SearchLatency exposes the histogram for search latency.
func SearchLatency() prometheus.Histogram {
	RegisterMetrics()
	return searchLatencySeconds
}
