package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
	OutcomeInvalid  = "invalid"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsteps_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rightsteps_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rightsteps_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// AI Search Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsteps_recommendations_total",
			Help: "AI search requests by outcome",
		},
		[]string{"outcome"}, // success, fallback, invalid
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rightsteps_provider_request_duration_seconds",
			Help:    "Completion provider call duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
		[]string{"provider"},
	)

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsteps_provider_errors_total",
			Help: "Completion provider failures",
		},
		[]string{"provider"},
	)

	AITokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsteps_ai_tokens_total",
			Help: "Tokens consumed by completion calls",
		},
		[]string{"provider", "model", "direction"}, // direction: input, output
	)

	AICostUSDTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsteps_ai_cost_usd_total",
			Help: "Estimated completion spend in USD",
		},
		[]string{"provider", "model"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rightsteps_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsteps_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsteps_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation counts one AI search by outcome.
func RecordRecommendation(outcome string) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
}

// RecordProviderCall records latency, and failure if err is set, for one completion call.
func RecordProviderCall(provider string, duration time.Duration, err error) {
	ProviderRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if err != nil {
		ProviderErrors.WithLabelValues(provider).Inc()
	}
}

// RecordUsage adds token counts and cost for one completion.
func RecordUsage(provider, model string, inputTokens, outputTokens int, costUSD float64) {
	AITokensTotal.WithLabelValues(provider, model, "input").Add(float64(inputTokens))
	AITokensTotal.WithLabelValues(provider, model, "output").Add(float64(outputTokens))
	AICostUSDTotal.WithLabelValues(provider, model).Add(costUSD)
}
