package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess       = "success"
	ResultFailure       = "failure"
	ResultNotConfigured = "not_configured"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "designers_http_requests_total",
		Help: "HTTP requests served, by method, route and status code",
	}, []string{"method", "route", "status"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "designers_http_request_duration_seconds",
		Help:    "Time spent serving HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "designers_llm_generations_total",
		Help: "Text generation calls, by provider and result",
	}, []string{"provider", "result"})

	GenerationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "designers_llm_generation_latency_seconds",
		Help:    "Time spent waiting on the LLM provider",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"provider"})

	InteractionLogFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "designers_llm_interaction_log_failures_total",
		Help: "LLM interaction log rows that could not be written",
	})
)
