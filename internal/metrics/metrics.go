// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "munchai"

var (
	// ChatRequests counts /chat requests by outcome (success, error)
	ChatRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "Total number of chat requests by outcome.",
		},
		[]string{"outcome"},
	)

	// CompletionDuration observes the latency of Messages API calls
	CompletionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_duration_seconds",
			Help:      "Latency of completion requests to the language model API.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"outcome"},
	)

	// RecipesListed reports how many recipes the last listing contained
	RecipesListed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recipes_listed",
			Help:      "Number of recipes returned by the most recent listing query.",
		},
	)

	// RateLimited counts requests rejected by the rate limiter
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Total number of chat requests rejected by the rate limiter.",
		},
	)
)

func init() {
	prometheus.MustRegister(ChatRequests, CompletionDuration, RecipesListed, RateLimited)
}

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Outcome maps an error to its label value
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
