package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PolishTotal counts polish requests by provider and terminal outcome
	// (success, mock, invalid_response, upstream_error, bad_request).
	PolishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_polish_requests_total",
		Help: "Total polish requests processed.",
	}, []string{"provider", "outcome"})

	// PolishDuration tracks end-to-end polish latency per provider.
	PolishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resume_polish_duration_seconds",
		Help:    "Time spent handling a polish request.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"provider"})

	// InputChars tracks the distribution of polish input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "resume_polish_input_chars",
		Help:    "Number of characters in polish input text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
)

// Outcome labels for PolishTotal.
const (
	OutcomeSuccess         = "success"
	OutcomeMock            = "mock"
	OutcomeBadRequest      = "bad_request"
	OutcomeInvalidResponse = "invalid_response"
	OutcomeUpstreamError   = "upstream_error"
)
