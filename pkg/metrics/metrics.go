// Package metrics exposes Prometheus collectors for evaluations and the HTTP
// API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarledger_evaluations_total",
			Help: "Total number of profile evaluations per utility and program",
		},
		[]string{"utility", "program"},
	)

	EvaluationDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solarledger_evaluation_duration_seconds",
			Help:    "Evaluation duration in seconds per program",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"program"},
	)

	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarledger_evaluation_fallbacks_total",
			Help: "Total number of evaluations that returned the placeholder report",
		},
		[]string{"reason"},
	)

	GradesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarledger_grades_total",
			Help: "Total number of grades assigned",
		},
		[]string{"grade"},
	)

	MonitorConnectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarledger_monitor_connects_total",
			Help: "Total number of monitoring API connection attempts per provider",
		},
		[]string{"provider", "connected"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarledger_http_requests_total",
			Help: "Total number of HTTP requests per route and status code",
		},
		[]string{"route", "code"},
	)
)

// Fallback reasons.
const (
	FallbackInvalid   = "invalid"
	FallbackNotFinite = "not_finite"
	FallbackPanic     = "panic"
)

// ObserveEvaluation records a completed evaluation.
func ObserveEvaluation(utility, program, grade string, startedAt time.Time) {
	EvaluationsTotal.WithLabelValues(utility, program).Inc()
	EvaluationDurationSeconds.WithLabelValues(program).Observe(time.Since(startedAt).Seconds())
	GradesTotal.WithLabelValues(grade).Inc()
}

// ObserveFallback records an evaluation that fell back to the placeholder.
func ObserveFallback(reason string) {
	FallbacksTotal.WithLabelValues(reason).Inc()
}

// ObserveConnect records a monitoring API connection attempt.
func ObserveConnect(provider string, connected bool) {
	MonitorConnectsTotal.WithLabelValues(provider, strconv.FormatBool(connected)).Inc()
}

// ObserveRequest records an HTTP response.
func ObserveRequest(route string, code int) {
	HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
