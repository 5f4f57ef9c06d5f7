// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unievent_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "unievent_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ModerationVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unievent_moderation_verdicts_total",
			Help: "Moderation verdicts by status",
		},
		[]string{"status"},
	)

	ModerationErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unievent_moderation_errors_total",
			Help: "Moderation calls that failed before a verdict was produced",
		},
	)

	RateLimitDenials = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unievent_ratelimit_denials_total",
			Help: "Requests denied by the per-user rate limiter",
		},
		[]string{"action"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unievent_cache_hits_total",
			Help: "Query cache hits by read path",
		},
		[]string{"path"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unievent_cache_misses_total",
			Help: "Query cache misses by read path",
		},
		[]string{"path"},
	)

	EventsDeactivated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unievent_events_deactivated_total",
			Help: "Events deactivated by the expiry sweep",
		},
	)

	DBQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "unievent_db_query_duration_seconds",
			Help:    "Duration of PostgreSQL queries in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	DBTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unievent_db_transactions_total",
			Help: "Finished transactions by outcome (commit, rollback)",
		},
		[]string{"outcome"},
	)

	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "unievent_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCache records a cache lookup for a read path.
func RecordCache(path string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(path).Inc()
		return
	}
	CacheMisses.WithLabelValues(path).Inc()
}
