// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

// Package metrics holds the Prometheus collectors for the store, the query
// cache, the HTTP API and the loader.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store metrics, labelled by catalog query name
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trendlens_duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB catalog queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_duckdb_query_errors_total",
			Help: "Total number of failed DuckDB catalog queries",
		},
		[]string{"query", "error_type"}, // "canceled", "timeout", "other"
	)

	// Cache metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trendlens_cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trendlens_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trendlens_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Loader metrics
	LoaderRowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_loader_rows_loaded_total",
			Help: "Rows inserted by the loader",
		},
		[]string{"table"},
	)

	LoaderRowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_loader_rows_deduplicated_total",
			Help: "Source rows discarded by identity deduplication",
		},
		[]string{"table"},
	)

	LoaderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trendlens_loader_duration_seconds",
			Help:    "Duration of full store rebuilds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	LoaderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_loader_failures_total",
			Help: "Aborted store rebuilds",
		},
		[]string{"reason"},
	)

	LoaderLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trendlens_loader_last_success_timestamp",
			Help: "Unix timestamp of the last successful rebuild",
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trendlens_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendlens_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// StoreUp is set by the periodic store probe.
	StoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trendlens_store_up",
			Help: "Whether the last store probe succeeded (1) or failed (0)",
		},
	)
)

// RecordDBQuery records one catalog query execution.
func RecordDBQuery(query string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(query, errorType(err)).Inc()
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "other"
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordLoaderRows counts rows inserted into table.
func RecordLoaderRows(table string, n int) {
	LoaderRowsLoaded.WithLabelValues(table).Add(float64(n))
}

// RecordLoaderDropped counts source rows of table discarded by deduplication.
func RecordLoaderDropped(table string, n int) {
	if n > 0 {
		LoaderRowsDropped.WithLabelValues(table).Add(float64(n))
	}
}

// RecordLoad records a completed or aborted rebuild.
func RecordLoad(duration time.Duration, failureReason string) {
	LoaderDuration.Observe(duration.Seconds())
	if failureReason != "" {
		LoaderFailures.WithLabelValues(failureReason).Inc()
		return
	}
	LoaderLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordCircuitBreakerTransition updates breaker gauges after a state change.
// state is 0 closed, 1 half-open, 2 open.
func RecordCircuitBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(state)
}
