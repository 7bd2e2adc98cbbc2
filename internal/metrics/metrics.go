// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidMood  = "invalid_mood"
	OutcomeNoCandidates = "no_candidates"
	OutcomeError        = "error"
)

// Contentstack APIs.
const (
	APIDelivery   = "delivery"
	APIManagement = "management"
)

// Catalog cache results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests by canonical mood and outcome",
		},
		[]string{"mood", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent ranking one catalog, including vectorization",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendationCatalogSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_catalog_size",
			Help:    "Number of movies in each ranked catalog",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	RecommendationTimeRelaxed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_time_relaxed_total",
			Help: "Requests where the runtime window was dropped to fill the result",
		},
		[]string{"mood"},
	)

	// Catalog Source Metrics
	CatalogFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_total",
			Help: "Total number of catalog fetches from upstream sources",
		},
		[]string{"source", "result"},
	)

	CatalogFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_fetch_duration_seconds",
			Help:    "Duration of upstream catalog fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the current catalog snapshot",
		},
	)

	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_total",
			Help: "Catalog snapshot lookups by result (hit, miss, stale)",
		},
		[]string{"result"},
	)

	UpstreamRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentstack_upstream_retries_total",
			Help: "Retries after HTTP 429 responses from Contentstack",
		},
		[]string{"api"}, // api: "delivery", "management"
	)

	// Subscriber Metrics
	SubscriberOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriber_operations_total",
			Help: "Subscriber roster operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
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

// RecordRateLimitHit records a rejected request
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one ranking call. mood must be a canonical
// tag or "unknown".
func RecordRecommendation(mood, outcome string, duration time.Duration, catalogSize int) {
	if mood == "" {
		mood = "unknown"
	}
	RecommendationRequests.WithLabelValues(mood, outcome).Inc()
	if outcome == OutcomeSuccess {
		RecommendationDuration.Observe(duration.Seconds())
		RecommendationCatalogSize.Observe(float64(catalogSize))
	}
}

// RecordTimeRelaxed records a request whose runtime window was dropped.
func RecordTimeRelaxed(mood string) {
	RecommendationTimeRelaxed.WithLabelValues(mood).Inc()
}

// RecordCatalogFetch records an upstream catalog fetch.
func RecordCatalogFetch(source string, duration time.Duration, movies int, err error) {
	CatalogFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		CatalogFetchTotal.WithLabelValues(source, "error").Inc()
		return
	}
	CatalogFetchTotal.WithLabelValues(source, "success").Inc()
	CatalogMovies.Set(float64(movies))
}

// RecordCatalogCache records a snapshot lookup result.
func RecordCatalogCache(result string) {
	CatalogCacheTotal.WithLabelValues(result).Inc()
}

// RecordUpstreamRetry records one 429 retry against the named Contentstack API.
func RecordUpstreamRetry(api string) {
	UpstreamRetries.WithLabelValues(api).Inc()
}

// RecordSubscriberOperation records one roster operation.
func RecordSubscriberOperation(operation, outcome string) {
	SubscriberOperations.WithLabelValues(operation, outcome).Inc()
}

// SetAppInfo publishes build information.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets app_uptime_seconds from the process start time.
func UpdateUptime(started time.Time) {
	AppUptime.Set(time.Since(started).Seconds())
}
