// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

/*
Package metrics provides the Prometheus collectors exposed at /metrics.

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code} (counter)
  - api_request_duration_seconds{method,endpoint} (histogram)
  - api_active_requests (gauge)
  - api_rate_limit_hits_total{endpoint} (counter)

Recommendations:
  - recommendation_requests_total{mood,outcome} (counter)
    outcome: success, invalid_mood, no_candidates, error
  - recommendation_duration_seconds (histogram)
  - recommendation_catalog_size (histogram)
  - recommendation_time_relaxed_total{mood} (counter)

Catalog source:
  - catalog_fetch_total{source,result} (counter)
  - catalog_fetch_duration_seconds{source} (histogram)
  - catalog_movies (gauge)
  - catalog_cache_total{result} (counter) result: hit, miss, stale
  - catalog_upstream_retries_total (counter)

Circuit breaker:
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

System:
  - app_info{version,go_version}
  - app_uptime_seconds

# Usage

Collectors are registered with the default registry through promauto at
package init; record through the helper functions:

	start := time.Now()
	resp, err := engine.Recommend(ctx, req, items)
	metrics.RecordRecommendation(req.Mood, outcome, time.Since(start), len(items))

Label values must stay low-cardinality: moods are canonical tags or
"unknown", never raw user input.
*/
package metrics
