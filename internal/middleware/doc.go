// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

/*
Package middleware provides chi-compatible HTTP middleware for the API.

Key Components:

  - RequestID: UUID-based request tracking, wired into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - AccessLog: one structured log line per request
  - SecurityHeaders: response hardening headers for JSON endpoints

Middleware Stack:

The router in internal/api installs the stack in this order:

	r.Use(middleware.RequestID)          // request_id + correlation_id
	r.Use(chimiddleware.RealIP)          // client IP behind proxies
	r.Use(chimiddleware.Recoverer)       // panic -> 500
	r.Use(middleware.AccessLog)          // structured access log
	r.Use(middleware.SecurityHeaders)    // nosniff, frame deny, HSTS
	r.Use(cors)                          // go-chi/cors
	r.Use(middleware.PrometheusMetrics)  // labelled by route pattern

Request IDs:

An X-Request-ID header from an upstream proxy is kept when it is at most
128 bytes; control characters are escaped. Otherwise a UUID v4 is
generated. The ID is echoed on the response and is available through
GetRequestID and logging.Ctx.

Metrics Labels:

PrometheusMetrics labels requests with the chi route pattern rather than
the raw path, so path parameters do not create unbounded label values.
Requests that match no route are labelled "unmatched".

See Also:

  - internal/api: router and handlers
  - internal/metrics: Prometheus metric definitions
  - internal/logging: context-aware zerolog helpers
*/
package middleware
