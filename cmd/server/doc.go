// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

/*
Package main is the entry point for the StreamPick server.

StreamPick ranks movies for a viewer's mood and the time they have. Callers
either post the candidate catalog with the request or let the server pull
it from Contentstack.

# Startup

 1. Configuration: koanf v2 (defaults, config.yaml or CONFIG_PATH, environment)
 2. Logging: zerolog, JSON or console
 3. Recommendation engine with the configured vocabulary and duration settings
 4. Catalog source: Contentstack client, circuit breaker, snapshot cache
 5. Chi router with request ID, access log, CORS, rate limit and metrics
 6. Suture supervisor tree running the HTTP server and catalog refresher

# Configuration

	# Server
	HTTP_PORT=8001
	HTTP_HOST=0.0.0.0
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Rate limiting and CORS
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m
	CORS_ORIGINS=https://app.example.com

	# Contentstack catalog (optional)
	CONTENTSTACK_ENABLED=true
	CONTENTSTACK_API_KEY=blt...
	CONTENTSTACK_DELIVERY_TOKEN=cs...
	CONTENTSTACK_ENVIRONMENT=production
	CONTENTSTACK_REFRESH_INTERVAL=5m

With Contentstack disabled the server still answers POST /api/v1/recommend,
which carries its own catalog. The catalog-backed routes return
CATALOG_UNAVAILABLE.

# Signals

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for up to SHUTDOWN_TIMEOUT before the process exits.

# Build

	go build -ldflags "-X main.version=1.2.0" -o streampick ./cmd/server
*/
package main
