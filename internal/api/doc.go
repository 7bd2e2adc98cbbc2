// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

/*
Package api provides the HTTP surface of the recommendation service.

Routes are served by a chi router (see SetupChi):

	GET  /                            service banner
	GET  /api/v1/health               health, available moods, catalog state
	GET  /api/v1/health/live          liveness check
	GET  /api/v1/health/ready         readiness check
	GET  /api/v1/moods                mood taxonomy
	POST /api/v1/recommend            rank a caller-supplied catalog
	POST /api/v1/recommendations      rank the catalog source
	GET  /api/v1/movies               list the catalog source
	GET  /api/v1/movies/mood/{mood}   list catalog movies with a mood tag
	POST /api/v1/subscribers          add a mailing list subscriber
	GET  /api/v1/subscribers/count    roster size
	POST /api/v1/subscribers/filter-by-moods  subscribers matching mood tags
	GET  /metrics                     Prometheus metrics
	GET  /swagger/*                   OpenAPI UI

Every JSON response uses the models.APIResponse envelope. Errors carry a
stable code:

	400 INVALID_JSON          body missing, oversized or malformed
	400 VALIDATION_ERROR      field constraint failed (details.field)
	400 INVALID_MOOD          mood not recognized (details.valid_moods)
	400 NO_CANDIDATES         no movie carries the mood
	409 ALREADY_SUBSCRIBED    email already on the roster
	429 RATE_LIMIT_EXCEEDED   per-client limit reached
	502 CATALOG_ERROR         catalog source failed or circuit open
	502 SUBSCRIBERS_ERROR     roster read or write failed
	503 CATALOG_UNAVAILABLE   no catalog source configured
	503 SUBSCRIBERS_UNAVAILABLE  no roster configured
	504 TIMEOUT               request deadline exceeded
	500 RECOMMENDATION_ERROR  anything else

Upstream error text is logged with the request ID and never returned to
the client.
*/
package api
