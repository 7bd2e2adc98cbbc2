// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

// @title StreamPick API
// @version 1.0
// @description Mood and time based movie recommendations.
// @description
// @description Send a mood, the minutes you have, and a candidate list (or let the
// @description service pull the catalog from Contentstack) and get a ranked list
// @description with a score and a short explanation per movie.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on /api/v1.
// @description Health endpoints are not rate limited.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "INVALID_MOOD",
// @description     "message": "Unrecognized mood",
// @description     "details": {"valid_moods": ["Cozy & Warm"]}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/streampick/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8001
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Service banner and health checks
//
// @tag.name Recommendations
// @tag.description Mood catalog and ranking endpoints
//
// @tag.name Movies
// @tag.description Catalog listing backed by Contentstack
//
// @tag.name Subscribers
// @tag.description Mailing list roster backed by the Contentstack Management API
package main
