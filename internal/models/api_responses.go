// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "INVALID_MOOD",
//	    "message": "mood 'grumpy' not recognized. Valid moods: Cozy & Warm, ...",
//	    "details": {"input": "grumpy", "valid_moods": ["Cozy & Warm", "..."]}
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "request_id": "..."}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: payload failed validation
//   - INVALID_JSON: body is not valid JSON
//   - INVALID_MOOD: mood text matches no alias
//   - NO_CANDIDATES: no movie in the catalog carries the mood
//   - CATALOG_UNAVAILABLE: no catalog source configured
//   - CATALOG_ERROR: catalog source failed
//   - RECOMMENDATION_ERROR: unexpected ranking failure
//   - TIMEOUT: request deadline exceeded
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - NOT_FOUND, METHOD_NOT_ALLOWED: routing errors
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
