// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/streampick/internal/catalog"
	"github.com/tomtom215/streampick/internal/mood"
	"github.com/tomtom215/streampick/internal/recommend"
	"github.com/tomtom215/streampick/internal/subscribers"
)

// Error codes returned in APIError.Code.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidMood        = "INVALID_MOOD"
	ErrCodeNoCandidates       = "NO_CANDIDATES"
	ErrCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	ErrCodeCatalogError       = "CATALOG_ERROR"
	ErrCodeRecommendation     = "RECOMMENDATION_ERROR"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"

	ErrCodeAlreadySubscribed      = "ALREADY_SUBSCRIBED"
	ErrCodeSubscribersUnavailable = "SUBSCRIBERS_UNAVAILABLE"
	ErrCodeSubscribersError       = "SUBSCRIBERS_ERROR"
)

// errCatalogFetch marks failures from the catalog source so they map to
// CATALOG_ERROR rather than RECOMMENDATION_ERROR.
var errCatalogFetch = errors.New("catalog fetch failed")

// catalogError wraps a catalog source error while keeping the cause
// reachable through errors.Is.
type catalogError struct {
	err error
}

func (e *catalogError) Error() string { return errCatalogFetch.Error() + ": " + e.err.Error() }

func (e *catalogError) Is(target error) bool { return target == errCatalogFetch }

func (e *catalogError) Unwrap() error { return e.err }

// apiFailure is the HTTP rendering of an error.
type apiFailure struct {
	status  int
	code    string
	message string
	details map[string]interface{}
	// internal failures are logged at error level with the cause
	internal bool
}

// classifyError maps domain errors to status codes and API error codes.
func classifyError(err error) apiFailure {
	var moodErr *mood.UnrecognizedMoodError
	var noCandErr *recommend.NoCandidatesError

	switch {
	case errors.As(err, &moodErr):
		return apiFailure{
			status:  http.StatusBadRequest,
			code:    ErrCodeInvalidMood,
			message: moodErr.Error(),
			details: map[string]interface{}{
				"input":       moodErr.Input,
				"valid_moods": moodErr.ValidLabels,
			},
		}

	case errors.As(err, &noCandErr):
		return apiFailure{
			status:  http.StatusBadRequest,
			code:    ErrCodeNoCandidates,
			message: noCandErr.Error(),
			details: map[string]interface{}{
				"mood":        noCandErr.Mood,
				"valid_moods": noCandErr.ValidLabels,
			},
		}

	case errors.Is(err, catalog.ErrSourceDisabled):
		return apiFailure{
			status:  http.StatusServiceUnavailable,
			code:    ErrCodeCatalogUnavailable,
			message: "Catalog source is not configured",
		}

	case errors.Is(err, subscribers.ErrAlreadySubscribed):
		return apiFailure{
			status:  http.StatusConflict,
			code:    ErrCodeAlreadySubscribed,
			message: "This email is already subscribed!",
		}

	case errors.Is(err, subscribers.ErrDisabled):
		return apiFailure{
			status:  http.StatusServiceUnavailable,
			code:    ErrCodeSubscribersUnavailable,
			message: "Subscriber roster is not configured",
		}

	case errors.Is(err, context.DeadlineExceeded):
		return apiFailure{
			status:   http.StatusGatewayTimeout,
			code:     ErrCodeTimeout,
			message:  "Request timed out",
			internal: true,
		}

	case errors.Is(err, subscribers.ErrStore):
		return apiFailure{
			status:   http.StatusBadGateway,
			code:     ErrCodeSubscribersError,
			message:  "Failed to reach the subscriber roster",
			internal: true,
		}

	case errors.Is(err, errCatalogFetch):
		return apiFailure{
			status:   http.StatusBadGateway,
			code:     ErrCodeCatalogError,
			message:  "Failed to load movies from the catalog source",
			internal: true,
		}

	default:
		return apiFailure{
			status:   http.StatusInternalServerError,
			code:     ErrCodeRecommendation,
			message:  "Failed to generate recommendations",
			internal: true,
		}
	}
}
