// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/middleware"
	"github.com/tomtom215/streampick/internal/models"
	"github.com/tomtom215/streampick/internal/validation"
)

// maxRequestBodySize bounds POST bodies. A full caller-supplied catalog of
// a few thousand movies with descriptions fits comfortably.
const maxRequestBodySize = 8 << 20

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in the success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, queryTime time.Duration) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: newMetadata(r, queryTime),
	})
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.Quote(strconv.FormatUint(uint64(hash), 16))
}

// respondError sends an error response. A non-nil err is logged with the
// request context; messages are sanitized against log injection.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		if status >= http.StatusInternalServerError {
			logging.CtxErr(r.Context(), errors.New(logging.SanitizeLogValue(err.Error()))).
				Str("code", code).
				Int("status", status).
				Msg("API error")
		} else {
			logging.Ctx(r.Context()).Warn().
				Str("code", code).
				Str("error", logging.SanitizeLogValue(err.Error())).
				Int("status", status).
				Msg("API error")
		}
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: newMetadata(r, 0),
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondFailure renders an error through classifyError.
func respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	f := classifyError(err)
	if !f.internal {
		logging.Ctx(r.Context()).Info().
			Str("code", f.code).
			Str("reason", logging.SanitizeLogValue(err.Error())).
			Msg("Request rejected")
		respondError(w, r, f.status, f.code, f.message, f.details, nil)
		return
	}
	respondError(w, r, f.status, f.code, f.message, f.details, err)
}

func newMetadata(r *http.Request, queryTime time.Duration) models.Metadata {
	return models.Metadata{
		Timestamp:   time.Now().UTC(),
		RequestID:   middleware.GetRequestID(r.Context()),
		QueryTimeMS: queryTime.Milliseconds(),
	}
}

// decodeJSON reads a bounded JSON body into dst. Unknown fields are
// ignored so older clients keep working.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("read request body: %w", err)
	}
	if len(body) == 0 {
		return errors.New("request body is empty")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	return nil
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
// Each failing field is logged at debug level.
func validateRequest(r *http.Request, v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	logger := logging.Ctx(r.Context())
	for _, fe := range validationErr.Errors() {
		logger.Debug().
			Str("field", fe.Path()).
			Str("tag", fe.Tag()).
			Str("param", fe.Param()).
			Msg("Validation failed")
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// respondValidationError writes a VALIDATION_ERROR built by hand for
// checks that depend on runtime configuration.
func respondValidationError(w http.ResponseWriter, r *http.Request, field, message string, value interface{}) {
	respondError(w, r, http.StatusBadRequest, ErrCodeValidation, message, map[string]interface{}{
		"field": field,
		"value": value,
	}, nil)
}
