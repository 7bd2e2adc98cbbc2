// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/streampick/internal/catalog"
	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/metrics"
	"github.com/tomtom215/streampick/internal/middleware"
	"github.com/tomtom215/streampick/internal/models"
	"github.com/tomtom215/streampick/internal/mood"
	"github.com/tomtom215/streampick/internal/recommend"
)

// SourceML tags rankings produced by this service.
const SourceML = "ml"

// Moods returns the mood taxonomy.
//
// @Summary List available moods
// @Description Returns UI labels, canonical backend tags, every accepted input, and one example per mood
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.MoodsInfo}
// @Router /api/v1/moods [get]
func (h *Handler) Moods(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, models.MoodsInfo{
		UILabels:       mood.UILabels(),
		BackendTags:    mood.CanonicalStrings(),
		AllValidInputs: mood.ValidInputs(),
		Examples:       mood.Examples(),
	}, 0)
}

// Recommend ranks a caller-supplied catalog.
//
// @Summary Rank a supplied catalog
// @Description Ranks the movies in the request body against a mood and the time available.
// @Description Missing or zero year, runtime and rating take the defaults 2020, 120 and 7.0.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendPayload true "Mood, time and catalog"
// @Success 200 {object} models.APIResponse{data=recommend.Response}
// @Failure 400 {object} models.APIResponse "INVALID_JSON, VALIDATION_ERROR, INVALID_MOOD or NO_CANDIDATES"
// @Failure 500 {object} models.APIResponse "RECOMMENDATION_ERROR"
// @Router /api/v1/recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var payload models.RecommendPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, err.Error(), nil, nil)
		return
	}
	payload.Mood = strings.TrimSpace(payload.Mood)

	if apiErr := validateRequest(r, &payload); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}
	if !h.checkBounds(w, r, payload.TimeAvailable, payload.TopN) {
		return
	}
	if limit := h.config.Recommend.MaxCatalogSize; len(payload.Movies) > limit {
		respondValidationError(w, r, "movies",
			fmt.Sprintf("movies must contain at most %d items", limit), len(payload.Movies))
		return
	}

	req := h.newRequest(r, payload.Mood, payload.TimeAvailable, payload.TopN, payload.UserID)
	logging.Ctx(r.Context()).Info().
		Str("mood", logging.SanitizeLogValue(req.Mood)).
		Int("time_available", req.TimeAvailable).
		Int("top_n", req.TopN).
		Int("movies_received", len(payload.Movies)).
		Str("user_id", userIDForLog(req.UserID)).
		Msg("Recommendation request")

	resp, elapsed, err := h.rank(r.Context(), req, catalog.ToItems(payload.Movies))
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	respondSuccess(w, r, resp, elapsed)
}

// Recommendations ranks the catalog from the configured catalog source.
//
// @Summary Rank the managed catalog
// @Description Loads movies from the catalog source (cached) and ranks them against a mood and the time available.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendationsPayload true "Mood and time"
// @Success 200 {object} models.APIResponse{data=models.SourcedRecommendations}
// @Failure 400 {object} models.APIResponse "INVALID_JSON, VALIDATION_ERROR, INVALID_MOOD or NO_CANDIDATES"
// @Failure 502 {object} models.APIResponse "CATALOG_ERROR"
// @Failure 503 {object} models.APIResponse "CATALOG_UNAVAILABLE"
// @Router /api/v1/recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var payload models.RecommendationsPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, err.Error(), nil, nil)
		return
	}
	payload.Mood = strings.TrimSpace(payload.Mood)

	if apiErr := validateRequest(r, &payload); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}
	if !h.checkBounds(w, r, payload.TimeAvailable, payload.TopN) {
		return
	}

	// Reject unknown moods before touching the catalog source.
	if _, err := mood.Normalize(payload.Mood); err != nil {
		metrics.RecordRecommendation("", metrics.OutcomeInvalidMood, 0, 0)
		respondFailure(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.Recommend.RequestTimeout)
	defer cancel()

	items, err := h.source.Movies(ctx)
	if err != nil {
		metrics.RecordRecommendation("", metrics.OutcomeError, 0, 0)
		respondFailure(w, r, &catalogError{err: err})
		return
	}

	req := h.newRequest(r, payload.Mood, payload.TimeAvailable, payload.TopN, payload.UserID)
	resp, elapsed, err := h.rank(ctx, req, items)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	respondSuccess(w, r, models.SourcedRecommendations{Response: resp, Source: SourceML}, elapsed)
}

// checkBounds enforces the configured upper limits, which may be tighter
// than the static validation tags.
func (h *Handler) checkBounds(w http.ResponseWriter, r *http.Request, timeAvailable, topN int) bool {
	rc := h.config.Recommend
	if timeAvailable > rc.MaxTimeAvailable {
		respondValidationError(w, r, "time_available",
			fmt.Sprintf("time_available must be at most %d", rc.MaxTimeAvailable), timeAvailable)
		return false
	}
	if topN > rc.MaxTopN {
		respondValidationError(w, r, "top_n",
			fmt.Sprintf("top_n must be at most %d", rc.MaxTopN), topN)
		return false
	}
	return true
}

func (h *Handler) newRequest(r *http.Request, moodInput string, timeAvailable, topN int, userID string) recommend.Request {
	if topN <= 0 {
		topN = h.config.Recommend.DefaultTopN
	}
	return recommend.Request{
		Mood:          moodInput,
		TimeAvailable: timeAvailable,
		TopN:          topN,
		UserID:        userID,
		RequestID:     middleware.GetRequestID(r.Context()),
	}
}

// rank runs the engine under the request timeout and records the outcome.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (h *Handler) rank(ctx context.Context, req recommend.Request, items []recommend.CatalogItem) (*recommend.Response, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Recommend.RequestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := h.engine.Recommend(ctx, req, items)
	elapsed := time.Since(start)

	if err != nil {
		canonical, _ := mood.Normalize(req.Mood)
		metrics.RecordRecommendation(canonical.String(), outcomeFor(err), elapsed, len(items))
		return nil, elapsed, err
	}

	metrics.RecordRecommendation(resp.FiltersApplied.Mood, metrics.OutcomeSuccess, elapsed, len(items))
	if resp.FiltersApplied.TimeConstraintRelaxed {
		metrics.RecordTimeRelaxed(resp.FiltersApplied.Mood)
	}

	logging.Ctx(ctx).Info().
		Int("returned", len(resp.Recommendations)).
		Dur("elapsed", elapsed).
		Msg("Request completed")

	return resp, elapsed, nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, mood.ErrUnrecognizedMood):
		return metrics.OutcomeInvalidMood
	case errors.Is(err, recommend.ErrNoCandidatesForMood):
		return metrics.OutcomeNoCandidates
	default:
		return metrics.OutcomeError
	}
}

func userIDForLog(userID string) string {
	if userID == "" {
		return "anonymous"
	}
	return logging.SanitizeLogValue(userID)
}
