// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package api

import (
	"net/http"

	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/models"
)

// AddSubscriber adds a mailing list subscriber.
//
// @Summary Subscribe to mood-matched movie updates
// @Description Appends a subscriber to the roster entry. Emails compare case-insensitively.
// @Description Preferred moods accept any mood alias and are stored as canonical tags.
// @Tags Subscribers
// @Accept json
// @Produce json
// @Param request body models.AddSubscriberPayload true "Name, email and preferred moods"
// @Success 200 {object} models.APIResponse{data=models.SubscriberAdded}
// @Failure 400 {object} models.APIResponse "INVALID_JSON, VALIDATION_ERROR or INVALID_MOOD"
// @Failure 409 {object} models.APIResponse "ALREADY_SUBSCRIBED"
// @Failure 502 {object} models.APIResponse "SUBSCRIBERS_ERROR"
// @Failure 503 {object} models.APIResponse "SUBSCRIBERS_UNAVAILABLE"
// @Router /api/v1/subscribers [post]
func (h *Handler) AddSubscriber(w http.ResponseWriter, r *http.Request) {
	var payload models.AddSubscriberPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, err.Error(), nil, nil)
		return
	}
	if apiErr := validateRequest(r, &payload); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	sub, err := h.roster.Add(r.Context(), payload.Name, payload.Email, payload.PreferredMoods)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("preferred_moods", len(sub.PreferredMoods)).
		Msg("Subscription accepted")
	respondSuccess(w, r, models.SubscriberAdded{
		Message:    "Successfully subscribed!",
		Subscriber: sub,
	}, 0)
}

// SubscriberCount returns the roster size.
//
// @Summary Count subscribers
// @Tags Subscribers
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.SubscriberCount}
// @Failure 502 {object} models.APIResponse "SUBSCRIBERS_ERROR"
// @Failure 503 {object} models.APIResponse "SUBSCRIBERS_UNAVAILABLE"
// @Router /api/v1/subscribers/count [get]
func (h *Handler) SubscriberCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.roster.Count(r.Context())
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	respondSuccess(w, r, models.SubscriberCount{Count: count}, 0)
}

// FilterSubscribersByMoods lists subscribers whose preferred moods overlap
// a movie's mood tags.
//
// @Summary Find subscribers for a movie's moods
// @Description Both sides go through the mood alias table, so "Edge of Seat" matches a subscriber who picked "thrilling".
// @Tags Subscribers
// @Accept json
// @Produce json
// @Param request body models.FilterSubscribersPayload true "Movie mood tags"
// @Success 200 {object} models.APIResponse{data=models.SubscriberMatches}
// @Failure 400 {object} models.APIResponse "INVALID_JSON or VALIDATION_ERROR"
// @Failure 502 {object} models.APIResponse "SUBSCRIBERS_ERROR"
// @Failure 503 {object} models.APIResponse "SUBSCRIBERS_UNAVAILABLE"
// @Router /api/v1/subscribers/filter-by-moods [post]
func (h *Handler) FilterSubscribersByMoods(w http.ResponseWriter, r *http.Request) {
	var payload models.FilterSubscribersPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, err.Error(), nil, nil)
		return
	}
	if apiErr := validateRequest(r, &payload); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	matches, err := h.roster.FilterByMoods(r.Context(), payload.MoodTags)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	respondSuccess(w, r, models.SubscriberMatches{
		TotalMatching: len(matches),
		Subscribers:   matches,
	}, 0)
}
