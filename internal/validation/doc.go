// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

/*
Package validation validates API payloads with go-playground/validator v10.

Field names in errors are the JSON names of the payload (time_available,
movies[2].title), so messages read the same as the request body the
client sent.

Custom tags:
  - notblank: string must contain a non-whitespace character

Example:

	type RecommendPayload struct {
	    Mood          string `json:"mood" validate:"notblank,max=100"`
	    TimeAvailable int    `json:"time_available" validate:"min=1,max=500"`
	}

	if verr := validation.ValidateStruct(&payload); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	}
*/
package validation
