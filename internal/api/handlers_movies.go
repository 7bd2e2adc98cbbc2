// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/streampick/internal/catalog"
	"github.com/tomtom215/streampick/internal/models"
	"github.com/tomtom215/streampick/internal/recommend"
)

// Movies lists the catalog.
//
// @Summary List movies
// @Description Returns every movie from the catalog source
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 502 {object} models.APIResponse "CATALOG_ERROR"
// @Failure 503 {object} models.APIResponse "CATALOG_UNAVAILABLE"
// @Router /api/v1/movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	items, err := h.loadCatalog(r.Context())
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	respondSuccess(w, r, models.MovieList{Movies: items, Count: len(items)}, time.Since(start))
}

// MoviesByMood lists the catalog movies tagged with a mood. The tag is
// matched literally and case-insensitively; aliases are not resolved.
//
// @Summary List movies by mood tag
// @Description Returns movies whose mood_tags contain the given tag, ignoring case
// @Tags Movies
// @Produce json
// @Param mood path string true "Mood tag" example(cozy)
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Failure 502 {object} models.APIResponse "CATALOG_ERROR"
// @Failure 503 {object} models.APIResponse "CATALOG_UNAVAILABLE"
// @Router /api/v1/movies/mood/{mood} [get]
func (h *Handler) MoviesByMood(w http.ResponseWriter, r *http.Request) {
	tag := strings.TrimSpace(chi.URLParam(r, "mood"))
	if tag == "" || len(tag) > 100 {
		respondValidationError(w, r, "mood", "mood must be between 1 and 100 characters", tag)
		return
	}

	start := time.Now()
	items, err := h.loadCatalog(r.Context())
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	matched := catalog.FilterByMood(items, tag)
	respondSuccess(w, r, models.MovieList{Movies: matched, Count: len(matched), Mood: tag}, time.Since(start))
}

func (h *Handler) loadCatalog(ctx context.Context) ([]recommend.CatalogItem, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Recommend.RequestTimeout)
	defer cancel()

	items, err := h.source.Movies(ctx)
	if err != nil {
		return nil, &catalogError{err: err}
	}
	return items, nil
}
