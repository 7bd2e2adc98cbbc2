// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package models

import (
	"time"

	"github.com/tomtom215/streampick/internal/catalog"
	"github.com/tomtom215/streampick/internal/mood"
	"github.com/tomtom215/streampick/internal/recommend"
)

// RecommendPayload is the body of POST /api/v1/recommend. The caller
// supplies the catalog to rank.
type RecommendPayload struct {
	Mood          string           `json:"mood" validate:"notblank,max=100" example:"Edge of Seat"`
	TimeAvailable int              `json:"time_available" validate:"min=1,max=500" example:"120"`
	TopN          int              `json:"top_n,omitempty" validate:"omitempty,min=1,max=10" example:"5"`
	UserID        string           `json:"user_id,omitempty" validate:"max=200"`
	Movies        []catalog.Record `json:"movies" validate:"required,dive"`
}

// RecommendationsPayload is the body of POST /api/v1/recommendations. The
// catalog comes from the configured catalog source.
type RecommendationsPayload struct {
	Mood          string `json:"mood" validate:"notblank,max=100" example:"cozy"`
	TimeAvailable int    `json:"time_available" validate:"min=1,max=500" example:"90"`
	TopN          int    `json:"top_n,omitempty" validate:"omitempty,min=1,max=10" example:"5"`
	UserID        string `json:"user_id,omitempty" validate:"max=200"`
}

// SourcedRecommendations is a ranking result tagged with its origin.
type SourcedRecommendations struct {
	*recommend.Response
	Source string `json:"source" example:"ml"`
}

// ServiceInfo is returned by GET /.
type ServiceInfo struct {
	Service     string `json:"service"`
	Status      string `json:"status"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status         string         `json:"status"`
	Message        string         `json:"message,omitempty"`
	Version        string         `json:"version"`
	UptimeSeconds  float64        `json:"uptime_seconds"`
	AvailableMoods []string       `json:"available_moods"`
	Catalog        *CatalogHealth `json:"catalog,omitempty"`
}

// CatalogHealth describes the catalog source.
type CatalogHealth struct {
	Enabled      bool       `json:"enabled"`
	Movies       int        `json:"movies"`
	LastRefresh  *time.Time `json:"last_refresh,omitempty"`
	BreakerState string     `json:"breaker_state,omitempty"`
}

// MoodsInfo is returned by GET /api/v1/moods.
type MoodsInfo struct {
	UILabels       []string       `json:"ui_labels"`
	BackendTags    []string       `json:"backend_tags"`
	AllValidInputs []string       `json:"all_valid_inputs"`
	Examples       []mood.Example `json:"examples"`
}

// MovieList is returned by the movie listing endpoints.
type MovieList struct {
	Movies []recommend.CatalogItem `json:"movies"`
	Count  int                     `json:"count"`
	Mood   string                  `json:"mood,omitempty"`
}
