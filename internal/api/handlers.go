// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package api

import (
	"errors"
	"time"

	"github.com/tomtom215/streampick/internal/catalog"
	"github.com/tomtom215/streampick/internal/config"
	"github.com/tomtom215/streampick/internal/recommend"
	"github.com/tomtom215/streampick/internal/subscribers"
)

// ServiceName is reported by GET / and the health endpoints.
const ServiceName = "StreamPick Recommendation Service"

// CatalogSnapshotter exposes the last good catalog snapshot for health
// reporting. *catalog.CachedSource implements it.
type CatalogSnapshotter interface {
	Snapshot() ([]recommend.CatalogItem, time.Time, bool)
}

// BreakerStater reports circuit breaker state. *catalog.BreakerSource
// implements it.
type BreakerStater interface {
	State() string
}

// HandlerDeps are the dependencies of Handler.
type HandlerDeps struct {
	Config  *config.Config
	Engine  *recommend.Engine
	Source  catalog.Source
	Version string

	// Optional, used by the health endpoints.
	Snapshots CatalogSnapshotter
	Breaker   BreakerStater

	// Optional. Nil serves the subscriber endpoints with 503.
	Subscribers *subscribers.Service
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response envelope, decoding, validation
//   - handlers_health.go: service banner and health checks
//   - handlers_recommend.go: mood taxonomy and ranking endpoints
//   - handlers_movies.go: catalog listing endpoints
//   - handlers_subscribers.go: mailing list roster endpoints
type Handler struct {
	config    *config.Config
	engine    *recommend.Engine
	source    catalog.Source
	snapshots CatalogSnapshotter
	breaker   BreakerStater
	roster    *subscribers.Service
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler. Config and Engine are required; a
// nil Source is treated as catalog.DisabledSource.
func NewHandler(deps HandlerDeps) (*Handler, error) {
	if deps.Config == nil {
		return nil, errors.New("api: config is required")
	}
	if deps.Engine == nil {
		return nil, errors.New("api: recommendation engine is required")
	}

	source := deps.Source
	if source == nil {
		source = catalog.DisabledSource{}
	}
	roster := deps.Subscribers
	if roster == nil {
		roster = subscribers.NewService(subscribers.DisabledStore{})
	}
	version := deps.Version
	if version == "" {
		version = "dev"
	}

	return &Handler{
		config:    deps.Config,
		engine:    deps.Engine,
		source:    source,
		snapshots: deps.Snapshots,
		breaker:   deps.Breaker,
		roster:    roster,
		version:   version,
		startTime: time.Now(),
	}, nil
}

// catalogEnabled reports whether a remote catalog source is configured.
func (h *Handler) catalogEnabled() bool {
	_, disabled := h.source.(catalog.DisabledSource)
	return !disabled
}
