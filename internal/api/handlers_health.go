// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/streampick/internal/metrics"
	"github.com/tomtom215/streampick/internal/models"
	"github.com/tomtom215/streampick/internal/mood"
)

const (
	healthHealthy  = "healthy"
	healthDegraded = "degraded"

	breakerOpen = "open"
)

// Root returns the service banner.
//
// @Summary Service banner
// @Description Returns service name, status, version and description
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ServiceInfo}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, models.ServiceInfo{
		Service:     ServiceName,
		Status:      "running",
		Version:     h.version,
		Description: "Mood and time based movie recommendations using content-based filtering",
	}, 0)
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns health status, uptime, the canonical mood tags and catalog source state.
// @Description The service is degraded when the catalog circuit breaker is open.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	catalogHealth := h.catalogHealth()

	status := healthHealthy
	message := "Rankings are computed from the catalog supplied with each request"
	if catalogHealth.Enabled {
		message = "Rankings use the request catalog or the configured catalog source"
		if catalogHealth.BreakerState == breakerOpen {
			status = healthDegraded
			message = "Catalog source circuit is open; caller-supplied catalogs still work"
		}
	}

	metrics.UpdateUptime(h.startTime)

	respondSuccess(w, r, models.HealthStatus{
		Status:         status,
		Message:        message,
		Version:        h.version,
		UptimeSeconds:  time.Since(h.startTime).Seconds(),
		AvailableMoods: mood.CanonicalStrings(),
		Catalog:        catalogHealth,
	}, 0)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive, regardless of external dependencies.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// The ranking engine is stateless, so the service is ready unless the
// catalog source is enabled and has never produced a snapshot.
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK when the service can rank requests. Returns 503 while an enabled catalog source has not loaded yet.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	catalogHealth := h.catalogHealth()
	ready := !catalogHealth.Enabled || h.snapshots == nil || catalogHealth.LastRefresh != nil

	data := map[string]interface{}{
		"ready":   ready,
		"catalog": catalogHealth,
	}
	if !ready {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     data,
			Metadata: newMetadata(r, 0),
			Error: &models.APIError{
				Code:    ErrCodeCatalogUnavailable,
				Message: "Catalog has not been loaded yet",
			},
		})
		return
	}
	respondSuccess(w, r, data, 0)
}

func (h *Handler) catalogHealth() *models.CatalogHealth {
	ch := &models.CatalogHealth{Enabled: h.catalogEnabled()}
	if !ch.Enabled {
		return ch
	}
	if h.snapshots != nil {
		if items, fetchedAt, ok := h.snapshots.Snapshot(); ok {
			ch.Movies = len(items)
			ch.LastRefresh = &fetchedAt
		}
	}
	if h.breaker != nil {
		ch.BreakerState = h.breaker.State()
	}
	return ch
}
