// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/streampick/internal/logging"
)

const (
	defaultRefreshInterval = 5 * time.Minute
	defaultRefreshTimeout  = 30 * time.Second
)

// CatalogRefresher replaces the cached catalog snapshot.
// *catalog.CachedSource satisfies it.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshService warms the catalog cache on start and then
// refreshes it every interval. A failed refresh is logged and retried at
// the next tick; the cache keeps serving its previous snapshot meanwhile.
type CatalogRefreshService struct {
	refresher CatalogRefresher
	interval  time.Duration
	timeout   time.Duration
	logger    zerolog.Logger
	name      string
}

// NewCatalogRefreshService creates the refresher. A non-positive interval
// means five minutes.
func NewCatalogRefreshService(refresher CatalogRefresher, interval time.Duration) *CatalogRefreshService {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &CatalogRefreshService{
		refresher: refresher,
		interval:  interval,
		timeout:   defaultRefreshTimeout,
		logger:    logging.WithComponent("catalog-refresh"),
		name:      "catalog-refresh",
	}
}

// Serve implements suture.Service.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Catalog refresher starting")

	if err := s.refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Initial catalog load failed, will retry on schedule")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Catalog refresher stopping")
			return ctx.Err()
		case <-ticker.C:
			if err := s.refresh(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("Scheduled catalog refresh failed")
			}
		}
	}
}

func (s *CatalogRefreshService) refresh(ctx context.Context) error {
	refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.refresher.Refresh(refreshCtx); err != nil {
		return err
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("Catalog refreshed")
	return nil
}

// String names the service in supervisor events.
func (s *CatalogRefreshService) String() string {
	return s.name
}
