// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/metrics"
	"github.com/tomtom215/streampick/internal/recommend"
)

// DefaultFetchTimeout bounds one shared upstream fetch.
const DefaultFetchTimeout = 30 * time.Second

// CachedSource keeps the last good catalog snapshot of an upstream Source.
//
// A snapshot younger than the TTL is served directly. An older one triggers
// a refresh; concurrent callers share a single upstream fetch. The shared
// fetch runs on a context detached from any one caller, bounded by the
// fetch timeout, so a caller that gives up does not fail the others.
// When the refresh fails and a snapshot exists, the stale snapshot is
// served. Callers always receive a deep copy of the items.
type CachedSource struct {
	source       Source
	ttl          time.Duration
	fetchTimeout time.Duration
	now          func() time.Time
	group        singleflight.Group
	logger       zerolog.Logger

	mu        sync.RWMutex
	items     []recommend.CatalogItem
	fetchedAt time.Time
	loaded    bool
}

// NewCachedSource wraps source with a snapshot cache. A ttl of zero or
// less refetches on every call but still falls back to the last snapshot.
func NewCachedSource(source Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source:       source,
		ttl:          ttl,
		fetchTimeout: DefaultFetchTimeout,
		now:          time.Now,
		logger:       logging.WithComponent("catalog-cache"),
	}
}

// WithFetchTimeout sets the upper bound of a shared upstream fetch.
// Non-positive values keep the current timeout.
func (c *CachedSource) WithFetchTimeout(d time.Duration) *CachedSource {
	if d > 0 {
		c.fetchTimeout = d
	}
	return c
}

// Movies implements Source.
func (c *CachedSource) Movies(ctx context.Context) ([]recommend.CatalogItem, error) {
	if items, ok := c.fresh(); ok {
		metrics.RecordCatalogCache(metrics.CacheHit)
		return items, nil
	}

	metrics.RecordCatalogCache(metrics.CacheMiss)
	err := c.Refresh(ctx)
	if err == nil {
		items, _, _ := c.Snapshot()
		return items, nil
	}

	items, fetchedAt, ok := c.Snapshot()
	if !ok {
		return nil, err
	}
	metrics.RecordCatalogCache(metrics.CacheStale)
	c.logger.Warn().
		Err(err).
		Time("snapshot_time", fetchedAt).
		Int("movies", len(items)).
		Msg("Catalog refresh failed, serving stale snapshot")
	return items, nil
}

// Refresh fetches a new snapshot from the upstream source. Concurrent
// calls join one fetch; each caller stops waiting when its own ctx is done
// while the fetch carries on for the others.
func (c *CachedSource) Refresh(ctx context.Context) error {
	ch := c.group.DoChan("catalog", func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		items, err := c.source.Movies(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.items = cloneItems(items)
		c.fetchedAt = c.now()
		c.loaded = true
		c.mu.Unlock()
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns a copy of the current snapshot and when it was fetched.
// ok is false before the first successful fetch.
func (c *CachedSource) Snapshot() (items []recommend.CatalogItem, fetchedAt time.Time, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, time.Time{}, false
	}
	return cloneItems(c.items), c.fetchedAt, true
}

// Invalidate drops the snapshot so the next call refetches.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.fetchedAt = time.Time{}
	c.loaded = false
	c.mu.Unlock()
}

func (c *CachedSource) fresh() ([]recommend.CatalogItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded || c.ttl <= 0 || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return cloneItems(c.items), true
}
