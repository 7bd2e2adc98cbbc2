// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

// Package catalog supplies movie catalogs to the ranking engine.
//
// A Source returns the full catalog. The production chain is
//
//	CachedSource -> BreakerSource -> ContentstackClient
//
// where the client talks to the Contentstack Delivery API, the breaker
// stops hammering an unhealthy upstream, and the cache keeps the last good
// snapshot. Raw records from client payloads are coerced with Record.ToItem.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/tomtom215/streampick/internal/recommend"
)

// ErrSourceDisabled is returned when no catalog source is configured.
var ErrSourceDisabled = errors.New("catalog source disabled")

// Source provides the current movie catalog.
type Source interface {
	Movies(ctx context.Context) ([]recommend.CatalogItem, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]recommend.CatalogItem, error)

// Movies calls f(ctx).
func (f SourceFunc) Movies(ctx context.Context) ([]recommend.CatalogItem, error) {
	return f(ctx)
}

// DisabledSource always fails with ErrSourceDisabled.
type DisabledSource struct{}

// Movies implements Source.
func (DisabledSource) Movies(context.Context) ([]recommend.CatalogItem, error) {
	return nil, ErrSourceDisabled
}

// StaticSource serves a fixed catalog.
type StaticSource struct {
	items []recommend.CatalogItem
}

// NewStaticSource returns a Source over a copy of items.
func NewStaticSource(items []recommend.CatalogItem) *StaticSource {
	return &StaticSource{items: cloneItems(items)}
}

// Movies implements Source.
func (s *StaticSource) Movies(ctx context.Context) ([]recommend.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneItems(s.items), nil
}

// FilterByMood returns the items tagged with mood, ignoring case and
// surrounding whitespace. A blank mood matches nothing.
func FilterByMood(items []recommend.CatalogItem, mood string) []recommend.CatalogItem {
	mood = strings.TrimSpace(mood)
	out := make([]recommend.CatalogItem, 0, len(items))
	if mood == "" {
		return out
	}
	for i := range items {
		if items[i].HasMood(mood) {
			out = append(out, items[i])
		}
	}
	return out
}

func cloneItems(items []recommend.CatalogItem) []recommend.CatalogItem {
	if items == nil {
		return nil
	}
	out := make([]recommend.CatalogItem, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}
