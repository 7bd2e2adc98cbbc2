// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package subscribers

import (
	"context"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/streampick/internal/catalog"
)

// BreakerStore wraps a Store with the same circuit breaker policy as the
// catalog source. Loads and saves share one breaker.
type BreakerStore struct {
	store Store
	cb    *gobreaker.CircuitBreaker[[]Subscriber]
	name  string
}

// NewBreakerStore wraps store with the given breaker settings.
func NewBreakerStore(store Store, cfg catalog.BreakerConfig) *BreakerStore {
	return &BreakerStore{
		store: store,
		cb:    catalog.NewCircuitBreaker[[]Subscriber](cfg),
		name:  cfg.Name,
	}
}

// Load implements Store.
func (b *BreakerStore) Load(ctx context.Context) ([]Subscriber, error) {
	roster, err := b.cb.Execute(func() ([]Subscriber, error) {
		return b.store.Load(ctx)
	})
	if catalog.RecordBreakerResult(b.name, b.cb.Counts(), err) {
		return nil, fmt.Errorf("subscriber store %s unavailable: %w", b.name, err)
	}
	return roster, err
}

// Save implements Store.
func (b *BreakerStore) Save(ctx context.Context, roster []Subscriber) error {
	_, err := b.cb.Execute(func() ([]Subscriber, error) {
		return nil, b.store.Save(ctx, roster)
	})
	if catalog.RecordBreakerResult(b.name, b.cb.Counts(), err) {
		return fmt.Errorf("subscriber store %s unavailable: %w", b.name, err)
	}
	return err
}

// State returns the breaker state as a string.
func (b *BreakerStore) State() string {
	return catalog.StateString(b.cb.State())
}
