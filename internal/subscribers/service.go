// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package subscribers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/metrics"
)

// Roster operations, used as metric labels.
const (
	OpAdd    = "add"
	OpCount  = "count"
	OpFilter = "filter"
)

// Service adds, counts and matches subscribers.
//
// The roster is one document, so Add is a read-modify-write. Adds are
// serialized within the process; concurrent writers in other processes
// can still race.
type Service struct {
	store  Store
	mu     sync.Mutex
	now    func() time.Time
	logger zerolog.Logger
}

// NewService creates a Service over store. A nil store is treated as
// DisabledStore.
func NewService(store Store) *Service {
	if store == nil {
		store = DisabledStore{}
	}
	return &Service{
		store:  store,
		now:    time.Now,
		logger: logging.WithComponent("subscribers"),
	}
}

// Add appends a subscriber. Emails compare case-insensitively; a repeat
// returns ErrAlreadySubscribed. Moods are stored as canonical tags and an
// unknown mood returns *mood.UnrecognizedMoodError.
func (s *Service) Add(ctx context.Context, name, email string, moods []string) (Subscriber, error) {
	sub := Subscriber{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	preferred, err := canonicalMoods(moods)
	if err != nil {
		metrics.RecordSubscriberOperation(OpAdd, "invalid_mood")
		return Subscriber{}, err
	}
	sub.PreferredMoods = preferred

	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.store.Load(ctx)
	if err != nil {
		metrics.RecordSubscriberOperation(OpAdd, metrics.OutcomeError)
		return Subscriber{}, storeError(err)
	}
	for _, existing := range roster {
		if strings.EqualFold(strings.TrimSpace(existing.Email), sub.Email) {
			metrics.RecordSubscriberOperation(OpAdd, "duplicate")
			return Subscriber{}, ErrAlreadySubscribed
		}
	}

	sub.SubscribedDate = s.now().UTC().Format(time.DateOnly)
	updated := make([]Subscriber, len(roster), len(roster)+1)
	copy(updated, roster)
	updated = append(updated, sub)

	if err := s.store.Save(ctx, updated); err != nil {
		metrics.RecordSubscriberOperation(OpAdd, metrics.OutcomeError)
		return Subscriber{}, storeError(err)
	}

	metrics.RecordSubscriberOperation(OpAdd, metrics.OutcomeSuccess)
	s.logger.Info().
		Str("email", logging.SanitizeLogValue(sub.Email)).
		Strs("preferred_moods", sub.PreferredMoods).
		Int("roster_size", len(updated)).
		Msg("Subscriber added")
	return sub, nil
}

// Count returns the roster size.
func (s *Service) Count(ctx context.Context) (int, error) {
	roster, err := s.store.Load(ctx)
	if err != nil {
		metrics.RecordSubscriberOperation(OpCount, metrics.OutcomeError)
		return 0, storeError(err)
	}
	metrics.RecordSubscriberOperation(OpCount, metrics.OutcomeSuccess)
	return len(roster), nil
}

// FilterByMoods returns the subscribers sharing at least one mood with
// moodTags, in roster order.
func (s *Service) FilterByMoods(ctx context.Context, moodTags []string) ([]Match, error) {
	roster, err := s.store.Load(ctx)
	if err != nil {
		metrics.RecordSubscriberOperation(OpFilter, metrics.OutcomeError)
		return nil, storeError(err)
	}

	matches := []Match{}
	for _, sub := range roster {
		if shared := MatchingMoods(sub.PreferredMoods, moodTags); len(shared) > 0 {
			matches = append(matches, Match{Subscriber: sub, MatchingMoods: shared})
		}
	}

	metrics.RecordSubscriberOperation(OpFilter, metrics.OutcomeSuccess)
	s.logger.Debug().
		Strs("mood_tags", moodTags).
		Int("roster_size", len(roster)).
		Int("matching", len(matches)).
		Msg("Filtered subscribers by mood")
	return matches, nil
}

// storeError tags a store failure with ErrStore. Disabled and cancelled
// stores keep their own identity.
func storeError(err error) error {
	if errors.Is(err, ErrDisabled) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}
