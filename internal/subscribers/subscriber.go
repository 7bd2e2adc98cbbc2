// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package subscribers

import (
	"context"
	"errors"
	"strings"

	"github.com/tomtom215/streampick/internal/mood"
)

var (
	// ErrAlreadySubscribed is returned when the email is already on the roster.
	ErrAlreadySubscribed = errors.New("this email is already subscribed")

	// ErrDisabled is returned by DisabledStore.
	ErrDisabled = errors.New("subscriber roster is not configured")

	// ErrStore marks failures reading or writing the roster.
	ErrStore = errors.New("subscriber roster unavailable")
)

// Subscriber is one roster entry.
type Subscriber struct {
	Name           string   `json:"name" example:"Ada Lovelace"`
	Email          string   `json:"email" example:"ada@example.com"`
	PreferredMoods []string `json:"preferred_moods" example:"cozy,thrilling"`
	SubscribedDate string   `json:"subscribed_date,omitempty" example:"2026-10-18"`
}

// Match is a subscriber whose preferred moods intersect a movie's mood tags.
type Match struct {
	Subscriber
	MatchingMoods []string `json:"matching_moods" example:"cozy"`
}

// Store persists the whole roster. Save replaces it.
type Store interface {
	Load(ctx context.Context) ([]Subscriber, error)
	Save(ctx context.Context, roster []Subscriber) error
}

// DisabledStore is the Store used when no roster is configured.
type DisabledStore struct{}

// Load implements Store.
func (DisabledStore) Load(context.Context) ([]Subscriber, error) {
	return nil, ErrDisabled
}

// Save implements Store.
func (DisabledStore) Save(context.Context, []Subscriber) error {
	return ErrDisabled
}

// moodKey is the comparison form of a mood: the canonical tag when the
// input is a known alias, otherwise the trimmed lower-cased input.
func moodKey(input string) string {
	if m, err := mood.Normalize(input); err == nil {
		return m.String()
	}
	return strings.ToLower(strings.TrimSpace(input))
}

// MatchingMoods returns the comparison keys shared by a subscriber's
// preferences and a movie's tags, in the subscriber's order, without
// duplicates.
func MatchingMoods(preferred, movieTags []string) []string {
	tags := make(map[string]bool, len(movieTags))
	for _, t := range movieTags {
		if k := moodKey(t); k != "" {
			tags[k] = true
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, p := range preferred {
		k := moodKey(p)
		if k == "" || !tags[k] || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// canonicalMoods normalizes a new subscriber's moods, dropping blanks and
// duplicates. Unknown moods are rejected.
func canonicalMoods(inputs []string) ([]string, error) {
	out := make([]string, 0, len(inputs))
	seen := make(map[mood.Mood]bool, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in) == "" {
			continue
		}
		m, err := mood.Normalize(in)
		if err != nil {
			return nil, err
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m.String())
	}
	return out, nil
}

// splitMoods parses the comma separated preferred_moods field.
func splitMoods(field string) []string {
	out := []string{}
	for _, part := range strings.Split(field, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
