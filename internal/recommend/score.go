// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package recommend

import (
	"fmt"
	"sort"

	"github.com/tomtom215/streampick/internal/mood"
	"github.com/tomtom215/streampick/internal/recommend/tfidf"
)

// Score computes the four score components for the item at position index.
//
// The mood bonus is flat: filtering already guarantees the tag, so every
// scored candidate receives it.
func Score(cfg *Config, item *CatalogItem, index int, space *tfidf.Space, m mood.Mood, timeAvailable int) (Breakdown, error) {
	var b Breakdown

	if item.HasMood(m.String()) {
		b.Mood = cfg.Weights.Mood
	}

	content, err := space.TopMean(index, cfg.TopSimilar)
	if err != nil {
		return Breakdown{}, fmt.Errorf("content similarity for %q: %w", item.Title, err)
	}
	b.Content = content * cfg.Weights.Content

	if item.Rating != nil {
		b.Quality = *item.Rating / 10 * cfg.Weights.Quality
	}

	if item.Runtime != nil {
		b.Duration = durationFit(&cfg.Duration, *item.Runtime, timeAvailable)
	}

	return b, nil
}

// durationFit awards the first tier whose window contains the distance.
// Runtimes far past the window are penalized; short runtimes never are.
func durationFit(d *DurationConfig, runtime, timeAvailable int) float64 {
	diff := runtime - timeAvailable
	if diff < 0 {
		diff = -diff
	}

	for _, tier := range d.Tiers {
		if diff <= tier.MaxDiff {
			return tier.Points
		}
	}
	if runtime > timeAvailable+d.Slack {
		return d.Penalty
	}
	return 0
}

// Rank sorts candidates by score, best first, keeping catalog order on ties,
// and returns at most n of them with 1-based ranks set.
func Rank(candidates []ScoredCandidate, n int) []ScoredCandidate {
	ranked := make([]ScoredCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
