// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package recommend

import (
	"fmt"

	"github.com/tomtom215/streampick/internal/recommend/tfidf"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the size of each score component.
	Weights ScoreWeights `json:"weights"`

	// Duration defines the runtime-fit tiers.
	Duration DurationConfig `json:"duration"`

	// Vectorizer contains TF-IDF vocabulary settings.
	Vectorizer tfidf.Config `json:"vectorizer"`

	// TopSimilar is how many of the largest row similarities are averaged
	// for the content component.
	TopSimilar int `json:"top_similar"`

	// HighRating is the rating at or above which a result is called out
	// as highly rated.
	HighRating float64 `json:"high_rating"`

	// DefaultTopN is used when a request does not set TopN.
	DefaultTopN int `json:"default_top_n"`
}

// ScoreWeights holds the maximum contribution of each component.
type ScoreWeights struct {
	// Mood is the flat bonus for a mood-tag match.
	Mood float64 `json:"mood"`

	// Content scales the mean top-k similarity.
	Content float64 `json:"content"`

	// Quality scales rating / 10.
	Quality float64 `json:"quality"`
}

// DurationConfig defines the runtime-fit tiers. A tier applies when the
// absolute distance between runtime and requested time is within its window.
type DurationConfig struct {
	// Tiers are checked in order; the first match wins.
	Tiers []DurationTier `json:"tiers"`

	// Slack is how far past the requested time a runtime may go before the
	// strict filter drops it and the penalty applies.
	Slack int `json:"slack"`

	// Penalty is added when runtime > time + Slack. Negative.
	Penalty float64 `json:"penalty"`
}

// DurationTier is one runtime-fit band.
type DurationTier struct {
	MaxDiff int     `json:"max_diff"`
	Points  float64 `json:"points"`
}

// ExactFitWindow returns the window of the first tier, which the
// explanation treats as an exact runtime fit.
func (d DurationConfig) ExactFitWindow() int {
	if len(d.Tiers) == 0 {
		return 0
	}
	return d.Tiers[0].MaxDiff
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: ScoreWeights{
			Mood:    40,
			Content: 30,
			Quality: 20,
		},
		Duration: DurationConfig{
			Tiers: []DurationTier{
				{MaxDiff: 20, Points: 10},
				{MaxDiff: 40, Points: 7},
				{MaxDiff: 60, Points: 4},
			},
			Slack:   60,
			Penalty: -5,
		},
		Vectorizer:  tfidf.DefaultConfig(),
		TopSimilar:  10,
		HighRating:  8.0,
		DefaultTopN: 5,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Mood < 0 {
		return fmt.Errorf("weights.mood must be non-negative, got %f", c.Weights.Mood)
	}
	if c.Weights.Content < 0 {
		return fmt.Errorf("weights.content must be non-negative, got %f", c.Weights.Content)
	}
	if c.Weights.Quality < 0 {
		return fmt.Errorf("weights.quality must be non-negative, got %f", c.Weights.Quality)
	}

	prev := -1
	for i, tier := range c.Duration.Tiers {
		if tier.MaxDiff <= prev {
			return fmt.Errorf("duration.tiers[%d].max_diff must increase, got %d after %d", i, tier.MaxDiff, prev)
		}
		if tier.Points < 0 {
			return fmt.Errorf("duration.tiers[%d].points must be non-negative, got %f", i, tier.Points)
		}
		prev = tier.MaxDiff
	}
	if c.Duration.Slack < 0 {
		return fmt.Errorf("duration.slack must be non-negative, got %d", c.Duration.Slack)
	}
	if c.Duration.Penalty > 0 {
		return fmt.Errorf("duration.penalty must not be positive, got %f", c.Duration.Penalty)
	}

	if c.Vectorizer.MaxFeatures < 0 {
		return fmt.Errorf("vectorizer.max_features must be non-negative, got %d", c.Vectorizer.MaxFeatures)
	}
	if c.Vectorizer.MinN < 1 || c.Vectorizer.MaxN < c.Vectorizer.MinN {
		return fmt.Errorf("vectorizer n-gram range invalid: [%d, %d]", c.Vectorizer.MinN, c.Vectorizer.MaxN)
	}

	if c.TopSimilar < 1 {
		return fmt.Errorf("top_similar must be positive, got %d", c.TopSimilar)
	}
	if c.DefaultTopN < 1 {
		return fmt.Errorf("default_top_n must be positive, got %d", c.DefaultTopN)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Duration.Tiers = make([]DurationTier, len(c.Duration.Tiers))
	copy(out.Duration.Tiers, c.Duration.Tiers)
	return &out
}
