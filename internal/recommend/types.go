// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package recommend

import (
	"strings"
	"time"
)

// CatalogItem is one movie in the catalog supplied with a request.
// Numeric fields are pointers so an absent value is distinguishable from zero.
type CatalogItem struct {
	// UID is the upstream CMS identifier, when known. Informational only.
	UID string `json:"uid,omitempty"`

	// Title is the display title and the practical key of the item.
	Title string `json:"title"`

	// Year is the release year.
	Year *int `json:"year,omitempty"`

	// Runtime is the running time in minutes.
	Runtime *int `json:"runtime,omitempty"`

	// Rating is the 0-10 quality rating.
	Rating *float64 `json:"rating,omitempty"`

	// Genres are the ordered category tags.
	Genres []string `json:"genre"`

	// MoodTags are free-form mood tags.
	MoodTags []string `json:"mood_tags"`

	// Platforms lists where the movie can be streamed.
	Platforms []string `json:"platforms"`

	// Description is the plain description.
	Description string `json:"description"`

	// AIDescription is the extended, generated description.
	AIDescription string `json:"ai_description"`

	// ImageURL references the poster image.
	ImageURL string `json:"image_url,omitempty"`
}

// HasMood reports whether any mood tag equals m, ignoring case.
func (c *CatalogItem) HasMood(m string) bool {
	for _, tag := range c.MoodTags {
		if strings.EqualFold(tag, m) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the item. Pointer fields and tag slices are
// not shared with the receiver.
func (c *CatalogItem) Clone() CatalogItem {
	out := *c
	if c.Year != nil {
		v := *c.Year
		out.Year = &v
	}
	if c.Runtime != nil {
		v := *c.Runtime
		out.Runtime = &v
	}
	if c.Rating != nil {
		v := *c.Rating
		out.Rating = &v
	}
	out.Genres = cloneStrings(c.Genres)
	out.MoodTags = cloneStrings(c.MoodTags)
	out.Platforms = cloneStrings(c.Platforms)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Request holds the parameters of one recommendation call.
// Ranges are checked at the boundary; the engine assumes valid input.
type Request struct {
	// Mood is free-form mood text such as "Edge of Seat" or "thrilling".
	Mood string `json:"mood"`

	// TimeAvailable is the viewing time in minutes (1-500).
	TimeAvailable int `json:"time_available"`

	// TopN is the number of results wanted (1-10). Zero uses the configured default.
	TopN int `json:"top_n,omitempty"`

	// UserID is forwarded to the response metadata and never used for scoring.
	UserID string `json:"user_id,omitempty"`

	// RequestID is for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Breakdown is the per-component detail of a composite score.
type Breakdown struct {
	Mood     float64 `json:"mood"`
	Content  float64 `json:"content"`
	Quality  float64 `json:"quality"`
	Duration float64 `json:"duration"`
}

// Total returns the composite score.
func (b Breakdown) Total() float64 {
	return b.Mood + b.Content + b.Quality + b.Duration
}

// ScoredCandidate ties a composite score to an item by its position in the
// request catalog.
type ScoredCandidate struct {
	// Index is the position of the item in the request catalog.
	Index int `json:"index"`

	// Score is the composite score.
	Score float64 `json:"score"`

	// Breakdown holds the individual components.
	Breakdown Breakdown `json:"breakdown"`

	// Rank is the 1-based position after ranking. Zero before ranking.
	Rank int `json:"rank"`
}

// Recommendation is one ranked result.
type Recommendation struct {
	// Movie is a snapshot of the catalog item.
	Movie CatalogItem `json:"movie"`

	// SimilarityScore is the raw composite score.
	SimilarityScore float64 `json:"similarity_score"`

	// MatchScore is the composite score rounded to one decimal.
	MatchScore float64 `json:"match_score"`

	// Reason is the human-readable justification.
	Reason string `json:"reason"`

	// Rank is the 1-based result position.
	Rank int `json:"rank"`

	// Breakdown holds the individual score components.
	Breakdown Breakdown `json:"score_breakdown"`
}

// FiltersApplied reports which filters shaped the result.
type FiltersApplied struct {
	// Mood is the canonical mood the catalog was filtered by.
	Mood string `json:"mood"`

	// TimeAvailable echoes the requested minutes.
	TimeAvailable int `json:"time_available"`

	// TimeConstraintRelaxed is true when the runtime window was dropped
	// to return enough results.
	TimeConstraintRelaxed bool `json:"time_constraint_relaxed"`
}

// Response is the ranked result of one call.
type Response struct {
	// Recommendations are ordered best first.
	Recommendations []Recommendation `json:"recommendations"`

	// TotalCandidates is the number of items that passed the mood filter.
	TotalCandidates int `json:"total_candidates"`

	// FiltersApplied describes the applied filters.
	FiltersApplied FiltersApplied `json:"filters_applied"`

	// Metadata contains request tracing and timing.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains tracing and diagnostic information.
type ResponseMetadata struct {
	RequestID      string    `json:"request_id"`
	UserID         string    `json:"user_id,omitempty"`
	CatalogSize    int       `json:"catalog_size"`
	CandidateCount int       `json:"candidate_count"`
	VocabularySize int       `json:"vocabulary_size"`
	LatencyMS      int64     `json:"latency_ms"`
	Timestamp      time.Time `json:"timestamp"`
}

// Metrics contains engine counters for observability.
type Metrics struct {
	// RequestCount is the total number of Recommend calls.
	RequestCount int64 `json:"request_count"`

	// ErrorCount is the number of calls that failed.
	ErrorCount int64 `json:"error_count"`

	// RelaxedCount is the number of calls where the runtime window was relaxed.
	RelaxedCount int64 `json:"relaxed_count"`
}
