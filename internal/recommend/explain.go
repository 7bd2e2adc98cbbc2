// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/streampick/internal/mood"
)

const (
	clauseSeparator = " • "
	maxReasonGenres = 2
)

// Explain builds the human-readable reason for one result. The AI
// description, when present, leads; the clauses follow it.
func Explain(cfg *Config, item *CatalogItem, m mood.Mood, timeAvailable int, relaxed bool) string {
	var clauses []string

	if item.HasMood(m.String()) {
		clauses = append(clauses, fmt.Sprintf("Perfect match for your '%s' mood", m))
	}

	if item.Rating != nil && *item.Rating >= cfg.HighRating {
		clauses = append(clauses, fmt.Sprintf("Highly rated (%s/10)", formatRating(*item.Rating)))
	}

	if item.Runtime != nil {
		rt := *item.Runtime
		diff := rt - timeAvailable
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff <= cfg.Duration.ExactFitWindow():
			clauses = append(clauses, fmt.Sprintf("Runtime: %d mins", rt))
		case relaxed:
			clauses = append(clauses, fmt.Sprintf("Runtime: %d mins (longer than requested, but worth it!)", rt))
		}
	}

	if len(item.Genres) > 0 {
		genres := item.Genres
		if len(genres) > maxReasonGenres {
			genres = genres[:maxReasonGenres]
		}
		clauses = append(clauses, "Great "+strings.Join(genres, ", "))
	}

	reason := strings.Join(clauses, clauseSeparator)
	if item.AIDescription == "" {
		return reason
	}
	if reason == "" {
		return item.AIDescription
	}
	return item.AIDescription + " " + reason
}

// formatRating prints a rating with at least one decimal: 9 -> "9.0", 8.5 -> "8.5".
func formatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
