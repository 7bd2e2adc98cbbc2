// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package recommend

import (
	"github.com/tomtom215/streampick/internal/mood"
)

// FilterResult is the outcome of candidate filtering. Candidates are
// positions in the request catalog, in catalog order.
type FilterResult struct {
	Candidates     []int
	TotalAfterMood int
	StrictCount    int
	Relaxed        bool
}

// Filter selects the items eligible for scoring.
//
// Items must carry the mood tag (case-insensitive); none at all is a
// *NoCandidatesError. Among those, items whose runtime is at most
// timeAvailable+slack form the strict set. Items with no runtime stay in the
// strict set. When the strict set holds fewer than topN items the runtime
// window is dropped and Relaxed is set.
func Filter(items []CatalogItem, m mood.Mood, timeAvailable, topN, slack int) (FilterResult, error) {
	matched := make([]int, 0, len(items))
	for i := range items {
		if items[i].HasMood(m.String()) {
			matched = append(matched, i)
		}
	}

	if len(matched) == 0 {
		return FilterResult{}, &NoCandidatesError{
			Input:       m.String(),
			Mood:        m.String(),
			ValidLabels: mood.UILabels(),
		}
	}

	limit := timeAvailable + slack
	strict := make([]int, 0, len(matched))
	for _, idx := range matched {
		rt := items[idx].Runtime
		if rt == nil || *rt <= limit {
			strict = append(strict, idx)
		}
	}

	result := FilterResult{
		TotalAfterMood: len(matched),
		StrictCount:    len(strict),
	}
	if len(strict) < topN {
		result.Candidates = matched
		result.Relaxed = true
	} else {
		result.Candidates = strict
	}
	return result, nil
}
