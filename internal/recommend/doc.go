// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

// Package recommend ranks a caller-supplied movie catalog against a mood and
// an amount of available time.
//
// # Pipeline
//
// Every call runs the same one-way pipeline over the catalog it was given:
//
//   - Mood normalization: free-form text to one of six canonical moods (package mood)
//   - Candidate filtering: hard mood-tag filter, then a soft runtime window
//     that is relaxed when it would leave fewer than N results
//   - Vectorization: TF-IDF over the whole catalog plus a cosine matrix (package tfidf)
//   - Scoring: mood bonus + content similarity + quality + duration fit
//   - Ranking: stable descending sort, truncated to N
//   - Explanation: a short human-readable reason per result
//
// # Score Components
//
//	Mood match    flat 40 when the mood is among the item's tags
//	Content       mean of the 10 largest similarities in the item's row × 30
//	Quality       rating / 10 × 20
//	Duration fit  10 / 7 / 4 by distance from the requested time,
//	              −5 when the runtime exceeds the time by more than 60 minutes
//
// Composite scores therefore fall in [−5, 100].
//
// # Statelessness
//
// The Engine holds only immutable configuration and a logger. The embedding
// space is rebuilt for every call and discarded afterwards, so concurrent
// calls never share vectorizer or matrix state.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Mood:          "Cozy & Warm",
//	    TimeAvailable: 100,
//	    TopN:          5,
//	}, items)
package recommend
