// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/streampick/internal/mood"
	"github.com/tomtom215/streampick/internal/recommend/tfidf"
)

// Engine ranks request catalogs. It holds only immutable configuration and
// a logger, and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	requestCount atomic.Int64
	errorCount   atomic.Int64
	relaxedCount atomic.Int64
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend ranks items for the request. Items are indexed by position;
// the same slice order is used for vectorizing, filtering, and scoring.
//
// Errors wrap mood.ErrUnrecognizedMood, ErrNoCandidatesForMood, or
// tfidf.ErrUntrainedModel. No partial result is returned on failure.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request, items []CatalogItem) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)
	logger.Info().Int("catalog_size", len(items)).Msg("received catalog")

	resp, err := e.recommend(ctx, req, items, start, logger)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	return resp, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommend(ctx context.Context, req Request, items []CatalogItem, start time.Time, logger zerolog.Logger) (*Response, error) {
	m, err := mood.Normalize(req.Mood)
	if err != nil {
		logger.Debug().Err(err).Msg("mood not recognized")
		return nil, err
	}
	logger.Info().Str("input", req.Mood).Str("mood", m.String()).Msg("mapped mood")

	filtered, err := Filter(items, m, req.TimeAvailable, req.TopN, e.config.Duration.Slack)
	if err != nil {
		var ncErr *NoCandidatesError
		if errors.As(err, &ncErr) {
			ncErr.Input = req.Mood
		}
		logger.Info().Str("mood", m.String()).Msg("no catalog items carry mood")
		return nil, err
	}

	if filtered.Relaxed {
		e.relaxedCount.Add(1)
		logger.Warn().
			Int("strict", filtered.StrictCount).
			Int("candidates", filtered.TotalAfterMood).
			Msg("too few movies fit the time window, using all mood matches")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	space, err := tfidf.Fit(BuildDocuments(items), e.config.Vectorizer)
	if err != nil {
		return nil, fmt.Errorf("fit catalog: %w", err)
	}
	logger.Debug().
		Int("documents", space.Len()).
		Int("vocabulary", space.VocabularySize()).
		Msg("catalog vectorized")

	scored, err := e.scoreCandidates(filtered.Candidates, items, space, m, req.TimeAvailable)
	if err != nil {
		return nil, err
	}

	ranked := Rank(scored, req.TopN)
	recs := e.buildRecommendations(ranked, items, m, req.TimeAvailable, filtered.Relaxed, logger)

	resp := &Response{
		Recommendations: recs,
		TotalCandidates: filtered.TotalAfterMood,
		FiltersApplied: FiltersApplied{
			Mood:                  m.String(),
			TimeAvailable:         req.TimeAvailable,
			TimeConstraintRelaxed: filtered.Relaxed,
		},
		Metadata: ResponseMetadata{
			RequestID:      req.RequestID,
			UserID:         req.UserID,
			CatalogSize:    len(items),
			CandidateCount: len(filtered.Candidates),
			VocabularySize: space.VocabularySize(),
			LatencyMS:      time.Since(start).Milliseconds(),
			Timestamp:      time.Now().UTC(),
		},
	}

	logger.Info().
		Int("candidates", len(filtered.Candidates)).
		Int("returned", len(recs)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.TopN <= 0 {
		req.TopN = e.config.DefaultTopN
	}
	return req
}

//nolint:gocritic // hugeParam: req passed by value for simplicity
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("time_available", req.TimeAvailable).
		Int("top_n", req.TopN).
		Logger()
}

func (e *Engine) scoreCandidates(candidates []int, items []CatalogItem, space *tfidf.Space, m mood.Mood, timeAvailable int) ([]ScoredCandidate, error) {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, idx := range candidates {
		b, err := Score(e.config, &items[idx], idx, space, m, timeAvailable)
		if err != nil {
			return nil, fmt.Errorf("score candidates: %w", err)
		}
		scored = append(scored, ScoredCandidate{
			Index:     idx,
			Score:     b.Total(),
			Breakdown: b,
		})
	}
	return scored, nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) buildRecommendations(ranked []ScoredCandidate, items []CatalogItem, m mood.Mood, timeAvailable int, relaxed bool, logger zerolog.Logger) []Recommendation {
	recs := make([]Recommendation, 0, len(ranked))
	for _, sc := range ranked {
		item := &items[sc.Index]
		recs = append(recs, Recommendation{
			Movie:           *item,
			SimilarityScore: sc.Score,
			MatchScore:      roundTo(sc.Score, 1),
			Reason:          Explain(e.config, item, m, timeAvailable, relaxed),
			Rank:            sc.Rank,
			Breakdown:       sc.Breakdown,
		})

		logger.Debug().
			Int("rank", sc.Rank).
			Str("title", item.Title).
			Float64("score", sc.Score).
			Msg("ranked movie")
	}
	return recs
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
		RelaxedCount: e.relaxedCount.Load(),
	}
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
