// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/metrics"
	"github.com/tomtom215/streampick/internal/recommend"
)

// BreakerConfig tunes the circuit breaker around a Source.
type BreakerConfig struct {
	Name         string
	MaxRequests  uint32        // concurrent trial requests in half-open state
	Interval     time.Duration // count reset period while closed
	Timeout      time.Duration // open -> half-open delay
	MinRequests  uint32        // requests needed before the ratio is considered
	FailureRatio float64       // trip threshold
}

// DefaultBreakerConfig opens after 60% failures over at least 10 requests
// and lets trial requests through again after 2 minutes.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:         name,
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// BreakerSource wraps a Source with a circuit breaker.
type BreakerSource struct {
	source Source
	cb     *gobreaker.CircuitBreaker[[]recommend.CatalogItem]
	name   string
}

// NewCircuitBreaker builds a breaker with the shared trip policy, state
// metrics and transition logging. Contentstack clients of any payload type
// use it so every upstream breaker reports under the same series.
func NewCircuitBreaker[T any](cfg BreakerConfig) *gobreaker.CircuitBreaker[T] {
	name := cfg.Name
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	logger := logging.WithComponent("circuit-breaker")

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logger.Warn().
					Str("name", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := StateString(from)
			toStr := StateString(to)
			logger.Info().Str("name", name).Str("from", fromStr).Str("to", toStr).Msg("State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// A caller giving up is not an upstream failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
}

// RecordBreakerResult updates the request counters after one call through
// the named breaker and reports whether err was a breaker rejection.
func RecordBreakerResult(name string, counts gobreaker.Counts, err error) (rejected bool) {
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
		return false
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected").Inc()
		return true
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(float64(counts.ConsecutiveFailures))
		return false
	}
}

// NewBreakerSource wraps source with the given breaker settings.
func NewBreakerSource(source Source, cfg BreakerConfig) *BreakerSource {
	return &BreakerSource{
		source: source,
		cb:     NewCircuitBreaker[[]recommend.CatalogItem](cfg),
		name:   cfg.Name,
	}
}

// Movies implements Source.
func (b *BreakerSource) Movies(ctx context.Context) ([]recommend.CatalogItem, error) {
	items, err := b.cb.Execute(func() ([]recommend.CatalogItem, error) {
		return b.source.Movies(ctx)
	})
	if RecordBreakerResult(b.name, b.cb.Counts(), err) {
		return nil, fmt.Errorf("catalog source %s unavailable: %w", b.name, err)
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

// State returns the breaker state as a string.
func (b *BreakerSource) State() string {
	return StateString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// StateString converts circuit breaker state to string for logging and
// health output.
func StateString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
