// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/streampick/internal/recommend"
)

func TestBreakerSource_OpensAfterFailures(t *testing.T) {
	upstream := &countingSource{err: errors.New("boom")}
	cfg := DefaultBreakerConfig("test-breaker-open")
	cfg.MinRequests = 3
	cfg.Timeout = time.Hour
	breaker := NewBreakerSource(upstream, cfg)

	for i := 0; i < 3; i++ {
		if _, err := breaker.Movies(context.Background()); err == nil {
			t.Fatal("expected upstream error")
		}
	}
	if got := breaker.State(); got != "open" {
		t.Fatalf("State() = %q, want open", got)
	}

	_, err := breaker.Movies(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want ErrOpenState", err)
	}
	if got := upstream.calls.Load(); got != 3 {
		t.Errorf("upstream calls = %d, want 3 (open breaker must not call through)", got)
	}
}

func TestBreakerSource_PassesThrough(t *testing.T) {
	upstream := &countingSource{items: []recommend.CatalogItem{item("A")}}
	breaker := NewBreakerSource(upstream, DefaultBreakerConfig("test-breaker-ok"))

	items, err := breaker.Movies(context.Background())
	if err != nil || len(items) != 1 {
		t.Fatalf("Movies() = %v, %v", items, err)
	}
	if got := breaker.State(); got != "closed" {
		t.Errorf("State() = %q, want closed", got)
	}
}

func TestBreakerSource_CancellationIsNotFailure(t *testing.T) {
	upstream := &countingSource{err: context.Canceled}
	cfg := DefaultBreakerConfig("test-breaker-cancel")
	cfg.MinRequests = 2
	breaker := NewBreakerSource(upstream, cfg)

	for i := 0; i < 5; i++ {
		_, _ = breaker.Movies(context.Background())
	}
	if got := breaker.State(); got != "closed" {
		t.Errorf("State() = %q, want closed", got)
	}
}

func TestStateToString(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		str   string
		val   float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
	}
	for _, tt := range tests {
		if got := StateString(tt.state); got != tt.str {
			t.Errorf("StateString(%v) = %q, want %q", tt.state, got, tt.str)
		}
		if got := stateToFloat(tt.state); got != tt.val {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.val)
		}
	}
}
