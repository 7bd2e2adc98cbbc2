// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/streampick/internal/config"
)

func testClient(t *testing.T, serverURL string) *ContentstackClient {
	t.Helper()
	c := NewContentstackClient(&config.ContentstackConfig{
		Host:              serverURL,
		APIKey:            "blt_api_key",
		DeliveryToken:     "cs_delivery_token",
		Environment:       "production",
		ContentType:       "movie",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
		MaxRetries:        2,
	})
	c.retryBaseDelay = time.Millisecond
	return c
}

func TestContentstackClient_Movies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/content_types/movie/entries" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("api_key"); got != "blt_api_key" {
			t.Errorf("api_key header = %q", got)
		}
		if got := r.Header.Get("access_token"); got != "cs_delivery_token" {
			t.Errorf("access_token header = %q", got)
		}
		q := r.URL.Query()
		if q.Get("environment") != "production" || q.Get("include[]") != "image" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"entries": [
			{"uid": "1", "title": "Paddington 2", "runtime": 104, "rating": 7.8, "mood_tags": ["cozy"],
			 "image": {"url": "https://images.example.com/p2.jpg"}},
			{"uid": "2", "title": "", "mood_tags": ["cozy"]},
			{"uid": "3", "title": "Heat", "runtime": "long"},
			{"uid": "4", "title": "Up", "mood_tags": ["cozy", "escape"]}
		], "count": 4}`)
	}))
	defer server.Close()

	items, err := testClient(t, server.URL).Movies(context.Background())
	if err != nil {
		t.Fatalf("Movies() error = %v", err)
	}

	// Untitled and undecodable entries are skipped.
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2: %+v", len(items), items)
	}
	if items[0].Title != "Paddington 2" || items[0].ImageURL != "https://images.example.com/p2.jpg" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Title != "Up" || *items[1].Runtime != DefaultRuntime || *items[1].Rating != DefaultRating {
		t.Errorf("items[1] should carry defaults: %+v", items[1])
	}
}

func TestContentstackClient_Pagination(t *testing.T) {
	const total = 230
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		entries := make([]string, 0, limit)
		for i := skip; i < skip+limit && i < total; i++ {
			entries = append(entries, fmt.Sprintf(`{"uid":"%d","title":"Movie %d"}`, i, i))
		}
		fmt.Fprintf(w, `{"entries":[%s],"count":%d}`, strings.Join(entries, ","), total)
	}))
	defer server.Close()

	items, err := testClient(t, server.URL).Movies(context.Background())
	if err != nil {
		t.Fatalf("Movies() error = %v", err)
	}
	if len(items) != total {
		t.Errorf("len(items) = %d, want %d", len(items), total)
	}
	if got := requests.Load(); got != 3 {
		t.Errorf("requests = %d, want 3", got)
	}
	if items[total-1].Title != fmt.Sprintf("Movie %d", total-1) {
		t.Errorf("last item = %q", items[total-1].Title)
	}
}

func TestContentstackClient_RetriesOn429(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"entries":[{"title":"Amelie","mood_tags":["cozy"]}]}`)
	}))
	defer server.Close()

	items, err := testClient(t, server.URL).Movies(context.Background())
	if err != nil {
		t.Fatalf("Movies() error = %v", err)
	}
	if len(items) != 1 || calls.Load() != 3 {
		t.Errorf("items = %d, calls = %d; want 1, 3", len(items), calls.Load())
	}
}

func TestContentstackClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).Movies(context.Background())
	if err == nil || !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Fatalf("error = %v, want rate limit exceeded", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3 (1 + 2 retries)", got)
	}
}

func TestContentstackClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error_message":"Access denied"}`)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).Movies(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "Access denied") {
		t.Errorf("error = %v, want status and body", err)
	}
}

func TestContentstackClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"entries": [`)
	}))
	defer server.Close()

	if _, err := testClient(t, server.URL).Movies(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestContentstackClient_ContextCancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := testClient(t, server.URL).Movies(ctx)
	if err == nil {
		t.Fatal("expected context error")
	}
	if time.Since(start) > 5*time.Second {
		t.Error("backoff wait ignored context cancellation")
	}
}

func TestReadBodyForError_Truncates(t *testing.T) {
	body := ReadBodyForError(strings.NewReader(strings.Repeat("x", maxErrorBodySize+10)))
	if !strings.HasSuffix(string(body), "(truncated)") {
		t.Error("expected truncation marker")
	}
}
