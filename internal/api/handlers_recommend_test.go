// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/streampick/internal/catalog"
	"github.com/tomtom215/streampick/internal/config"
	"github.com/tomtom215/streampick/internal/metrics"
	"github.com/tomtom215/streampick/internal/models"
	"github.com/tomtom215/streampick/internal/recommend"
)

const twoMovieCatalog = `[
	{"title": "A", "runtime": 100, "rating": 9.0, "mood_tags": ["cozy"], "genre": ["Drama"]},
	{"title": "B", "runtime": 95, "rating": 6.0, "mood_tags": ["cozy"], "genre": ["Comedy"]}
]`

func recommendBody(moodInput string, timeAvailable, topN int, movies string) string {
	top := ""
	if topN > 0 {
		top = fmt.Sprintf(`, "top_n": %d`, topN)
	}
	return fmt.Sprintf(`{"mood": %q, "time_available": %d%s, "movies": %s}`, moodInput, timeAvailable, top, movies)
}

func TestRecommend_RanksSuppliedCatalog(t *testing.T) {
	router := newTestRouter(newTestHandler(t))

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend",
		recommendBody("Cozy & Warm", 100, 2, twoMovieCatalog))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp recommend.Response
	decodeData(t, env, &resp)

	if len(resp.Recommendations) != 2 {
		t.Fatalf("len(recommendations) = %d, want 2", len(resp.Recommendations))
	}
	first := resp.Recommendations[0]
	if first.Movie.Title != "A" || first.Rank != 1 || resp.Recommendations[1].Movie.Title != "B" {
		t.Errorf("ranking = %s, %s", first.Movie.Title, resp.Recommendations[1].Movie.Title)
	}
	if !strings.Contains(first.Reason, "Highly rated (9.0/10)") || !strings.Contains(first.Reason, "Runtime: 100 mins") {
		t.Errorf("reason = %q", first.Reason)
	}
	if resp.FiltersApplied.Mood != "cozy" || resp.FiltersApplied.TimeConstraintRelaxed {
		t.Errorf("filters = %+v", resp.FiltersApplied)
	}
	if resp.TotalCandidates != 2 {
		t.Errorf("total_candidates = %d", resp.TotalCandidates)
	}
	if resp.Metadata.RequestID == "" || resp.Metadata.RequestID != env.Metadata.RequestID {
		t.Errorf("engine request id %q should match envelope %q", resp.Metadata.RequestID, env.Metadata.RequestID)
	}
}

func TestRecommend_TrimsMoodAndDefaultsTopN(t *testing.T) {
	movies := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		movies = append(movies, fmt.Sprintf(`{"title": "Movie %d", "runtime": %d, "mood_tags": ["laugh"]}`, i, 90+i))
	}
	router := newTestRouter(newTestHandler(t))

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend",
		recommendBody("  Need Laughs \t", 95, 0, "["+strings.Join(movies, ",")+"]"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp recommend.Response
	decodeData(t, env, &resp)
	if len(resp.Recommendations) != 5 {
		t.Errorf("default top_n should return 5, got %d", len(resp.Recommendations))
	}
	if resp.FiltersApplied.Mood != "laugh" {
		t.Errorf("mood = %q", resp.FiltersApplied.Mood)
	}
}

func TestRecommend_AppliesRecordDefaults(t *testing.T) {
	router := newTestRouter(newTestHandler(t))

	movies := `[{"title": "Zeroes", "year": 0, "runtime": 0, "rating": 0, "mood_tags": ["chill"]}]`
	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", recommendBody("chill", 120, 1, movies))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp recommend.Response
	decodeData(t, env, &resp)
	m := resp.Recommendations[0].Movie
	if *m.Year != 2020 || *m.Runtime != 120 || *m.Rating != 7.0 {
		t.Errorf("defaults = year %d runtime %d rating %v", *m.Year, *m.Runtime, *m.Rating)
	}
	if m.Genres == nil || m.Platforms == nil {
		t.Error("absent lists should serialize as empty lists")
	}
}

func TestRecommend_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{"malformed json", `{"mood": "cozy",`, http.StatusBadRequest, ErrCodeInvalidJSON, ""},
		{"empty body", ``, http.StatusBadRequest, ErrCodeInvalidJSON, ""},
		{"blank mood", recommendBody("   ", 100, 2, twoMovieCatalog), http.StatusBadRequest, ErrCodeValidation, "mood"},
		{"time too small", recommendBody("cozy", 0, 2, twoMovieCatalog), http.StatusBadRequest, ErrCodeValidation, "time_available"},
		{"time too large", recommendBody("cozy", 501, 2, twoMovieCatalog), http.StatusBadRequest, ErrCodeValidation, "time_available"},
		{"top_n too large", recommendBody("cozy", 100, 11, twoMovieCatalog), http.StatusBadRequest, ErrCodeValidation, "top_n"},
		{"movies missing", `{"mood": "cozy", "time_available": 100}`, http.StatusBadRequest, ErrCodeValidation, "movies"},
		{"untitled movie", recommendBody("cozy", 100, 2, `[{"title": "A"}, {"runtime": 90}]`), http.StatusBadRequest, ErrCodeValidation, "movies[1].title"},
		{"rating out of range", recommendBody("cozy", 100, 2, `[{"title": "A", "rating": 11}]`), http.StatusBadRequest, ErrCodeValidation, "movies[0].rating"},
		{"unknown mood", recommendBody("sad", 100, 2, twoMovieCatalog), http.StatusBadRequest, ErrCodeInvalidMood, ""},
		{"no candidates", recommendBody("Edge of Seat", 100, 2, twoMovieCatalog), http.StatusBadRequest, ErrCodeNoCandidates, ""},
		{"empty catalog", recommendBody("cozy", 100, 2, `[]`), http.StatusBadRequest, ErrCodeNoCandidates, ""},
	}

	router := newTestRouter(newTestHandler(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Status != "error" || env.Error == nil || env.Error.Code != tt.wantCode {
				t.Fatalf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
			if tt.wantField != "" && env.Error.Details["field"] != tt.wantField {
				t.Errorf("field = %v, want %s", env.Error.Details["field"], tt.wantField)
			}
		})
	}
}

func TestRecommend_InvalidMoodDetails(t *testing.T) {
	router := newTestRouter(newTestHandler(t))

	_, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", recommendBody("melancholy", 100, 2, twoMovieCatalog))
	if env.Error == nil || env.Error.Code != ErrCodeInvalidMood {
		t.Fatalf("error = %+v", env.Error)
	}
	if env.Error.Details["input"] != "melancholy" {
		t.Errorf("input = %v", env.Error.Details["input"])
	}
	valid, ok := env.Error.Details["valid_moods"].([]interface{})
	if !ok || len(valid) != 6 || valid[0] != "Cozy & Warm" {
		t.Errorf("valid_moods = %v", env.Error.Details["valid_moods"])
	}
	if !strings.Contains(env.Error.Message, "melancholy") {
		t.Errorf("message = %q", env.Error.Message)
	}
}

func TestRecommend_NoCandidatesDetails(t *testing.T) {
	router := newTestRouter(newTestHandler(t))

	_, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", recommendBody("Edge of Seat", 100, 2, twoMovieCatalog))
	if env.Error == nil || env.Error.Code != ErrCodeNoCandidates {
		t.Fatalf("error = %+v", env.Error)
	}
	if env.Error.Details["mood"] != "thrilling" {
		t.Errorf("mood = %v", env.Error.Details["mood"])
	}
	if !strings.Contains(env.Error.Message, "Edge of Seat") {
		t.Errorf("message should name the input: %q", env.Error.Message)
	}
}

func TestRecommend_ConfiguredLimits(t *testing.T) {
	h := newTestHandler(t, withConfig(func(c *config.Config) {
		c.Recommend.MaxTopN = 3
		c.Recommend.DefaultTopN = 3
		c.Recommend.MaxTimeAvailable = 200
		c.Recommend.MaxCatalogSize = 1
	}))
	router := newTestRouter(h)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"top_n above configured max", recommendBody("cozy", 100, 4, twoMovieCatalog), "top_n"},
		{"time above configured max", recommendBody("cozy", 300, 2, twoMovieCatalog), "time_available"},
		{"catalog above configured max", recommendBody("cozy", 100, 2, twoMovieCatalog), "movies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", tt.body)
			if rec.Code != http.StatusBadRequest || env.Error.Code != ErrCodeValidation {
				t.Fatalf("got %d %+v", rec.Code, env.Error)
			}
			if env.Error.Details["field"] != tt.wantField {
				t.Errorf("field = %v, want %s", env.Error.Details["field"], tt.wantField)
			}
		})
	}
}

func TestRecommend_RecordsMetrics(t *testing.T) {
	router := newTestRouter(newTestHandler(t))
	success := metrics.RecommendationRequests.WithLabelValues("cozy", metrics.OutcomeSuccess)
	invalid := metrics.RecommendationRequests.WithLabelValues("unknown", metrics.OutcomeInvalidMood)
	noCand := metrics.RecommendationRequests.WithLabelValues("thrilling", metrics.OutcomeNoCandidates)

	beforeSuccess := testutil.ToFloat64(success)
	beforeInvalid := testutil.ToFloat64(invalid)
	beforeNoCand := testutil.ToFloat64(noCand)

	doRequest(t, router, http.MethodPost, "/api/v1/recommend", recommendBody("cozy", 100, 2, twoMovieCatalog))
	doRequest(t, router, http.MethodPost, "/api/v1/recommend", recommendBody("nope", 100, 2, twoMovieCatalog))
	doRequest(t, router, http.MethodPost, "/api/v1/recommend", recommendBody("thrilling", 100, 2, twoMovieCatalog))

	if got := testutil.ToFloat64(success) - beforeSuccess; got != 1 {
		t.Errorf("success delta = %v", got)
	}
	if got := testutil.ToFloat64(invalid) - beforeInvalid; got != 1 {
		t.Errorf("invalid_mood delta = %v", got)
	}
	if got := testutil.ToFloat64(noCand) - beforeNoCand; got != 1 {
		t.Errorf("no_candidates delta = %v", got)
	}
}

func TestRecommend_TimeRelaxedMetric(t *testing.T) {
	router := newTestRouter(newTestHandler(t))
	relaxed := metrics.RecommendationTimeRelaxed.WithLabelValues("deep")
	before := testutil.ToFloat64(relaxed)

	movies := `[{"title": "Long One", "runtime": 200, "mood_tags": ["deep"]}, {"title": "Long Two", "runtime": 210, "mood_tags": ["deep"]}]`
	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/recommend", recommendBody("Make Me Think", 60, 2, movies))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp recommend.Response
	decodeData(t, env, &resp)
	if !resp.FiltersApplied.TimeConstraintRelaxed {
		t.Error("expected relaxed time constraint")
	}
	if got := testutil.ToFloat64(relaxed) - before; got != 1 {
		t.Errorf("relaxed delta = %v", got)
	}
}

func TestRecommendations_UsesCatalogSource(t *testing.T) {
	router := newTestRouter(newTestHandler(t, withSource(catalog.NewStaticSource(testCatalog()))))

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/recommendations",
		`{"mood": "cozy", "time_available": 120, "user_id": "user-7"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.SourcedRecommendations
	decodeData(t, env, &resp)
	if resp.Source != SourceML {
		t.Errorf("source = %q, want %q", resp.Source, SourceML)
	}
	if resp.Response == nil || len(resp.Recommendations) != 2 {
		t.Fatalf("response = %+v", resp.Response)
	}
	for _, r := range resp.Recommendations {
		if r.Movie.Title == "Heat" {
			t.Error("thrilling movie returned for cozy mood")
		}
	}
	if resp.Metadata.UserID != "user-7" || resp.Metadata.CatalogSize != 3 {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
}

func TestRecommendations_Errors(t *testing.T) {
	tests := []struct {
		name       string
		source     catalog.Source
		body       string
		wantStatus int
		wantCode   string
	}{
		{"disabled source", catalog.DisabledSource{}, `{"mood": "cozy", "time_available": 90}`, http.StatusServiceUnavailable, ErrCodeCatalogUnavailable},
		{"failing source", &failingSource{err: errors.New("boom")}, `{"mood": "cozy", "time_available": 90}`, http.StatusBadGateway, ErrCodeCatalogError},
		{"invalid mood", &failingSource{err: errors.New("boom")}, `{"mood": "grumpy", "time_available": 90}`, http.StatusBadRequest, ErrCodeInvalidMood},
		{"validation", catalog.DisabledSource{}, `{"mood": "cozy", "time_available": 0}`, http.StatusBadRequest, ErrCodeValidation},
		{"malformed", catalog.DisabledSource{}, `nope`, http.StatusBadRequest, ErrCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(newTestHandler(t, withSource(tt.source)))
			rec, env := doRequest(t, router, http.MethodPost, "/api/v1/recommendations", tt.body)
			if rec.Code != tt.wantStatus || env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("got %d %+v, want %d %s", rec.Code, env.Error, tt.wantStatus, tt.wantCode)
			}
		})
	}
}

func TestRecommendations_InvalidMoodSkipsSource(t *testing.T) {
	src := &failingSource{err: errors.New("boom")}
	router := newTestRouter(newTestHandler(t, withSource(src)))

	doRequest(t, router, http.MethodPost, "/api/v1/recommendations", `{"mood": "grumpy", "time_available": 90}`)
	if got := src.calls.Load(); got != 0 {
		t.Errorf("catalog source called %d times for an unknown mood", got)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"wrapped disabled", &catalogError{err: catalog.ErrSourceDisabled}, http.StatusServiceUnavailable, ErrCodeCatalogUnavailable},
		{"catalog failure", &catalogError{err: errors.New("503 from upstream")}, http.StatusBadGateway, ErrCodeCatalogError},
		{"no candidates", fmt.Errorf("rank: %w", &recommend.NoCandidatesError{Input: "x", Mood: "cozy"}), http.StatusBadRequest, ErrCodeNoCandidates},
		{"unknown", errors.New("unexpected"), http.StatusInternalServerError, ErrCodeRecommendation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := classifyError(tt.err)
			if f.status != tt.wantStatus || f.code != tt.wantCode {
				t.Errorf("classifyError() = %d %s, want %d %s", f.status, f.code, tt.wantStatus, tt.wantCode)
			}
		})
	}
}
