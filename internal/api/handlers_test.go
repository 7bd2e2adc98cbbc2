// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/streampick/internal/catalog"
	"github.com/tomtom215/streampick/internal/config"
	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/models"
	"github.com/tomtom215/streampick/internal/recommend"
)

// envelope mirrors models.APIResponse with a raw data field.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

type handlerOption func(*HandlerDeps)

func withSource(src catalog.Source) handlerOption {
	return func(d *HandlerDeps) { d.Source = src }
}

func withConfig(mutate func(*config.Config)) handlerOption {
	return func(d *HandlerDeps) { mutate(d.Config) }
}

func newTestHandler(t *testing.T, opts ...handlerOption) *Handler {
	t.Helper()

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	deps := HandlerDeps{
		Config:  config.Default(),
		Engine:  engine,
		Version: "test",
	}
	for _, opt := range opts {
		opt(&deps)
	}

	h, err := NewHandler(deps)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func newTestRouter(h *Handler) http.Handler {
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitDisabled = true
	return NewRouter(h, NewChiMiddleware(mw)).SetupChi()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: response is not an API envelope: %v\n%s", method, path, err, rec.Body.String())
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v\n%s", err, env.Data)
	}
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func testCatalog() []recommend.CatalogItem {
	return catalog.ToItems([]catalog.Record{
		{Title: "Paddington 2", MoodTags: []string{"cozy"}, Genre: []string{"Family"}, Description: "A bear in London"},
		{Title: "Heat", MoodTags: []string{"Thrilling"}, Genre: []string{"Crime"}, Description: "A heist in Los Angeles"},
		{Title: "Amelie", MoodTags: []string{"cozy", "escape"}, Genre: []string{"Romance"}, Description: "A whimsical waitress in Paris"},
	})
}

func TestNewHandler_RequiresDependencies(t *testing.T) {
	if _, err := NewHandler(HandlerDeps{}); err == nil {
		t.Error("expected error without config")
	}
	if _, err := NewHandler(HandlerDeps{Config: config.Default()}); err == nil {
		t.Error("expected error without engine")
	}

	h := newTestHandler(t)
	if h.catalogEnabled() {
		t.Error("nil source should be treated as disabled")
	}
	if h.version != "test" {
		t.Errorf("version = %q", h.version)
	}
}

func TestRoot(t *testing.T) {
	rec, env := doRequest(t, newTestRouter(newTestHandler(t)), http.MethodGet, "/", "")
	if rec.Code != http.StatusOK || env.Status != "success" {
		t.Fatalf("GET / = %d %s", rec.Code, env.Status)
	}

	var info models.ServiceInfo
	decodeData(t, env, &info)
	if info.Service != ServiceName || info.Status != "running" || info.Version != "test" {
		t.Errorf("info = %+v", info)
	}
}

func TestMoods(t *testing.T) {
	rec, env := doRequest(t, newTestRouter(newTestHandler(t)), http.MethodGet, "/api/v1/moods", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var info models.MoodsInfo
	decodeData(t, env, &info)
	if len(info.UILabels) != 6 || len(info.BackendTags) != 6 || len(info.Examples) != 6 {
		t.Errorf("taxonomy sizes = %d/%d/%d, want 6/6/6", len(info.UILabels), len(info.BackendTags), len(info.Examples))
	}
	if info.BackendTags[0] != "cozy" || info.Examples[1].Label != "Edge of Seat" {
		t.Errorf("unexpected ordering: %v %+v", info.BackendTags, info.Examples[1])
	}
	if len(info.AllValidInputs) <= len(info.BackendTags) {
		t.Errorf("all_valid_inputs should include aliases, got %d", len(info.AllValidInputs))
	}
}

func TestRequestIDEchoedInMetadata(t *testing.T) {
	router := newTestRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil)
	req.Header.Set("X-Request-ID", "req-abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if rec.Header().Get("X-Request-ID") != "req-abc-123" || env.Metadata.RequestID != "req-abc-123" {
		t.Errorf("header = %q, metadata = %q", rec.Header().Get("X-Request-ID"), env.Metadata.RequestID)
	}
	if rec.Header().Get("Content-Type") != "application/json" || rec.Header().Get("ETag") == "" {
		t.Errorf("headers = %v", rec.Header())
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	router := newTestRouter(newTestHandler(t))

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/nope", "")
	if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("404 response = %d %+v", rec.Code, env.Error)
	}

	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/recommend", "")
	if rec.Code != http.StatusMethodNotAllowed || env.Error == nil || env.Error.Code != ErrCodeMethodNotAllowed {
		t.Errorf("405 response = %d %+v", rec.Code, env.Error)
	}
}

func TestMetricsAndSwaggerRoutes(t *testing.T) {
	router := newTestRouter(newTestHandler(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "api_active_requests") {
		t.Errorf("/metrics = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/swagger/index.html = %d", rec.Code)
	}
}

// failingSource fails every call and counts them.
type failingSource struct {
	calls atomic.Int32
	err   error
}

func (s *failingSource) Movies(context.Context) ([]recommend.CatalogItem, error) {
	s.calls.Add(1)
	return nil, s.err
}

// blockingSource waits for the context to end.
type blockingSource struct{}

func (blockingSource) Movies(ctx context.Context) ([]recommend.CatalogItem, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestMovies(t *testing.T) {
	router := newTestRouter(newTestHandler(t, withSource(catalog.NewStaticSource(testCatalog()))))

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/movies", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var list models.MovieList
	decodeData(t, env, &list)
	if list.Count != 3 || len(list.Movies) != 3 {
		t.Errorf("count = %d, movies = %d", list.Count, len(list.Movies))
	}
	if *list.Movies[0].Runtime != catalog.DefaultRuntime {
		t.Errorf("catalog defaults not applied: %+v", list.Movies[0])
	}
}

func TestMoviesByMood(t *testing.T) {
	router := newTestRouter(newTestHandler(t, withSource(catalog.NewStaticSource(testCatalog()))))

	tests := []struct {
		path      string
		wantCount int
	}{
		{"/api/v1/movies/mood/cozy", 2},
		{"/api/v1/movies/mood/THRILLING", 1},
		{"/api/v1/movies/mood/dark", 0},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, env := doRequest(t, router, http.MethodGet, tt.path, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			var list models.MovieList
			decodeData(t, env, &list)
			if list.Count != tt.wantCount || len(list.Movies) != tt.wantCount {
				t.Errorf("count = %d, want %d", list.Count, tt.wantCount)
			}
			if list.Movies == nil {
				t.Error("movies should be an empty list, not null")
			}
		})
	}
}

func TestMovies_SourceErrors(t *testing.T) {
	tests := []struct {
		name       string
		source     catalog.Source
		timeout    time.Duration
		wantStatus int
		wantCode   string
	}{
		{"disabled", catalog.DisabledSource{}, time.Second, http.StatusServiceUnavailable, ErrCodeCatalogUnavailable},
		{"upstream failure", &failingSource{err: errors.New("connection refused")}, time.Second, http.StatusBadGateway, ErrCodeCatalogError},
		{"timeout", blockingSource{}, 20 * time.Millisecond, http.StatusGatewayTimeout, ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, withSource(tt.source), withConfig(func(c *config.Config) {
				c.Recommend.RequestTimeout = tt.timeout
			}))
			rec, env := doRequest(t, newTestRouter(h), http.MethodGet, "/api/v1/movies", "")
			if rec.Code != tt.wantStatus || env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("got %d %+v, want %d %s", rec.Code, env.Error, tt.wantStatus, tt.wantCode)
			}
			if strings.Contains(rec.Body.String(), "connection refused") {
				t.Error("upstream error details must not leak to clients")
			}
		})
	}
}

func TestRespondJSON_ETagIsStable(t *testing.T) {
	a := httptest.NewRecorder()
	b := httptest.NewRecorder()
	resp := &models.APIResponse{Status: "success", Data: map[string]int{"n": 1}}

	respondJSON(a, http.StatusOK, resp)
	respondJSON(b, http.StatusOK, resp)

	if a.Header().Get("ETag") != b.Header().Get("ETag") {
		t.Error("identical bodies should produce identical ETags")
	}
	if !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Error("bodies differ")
	}
}

func TestRespondError_LogsServerFailuresAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(zerolog.New(&buf))
	defer logging.Init(logging.DefaultConfig())

	src := &failingSource{err: errors.New("dial tcp: connection refused")}
	router := newTestRouter(newTestHandler(t, withSource(src)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations",
		strings.NewReader(`{"mood": "cozy", "time_available": 90}`))
	req.Header.Set("X-Request-ID", "req-502")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry["message"] != "API error" {
			continue
		}
		found = true
		if entry["level"] != "error" {
			t.Errorf("level = %v, want error", entry["level"])
		}
		if entry["request_id"] != "req-502" {
			t.Errorf("request_id = %v, want req-502", entry["request_id"])
		}
		if entry["code"] != ErrCodeCatalogError {
			t.Errorf("code = %v, want %s", entry["code"], ErrCodeCatalogError)
		}
		if msg, _ := entry["error"].(string); !strings.Contains(msg, "connection refused") {
			t.Errorf("error = %q, want the upstream cause", msg)
		}
	}
	if !found {
		t.Fatalf("no API error entry logged:\n%s", buf.String())
	}
}
