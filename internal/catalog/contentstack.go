// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/streampick/internal/config"
	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/metrics"
	"github.com/tomtom215/streampick/internal/recommend"
)

// SourceContentstack is the metrics label for the Contentstack source.
const SourceContentstack = "contentstack"

// pageSize is the Delivery API maximum entries per request.
const pageSize = 100

// maxErrorBodySize limits the amount of response body read for error reporting.
const maxErrorBodySize = 64 * 1024

// ReadBodyForError reads at most maxErrorBodySize bytes of an error response.
func ReadBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// entriesResponse is one page of the Delivery API entries endpoint.
// Entries stay raw so one malformed entry does not sink the page.
type entriesResponse struct {
	Entries []json.RawMessage `json:"entries"`
	Count   *int              `json:"count,omitempty"`
}

// ContentstackClient fetches the movie catalog from the Contentstack
// Delivery API.
//
// Features:
//   - Client-side pacing with a token bucket
//   - Automatic retry on HTTP 429 with exponential backoff, honoring Retry-After
//   - Pagination over the entries endpoint
//   - Entries that fail to decode or lack a title are skipped and logged
//
// Safe for concurrent use.
type ContentstackClient struct {
	baseURL        string
	apiKey         string
	deliveryToken  string
	environment    string
	contentType    string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
	logger         zerolog.Logger
}

// NewContentstackClient creates a client from configuration.
func NewContentstackClient(cfg *config.ContentstackConfig) *ContentstackClient {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &ContentstackClient{
		baseURL:        strings.TrimSuffix(cfg.Host, "/"),
		apiKey:         cfg.APIKey,
		deliveryToken:  cfg.DeliveryToken,
		environment:    cfg.Environment,
		contentType:    cfg.ContentType,
		client:         &http.Client{Timeout: cfg.Timeout},
		limiter:        rate.NewLimiter(rate.Limit(rps), 1),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: time.Second,
		logger:         logging.WithComponent("contentstack"),
	}
}

// Movies fetches every published movie entry.
func (c *ContentstackClient) Movies(ctx context.Context) ([]recommend.CatalogItem, error) {
	start := time.Now()
	items, err := c.fetchAll(ctx)
	metrics.RecordCatalogFetch(SourceContentstack, time.Since(start), len(items), err)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("movies", len(items)).
		Dur("duration", time.Since(start)).
		Msg("Fetched catalog from Contentstack")
	return items, nil
}

func (c *ContentstackClient) fetchAll(ctx context.Context) ([]recommend.CatalogItem, error) {
	var items []recommend.CatalogItem
	for skip := 0; ; skip += pageSize {
		page, err := c.fetchPage(ctx, skip)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Entries {
			var rec Record
			if err := json.Unmarshal(raw, &rec); err != nil {
				c.logger.Warn().Err(err).Int("skip", skip).Msg("Skipping entry that failed to decode")
				continue
			}
			if strings.TrimSpace(rec.Title) == "" {
				c.logger.Warn().Str("uid", rec.UID).Msg("Skipping entry without a title")
				continue
			}
			items = append(items, rec.ToItem())
		}

		if len(page.Entries) < pageSize {
			break
		}
		if page.Count != nil && skip+pageSize >= *page.Count {
			break
		}
	}
	if items == nil {
		items = []recommend.CatalogItem{}
	}
	return items, nil
}

func (c *ContentstackClient) fetchPage(ctx context.Context, skip int) (*entriesResponse, error) {
	params := url.Values{}
	params.Set("environment", c.environment)
	params.Set("include[]", "image")
	params.Set("include_count", "true")
	params.Set("limit", strconv.Itoa(pageSize))
	if skip > 0 {
		params.Set("skip", strconv.Itoa(skip))
	}
	reqURL := fmt.Sprintf("%s/v3/content_types/%s/entries?%s",
		c.baseURL, url.PathEscape(c.contentType), params.Encode())

	resp, err := c.doRequestWithRateLimit(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s entries: %w", c.contentType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := ReadBodyForError(resp.Body)
		return nil, fmt.Errorf("entries request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var page entriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode entries response: %w", err)
	}
	return &page, nil
}

// doRequestWithRateLimit performs a GET with pacing and HTTP 429 handling.
// Backoff doubles from retryBaseDelay; a Retry-After header in seconds
// takes precedence. The context cancels both pacing and backoff waits.
func (c *ContentstackClient) doRequestWithRateLimit(ctx context.Context, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("api_key", c.apiKey)
		req.Header.Set("access_token", c.deliveryToken)
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()
		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		metrics.RecordUpstreamRetry(metrics.APIDelivery)
		c.logger.Warn().
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("Contentstack rate limited, backing off")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
