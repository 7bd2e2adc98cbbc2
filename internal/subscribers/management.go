// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package subscribers

import (
	"bytes"
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

	"github.com/tomtom215/streampick/internal/catalog"
	"github.com/tomtom215/streampick/internal/config"
	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/metrics"
)

// rosterTitle is written back as the entry title on every save.
const rosterTitle = "Subscribers"

// userBlock is one user_details modular block.
type userBlock struct {
	User userFields `json:"user"`
}

type userFields struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PreferredMoods string `json:"preferred_moods"`
	SubscribedDate string `json:"subscribed_date,omitempty"`
}

// rosterEntry is the fields of the roster entry this service reads and
// writes. all_users is a denormalized email list kept for editors.
type rosterEntry struct {
	Title       string      `json:"title"`
	UserDetails []userBlock `json:"user_details"`
	AllUsers    string      `json:"all_users"`
}

type entryEnvelope struct {
	Entry rosterEntry `json:"entry"`
}

// ManagementClient reads and writes the roster entry through the
// Contentstack Management API.
//
// Features:
//   - Client-side pacing with a token bucket
//   - Automatic retry on HTTP 429 with exponential backoff, honoring Retry-After
//   - Blocks without an email are skipped on load
//
// Safe for concurrent use. Callers serialize writes.
type ManagementClient struct {
	entryURL        string
	apiKey          string
	managementToken string
	client          *http.Client
	limiter         *rate.Limiter
	maxRetries      int
	retryBaseDelay  time.Duration
	logger          zerolog.Logger
}

// NewManagementClient creates a client for the roster entry. apiKey is the
// stack API key shared with the catalog source.
func NewManagementClient(apiKey string, cfg *config.SubscribersConfig) *ManagementClient {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	entryURL := fmt.Sprintf("%s/v3/content_types/%s/entries/%s",
		strings.TrimSuffix(cfg.Host, "/"), url.PathEscape(cfg.ContentType), url.PathEscape(cfg.EntryUID))
	return &ManagementClient{
		entryURL:        entryURL,
		apiKey:          apiKey,
		managementToken: cfg.ManagementToken,
		client:          &http.Client{Timeout: cfg.Timeout},
		limiter:         rate.NewLimiter(rate.Limit(rps), 1),
		maxRetries:      cfg.MaxRetries,
		retryBaseDelay:  time.Second,
		logger:          logging.WithComponent("contentstack-management"),
	}
}

// Load implements Store.
func (c *ManagementClient) Load(ctx context.Context) ([]Subscriber, error) {
	resp, err := c.doRequestWithRateLimit(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscriber roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := catalog.ReadBodyForError(resp.Body)
		return nil, fmt.Errorf("roster request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var env entryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode roster entry: %w", err)
	}

	roster := make([]Subscriber, 0, len(env.Entry.UserDetails))
	for i, block := range env.Entry.UserDetails {
		u := block.User
		if strings.TrimSpace(u.Email) == "" {
			c.logger.Warn().Int("index", i).Msg("Skipping roster block without an email")
			continue
		}
		roster = append(roster, Subscriber{
			Name:           u.Name,
			Email:          u.Email,
			PreferredMoods: splitMoods(u.PreferredMoods),
			SubscribedDate: u.SubscribedDate,
		})
	}
	return roster, nil
}

// Save implements Store by replacing user_details and all_users.
func (c *ManagementClient) Save(ctx context.Context, roster []Subscriber) error {
	entry := rosterEntry{
		Title:       rosterTitle,
		UserDetails: make([]userBlock, len(roster)),
	}
	emails := make([]string, len(roster))
	for i, sub := range roster {
		entry.UserDetails[i] = userBlock{User: userFields{
			Name:           sub.Name,
			Email:          sub.Email,
			PreferredMoods: strings.Join(sub.PreferredMoods, ", "),
			SubscribedDate: sub.SubscribedDate,
		}}
		emails[i] = sub.Email
	}
	entry.AllUsers = strings.Join(emails, ", ")

	payload, err := json.Marshal(entryEnvelope{Entry: entry})
	if err != nil {
		return fmt.Errorf("failed to encode roster entry: %w", err)
	}

	resp, err := c.doRequestWithRateLimit(ctx, http.MethodPut, payload)
	if err != nil {
		return fmt.Errorf("failed to update subscriber roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body := catalog.ReadBodyForError(resp.Body)
		return fmt.Errorf("roster update failed with status %d: %s", resp.StatusCode, string(body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Info().Int("subscribers", len(roster)).Msg("Updated subscriber roster")
	return nil
}

// doRequestWithRateLimit sends one request to the roster entry with pacing
// and HTTP 429 handling. Backoff doubles from retryBaseDelay; a
// Retry-After header in seconds takes precedence.
func (c *ManagementClient) doRequestWithRateLimit(ctx context.Context, method string, body []byte) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var reqBody io.Reader = http.NoBody
		if body != nil {
			reqBody = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.entryURL, reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("api_key", c.apiKey)
		req.Header.Set("authorization", c.managementToken)
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

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

		metrics.RecordUpstreamRetry(metrics.APIManagement)
		c.logger.Warn().
			Str("method", method).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("Contentstack Management API rate limited, backing off")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
