// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateSecurity,
		c.validateRecommend,
		c.validateContentstack,
		c.validateSubscribers,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("READ_TIMEOUT and WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

func (c *Config) validateSecurity() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

func (c *Config) validateRecommend() error {
	r := &c.Recommend
	switch {
	case r.MaxFeatures < 1:
		return fmt.Errorf("RECOMMEND_MAX_FEATURES must be at least 1")
	case r.TopSimilar < 1:
		return fmt.Errorf("RECOMMEND_TOP_SIMILAR must be at least 1")
	case r.DurationSlack < 0:
		return fmt.Errorf("RECOMMEND_DURATION_SLACK must not be negative")
	case r.MaxTopN < 1:
		return fmt.Errorf("RECOMMEND_MAX_TOP_N must be at least 1")
	case r.DefaultTopN < 1 || r.DefaultTopN > r.MaxTopN:
		return fmt.Errorf("RECOMMEND_DEFAULT_TOP_N must be between 1 and %d", r.MaxTopN)
	case r.MaxTimeAvailable < 1:
		return fmt.Errorf("RECOMMEND_MAX_TIME_AVAILABLE must be at least 1")
	case r.MaxCatalogSize < 1:
		return fmt.Errorf("RECOMMEND_MAX_CATALOG_SIZE must be at least 1")
	case r.RequestTimeout <= 0:
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateContentstack() error {
	cs := &c.Contentstack
	if !cs.Enabled {
		return nil
	}
	if err := validateHTTPURL(cs.Host, "CONTENTSTACK_HOST"); err != nil {
		return err
	}
	if cs.APIKey == "" {
		return fmt.Errorf("CONTENTSTACK_API_KEY is required when CONTENTSTACK_ENABLED=true")
	}
	if cs.DeliveryToken == "" {
		return fmt.Errorf("CONTENTSTACK_DELIVERY_TOKEN is required when CONTENTSTACK_ENABLED=true")
	}
	if cs.Environment == "" {
		return fmt.Errorf("CONTENTSTACK_ENVIRONMENT is required when CONTENTSTACK_ENABLED=true")
	}
	if cs.ContentType == "" {
		return fmt.Errorf("CONTENTSTACK_CONTENT_TYPE must not be empty")
	}
	if cs.Timeout <= 0 {
		return fmt.Errorf("CONTENTSTACK_TIMEOUT must be positive")
	}
	if cs.RequestsPerSecond <= 0 {
		return fmt.Errorf("CONTENTSTACK_REQUESTS_PER_SECOND must be positive")
	}
	if cs.MaxRetries < 0 {
		return fmt.Errorf("CONTENTSTACK_MAX_RETRIES must not be negative")
	}
	if cs.CacheTTL < 0 || cs.RefreshInterval < 0 {
		return fmt.Errorf("CONTENTSTACK_CACHE_TTL and CONTENTSTACK_REFRESH_INTERVAL must not be negative")
	}
	if cs.FetchTimeout <= 0 {
		return fmt.Errorf("CONTENTSTACK_FETCH_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSubscribers() error {
	s := &c.Subscribers
	if !s.Enabled {
		return nil
	}
	if err := validateHTTPURL(s.Host, "CONTENTSTACK_MANAGEMENT_HOST"); err != nil {
		return err
	}
	if c.Contentstack.APIKey == "" {
		return fmt.Errorf("CONTENTSTACK_API_KEY is required when SUBSCRIBERS_ENABLED=true")
	}
	if s.ManagementToken == "" {
		return fmt.Errorf("CONTENTSTACK_MANAGEMENT_TOKEN is required when SUBSCRIBERS_ENABLED=true")
	}
	if s.EntryUID == "" {
		return fmt.Errorf("SUBSCRIBERS_ENTRY_UID is required when SUBSCRIBERS_ENABLED=true")
	}
	if s.ContentType == "" {
		return fmt.Errorf("SUBSCRIBERS_CONTENT_TYPE must not be empty")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("SUBSCRIBERS_TIMEOUT must be positive")
	}
	if s.RequestsPerSecond <= 0 {
		return fmt.Errorf("SUBSCRIBERS_REQUESTS_PER_SECOND must be positive")
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("SUBSCRIBERS_MAX_RETRIES must not be negative")
	}
	return nil
}
