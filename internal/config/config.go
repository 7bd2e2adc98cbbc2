// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	server := http.Server{Addr: cfg.Server.Addr()}
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Logging      LoggingConfig      `koanf:"logging"`
	Security     SecurityConfig     `koanf:"security"`
	Recommend    RecommendConfig    `koanf:"recommend"`
	Contentstack ContentstackConfig `koanf:"contentstack"`
	Subscribers  SubscribersConfig  `koanf:"subscribers"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendConfig holds ranking engine settings.
//
// Environment Variables:
//   - RECOMMEND_MAX_FEATURES: vocabulary cap (default: 500)
//   - RECOMMEND_TOP_SIMILAR: neighbours averaged for the content score (default: 10)
//   - RECOMMEND_DURATION_SLACK: minutes over the viewing time still accepted (default: 60)
//   - RECOMMEND_DEFAULT_TOP_N: results when top_n is omitted (default: 5)
//   - RECOMMEND_REQUEST_TIMEOUT: per-request deadline (default: 10s)
type RecommendConfig struct {
	MaxFeatures      int           `koanf:"max_features"`
	TopSimilar       int           `koanf:"top_similar"`
	DurationSlack    int           `koanf:"duration_slack"`
	DefaultTopN      int           `koanf:"default_top_n"`
	MaxTopN          int           `koanf:"max_top_n"`
	MaxTimeAvailable int           `koanf:"max_time_available"`
	MaxCatalogSize   int           `koanf:"max_catalog_size"`
	RequestTimeout   time.Duration `koanf:"request_timeout"`
}

// ContentstackConfig holds the Contentstack Delivery API settings used to
// pull the movie catalog.
//
// Environment Variables:
//   - CONTENTSTACK_ENABLED: enable the catalog source (default: false)
//   - CONTENTSTACK_HOST: delivery API base URL (default: https://cdn.contentstack.io)
//   - CONTENTSTACK_API_KEY: stack API key (required when enabled)
//   - CONTENTSTACK_DELIVERY_TOKEN: delivery token (required when enabled)
//   - CONTENTSTACK_ENVIRONMENT: publishing environment (required when enabled)
//   - CONTENTSTACK_CONTENT_TYPE: content type UID (default: movie)
//   - CONTENTSTACK_FETCH_TIMEOUT: bound on one shared catalog refresh (default: 30s)
type ContentstackConfig struct {
	Enabled           bool          `koanf:"enabled"`
	Host              string        `koanf:"host"`
	APIKey            string        `koanf:"api_key"`
	DeliveryToken     string        `koanf:"delivery_token"`
	Environment       string        `koanf:"environment"`
	ContentType       string        `koanf:"content_type"`
	Timeout           time.Duration `koanf:"timeout"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	MaxRetries        int           `koanf:"max_retries"`
	RefreshInterval   time.Duration `koanf:"refresh_interval"`
	FetchTimeout      time.Duration `koanf:"fetch_timeout"`
}

// SubscribersConfig holds the Contentstack Management API settings for the
// subscriber roster. The roster is a single entry whose user_details blocks
// hold one subscriber each. The stack API key is shared with the
// contentstack section.
//
// Environment Variables:
//   - SUBSCRIBERS_ENABLED: enable the subscriber endpoints (default: false)
//   - CONTENTSTACK_MANAGEMENT_HOST: management API base URL (default: https://api.contentstack.io)
//   - CONTENTSTACK_MANAGEMENT_TOKEN: management token (required when enabled)
//   - SUBSCRIBERS_CONTENT_TYPE: roster content type UID (default: users)
//   - SUBSCRIBERS_ENTRY_UID: roster entry UID (required when enabled)
type SubscribersConfig struct {
	Enabled           bool          `koanf:"enabled"`
	Host              string        `koanf:"host"`
	ManagementToken   string        `koanf:"management_token"`
	ContentType       string        `koanf:"content_type"`
	EntryUID          string        `koanf:"entry_uid"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	MaxRetries        int           `koanf:"max_retries"`
}

// Load reads configuration in the following order (later sources override earlier):
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}
