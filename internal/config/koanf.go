// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/streampick/config.yaml",
	"/etc/streampick/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Default returns the built-in defaults without reading files or the
// environment. Useful for tests and embedding.
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8001,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			CORSOrigins: []string{
				"http://localhost:8080",
				"http://localhost:5173",
				"http://localhost:3000",
			},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Recommend: RecommendConfig{
			MaxFeatures:      500,
			TopSimilar:       10,
			DurationSlack:    60,
			DefaultTopN:      5,
			MaxTopN:          10,
			MaxTimeAvailable: 500,
			MaxCatalogSize:   5000,
			RequestTimeout:   10 * time.Second,
		},
		Contentstack: ContentstackConfig{
			Enabled:           false,
			Host:              "https://cdn.contentstack.io",
			ContentType:       "movie",
			Timeout:           10 * time.Second,
			CacheTTL:          5 * time.Minute,
			RequestsPerSecond: 5,
			MaxRetries:        3,
			RefreshInterval:   5 * time.Minute,
			FetchTimeout:      30 * time.Second,
		},
		Subscribers: SubscribersConfig{
			Enabled:           false,
			Host:              "https://api.contentstack.io",
			ContentType:       "users",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 2,
			MaxRetries:        3,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// HTTP_PORT -> server.port
	// CONTENTSTACK_API_KEY -> contentstack.api_key
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from defaults or YAML)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"read_timeout":     "server.read_timeout",
	"write_timeout":    "server.write_timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Recommendation engine
	"recommend_max_features":       "recommend.max_features",
	"recommend_top_similar":        "recommend.top_similar",
	"recommend_duration_slack":     "recommend.duration_slack",
	"recommend_default_top_n":      "recommend.default_top_n",
	"recommend_max_top_n":          "recommend.max_top_n",
	"recommend_max_time_available": "recommend.max_time_available",
	"recommend_max_catalog_size":   "recommend.max_catalog_size",
	"recommend_request_timeout":    "recommend.request_timeout",

	// Contentstack catalog source
	"contentstack_enabled":             "contentstack.enabled",
	"contentstack_host":                "contentstack.host",
	"contentstack_api_key":             "contentstack.api_key",
	"contentstack_delivery_token":      "contentstack.delivery_token",
	"contentstack_environment":         "contentstack.environment",
	"contentstack_content_type":        "contentstack.content_type",
	"contentstack_timeout":             "contentstack.timeout",
	"contentstack_cache_ttl":           "contentstack.cache_ttl",
	"contentstack_requests_per_second": "contentstack.requests_per_second",
	"contentstack_max_retries":         "contentstack.max_retries",
	"contentstack_refresh_interval":    "contentstack.refresh_interval",
	"contentstack_fetch_timeout":       "contentstack.fetch_timeout",

	// Subscriber roster
	"subscribers_enabled":             "subscribers.enabled",
	"contentstack_management_host":    "subscribers.host",
	"contentstack_management_token":   "subscribers.management_token",
	"subscribers_content_type":        "subscribers.content_type",
	"subscribers_entry_uid":           "subscribers.entry_uid",
	"subscribers_timeout":             "subscribers.timeout",
	"subscribers_requests_per_second": "subscribers.requests_per_second",
	"subscribers_max_retries":         "subscribers.max_retries",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - LOG_LEVEL -> logging.level
//   - CONTENTSTACK_DELIVERY_TOKEN -> contentstack.delivery_token
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so random environment variables cannot
	// pollute the configuration.
	return ""
}
