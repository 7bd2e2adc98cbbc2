// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

/*
Package config provides centralized configuration management for StreamPick.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH, ./config.yaml or /etc/streampick/config.yaml), then
environment variables. Only the environment variables listed in
envMappings are read.

# Configuration Structure

  - ServerConfig: HTTP listener and timeouts (HTTP_PORT defaults to 8001)
  - LoggingConfig: zerolog level, format and caller info
  - SecurityConfig: CORS origins and rate limiting
  - RecommendConfig: ranking engine tuning and request bounds
  - ContentstackConfig: the optional Contentstack catalog source

# Example YAML

	server:
	  port: 8001
	  environment: production
	security:
	  cors_origins:
	    - https://streampick.example.com
	recommend:
	  duration_slack: 60
	contentstack:
	  enabled: true
	  api_key: blt...
	  delivery_token: cs...
	  environment: production

# Validation

Load returns an error for out-of-range values, unknown log levels, a
wildcard CORS origin in production, or an enabled Contentstack source
missing credentials.
*/
package config
