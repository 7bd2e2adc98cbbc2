// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

// Package models defines the HTTP payloads and the response envelope shared
// by all API endpoints.
//
// Every response is wrapped in APIResponse. Successful responses carry the
// payload in Data; failures carry an APIError with a machine-readable code.
package models
