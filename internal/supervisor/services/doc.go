// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

/*
Package services adapts StreamPick components to suture.Service.

  - HTTPServerService: turns http.Server's blocking ListenAndServe into a
    context-aware Serve with graceful Shutdown.
  - CatalogRefreshService: warms the catalog snapshot at startup and
    refreshes it on an interval so requests rarely wait on Contentstack.
  - UptimeService: keeps the app_uptime_seconds gauge current.

Every service returns ctx.Err() once its context is canceled, so suture
treats the return as a normal stop rather than a failure.
*/
package services
