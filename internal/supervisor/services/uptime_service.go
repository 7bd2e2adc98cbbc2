// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package services

import (
	"context"
	"time"

	"github.com/tomtom215/streampick/internal/metrics"
)

// UptimeService updates app_uptime_seconds on a fixed interval.
type UptimeService struct {
	started  time.Time
	interval time.Duration
	update   func(time.Time)
}

// NewUptimeService reports uptime measured from started.
func NewUptimeService(started time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{started: started, interval: interval, update: metrics.UpdateUptime}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	u.update(u.started)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			u.update(u.started)
		}
	}
}

func (u *UptimeService) String() string {
	return "uptime"
}
