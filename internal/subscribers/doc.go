// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

/*
Package subscribers manages the mailing list of people who want to hear
about new movies matching their moods.

The roster lives in a single Contentstack entry edited through the
Management API. Each subscriber is one user_details block:

	{"user": {"name": "Ada", "email": "ada@example.com",
	          "preferred_moods": "cozy, thrilling", "subscribed_date": "2026-10-18"}}

Components:
  - Service: add with duplicate rejection, count, and mood matching
  - ManagementClient: Store backed by the Management API, paced and retried on HTTP 429
  - BreakerStore: circuit breaker around any Store
  - DisabledStore: Store used when the roster is not configured

Mood matching normalizes both sides through the mood alias table, so
"Edge of Seat" on a movie matches a subscriber who picked "thrilling".
Inputs outside the table are compared lower-cased, which keeps older
roster entries with free-form moods matchable.
*/
package subscribers
