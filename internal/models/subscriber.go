// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package models

import "github.com/tomtom215/streampick/internal/subscribers"

// AddSubscriberPayload is the body of POST /api/v1/subscribers.
type AddSubscriberPayload struct {
	Name           string   `json:"name" validate:"notblank,max=200" example:"Ada Lovelace"`
	Email          string   `json:"email" validate:"required,email,max=254" example:"ada@example.com"`
	PreferredMoods []string `json:"preferred_moods,omitempty" validate:"max=20,dive,max=100" example:"Cozy & Warm,thrilling"`
}

// FilterSubscribersPayload is the body of POST /api/v1/subscribers/filter-by-moods.
type FilterSubscribersPayload struct {
	MoodTags []string `json:"mood_tags" validate:"required,min=1,max=50,dive,max=100" example:"cozy,escape"`
}

// SubscriberAdded is returned after a successful subscription.
type SubscriberAdded struct {
	Message    string                 `json:"message" example:"Successfully subscribed!"`
	Subscriber subscribers.Subscriber `json:"subscriber"`
}

// SubscriberCount is returned by GET /api/v1/subscribers/count.
type SubscriberCount struct {
	Count int `json:"count" example:"42"`
}

// SubscriberMatches is returned by POST /api/v1/subscribers/filter-by-moods.
type SubscriberMatches struct {
	TotalMatching int                 `json:"total_matching" example:"1"`
	Subscribers   []subscribers.Match `json:"subscribers"`
}
