// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package catalog

import (
	"github.com/tomtom215/streampick/internal/recommend"
)

// Defaults applied to records that omit a field or carry a zero value.
const (
	DefaultYear    = 2020
	DefaultRuntime = 120
	DefaultRating  = 7.0
)

// Image is the Contentstack file object attached to an entry.
type Image struct {
	URL string `json:"url"`
}

// Record is a raw movie as received from a client payload or the CMS.
// Every field except Title may be missing.
type Record struct {
	UID           string   `json:"uid,omitempty"`
	Title         string   `json:"title" validate:"required,max=500"`
	Year          *int     `json:"year,omitempty"`
	Runtime       *int     `json:"runtime,omitempty" validate:"omitempty,min=0"`
	Rating        *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	Genre         []string `json:"genre,omitempty"`
	MoodTags      []string `json:"mood_tags,omitempty"`
	Platforms     []string `json:"platforms,omitempty"`
	Description   string   `json:"description,omitempty"`
	AIDescription string   `json:"ai_description,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Image         *Image   `json:"image,omitempty"`
}

// ToItem converts the record into a catalog item. Missing or zero numeric
// fields take the package defaults and missing lists become empty.
func (r *Record) ToItem() recommend.CatalogItem {
	year := DefaultYear
	if r.Year != nil && *r.Year != 0 {
		year = *r.Year
	}
	runtime := DefaultRuntime
	if r.Runtime != nil && *r.Runtime != 0 {
		runtime = *r.Runtime
	}
	rating := DefaultRating
	if r.Rating != nil && *r.Rating != 0 {
		rating = *r.Rating
	}

	imageURL := r.ImageURL
	if imageURL == "" && r.Image != nil {
		imageURL = r.Image.URL
	}

	return recommend.CatalogItem{
		UID:           r.UID,
		Title:         r.Title,
		Year:          &year,
		Runtime:       &runtime,
		Rating:        &rating,
		Genres:        orEmpty(r.Genre),
		MoodTags:      orEmpty(r.MoodTags),
		Platforms:     orEmpty(r.Platforms),
		Description:   r.Description,
		AIDescription: r.AIDescription,
		ImageURL:      imageURL,
	}
}

// ToItems converts records in order.
func ToItems(records []Record) []recommend.CatalogItem {
	items := make([]recommend.CatalogItem, len(records))
	for i := range records {
		items[i] = records[i].ToItem()
	}
	return items
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
