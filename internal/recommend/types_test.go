// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package recommend

import "testing"

func TestCatalogItem_Clone(t *testing.T) {
	year, runtime, rating := 2019, 130, 7.9
	orig := CatalogItem{
		Title:     "Knives Out",
		Year:      &year,
		Runtime:   &runtime,
		Rating:    &rating,
		Genres:    []string{"Mystery", "Comedy"},
		MoodTags:  []string{"thrilling"},
		Platforms: []string{"Prime"},
	}

	c := orig.Clone()
	*c.Runtime = 90
	*c.Rating = 1
	*c.Year = 1900
	c.Genres[0] = "Horror"
	c.MoodTags[0] = "cozy"
	c.Platforms[0] = "Netflix"

	if *orig.Runtime != 130 || *orig.Rating != 7.9 || *orig.Year != 2019 {
		t.Errorf("numeric pointers shared with clone: %d %v %d", *orig.Runtime, *orig.Rating, *orig.Year)
	}
	if orig.Genres[0] != "Mystery" || orig.MoodTags[0] != "thrilling" || orig.Platforms[0] != "Prime" {
		t.Errorf("tag slices shared with clone: %v %v %v", orig.Genres, orig.MoodTags, orig.Platforms)
	}
}

func TestCatalogItem_CloneKeepsNils(t *testing.T) {
	c := (&CatalogItem{Title: "A"}).Clone()
	if c.Year != nil || c.Runtime != nil || c.Rating != nil || c.Genres != nil {
		t.Errorf("Clone() of empty item = %+v", c)
	}
}
