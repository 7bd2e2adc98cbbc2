// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package recommend

import "strings"

// tagRepeat is how many times genres and mood tags are repeated in a
// document to outweigh free text.
const tagRepeat = 3

// BuildDocument flattens an item into the text the vectorizer sees:
// each genre three times, each mood tag three times, then the description
// and the AI description when present. Parts are joined by single spaces.
func BuildDocument(item *CatalogItem) string {
	parts := make([]string, 0, tagRepeat*(len(item.Genres)+len(item.MoodTags))+2)

	for i := 0; i < tagRepeat; i++ {
		parts = append(parts, item.Genres...)
	}
	for i := 0; i < tagRepeat; i++ {
		parts = append(parts, item.MoodTags...)
	}
	if item.Description != "" {
		parts = append(parts, item.Description)
	}
	if item.AIDescription != "" {
		parts = append(parts, item.AIDescription)
	}

	return strings.Join(parts, " ")
}

// BuildDocuments returns one document per item, in catalog order.
func BuildDocuments(items []CatalogItem) []string {
	docs := make([]string, len(items))
	for i := range items {
		docs[i] = BuildDocument(&items[i])
	}
	return docs
}
