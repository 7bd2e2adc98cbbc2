// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

// Package mood maps free-form mood text onto the six canonical mood tags
// used by the catalog.
//
// The alias table is static, package-level data built once at process start.
// Lookups are case-insensitive and ignore surrounding whitespace, but they are
// exact: an input that matches no alias is always an error, never a guess.
//
//	m, err := mood.Normalize("  Edge of Seat ")
//	// m == mood.Thrilling
//
//	_, err = mood.Normalize("grumpy")
//	// errors.Is(err, mood.ErrUnrecognizedMood) == true
package mood

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Mood is a canonical backend mood tag.
type Mood string

const (
	// Cozy covers heartwarming, feel-good movies.
	Cozy Mood = "cozy"
	// Thrilling covers suspenseful, intense thrillers.
	Thrilling Mood = "thrilling"
	// Laugh covers comedies.
	Laugh Mood = "laugh"
	// Deep covers thought-provoking, intellectual films.
	Deep Mood = "deep"
	// Escape covers adventures and escapism.
	Escape Mood = "escape"
	// Chill covers relaxing, mellow background content.
	Chill Mood = "chill"
)

// String returns the backend tag.
func (m Mood) String() string {
	return string(m)
}

// Label returns the UI-friendly label for the mood, or the tag itself
// for values outside the canonical set.
func (m Mood) Label() string {
	for _, ex := range examples {
		if ex.Backend == m {
			return ex.Label
		}
	}
	return string(m)
}

// Valid reports whether m is one of the six canonical moods.
func (m Mood) Valid() bool {
	for _, c := range canonical {
		if c == m {
			return true
		}
	}
	return false
}

// ErrUnrecognizedMood is returned when the input matches no alias.
var ErrUnrecognizedMood = errors.New("mood not recognized")

// UnrecognizedMoodError carries the rejected input and the labels a caller
// can offer the user instead.
type UnrecognizedMoodError struct {
	Input       string
	ValidLabels []string
}

// Error implements the error interface.
func (e *UnrecognizedMoodError) Error() string {
	return fmt.Sprintf("mood '%s' not recognized. Valid moods: %s",
		e.Input, strings.Join(e.ValidLabels, ", "))
}

// Unwrap allows errors.Is(err, ErrUnrecognizedMood).
func (e *UnrecognizedMoodError) Unwrap() error {
	return ErrUnrecognizedMood
}

// Example documents one canonical mood for discovery endpoints.
type Example struct {
	Label       string `json:"label"`
	Backend     Mood   `json:"backend"`
	Description string `json:"description"`
}

var canonical = []Mood{Cozy, Thrilling, Laugh, Deep, Escape, Chill}

var examples = []Example{
	{Label: "Cozy & Warm", Backend: Cozy, Description: "Heartwarming, feel-good movies"},
	{Label: "Edge of Seat", Backend: Thrilling, Description: "Suspenseful, intense thrillers"},
	{Label: "Need Laughs", Backend: Laugh, Description: "Comedies that will crack you up"},
	{Label: "Make Me Think", Backend: Deep, Description: "Thought-provoking, intellectual films"},
	{Label: "Pure Escapism", Backend: Escape, Description: "Adventures to transport you away"},
	{Label: "Background Vibe", Backend: Chill, Description: "Relaxing, mellow content"},
}

// aliases maps lower-cased input to its canonical mood. Never mutated.
var aliases = map[string]Mood{
	"cozy":      Cozy,
	"thrilling": Thrilling,
	"laugh":     Laugh,
	"deep":      Deep,
	"escape":    Escape,
	"chill":     Chill,

	"cozy & warm":   Cozy,
	"cozy and warm": Cozy,
	"warm":          Cozy,

	"edge of seat": Thrilling,
	"edge-of-seat": Thrilling,
	"thriller":     Thrilling,
	"suspense":     Thrilling,
	"intense":      Thrilling,

	"need laughs": Laugh,
	"need-laughs": Laugh,
	"funny":       Laugh,
	"comedy":      Laugh,
	"humor":       Laugh,

	"make me think": Deep,
	"make-me-think": Deep,
	"thoughtful":    Deep,
	"intellectual":  Deep,
	"profound":      Deep,

	"pure escapism": Escape,
	"pure-escapism": Escape,
	"escapism":      Escape,
	"adventure":     Escape,

	"background vibe": Chill,
	"background-vibe": Chill,
	"background":      Chill,
	"relaxing":        Chill,
	"mellow":          Chill,
}

// Normalize maps user input such as "Edge of Seat", "THRILLING" or
// " laugh " to its canonical mood.
func Normalize(input string) (Mood, error) {
	key := strings.TrimSpace(strings.ToLower(input))
	if m, ok := aliases[key]; ok {
		return m, nil
	}
	return "", &UnrecognizedMoodError{Input: input, ValidLabels: UILabels()}
}

// Canonical returns the six backend mood tags in display order.
func Canonical() []Mood {
	out := make([]Mood, len(canonical))
	copy(out, canonical)
	return out
}

// CanonicalStrings returns Canonical as plain strings.
func CanonicalStrings() []string {
	out := make([]string, len(canonical))
	for i, m := range canonical {
		out[i] = string(m)
	}
	return out
}

// UILabels returns the UI-friendly mood labels in display order.
func UILabels() []string {
	out := make([]string, len(examples))
	for i, ex := range examples {
		out[i] = ex.Label
	}
	return out
}

// Aliases returns a copy of the full alias table.
func Aliases() map[string]Mood {
	out := make(map[string]Mood, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// ValidInputs returns every accepted alias, sorted.
func ValidInputs() []string {
	out := make([]string, 0, len(aliases))
	for k := range aliases {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Examples returns label/tag/description triples for each canonical mood.
func Examples() []Example {
	out := make([]Example, len(examples))
	copy(out, examples)
	return out
}
