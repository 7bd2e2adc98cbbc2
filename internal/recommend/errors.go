// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package recommend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCandidatesForMood is returned when the mood is valid but no catalog
// item carries it.
var ErrNoCandidatesForMood = errors.New("no movies found for mood")

// NoCandidatesError carries the requested mood and the labels a caller can
// suggest instead.
type NoCandidatesError struct {
	// Input is the mood as the caller sent it.
	Input string
	// Mood is the canonical mood it normalized to.
	Mood string
	// ValidLabels are the UI-friendly mood labels.
	ValidLabels []string
}

// Error implements the error interface.
func (e *NoCandidatesError) Error() string {
	return fmt.Sprintf("No movies found for mood: '%s'. Try one of these: %s",
		e.Input, strings.Join(e.ValidLabels, ", "))
}

// Unwrap allows errors.Is(err, ErrNoCandidatesForMood).
func (e *NoCandidatesError) Unwrap() error {
	return ErrNoCandidatesForMood
}
