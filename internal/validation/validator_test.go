// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package validation

import (
	"strings"
	"sync"
	"testing"
)

type testMovie struct {
	Title  string   `json:"title" validate:"required,max=20"`
	Rating *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
}

type testPayload struct {
	Mood          string      `json:"mood" validate:"notblank,max=100"`
	TimeAvailable int         `json:"time_available" validate:"min=1,max=500"`
	TopN          int         `json:"top_n" validate:"omitempty,min=1,max=10"`
	Movies        []testMovie `json:"movies" validate:"max=3,dive"`
	Internal      string      `json:"-" validate:"omitempty,oneof=a b"`
}

func TestGetValidator_Singleton(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]interface{}, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GetValidator()
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("GetValidator() returned different instances")
		}
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	rating := 8.5
	p := testPayload{
		Mood:          "Edge of Seat",
		TimeAvailable: 120,
		Movies:        []testMovie{{Title: "A", Rating: &rating}, {Title: "B"}},
	}
	if err := ValidateStruct(&p); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	bad := 11.0
	tests := []struct {
		name      string
		payload   testPayload
		wantPath  string
		wantTag   string
		wantInMsg string
	}{
		{"blank mood", testPayload{Mood: "   ", TimeAvailable: 60}, "mood", "notblank", "mood must not be blank"},
		{"time zero", testPayload{Mood: "cozy", TimeAvailable: 0}, "time_available", "min", "time_available must be at least 1"},
		{"time too large", testPayload{Mood: "cozy", TimeAvailable: 501}, "time_available", "max", "time_available must be at most 500"},
		{"top_n too large", testPayload{Mood: "cozy", TimeAvailable: 60, TopN: 11}, "top_n", "max", "top_n must be at most 10"},
		{"mood too long", testPayload{Mood: strings.Repeat("x", 101), TimeAvailable: 60}, "mood", "max", "at most 100 characters"},
		{"too many movies", testPayload{Mood: "cozy", TimeAvailable: 60, Movies: make([]testMovie, 4)}, "movies", "max", "movies must be at most 3 items"},
		{"movie without title", testPayload{Mood: "cozy", TimeAvailable: 60, Movies: []testMovie{{Title: "A"}, {}}}, "movies[1].title", "required", "movies[1].title is required"},
		{"rating out of range", testPayload{Mood: "cozy", TimeAvailable: 60, Movies: []testMovie{{Title: "A", Rating: &bad}}}, "movies[0].rating", "max", "at most 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.payload)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Path() != tt.wantPath {
				t.Errorf("Path() = %q, want %q", errs[0].Path(), tt.wantPath)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if !strings.Contains(errs[0].Error(), tt.wantInMsg) {
				t.Errorf("Error() = %q, want it to contain %q", errs[0].Error(), tt.wantInMsg)
			}
		})
	}
}

func TestValidateStruct_IgnoredJSONField(t *testing.T) {
	p := testPayload{Mood: "cozy", TimeAvailable: 60, Internal: "z"}
	verr := ValidateStruct(&p)
	if verr == nil {
		t.Fatal("expected oneof error")
	}
	if got := verr.Errors()[0].Param(); got != "a b" {
		t.Errorf("Param() = %q, want 'a b'", got)
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	verr := ValidateStruct(&testPayload{Mood: "cozy", TimeAvailable: 0})
	apiErr := verr.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "time_available must be at least 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "time_available" || apiErr.Details["tag"] != "min" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&testPayload{Mood: "", TimeAvailable: 900})
	apiErr := verr.ToAPIError()

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %v", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "mood: mood must not be blank") ||
		!strings.Contains(apiErr.Message, "time_available: time_available must be at most 500") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("Error() = %q, want joined messages", verr.Error())
	}
}

func TestToAPIError_Empty(t *testing.T) {
	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if apiErr := verr.ToAPIError(); apiErr.Message != "Validation failed" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	verr := ValidateStruct("not a struct")
	if verr == nil {
		t.Fatal("expected error for non-struct input")
	}
	if got := verr.Errors()[0].Path(); got != "unknown" {
		t.Errorf("Path() = %q, want unknown", got)
	}
}

func TestValidateStruct_Email(t *testing.T) {
	type signup struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := ValidateStruct(&signup{Email: "ada@example.com"}); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}

	err := ValidateStruct(&signup{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	got := err.Errors()[0]
	if got.Path() != "email" || got.Tag() != "email" {
		t.Errorf("error = %s/%s, want email/email", got.Path(), got.Tag())
	}
	if got.Error() != "email must be a valid email address" {
		t.Errorf("message = %q", got.Error())
	}
}
