// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"reflect"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_BrowseRequest(t *testing.T) {
	longTitle := strings.Repeat("x", MaxTitleLength+1)

	tests := []struct {
		name      string
		req       BrowseRequest
		wantField string
		wantTag   string
	}{
		{name: "recommend with title", req: BrowseRequest{Mode: ModeRecommend, Title: "Avatar"}},
		{name: "trending", req: BrowseRequest{Mode: ModeTrending}},
		{name: "top rated ignores title", req: BrowseRequest{Mode: ModeTopRated, Title: "Avatar"}},
		{name: "missing mode", req: BrowseRequest{}, wantField: "mode", wantTag: "required"},
		{name: "unknown mode", req: BrowseRequest{Mode: "popular"}, wantField: "mode", wantTag: "oneof"},
		{name: "recommend without title", req: BrowseRequest{Mode: ModeRecommend}, wantField: "title", wantTag: "required_if"},
		{name: "title too long", req: BrowseRequest{Mode: ModeRecommend, Title: longTitle}, wantField: "title", wantTag: "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_RecommendationsRequest(t *testing.T) {
	if verr := ValidateStruct(&RecommendationsRequest{Title: "The Dark Knight"}); verr != nil {
		t.Errorf("valid request rejected: %v", verr)
	}

	verr := ValidateStruct(&RecommendationsRequest{})
	if verr == nil {
		t.Fatal("empty title accepted")
	}
	if got := verr.Error(); got != "title is required" {
		t.Errorf("Error() = %q, want %q", got, "title is required")
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	verr := ValidateStruct(&BrowseRequest{Mode: "weekly"})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if want := "mode must be one of: recommend trending top-rated"; apiErr.Message != want {
		t.Errorf("Message = %q, want %q", apiErr.Message, want)
	}
	if apiErr.Details["field"] != "mode" {
		t.Errorf("Details[field] = %v, want mode", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	type pair struct {
		A string `query:"a" validate:"required"`
		B int    `query:"b" validate:"min=1"`
	}

	verr := ValidateStruct(&pair{})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %v, want two entries", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "a: a is required") || !strings.Contains(apiErr.Message, "b: b must be at least 1") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}

func TestTranslateError_FallbackToFieldName(t *testing.T) {
	type untagged struct {
		Name string `validate:"min=3"`
	}

	verr := ValidateStruct(&untagged{Name: "ab"})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if got := verr.Error(); got != "Name must be at least 3 characters" {
		t.Errorf("Error() = %q", got)
	}
}

// requestTags collects the validation tag names used by the request structs.
func requestTags(t *testing.T, requests ...interface{}) map[string]bool {
	t.Helper()
	tags := make(map[string]bool)
	for _, req := range requests {
		typ := reflect.TypeOf(req)
		for i := 0; i < typ.NumField(); i++ {
			for _, rule := range strings.Split(typ.Field(i).Tag.Get("validate"), ",") {
				name, _, _ := strings.Cut(rule, "=")
				tags[name] = true
			}
		}
	}
	return tags
}

func TestErrorMessageTemplates_MatchRequestTags(t *testing.T) {
	used := requestTags(t, RecommendationsRequest{}, BrowseRequest{})

	for tag := range errorMessageTemplates {
		if !used[tag] {
			t.Errorf("message template for %q, but no request validates with it", tag)
		}
	}
	for tag := range errorMessageWithParam {
		if !used[tag] {
			t.Errorf("param message template for %q, but no request validates with it", tag)
		}
	}
}

func TestValidateStruct_BlankTitleReachesLookup(t *testing.T) {
	// Blank titles are unknown titles: the lookup answers with an empty list.
	if verr := ValidateStruct(&RecommendationsRequest{Title: "   "}); verr != nil {
		t.Errorf("blank title rejected: %v", verr)
	}
}
