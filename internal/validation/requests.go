// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

// Browse modes, one per list the UI can show.
const (
	ModeRecommend = "recommend"
	ModeTrending  = "trending"
	ModeTopRated  = "top-rated"
)

// MaxTitleLength bounds the title query parameter.
const MaxTitleLength = 500

// RecommendationsRequest is the query of GET /api/v1/recommendations.
type RecommendationsRequest struct {
	Title string `query:"title" validate:"required,max=500"`
}

// BrowseRequest is the query of GET /api/v1/browse.
type BrowseRequest struct {
	Mode  string `query:"mode" validate:"required,oneof=recommend trending top-rated"`
	Title string `query:"title" validate:"required_if=Mode recommend,max=500"`
}
