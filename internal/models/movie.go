// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

// Movie is one row of the precomputed similarity space.
// CatalogID is the TMDB movie identifier and is the record's identity;
// Title is only used for user-facing selection.
type Movie struct {
	CatalogID int64  `json:"movie_id"`
	Title     string `json:"title"`
}

// Neighbor is a movie ranked by similarity to a query title.
// Rank is zero-based, 0 being the most similar movie after the query itself.
type Neighbor struct {
	Movie
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
}
