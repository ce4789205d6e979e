// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// ExcerptLength is the number of overview characters shown before "...".
const ExcerptLength = 150

// Warnings shown when a list comes back empty.
const (
	WarningNoRecommendations = "No recommendations found or movie not recognized."
	WarningNoTrending        = "No trending movies found."
	WarningNoTopRated        = "No top-rated movies found."
)

var emptyWarnings = map[string]string{
	validation.ModeRecommend: WarningNoRecommendations,
	validation.ModeTrending:  WarningNoTrending,
	validation.ModeTopRated:  WarningNoTopRated,
}

// MovieView is one card of a movie list.
type MovieView struct {
	Title     string        `json:"title"`
	MovieID   int64         `json:"movie_id"`
	PosterURL string        `json:"poster_url"`
	Overview  string        `json:"overview"`
	Excerpt   string        `json:"excerpt"`
	Rating    models.Rating `json:"rating"`
	Score     *float64      `json:"score,omitempty"`
}

// ListView is the payload of every list endpoint.
type ListView struct {
	Mode    string      `json:"mode"`
	Items   []MovieView `json:"items"`
	Count   int         `json:"count"`
	Empty   bool        `json:"empty"`
	Warning string      `json:"warning,omitempty"`
}

// TitlesView is the payload of GET /api/v1/movies.
type TitlesView struct {
	Titles []string `json:"titles"`
	Count  int      `json:"count"`
}

func newListView(mode string, items []MovieView) ListView {
	if items == nil {
		items = []MovieView{}
	}
	view := ListView{
		Mode:  mode,
		Items: items,
		Count: len(items),
		Empty: len(items) == 0,
	}
	if view.Empty {
		view.Warning = emptyWarnings[mode]
	}
	return view
}

func recommendationView(rec *models.Recommendation) MovieView {
	score := rec.Score
	view := movieView(rec.Title, rec.CatalogID, rec.Metadata)
	view.Score = &score
	return view
}

func listEntryViews(entries []models.ListEntry) []MovieView {
	items := make([]MovieView, len(entries))
	for i := range entries {
		items[i] = movieView(entries[i].Title, entries[i].CatalogID, entries[i].Metadata)
	}
	return items
}

func movieView(title string, id int64, md models.Metadata) MovieView {
	return MovieView{
		Title:     title,
		MovieID:   id,
		PosterURL: md.PosterURL,
		Overview:  md.Overview,
		Excerpt:   excerpt(md.Overview),
		Rating:    md.Rating,
	}
}

// excerpt returns the first ExcerptLength characters of s followed by "...".
// The ellipsis is appended even to short overviews.
func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) > ExcerptLength {
		runes = runes[:ExcerptLength]
	}
	return string(runes) + "..."
}
