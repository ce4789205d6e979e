// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

import (
	"strconv"

	"github.com/goccy/go-json"
)

// Placeholder texts used when the catalog cannot provide an overview.
const (
	// OverviewMissing is used when the catalog answered but had no overview.
	OverviewMissing = "No description available."

	// OverviewUnavailable is used when the catalog lookup failed.
	OverviewUnavailable = "Description unavailable."

	// RatingUnknownText is how an unknown rating is rendered.
	RatingUnknownText = "N/A"
)

// Rating is a catalog vote average that may be unknown.
// The zero value is Unknown.
type Rating struct {
	value float64
	known bool
}

// KnownRating returns a Rating holding v.
func KnownRating(v float64) Rating {
	return Rating{value: v, known: true}
}

// UnknownRating returns a Rating with no value.
func UnknownRating() Rating {
	return Rating{}
}

// Value returns the rating and whether it is known.
func (r Rating) Value() (float64, bool) {
	return r.value, r.known
}

// IsKnown reports whether the rating carries a value.
func (r Rating) IsKnown() bool {
	return r.known
}

// String renders the rating as the catalog's number or "N/A".
func (r Rating) String() string {
	if !r.known {
		return RatingUnknownText
	}
	return strconv.FormatFloat(r.value, 'f', -1, 64)
}

// MarshalJSON encodes a known rating as a number and an unknown one as "N/A".
func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.known {
		return json.Marshal(RatingUnknownText)
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON accepts a number, null, or the "N/A" string.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err == nil {
		if v == nil {
			*r = UnknownRating()
		} else {
			*r = KnownRating(*v)
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = UnknownRating()
	return nil
}

// Metadata is the display triple resolved for a movie from the catalog.
type Metadata struct {
	PosterURL string `json:"poster_url"`
	Overview  string `json:"overview"`
	Rating    Rating `json:"rating"`
}

// DegradedMetadata is substituted whenever a catalog lookup fails.
func DegradedMetadata() Metadata {
	return Metadata{
		PosterURL: "",
		Overview:  OverviewUnavailable,
		Rating:    UnknownRating(),
	}
}

// IsDegraded reports whether m is the failed-lookup placeholder.
func (m Metadata) IsDegraded() bool {
	return m == DegradedMetadata()
}

// Recommendation is a similar movie together with its display metadata.
type Recommendation struct {
	Title     string  `json:"title"`
	CatalogID int64   `json:"movie_id"`
	Score     float64 `json:"score"`
	Metadata
}

// ListEntry is one movie of a catalog list (trending, top rated).
type ListEntry struct {
	Title     string `json:"title"`
	CatalogID int64  `json:"movie_id"`
	Metadata
}
