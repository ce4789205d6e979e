// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package models defines the value types shared across Reelmatch packages.
//
// Types fall into three groups:
//
//   - Precomputed artifacts: Movie (one row of the similarity space)
//   - Catalog metadata: Metadata and Rating (display fields resolved from TMDB)
//   - Results: Recommendation and ListEntry (what the API hands to clients)
//
// All types are immutable values once constructed and safe to share between
// goroutines without synchronization.
package models
