// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package similarity holds the precomputed movie similarity space.
//
// An Index pairs an ordered list of movies with an N x N matrix of pairwise
// similarity scores whose rows and columns follow the same order. The index
// is built once at startup from two JSON artifacts and never mutated again,
// so lookups from concurrent requests need no locking.
//
// # Artifacts
//
// movies.json holds the ordered movie list:
//
//	[{"movie_id": 19995, "title": "Avatar"}, {"movie_id": 285, "title": "Pirates of the Caribbean: At World's End"}]
//
// similarity.json holds the matrix, one array per row:
//
//	[[1.0, 0.12], [0.12, 1.0]]
//
// # Lookup
//
// NeighborsOf finds the first row whose title matches exactly, ranks every
// other row by descending score (ties keep row order) and returns the top k.
// An unknown title yields an empty result rather than an error.
package similarity
