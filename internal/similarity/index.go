// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package similarity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tomtom215/reelmatch/internal/models"
)

// DefaultNeighbors is the number of neighbors returned per lookup.
const DefaultNeighbors = 5

var (
	// ErrEmptyIndex is returned when no movies are supplied.
	ErrEmptyIndex = errors.New("similarity: index has no movies")

	// ErrDimensionMismatch is returned when the matrix shape does not match the movie list.
	ErrDimensionMismatch = errors.New("similarity: matrix dimensions do not match movie count")
)

// candidate is a row of the query's similarity vector, ranked per request.
type candidate struct {
	row   int
	score float64
}

// Index is an immutable similarity space over an ordered movie list.
type Index struct {
	movies []models.Movie
	scores [][]float64
	byName map[string]int
}

// NewIndex validates the artifacts and builds an Index.
// The matrix must be square with one row per movie. Duplicate titles are
// allowed; lookups resolve to the first row carrying the title.
func NewIndex(movies []models.Movie, scores [][]float64) (*Index, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyIndex
	}
	if len(scores) != len(movies) {
		return nil, fmt.Errorf("%w: %d rows for %d movies", ErrDimensionMismatch, len(scores), len(movies))
	}
	for i, row := range scores {
		if len(row) != len(movies) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), len(movies))
		}
	}

	byName := make(map[string]int, len(movies))
	for i, m := range movies {
		if _, seen := byName[m.Title]; !seen {
			byName[m.Title] = i
		}
	}

	return &Index{
		movies: movies,
		scores: scores,
		byName: byName,
	}, nil
}

// Len returns the number of movies in the index.
func (idx *Index) Len() int {
	return len(idx.movies)
}

// Titles returns the movie titles in row order.
func (idx *Index) Titles() []string {
	titles := make([]string, len(idx.movies))
	for i, m := range idx.movies {
		titles[i] = m.Title
	}
	return titles
}

// Lookup returns the movie for the first row titled title.
func (idx *Index) Lookup(title string) (models.Movie, bool) {
	row, ok := idx.byName[title]
	if !ok {
		return models.Movie{}, false
	}
	return idx.movies[row], true
}

// Contains reports whether title is a known movie.
func (idx *Index) Contains(title string) bool {
	_, ok := idx.byName[title]
	return ok
}

// NeighborsOf returns up to k movies most similar to title, most similar first.
// The query row is never part of the result. Equal scores keep row order.
// Returns nil when title is unknown or k <= 0.
func (idx *Index) NeighborsOf(title string, k int) []models.Neighbor {
	row, ok := idx.byName[title]
	if !ok || k <= 0 {
		return nil
	}

	ranked := idx.rank(row)
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	neighbors := make([]models.Neighbor, len(ranked))
	for i, c := range ranked {
		neighbors[i] = models.Neighbor{
			Movie: idx.movies[c.row],
			Rank:  i,
			Score: c.score,
		}
	}
	return neighbors
}

// rank orders every row except the query by descending similarity.
func (idx *Index) rank(query int) []candidate {
	vector := idx.scores[query]
	ranked := make([]candidate, 0, len(vector)-1)
	for i, score := range vector {
		if i == query {
			continue
		}
		ranked = append(ranked, candidate{row: i, score: score})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})
	return ranked
}
