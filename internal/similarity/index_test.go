// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package similarity

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/reelmatch/internal/models"
)

// sevenMovieIndex builds the A..G fixture where A's row ranks B..G descending.
func sevenMovieIndex(t *testing.T) *Index {
	t.Helper()

	movies := []models.Movie{
		{CatalogID: 1, Title: "A"},
		{CatalogID: 2, Title: "B"},
		{CatalogID: 3, Title: "C"},
		{CatalogID: 4, Title: "D"},
		{CatalogID: 5, Title: "E"},
		{CatalogID: 6, Title: "F"},
		{CatalogID: 7, Title: "G"},
	}
	scores := [][]float64{
		{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.1},
		{0.9, 1.0, 0.2, 0.2, 0.2, 0.2, 0.2},
		{0.8, 0.2, 1.0, 0.3, 0.3, 0.3, 0.3},
		{0.7, 0.2, 0.3, 1.0, 0.4, 0.4, 0.4},
		{0.6, 0.2, 0.3, 0.4, 1.0, 0.5, 0.5},
		{0.5, 0.2, 0.3, 0.4, 0.5, 1.0, 0.6},
		{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 1.0},
	}

	idx, err := NewIndex(movies, scores)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	return idx
}

func neighborTitles(neighbors []models.Neighbor) []string {
	titles := make([]string, len(neighbors))
	for i, n := range neighbors {
		titles[i] = n.Title
	}
	return titles
}

func TestNeighborsOf_RanksByDescendingScore(t *testing.T) {
	idx := sevenMovieIndex(t)

	got := idx.NeighborsOf("A", DefaultNeighbors)
	want := []string{"B", "C", "D", "E", "F"}

	if strings.Join(neighborTitles(got), ",") != strings.Join(want, ",") {
		t.Fatalf("NeighborsOf(A) = %v, want %v", neighborTitles(got), want)
	}
	for i, n := range got {
		if n.Rank != i {
			t.Errorf("neighbor %d Rank = %d", i, n.Rank)
		}
	}
	if got[0].CatalogID != 2 || got[0].Score != 0.9 {
		t.Errorf("first neighbor = %+v, want B with score 0.9", got[0])
	}
}

func TestNeighborsOf_AllKnownTitlesExcludeSelf(t *testing.T) {
	idx := sevenMovieIndex(t)

	for _, title := range idx.Titles() {
		got := idx.NeighborsOf(title, DefaultNeighbors)
		if len(got) != DefaultNeighbors {
			t.Errorf("NeighborsOf(%s) returned %d neighbors, want %d", title, len(got), DefaultNeighbors)
		}
		for _, n := range got {
			if n.Title == title {
				t.Errorf("NeighborsOf(%s) contains the query itself", title)
			}
		}
	}
}

func TestNeighborsOf_UnknownTitle(t *testing.T) {
	idx := sevenMovieIndex(t)

	for _, title := range []string{"Unknown Movie", "", "a", " A"} {
		if got := idx.NeighborsOf(title, DefaultNeighbors); len(got) != 0 {
			t.Errorf("NeighborsOf(%q) = %v, want empty", title, got)
		}
	}
}

func TestNeighborsOf_TiesKeepRowOrder(t *testing.T) {
	movies := []models.Movie{
		{CatalogID: 10, Title: "Q"},
		{CatalogID: 11, Title: "R"},
		{CatalogID: 12, Title: "S"},
		{CatalogID: 13, Title: "T"},
	}
	scores := [][]float64{
		{1.0, 0.5, 0.5, 0.5},
		{0.5, 1.0, 0.0, 0.0},
		{0.5, 0.0, 1.0, 0.0},
		{0.5, 0.0, 0.0, 1.0},
	}
	idx, err := NewIndex(movies, scores)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	got := neighborTitles(idx.NeighborsOf("Q", 5))
	if strings.Join(got, ",") != "R,S,T" {
		t.Errorf("NeighborsOf(Q) = %v, want [R S T]", got)
	}
}

func TestNeighborsOf_SelfExcludedEvenWhenTied(t *testing.T) {
	movies := []models.Movie{
		{CatalogID: 1, Title: "X"},
		{CatalogID: 2, Title: "Y"},
	}
	scores := [][]float64{
		{1.0, 1.0},
		{1.0, 1.0},
	}
	idx, err := NewIndex(movies, scores)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	got := idx.NeighborsOf("Y", 5)
	if len(got) != 1 || got[0].Title != "X" {
		t.Errorf("NeighborsOf(Y) = %v, want [X]", neighborTitles(got))
	}
}

func TestNeighborsOf_DuplicateTitleFirstRowWins(t *testing.T) {
	movies := []models.Movie{
		{CatalogID: 100, Title: "Dup"},
		{CatalogID: 200, Title: "Other"},
		{CatalogID: 300, Title: "Dup"},
	}
	scores := [][]float64{
		{1.0, 0.9, 0.1},
		{0.9, 1.0, 0.2},
		{0.1, 0.2, 1.0},
	}
	idx, err := NewIndex(movies, scores)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	m, ok := idx.Lookup("Dup")
	if !ok || m.CatalogID != 100 {
		t.Errorf("Lookup(Dup) = %+v, %v; want catalog id 100", m, ok)
	}

	got := idx.NeighborsOf("Dup", 5)
	if len(got) != 2 || got[0].CatalogID != 200 || got[1].CatalogID != 300 {
		t.Errorf("NeighborsOf(Dup) = %+v, want [200 300]", got)
	}
}

func TestNeighborsOf_CapsAtK(t *testing.T) {
	idx := sevenMovieIndex(t)

	if got := idx.NeighborsOf("A", 2); len(got) != 2 {
		t.Errorf("NeighborsOf(A, 2) returned %d", len(got))
	}
	if got := idx.NeighborsOf("A", 0); got != nil {
		t.Errorf("NeighborsOf(A, 0) = %v, want nil", got)
	}
	if got := idx.NeighborsOf("A", 100); len(got) != 6 {
		t.Errorf("NeighborsOf(A, 100) returned %d, want 6", len(got))
	}
}

func TestNewIndex_Validation(t *testing.T) {
	two := []models.Movie{{CatalogID: 1, Title: "a"}, {CatalogID: 2, Title: "b"}}

	tests := []struct {
		name    string
		movies  []models.Movie
		scores  [][]float64
		wantErr error
	}{
		{"no movies", nil, nil, ErrEmptyIndex},
		{"row count mismatch", two, [][]float64{{1, 0}}, ErrDimensionMismatch},
		{"ragged row", two, [][]float64{{1, 0}, {0}}, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIndex(tt.movies, tt.scores)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewIndex() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	movies := `[{"movie_id": 19995, "title": "Avatar"}, {"movie_id": 285, "title": "Pirates"}, {"movie_id": 206647, "title": "Spectre"}]`
	matrix := `[[1.0, 0.2, 0.7], [0.2, 1.0, 0.1], [0.7, 0.1, 1.0]]`

	idx, err := Load(strings.NewReader(movies), strings.NewReader(matrix))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}

	got := idx.NeighborsOf("Avatar", 5)
	if len(got) != 2 || got[0].CatalogID != 206647 {
		t.Errorf("NeighborsOf(Avatar) = %+v", got)
	}
}

func TestLoad_MalformedArtifacts(t *testing.T) {
	if _, err := Load(strings.NewReader(`{`), strings.NewReader(`[]`)); err == nil {
		t.Error("expected error for malformed movies artifact")
	}
	if _, err := Load(strings.NewReader(`[{"movie_id":1,"title":"a"}]`), strings.NewReader(`nope`)); err == nil {
		t.Error("expected error for malformed similarity artifact")
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	moviesPath := filepath.Join(dir, "movies.json")
	similarityPath := filepath.Join(dir, "similarity.json")

	if err := os.WriteFile(moviesPath, []byte(`[{"movie_id":1,"title":"a"},{"movie_id":2,"title":"b"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(similarityPath, []byte(`[[1,0.5],[0.5,1]]`), 0o600); err != nil {
		t.Fatal(err)
	}

	idx, err := LoadFiles(moviesPath, similarityPath)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}
	if !idx.Contains("b") {
		t.Error("index should contain b")
	}

	if _, err := LoadFiles(filepath.Join(dir, "missing.json"), similarityPath); err == nil {
		t.Error("expected error for missing movies file")
	}
}
