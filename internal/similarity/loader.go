// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package similarity

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/models"
)

// LoadFiles reads the movie list and similarity matrix from disk and builds an Index.
func LoadFiles(moviesPath, similarityPath string) (*Index, error) {
	start := time.Now()

	moviesFile, err := os.Open(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("open movies artifact: %w", err)
	}
	defer moviesFile.Close()

	similarityFile, err := os.Open(similarityPath)
	if err != nil {
		return nil, fmt.Errorf("open similarity artifact: %w", err)
	}
	defer similarityFile.Close()

	idx, err := Load(moviesFile, similarityFile)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Int("movies", idx.Len()).
		Str("movies_path", moviesPath).
		Str("similarity_path", similarityPath).
		Dur("duration", time.Since(start)).
		Msg("Similarity index loaded")

	return idx, nil
}

// Load decodes the JSON artifacts from the given readers and builds an Index.
func Load(movies, similarity io.Reader) (*Index, error) {
	var list []models.Movie
	if err := json.NewDecoder(movies).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode movies artifact: %w", err)
	}

	var matrix [][]float64
	if err := json.NewDecoder(similarity).Decode(&matrix); err != nil {
		return nil, fmt.Errorf("decode similarity artifact: %w", err)
	}

	return NewIndex(list, matrix)
}
