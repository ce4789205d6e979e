// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"

	"github.com/tomtom215/reelmatch/internal/similarity"
)

// DefaultWorkers is the metadata fetch concurrency per recommendation.
const DefaultWorkers = 5

// Config contains the recommendation engine settings.
type Config struct {
	// TopK is the number of neighbors returned per title.
	TopK int `json:"top_k"`

	// Workers bounds concurrent metadata lookups within one request.
	Workers int `json:"workers"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		TopK:    similarity.DefaultNeighbors,
		Workers: DefaultWorkers,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be at least 1, got %d", c.TopK)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
