// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/fanout"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/similarity"
)

// ErrNilIndex is returned by NewEngine without a similarity index.
var ErrNilIndex = errors.New("similarity index is required")

// ErrNilResolver is returned by NewEngine without a metadata resolver.
var ErrNilResolver = errors.New("metadata resolver is required")

// Resolver supplies display metadata for a catalog ID and never fails.
type Resolver interface {
	GetOrFetch(ctx context.Context, id int64) models.Metadata
}

// Engine produces recommendations. It is safe for concurrent use; the index
// is read-only and the Resolver handles its own synchronization.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	index    *similarity.Index
	resolver Resolver

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Movies   int   `json:"movies"`
	Requests int64 `json:"requests"`
	NotFound int64 `json:"not_found"`
}

// NewEngine creates a recommendation engine over index, resolving metadata through resolver.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(index *similarity.Index, resolver Resolver, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if index == nil {
		return nil, ErrNilIndex
	}
	if resolver == nil {
		return nil, ErrNilResolver
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	metrics.SimilarityIndexMovies.Set(float64(index.Len()))

	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		index:    index,
		resolver: resolver,
	}, nil
}

// Recommend returns up to TopK movies similar to title, most similar first,
// each with its metadata. An unknown title yields an empty result without
// any metadata lookups.
func (e *Engine) Recommend(ctx context.Context, title string) []models.Recommendation {
	start := time.Now()
	e.requestCount.Add(1)

	neighbors := e.index.NeighborsOf(title, e.config.TopK)
	if len(neighbors) == 0 {
		e.notFoundCount.Add(1)
		metrics.RecordRecommendation(time.Since(start), false)
		e.logger.Debug().
			Str("request_id", logging.RequestIDFromContext(ctx)).
			Str("title", title).
			Msg("Title not in similarity index")
		return nil
	}

	recs := fanout.Map(ctx, neighbors, e.config.Workers, func(ctx context.Context, n models.Neighbor) models.Recommendation {
		return models.Recommendation{
			Title:     n.Title,
			CatalogID: n.CatalogID,
			Score:     n.Score,
			Metadata:  e.resolver.GetOrFetch(ctx, n.CatalogID),
		}
	})

	duration := time.Since(start)
	metrics.RecordRecommendation(duration, true)
	e.logger.Debug().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("title", title).
		Int("count", len(recs)).
		Dur("duration", duration).
		Msg("Recommendations resolved")

	return recs
}

// Titles returns every known title in index order.
func (e *Engine) Titles() []string {
	return e.index.Titles()
}

// Known reports whether title can be recommended from.
func (e *Engine) Known(title string) bool {
	return e.index.Contains(title)
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Movies:   e.index.Len(),
		Requests: e.requestCount.Load(),
		NotFound: e.notFoundCount.Load(),
	}
}
