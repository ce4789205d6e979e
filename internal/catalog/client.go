// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
)

// Endpoint labels used in logs and metrics.
const (
	endpointDetails  = "details"
	endpointTrending = "trending"
	endpointTopRated = "top_rated"
)

// breakerName identifies the catalog breaker in metrics.
const breakerName = "tmdb-api"

// Client talks to the TMDB v3 API. Safe for concurrent use.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	language     string

	client         *http.Client
	fetchTimeout   time.Duration // Bound on one lookup across all attempts; 0 disables
	limiter        *rate.Limiter
	maxRetries     int           // Maximum retries for rate limiting
	retryBaseDelay time.Duration // Base delay for exponential backoff
	maxRetryDelay  time.Duration // Cap on any single wait; 0 disables
	listWorkers    int

	cb *gobreaker.CircuitBreaker[interface{}]
}

// NewClient creates a TMDB client from cfg.
func NewClient(cfg *config.CatalogConfig) *Client {
	listWorkers := cfg.ListWorkers
	if listWorkers < 1 {
		listWorkers = 1
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		apiKey:       cfg.APIKey,
		language:     cfg.Language,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		fetchTimeout:   cfg.FetchTimeout,
		limiter:        rate.NewLimiter(limit, burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
		maxRetryDelay:  cfg.MaxRetryDelay,
		listWorkers:    listWorkers,
		cb:             newCircuitBreaker(breakerName, cfg.Breaker),
	}
}

// movieDetails is the subset of GET /movie/{id} used for display.
// Pointers distinguish absent or null fields from zero values.
type movieDetails struct {
	PosterPath  *string  `json:"poster_path"`
	Overview    *string  `json:"overview"`
	VoteAverage *float64 `json:"vote_average"`
}

// FetchOne returns the display metadata for a movie, or the degraded tuple
// if the lookup fails for any reason.
func (c *Client) FetchOne(ctx context.Context, id int64) models.Metadata {
	params := url.Values{}
	params.Set("language", c.language)

	details, err := getJSON[movieDetails](ctx, c, endpointDetails, "/movie/"+strconv.FormatInt(id, 10), params)
	if err != nil {
		reason := degradeReason(err)
		metrics.CatalogDegraded.WithLabelValues(reason).Inc()
		logging.Ctx(ctx).Warn().
			Err(err).
			Int64("movie_id", id).
			Str("reason", reason).
			Msg("Catalog lookup failed, using degraded metadata")
		return models.DegradedMetadata()
	}

	return c.toMetadata(details)
}

func (c *Client) toMetadata(d *movieDetails) models.Metadata {
	md := models.Metadata{
		Overview: models.OverviewMissing,
		Rating:   models.UnknownRating(),
	}
	if d.PosterPath != nil && *d.PosterPath != "" {
		md.PosterURL = c.imageBaseURL + *d.PosterPath
	}
	if d.Overview != nil {
		md.Overview = *d.Overview
	}
	if d.VoteAverage != nil {
		md.Rating = models.KnownRating(*d.VoteAverage)
	}
	return md
}

// BreakerState returns the circuit breaker state: closed, half-open or open.
func (c *Client) BreakerState() string {
	return stateToString(c.cb.State())
}

// degradeReason classifies a lookup failure for metrics and logs.
func degradeReason(err error) string {
	var statusErr *StatusError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open"
	case errors.As(err, &statusErr):
		return "status"
	case errors.Is(err, ErrMalformedResponse):
		return "decode"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "transport"
	}
}
