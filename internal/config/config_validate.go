// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateArtifacts(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	if err := validateHTTPURL(c.Catalog.BaseURL, "CATALOG_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.Catalog.ImageBaseURL, "CATALOG_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if strings.TrimSpace(c.Catalog.APIKey) == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT must be positive, got %v", c.Catalog.Timeout)
	}
	if c.Catalog.RequestsPerSecond <= 0 {
		return fmt.Errorf("CATALOG_RPS must be positive, got %v", c.Catalog.RequestsPerSecond)
	}
	if c.Catalog.Burst < 1 {
		return fmt.Errorf("CATALOG_BURST must be at least 1, got %d", c.Catalog.Burst)
	}
	if c.Catalog.ListWorkers < 1 {
		return fmt.Errorf("CATALOG_LIST_WORKERS must be at least 1, got %d", c.Catalog.ListWorkers)
	}
	if c.Catalog.MaxRetries < 0 {
		return fmt.Errorf("CATALOG_MAX_RETRIES cannot be negative, got %d", c.Catalog.MaxRetries)
	}
	if c.Catalog.MaxRetryDelay <= 0 {
		return fmt.Errorf("CATALOG_MAX_RETRY_DELAY must be positive, got %v", c.Catalog.MaxRetryDelay)
	}
	if c.Catalog.FetchTimeout < c.Catalog.Timeout {
		return fmt.Errorf("CATALOG_FETCH_TIMEOUT (%v) must be at least CATALOG_TIMEOUT (%v)",
			c.Catalog.FetchTimeout, c.Catalog.Timeout)
	}
	return c.validateBreaker()
}

func (c *Config) validateBreaker() error {
	b := c.Catalog.Breaker
	if b.MaxRequests == 0 {
		return fmt.Errorf("CATALOG_BREAKER_MAX_REQUESTS must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("CATALOG_BREAKER_TIMEOUT must be positive, got %v", b.Timeout)
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("CATALOG_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", b.FailureRatio)
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	if c.Artifacts.MoviesPath == "" {
		return fmt.Errorf("MOVIES_PATH is required")
	}
	if c.Artifacts.SimilarityPath == "" {
		return fmt.Errorf("SIMILARITY_PATH is required")
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case CacheBackendMemory:
		return nil
	case CacheBackendBadger:
		if c.Cache.Path == "" {
			return fmt.Errorf("CACHE_PATH is required when CACHE_BACKEND=badger")
		}
		if c.Cache.GCInterval <= 0 {
			return fmt.Errorf("CACHE_GC_INTERVAL must be positive, got %v", c.Cache.GCInterval)
		}
		if c.Cache.GCDiscardRatio <= 0 || c.Cache.GCDiscardRatio >= 1 {
			return fmt.Errorf("CACHE_GC_DISCARD_RATIO must be in (0, 1), got %v", c.Cache.GCDiscardRatio)
		}
		return nil
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, badger, got %q", c.Cache.Backend)
	}
}

func (c *Config) validateRecommend() error {
	if c.Recommend.TopK < 1 {
		return fmt.Errorf("RECOMMEND_TOP_K must be at least 1, got %d", c.Recommend.TopK)
	}
	if c.Recommend.Workers < 1 {
		return fmt.Errorf("RECOMMEND_WORKERS must be at least 1, got %d", c.Recommend.Workers)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
