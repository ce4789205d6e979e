// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides centralized configuration management for Reelmatch.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, config.yaml, config.yml,
    /etc/reelmatch/config.yaml, /etc/reelmatch/config.yml
 3. Environment variables (explicit mapping, unknown variables are ignored)

# Environment Variables

Catalog (TMDB):
  - TMDB_API_KEY: API credential (required)
  - CATALOG_BASE_URL: API base (default: https://api.themoviedb.org/3)
  - CATALOG_IMAGE_BASE_URL: poster base (default: https://image.tmdb.org/t/p/w500)
  - CATALOG_LANGUAGE: language query parameter (default: en-US)
  - CATALOG_TIMEOUT: per-request timeout (default: 10s)
  - CATALOG_FETCH_TIMEOUT: whole-lookup timeout across retries (default: 30s)
  - CATALOG_RPS, CATALOG_BURST: outbound rate limit (default: 20, 20)
  - CATALOG_MAX_RETRIES, CATALOG_RETRY_BASE_DELAY: HTTP 429 backoff (default: 3, 500ms)
  - CATALOG_MAX_RETRY_DELAY: cap on backoff and Retry-After (default: 5s)
  - CATALOG_LIST_WORKERS: metadata fetch workers for trending/top-rated (default: 5)
  - CATALOG_BREAKER_*: circuit breaker tuning

Artifacts:
  - MOVIES_PATH: movie list JSON (default: data/movies.json)
  - SIMILARITY_PATH: similarity matrix JSON (default: data/similarity.json)

Cache:
  - CACHE_BACKEND: memory or badger (default: memory)
  - CACHE_PATH: badger directory (default: /data/metadata)
  - CACHE_GC_INTERVAL: badger value log GC interval (default: 10m)

Recommendation:
  - RECOMMEND_TOP_K: neighbors per query (default: 5)
  - RECOMMEND_WORKERS: metadata fetch workers per query (default: 5)

Server and security:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Config is immutable after Load and safe for concurrent reads.
*/
package config
