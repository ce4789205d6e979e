// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics for Reelmatch.

All collectors are registered on the default registry via promauto and
exposed at /metrics:

	curl http://localhost:8501/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Catalog (TMDB):
  - catalog_requests_total{endpoint, outcome}
  - catalog_request_duration_seconds{endpoint}
  - catalog_rate_limited_total
  - catalog_degraded_total{reason}

Metadata cache:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}
  - cache_entries{cache_type}
  - cache_shared_fetches_total{cache_type}

Recommendations:
  - recommendation_duration_seconds
  - recommendation_not_found_total
  - similarity_index_movies

Circuit breaker:
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}
*/
package metrics
