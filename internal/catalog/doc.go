// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package catalog is the TMDB API client.

FetchOne resolves the display metadata (poster URL, overview, rating) of a
single movie. It never returns an error: any failure, whether transport,
non-2xx status, malformed JSON or an open circuit breaker, yields
models.DegradedMetadata() and a warning log.

FetchTrending and FetchTopRated read the weekly trending list and the first
page of the top-rated list, then resolve each entry's metadata through a
Resolver (normally the metadata cache) while preserving API order. A failed
list request yields an empty list.

Every request passes through, in order:
  - a token bucket limiter (golang.org/x/time/rate)
  - a circuit breaker (sony/gobreaker) shared by all endpoints
  - HTTP 429 retries with exponential backoff, honoring Retry-After
  - the http.Client timeout
*/
package catalog
