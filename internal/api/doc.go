// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP interface of the recommendation service.

# Endpoints

All endpoints are GET and live under /api/v1 except /metrics and /swagger:

  - /api/v1/movies: every title the similarity index knows, in index order
  - /api/v1/recommendations?title=: similar movies with metadata
  - /api/v1/movies/trending: this week's trending movies
  - /api/v1/movies/top-rated: first page of top rated movies
  - /api/v1/browse?mode=recommend|trending|top-rated&title=: one entry point for all three lists
  - /api/v1/health/live, /api/v1/health/ready: probes
  - /metrics: Prometheus exposition
  - /swagger/*: Swagger UI, with the OpenAPI description at /swagger/doc.json

# Response Format

Every JSON response uses the APIResponse envelope:

	{
	    "success": true,
	    "data": {"mode": "trending", "items": [...], "count": 20, "empty": false},
	    "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 41}
	}

List payloads always carry a non-null items array. When it is empty the
payload also carries a warning suitable for display, for example
"No trending movies found.". Empty lists are not errors: the status is 200.

Items carry title, movie_id, poster_url (possibly empty), overview, excerpt
(first 150 characters of the overview followed by "...") and rating, which is
either a number or the string "N/A".

# Middleware

Global: request ID with logging context, real IP, panic recovery, CORS.
The /api/v1 group adds httprate limiting and Prometheus request metrics.
*/
package api
