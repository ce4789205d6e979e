// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Reelmatch API annotations, read by swag to build the docs package.
//
// @title Reelmatch API
// @version 1.0
// @description Content-based movie recommendations with live TMDB metadata.
// @description
// @description ## Degraded metadata
// @description
// @description Catalog lookups never fail a request. When TMDB is slow, rate limited or
// @description unavailable, a movie is served with an empty poster_url, the placeholder
// @description overview "Description unavailable." and the rating "N/A".
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "title is required"
// @description   },
// @description   "meta": {
// @description     "timestamp": "2026-01-01T12:00:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelmatch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Movies
// @tag.description Title list, recommendations and TMDB curated lists
//
// @tag.name Core
// @tag.description Liveness and readiness checks
package main
