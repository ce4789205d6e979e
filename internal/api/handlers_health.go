// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// @Summary Liveness check
// @Description Returns 200 while the process is alive, regardless of dependencies.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Ready means the similarity index is loaded with at least one movie. The
// catalog breaker state is reported but never fails readiness: an open
// breaker only degrades metadata.
//
// @Summary Readiness check
// @Description Ready once the similarity index holds at least one movie. Reports the catalog breaker state without failing on it.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Ready"
// @Failure 503 {object} APIResponse "Index empty"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	movies := 0
	if h.engine != nil {
		movies = len(h.engine.Titles())
	}
	ready := movies > 0

	body := map[string]interface{}{
		"ready":  ready,
		"movies": movies,
	}
	if br, ok := h.lists.(BreakerReporter); ok {
		body["catalog_breaker"] = br.BreakerState()
	}

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}
	body["status"] = status

	NewResponseWriter(w, r).Status(statusCode, body)
}
