// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	_ "github.com/tomtom215/reelmatch/docs"
)

type swaggerDoc struct {
	BasePath string                                `json:"basePath"`
	Paths    map[string]map[string]json.RawMessage `json:"paths"`
}

func fetchSwaggerDoc(t *testing.T, h http.Handler) swaggerDoc {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/swagger/doc.json status = %d, body %s", w.Code, w.Body.String())
	}
	var doc swaggerDoc
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal(doc.json) error = %v", err)
	}
	return doc
}

func TestRouter_SwaggerDoc(t *testing.T) {
	h, _ := newTestServer(t)

	doc := fetchSwaggerDoc(t, h)
	if doc.BasePath != "/api/v1" {
		t.Errorf("basePath = %q, want /api/v1", doc.BasePath)
	}
	if _, ok := doc.Paths["/recommendations"]["get"]; !ok {
		t.Error("doc.json should describe GET /recommendations")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "swagger-ui") {
		t.Errorf("/swagger/index.html = %d", w.Code)
	}
}

func TestRouter_SwaggerDocCoversRoutes(t *testing.T) {
	h, _ := newTestServer(t)
	doc := fetchSwaggerDoc(t, h)

	routes, ok := h.(chi.Routes)
	if !ok {
		t.Fatalf("SetupChi() returned %T, want chi.Routes", h)
	}
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path, found := strings.CutPrefix(route, "/api/v1")
		if !found {
			return nil
		}
		if _, ok := doc.Paths[path][strings.ToLower(method)]; !ok {
			t.Errorf("%s %s is routed but not documented", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk() error = %v", err)
	}
}
