// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// Recommender produces recommendations for a title.
type Recommender interface {
	Recommend(ctx context.Context, title string) []models.Recommendation
	Titles() []string
}

// ListSource fetches the catalog's curated lists.
type ListSource interface {
	FetchTrending(ctx context.Context, resolver catalog.Resolver) []models.ListEntry
	FetchTopRated(ctx context.Context, resolver catalog.Resolver) []models.ListEntry
}

// BreakerReporter exposes the catalog circuit breaker state.
type BreakerReporter interface {
	BreakerState() string
}

// Handler serves the movie endpoints.
type Handler struct {
	engine    Recommender
	lists     ListSource
	resolver  catalog.Resolver
	startTime time.Time
}

// NewHandler creates a handler. lists and resolver may be nil, in which case
// the list endpoints answer with empty lists.
func NewHandler(engine Recommender, lists ListSource, resolver catalog.Resolver) *Handler {
	return &Handler{
		engine:    engine,
		lists:     lists,
		resolver:  resolver,
		startTime: time.Now(),
	}
}

// Movies handles GET /api/v1/movies.
//
// @Summary List known titles
// @Description Returns every title in the similarity index, in index order.
// @Tags Movies
// @Produce json
// @Success 200 {object} APIResponse{data=TitlesView} "Known titles"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	var titles []string
	if h.engine != nil {
		titles = h.engine.Titles()
	}
	if titles == nil {
		titles = []string{}
	}

	NewResponseWriter(w, r).Success(TitlesView{
		Titles: titles,
		Count:  len(titles),
	})
}

// Recommendations handles GET /api/v1/recommendations?title=.
//
// @Summary Recommend similar movies
// @Description The recommend.top_k movies most similar to title, best first. An unknown title yields an empty list with a warning.
// @Tags Movies
// @Produce json
// @Param title query string true "Exact movie title" maxlength(500)
// @Success 200 {object} APIResponse{data=ListView} "Recommendations, possibly empty with a warning"
// @Failure 400 {object} APIResponse "Missing or overlong title"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	req := validation.RecommendationsRequest{Title: r.URL.Query().Get("title")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	NewResponseWriter(w, r).Success(h.recommend(r.Context(), req.Title))
}

// Trending handles GET /api/v1/movies/trending.
//
// @Summary Trending movies
// @Description First page of TMDB's weekly trending movies, each with cached metadata.
// @Tags Movies
// @Produce json
// @Success 200 {object} APIResponse{data=ListView} "List, possibly empty with a warning"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Router /movies/trending [get]
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.trending(r.Context()))
}

// TopRated handles GET /api/v1/movies/top-rated.
//
// @Summary Top rated movies
// @Description First page of TMDB's top rated movies, each with cached metadata.
// @Tags Movies
// @Produce json
// @Success 200 {object} APIResponse{data=ListView} "List, possibly empty with a warning"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Router /movies/top-rated [get]
func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.topRated(r.Context()))
}

// Browse handles GET /api/v1/browse?mode=&title=, dispatching on mode.
//
// @Summary Browse by mode
// @Description Single entry point for the three list views. mode=recommend requires title.
// @Tags Movies
// @Produce json
// @Param mode query string true "List to show" Enums(recommend, trending, top-rated)
// @Param title query string false "Exact movie title, required when mode=recommend" maxlength(500)
// @Success 200 {object} APIResponse{data=ListView} "List, possibly empty with a warning"
// @Failure 400 {object} APIResponse "Invalid mode or missing title"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Router /browse [get]
func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := validation.BrowseRequest{
		Mode:  query.Get("mode"),
		Title: query.Get("title"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	var view ListView
	switch req.Mode {
	case validation.ModeRecommend:
		view = h.recommend(r.Context(), req.Title)
	case validation.ModeTrending:
		view = h.trending(r.Context())
	case validation.ModeTopRated:
		view = h.topRated(r.Context())
	}

	NewResponseWriter(w, r).Success(view)
}

func (h *Handler) recommend(ctx context.Context, title string) ListView {
	var recs []models.Recommendation
	if h.engine != nil {
		recs = h.engine.Recommend(ctx, title)
	}

	items := make([]MovieView, len(recs))
	for i := range recs {
		items[i] = recommendationView(&recs[i])
	}

	view := newListView(validation.ModeRecommend, items)
	if view.Empty {
		logging.Ctx(ctx).Info().
			Str("title", sanitizeLogValue(title)).
			Msg("No recommendations for title")
	}
	return view
}

func (h *Handler) trending(ctx context.Context) ListView {
	var entries []models.ListEntry
	if h.lists != nil && h.resolver != nil {
		entries = h.lists.FetchTrending(ctx, h.resolver)
	}
	return newListView(validation.ModeTrending, listEntryViews(entries))
}

func (h *Handler) topRated(ctx context.Context) ListView {
	var entries []models.ListEntry
	if h.lists != nil && h.resolver != nil {
		entries = h.lists.FetchTopRated(ctx, h.resolver)
	}
	return newListView(validation.ModeTopRated, listEntryViews(entries))
}
