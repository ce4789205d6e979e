// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tomtom215/reelmatch/internal/fanout"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/models"
)

// Resolver supplies metadata for a catalog ID. The metadata cache is the
// production implementation.
type Resolver interface {
	GetOrFetch(ctx context.Context, id int64) models.Metadata
}

// movieList is the paged list shape shared by trending and top-rated.
type movieList struct {
	Results *[]listItem `json:"results"`
}

type listItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// FetchTrending returns this week's trending movies in API order, with
// metadata resolved through resolver. Failures yield an empty list.
func (c *Client) FetchTrending(ctx context.Context, resolver Resolver) []models.ListEntry {
	return c.fetchList(ctx, resolver, endpointTrending, "/trending/movie/week", nil)
}

// FetchTopRated returns the first page of top-rated movies in API order,
// with metadata resolved through resolver. Failures yield an empty list.
func (c *Client) FetchTopRated(ctx context.Context, resolver Resolver) []models.ListEntry {
	params := url.Values{}
	params.Set("language", c.language)
	params.Set("page", "1")
	return c.fetchList(ctx, resolver, endpointTopRated, "/movie/top_rated", params)
}

func (c *Client) fetchList(ctx context.Context, resolver Resolver, endpoint, path string, params url.Values) []models.ListEntry {
	list, err := getJSON[movieList](ctx, c, endpoint, path, params)
	if err == nil && list.Results == nil {
		err = fmt.Errorf("%w: missing results", ErrMalformedResponse)
	}
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("endpoint", endpoint).
			Str("reason", degradeReason(err)).
			Msg("Catalog list request failed, returning empty list")
		return nil
	}

	items := make([]listItem, 0, len(*list.Results))
	for _, item := range *list.Results {
		if item.ID <= 0 {
			logging.Ctx(ctx).Debug().Str("endpoint", endpoint).Str("title", item.Title).Msg("Skipping list entry without catalog ID")
			continue
		}
		items = append(items, item)
	}

	return fanout.Map(ctx, items, c.listWorkers, func(ctx context.Context, item listItem) models.ListEntry {
		return models.ListEntry{
			Title:     item.Title,
			CatalogID: item.ID,
			Metadata:  resolver.GetOrFetch(ctx, item.ID),
		}
	})
}
