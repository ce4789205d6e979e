// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"context"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
)

// cacheType labels this cache in the shared cache metrics.
const cacheType = "metadata"

// Fetcher resolves metadata for one catalog ID. It never fails: lookup
// errors are reported as the degraded tuple.
type Fetcher interface {
	FetchOne(ctx context.Context, id int64) models.Metadata
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, id int64) models.Metadata

// FetchOne implements Fetcher.
func (f FetcherFunc) FetchOne(ctx context.Context, id int64) models.Metadata {
	return f(ctx, id)
}

// MetadataCache memoizes Fetcher results in a Store.
type MetadataCache struct {
	store   Store
	fetcher Fetcher
	group   singleflight.Group
}

// NewMetadataCache creates a cache that fills store from fetcher on miss.
func NewMetadataCache(store Store, fetcher Fetcher) *MetadataCache {
	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(store.Len()))
	return &MetadataCache{
		store:   store,
		fetcher: fetcher,
	}
}

// GetOrFetch returns the cached metadata for id, fetching and storing it on
// a miss. At most one fetch per id is in flight at a time.
//
// The fetch runs detached from ctx cancellation: its result is stored for
// every later caller, so one abandoned request must not pin a degraded tuple.
// The fetcher bounds it with its own fetch timeout.
func (c *MetadataCache) GetOrFetch(ctx context.Context, id int64) models.Metadata {
	if md, ok := c.lookup(ctx, id); ok {
		metrics.RecordCacheLookup(cacheType, true)
		return md
	}
	metrics.RecordCacheLookup(cacheType, false)

	v, _, shared := c.group.Do(strconv.FormatInt(id, 10), func() (interface{}, error) {
		// A previous flight may have stored the value after our lookup.
		if md, ok := c.lookup(ctx, id); ok {
			return md, nil
		}

		fetched := c.fetcher.FetchOne(context.WithoutCancel(ctx), id)

		stored, err := c.store.PutIfAbsent(id, fetched)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Int64("movie_id", id).Msg("Failed to store metadata, serving uncached")
			return fetched, nil
		}
		metrics.CacheSize.WithLabelValues(cacheType).Set(float64(c.store.Len()))
		return stored, nil
	})
	if shared {
		metrics.CacheSharedFetches.WithLabelValues(cacheType).Inc()
	}

	return v.(models.Metadata)
}

func (c *MetadataCache) lookup(ctx context.Context, id int64) (models.Metadata, bool) {
	md, ok, err := c.store.Get(id)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int64("movie_id", id).Msg("Metadata store read failed, treating as miss")
		return models.Metadata{}, false
	}
	return md, ok
}

// Len returns the number of cached entries.
func (c *MetadataCache) Len() int {
	return c.store.Len()
}
