// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package cache memoizes catalog metadata by catalog ID for the life of the process.

MetadataCache sits in front of a Fetcher (the catalog client). A hit returns
the stored tuple without I/O; a miss fetches, stores and returns. Degraded
tuples from failed lookups are stored like any other result, so a movie whose
lookup failed keeps its placeholder until restart.

Entries are never evicted or invalidated. Concurrent misses for the same ID
are collapsed into a single fetch and the first stored value wins.

Two Store backends exist:
  - memory: a mutex-guarded map (default)
  - badger: BadgerDB on disk, so metadata survives restarts

Usage:

	store, err := cache.NewStore(cfg.Cache)
	if err != nil {
	    return err
	}
	defer store.Close()

	metadata := cache.NewMetadataCache(store, catalogClient)
	md := metadata.GetOrFetch(ctx, 19995)
*/
package cache
