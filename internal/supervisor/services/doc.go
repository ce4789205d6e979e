// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package services adapts long-running components to suture.Service.
//
// Each wrapper translates a component's own lifecycle into the
// Serve(ctx) error contract: block until ctx is canceled, return an error to
// request a restart.
//
//   - HTTPServerService: ListenAndServe/Shutdown of an *http.Server
//   - CacheGCService: periodic value-log garbage collection of the badger cache
package services
