// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/similarity"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// app holds the wired components of a running server.
type app struct {
	cfg      *config.Config
	store    cache.Store
	metadata *cache.MetadataCache
	client   *catalog.Client
	engine   *recommend.Engine
	handler  http.Handler
}

// newApp loads the artifacts and wires cache, catalog, engine and router.
// The caller owns the returned app and must Close it.
func newApp(cfg *config.Config) (*app, error) {
	index, err := similarity.LoadFiles(cfg.Artifacts.MoviesPath, cfg.Artifacts.SimilarityPath)
	if err != nil {
		return nil, fmt.Errorf("load artifacts: %w", err)
	}

	store, err := cache.NewStore(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("open metadata cache: %w", err)
	}

	client := catalog.NewClient(&cfg.Catalog)
	metadata := cache.NewMetadataCache(store, client)

	engine, err := recommend.NewEngine(index, metadata, &recommend.Config{
		TopK:    cfg.Recommend.TopK,
		Workers: cfg.Recommend.Workers,
	}, logging.Logger())
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create engine: %w", err)
	}

	handler := api.NewHandler(engine, client, metadata)
	chiMW := api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security))
	router := api.NewRouter(handler, chiMW)

	return &app{
		cfg:      cfg,
		store:    store,
		metadata: metadata,
		client:   client,
		engine:   engine,
		handler:  router.SetupChi(),
	}, nil
}

// supervise registers the app's long-running services with tree.
func (a *app) supervise(tree *supervisor.SupervisorTree) {
	if gc, ok := a.store.(services.GarbageCollector); ok {
		tree.AddDataService(services.NewCacheGCService(gc, a.cfg.Cache.GCInterval, a.cfg.Cache.GCDiscardRatio))
		logging.Info().Dur("interval", a.cfg.Cache.GCInterval).Msg("Metadata cache GC service added")
	}

	server := &http.Server{
		Addr:              a.cfg.Server.Addr(),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       a.cfg.Server.Timeout,
		WriteTimeout:      a.cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")
}

// Close releases the metadata store.
func (a *app) Close() error {
	return a.store.Close()
}
