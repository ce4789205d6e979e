// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// GarbageCollector is satisfied by *cache.BadgerStore.
type GarbageCollector interface {
	RunGC(discardRatio float64) error
}

// CacheGCService runs value-log garbage collection on the persistent
// metadata cache every interval. GC errors are logged and do not restart
// the service.
type CacheGCService struct {
	gc           GarbageCollector
	interval     time.Duration
	discardRatio float64
	name         string
}

// NewCacheGCService creates the GC loop. A non-positive interval defaults to
// 10 minutes and a discard ratio outside (0, 1) defaults to 0.5.
func NewCacheGCService(gc GarbageCollector, interval time.Duration, discardRatio float64) *CacheGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = 0.5
	}
	return &CacheGCService{
		gc:           gc,
		interval:     interval,
		discardRatio: discardRatio,
		name:         "cache-gc",
	}
}

// Serve implements suture.Service.
func (s *CacheGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.collect()
		}
	}
}

func (s *CacheGCService) collect() {
	start := time.Now()
	if err := s.gc.RunGC(s.discardRatio); err != nil {
		logging.Warn().Err(err).Msg("Metadata cache GC failed")
		return
	}
	logging.Debug().Dur("duration", time.Since(start)).Msg("Metadata cache GC completed")
}

// String implements fmt.Stringer.
func (s *CacheGCService) String() string {
	return s.name
}
