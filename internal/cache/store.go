// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/models"
)

// ErrUnknownBackend is returned by NewStore for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown cache backend")

// Store persists metadata by catalog ID. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the stored metadata and whether it exists.
	Get(id int64) (models.Metadata, bool, error)

	// PutIfAbsent stores md unless id already has a value, and returns the
	// value that is stored after the call.
	PutIfAbsent(id int64, md models.Metadata) (models.Metadata, error)

	// Len returns the number of stored entries.
	Len() int

	// Close releases any resources held by the store.
	Close() error
}

// NewStore creates the Store selected by cfg.Backend.
func NewStore(cfg config.CacheConfig) (Store, error) {
	switch cfg.Backend {
	case config.CacheBackendMemory, "":
		return NewMemoryStore(), nil
	case config.CacheBackendBadger:
		return OpenBadgerStore(cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// MemoryStore is an in-process map guarded by a RWMutex.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[int64]models.Metadata
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[int64]models.Metadata)}
}

// Get implements Store.
func (s *MemoryStore) Get(id int64) (models.Metadata, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	md, ok := s.entries[id]
	return md, ok, nil
}

// PutIfAbsent implements Store.
func (s *MemoryStore) PutIfAbsent(id int64, md models.Metadata) (models.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entries[id]; ok {
		return existing, nil
	}
	s.entries[id] = md
	return md, nil
}

// Len implements Store.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
