// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/models"
)

// Key prefix for metadata entries in BadgerDB
const metadataKeyPrefix = "metadata:"

// BadgerStore is a Store backed by BadgerDB.
type BadgerStore struct {
	db    *badger.DB
	count atomic.Int64
}

// OpenBadgerStore opens (or creates) a BadgerDB at path. An empty path opens
// an in-memory database.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for metadata: %w", err)
	}
	return NewBadgerStore(db)
}

// NewBadgerStore wraps an open DB and counts existing entries.
func NewBadgerStore(db *badger.DB) (*BadgerStore, error) {
	s := &BadgerStore{db: db}

	var n int64
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(metadataKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("count metadata entries: %w", err)
	}
	s.count.Store(n)
	return s, nil
}

func metadataKey(id int64) []byte {
	return []byte(metadataKeyPrefix + strconv.FormatInt(id, 10))
}

// Get implements Store.
func (s *BadgerStore) Get(id int64) (models.Metadata, bool, error) {
	var md models.Metadata
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metadataKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get metadata: %w", err)
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &md)
		})
	})
	if err != nil {
		return models.Metadata{}, false, err
	}
	return md, found, nil
}

// PutIfAbsent implements Store. Conflicting writers are resolved by
// badger's optimistic transactions: the loser retries and reads the winner.
func (s *BadgerStore) PutIfAbsent(id int64, md models.Metadata) (models.Metadata, error) {
	data, err := json.Marshal(md)
	if err != nil {
		return models.Metadata{}, fmt.Errorf("marshal metadata: %w", err)
	}

	for {
		stored, inserted, err := s.putIfAbsent(id, md, data)
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil {
			return models.Metadata{}, err
		}
		if inserted {
			s.count.Add(1)
		}
		return stored, nil
	}
}

func (s *BadgerStore) putIfAbsent(id int64, md models.Metadata, data []byte) (models.Metadata, bool, error) {
	stored := md
	inserted := false

	err := s.db.Update(func(txn *badger.Txn) error {
		key := metadataKey(id)
		item, err := txn.Get(key)
		if err == nil {
			return item.Value(func(val []byte) error {
				return json.Unmarshal(val, &stored)
			})
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("get metadata: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set metadata: %w", err)
		}
		inserted = true
		return nil
	})
	if err != nil {
		return models.Metadata{}, false, err
	}
	return stored, inserted, nil
}

// Len implements Store.
func (s *BadgerStore) Len() int {
	return int(s.count.Load())
}

// RunGC reclaims value log space until badger reports nothing to rewrite.
func (s *BadgerStore) RunGC(discardRatio float64) error {
	for {
		err := s.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

var _ Store = (*BadgerStore)(nil)
