// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package puzzle

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key prefixes for BadgerDB storage.
const (
	puzzleKeyPrefix = "puzzle:"
	recentKeyPrefix = "recent:"
)

// Store is the persistence contract for daily puzzle state: all generated
// puzzles plus the recent-use date per actor. A store failure never blocks
// puzzle selection; the selector keeps state in memory. A pick whose write
// failed is not written again: later picks persist only their own entries.
type Store interface {
	// Load rehydrates all puzzles and recent-actor entries.
	Load() (puzzles map[string]Puzzle, recent map[string]string, err error)

	// Record persists one pick atomically: the puzzle, the recent-use dates
	// for its two actors, and the removal of expired recent entries.
	Record(key string, p Puzzle, recent map[string]string, expired []string) error

	Close() error
}

// BadgerStore implements Store on BadgerDB for durable puzzle state across
// restarts.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) the puzzle-state database at dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open puzzle state store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStore wraps an already-open BadgerDB handle.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Load implements Store.
func (s *BadgerStore) Load() (map[string]Puzzle, map[string]string, error) {
	puzzles := make(map[string]Puzzle)
	recent := make(map[string]string)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())
			switch {
			case strings.HasPrefix(key, puzzleKeyPrefix):
				var p Puzzle
				if err := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &p)
				}); err != nil {
					return fmt.Errorf("decode puzzle %s: %w", key, err)
				}
				puzzles[strings.TrimPrefix(key, puzzleKeyPrefix)] = p
			case strings.HasPrefix(key, recentKeyPrefix):
				if err := item.Value(func(val []byte) error {
					recent[strings.TrimPrefix(key, recentKeyPrefix)] = string(val)
					return nil
				}); err != nil {
					return fmt.Errorf("read recent entry %s: %w", key, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return puzzles, recent, nil
}

// Record implements Store.
func (s *BadgerStore) Record(key string, p Puzzle, recent map[string]string, expired []string) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal puzzle: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(puzzleKeyPrefix+key), data); err != nil {
			return fmt.Errorf("set puzzle: %w", err)
		}
		for actorID, usedDate := range recent {
			if err := txn.Set([]byte(recentKeyPrefix+actorID), []byte(usedDate)); err != nil {
				return fmt.Errorf("set recent actor: %w", err)
			}
		}
		for _, actorID := range expired {
			if err := txn.Delete([]byte(recentKeyPrefix + actorID)); err != nil {
				return fmt.Errorf("delete expired actor: %w", err)
			}
		}
		return nil
	})
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
