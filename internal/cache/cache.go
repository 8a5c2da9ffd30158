// Package cache persists search results keyed by grid content and search
// parameters, so repeated batch runs over the same puzzles skip the search.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Entry is the stored outcome of both search modes for one grid.
type Entry struct {
	Found        bool `json:"found"`
	MinimumCost  int  `json:"minimum_cost"`
	OptimalCells int  `json:"optimal_cells"`
}

// Store is a badger-backed result cache. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens or creates the cache in dir. An empty dir opens an in-memory
// store.
func Open(dir string) (*Store, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create cache directory %s: %w", dir, err)
		}
		opts = badger.DefaultOptions(dir)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open result cache: %w", err)
	}
	return &Store{db: db}, nil
}

// Key derives the cache key for a grid text and the parameters that affect
// its result.
func Key(gridText string, stepCost, turnCost int, facing string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d/%d/%s\n", stepCost, turnCost, facing)
	h.Write([]byte(gridText))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the entry stored under key. The boolean is false on a miss.
func (s *Store) Get(key string) (Entry, bool, error) {
	var entry Entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("read cache entry: %w", err)
	}
	return entry, true, nil
}

// Put stores entry under key, replacing any previous value.
func (s *Store) Put(key string, entry Entry) error {
	val, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
