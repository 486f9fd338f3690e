// Package evalcache is an optional on-disk cache mapping a position key
// to a previously computed scaled NNUE evaluation, so a process that
// evaluates the same leaf repeatedly across runs (a perft-style
// regression harness, or a search engine restarted mid-analysis) can
// skip recomputing it. It is not part of the evaluator's required
// surface: callers wrap Evaluate/EvaluateWithChain with it explicitly,
// keeping the core evaluator free of hidden state beyond the loaded
// network.
package evalcache

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Cache wraps a BadgerDB instance storing 8-byte position keys mapped to
// 4-byte little-endian scaled evaluations.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) a cache database at dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("evalcache: open %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func keyBytes(key uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, key)
	return b
}

// Get returns the cached evaluation for key, if present.
func (c *Cache) Get(key uint64) (eval int32, found bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyBytes(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			if len(val) != 4 {
				return fmt.Errorf("evalcache: corrupt value for key %d", key)
			}
			eval = int32(binary.LittleEndian.Uint32(val))
			return nil
		})
	})
	return eval, found, err
}

// Put stores eval under key, overwriting any existing entry.
func (c *Cache) Put(key uint64, eval int32) error {
	val := make([]byte, 4)
	binary.LittleEndian.PutUint32(val, uint32(eval))
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyBytes(key), val)
	})
}
