// Package perftcache stores perft node counts in BadgerDB so repeated runs
// of the perft tool can skip positions they have already counted.
package perftcache

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// ErrCorrupt is returned when a stored count is not eight bytes long.
var ErrCorrupt = errors.New("perftcache: corrupt entry")

// Cache wraps BadgerDB for perft results.
type Cache struct {
	db *badger.DB
}

// Open opens the cache in dir. An empty dir keeps the cache in memory.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("perftcache: open %q: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close closes the database
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func key(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("perft/%d/%s", depth, fen))
}

// Get returns the stored node count for fen at depth. ok is false on a miss.
func (c *Cache) Get(fen string, depth int) (nodes uint64, ok bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(fen, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("%w: %s depth %d has %d bytes", ErrCorrupt, fen, depth, len(val))
			}
			nodes = binary.BigEndian.Uint64(val)
			ok = true
			return nil
		})
	})
	return nodes, ok, err
}

// Put stores the node count for fen at depth.
func (c *Cache) Put(fen string, depth int, nodes uint64) error {
	var val [8]byte
	binary.BigEndian.PutUint64(val[:], nodes)
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(fen, depth), val[:])
	})
}
