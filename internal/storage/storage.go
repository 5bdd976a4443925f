package storage

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

// Namespace prefixes keep the book's Polyglot entries and the tablebase
// probe cache in one database without key collisions.
const (
	NamespaceBook      byte = 'b'
	NamespaceTablebase byte = 't'
)

// Store wraps a badger database, namespacing every key by its collaborator
// so the book and tablebase cache can share one on-disk database.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// namespacedKey hashes ns and key together with xxhash into a fixed 9-byte
// badger key (1 namespace byte + 8 hash bytes), instead of concatenating
// namespace and raw key bytes directly — this keeps every key the same
// short width regardless of whether it's an 8-byte Polyglot position hash
// or a variable-length identifier.
func namespacedKey(ns byte, key []byte) []byte {
	h := xxhash.New()
	h.Write([]byte{ns})
	h.Write(key)

	out := make([]byte, 9)
	out[0] = ns
	binary.BigEndian.PutUint64(out[1:], h.Sum64())
	return out
}

// Get looks up key under namespace ns, returning (nil, false) on a miss.
func (s *Store) Get(ns byte, key []byte) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(namespacedKey(ns, key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

// Set stores value under namespace ns, key.
func (s *Store) Set(ns byte, key, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(namespacedKey(ns, key), value)
	})
}

// BatchSet writes every (key, value) pair under namespace ns in a single
// transaction, used by bulk loaders like the Polyglot book importer so a
// multi-megabyte book doesn't take one commit per entry.
func (s *Store) BatchSet(ns byte, entries map[string][]byte) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for key, value := range entries {
		if err := wb.Set(namespacedKey(ns, []byte(key)), value); err != nil {
			return err
		}
	}
	return wb.Flush()
}

// Has reports whether key exists under namespace ns, without fetching its
// value — used by the tablebase cache to skip an allocation on a miss.
func (s *Store) Has(ns byte, key []byte) bool {
	var found bool
	_ = s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(namespacedKey(ns, key))
		found = err == nil
		return nil
	})
	return found
}

// RunGC triggers badger's value-log garbage collection, logging (not
// failing) on the common "no rewrite needed" result.
func (s *Store) RunGC(discardRatio float64) {
	if err := s.db.RunValueLogGC(discardRatio); err != nil && err != badger.ErrNoRewrite {
		log.Warn().Err(err).Msg("tablebase/book store: value log GC failed")
	}
}
