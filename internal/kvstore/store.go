// ABOUTME: Badger-backed document store implementing the storage Repository.
// ABOUTME: Aggregates are stored as JSON documents under type-prefixed keys.
package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

const (
	BoatPrefix            = "boat:"
	RigTemplatePrefix     = "rigtpl:"
	RigLogPrefix          = "riglog:"
	ChecklistPrefix       = "check:"
	WorkoutTemplatePrefix = "wtpl:"
	SessionPrefix         = "session:"
)

// Store is a Badger-backed Repository. Each aggregate is one JSON
// document: rig logs embed their items, workout templates their metric
// templates, and sessions their metrics and summary.
type Store struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens or creates a Badger store at the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create badger directory: %w", err)
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying Badger database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// set stores a value with the given key.
func (s *Store) set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// delete removes a key.
func (s *Store) delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// listByPrefix returns all values with keys matching the given prefix.
func (s *Store) listByPrefix(prefix string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			results = append(results, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// getByIDPrefix retrieves a single value whose key starts with
// typePrefix+idPrefix. Errors when no match or more than one.
func (s *Store) getByIDPrefix(typePrefix, idPrefix string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(typePrefix + idPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			matches = append(matches, val)
			if len(matches) > 1 {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("not found: %s", idPrefix)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("ambiguous id %q matches multiple records", idPrefix)
	}
}

// resolveKeyByIDPrefix returns the full key matching typePrefix+idPrefix.
func (s *Store) resolveKeyByIDPrefix(typePrefix, idPrefix string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(typePrefix + idPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			matches = append(matches, string(it.Item().KeyCopy(nil)))
			if len(matches) > 1 {
				break
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("not found: %s", idPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous id %q matches multiple records", idPrefix)
	}
}

// deleteByIDPrefix removes the single record matching typePrefix+idPrefix.
func (s *Store) deleteByIDPrefix(typePrefix, idPrefix string) error {
	key, err := s.resolveKeyByIDPrefix(typePrefix, idPrefix)
	if err != nil {
		return err
	}
	return s.delete(key)
}

// deleteKeys removes a batch of keys in one transaction.
func (s *Store) deleteKeys(keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range keys {
		if err := wb.Delete([]byte(key)); err != nil {
			return err
		}
	}
	return wb.Flush()
}

func marshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalJSON[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
