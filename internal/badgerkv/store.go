// Package badgerkv implements the key/value storage backend on BadgerDB.
// It plays the role the filesystem backend plays on desktops for
// environments where a flat directory of files is impractical and an
// embedded KV store is the natural substrate.
package badgerkv

import (
	"errors"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"go.uber.org/zap"
)

// Store satisfies types.Store over a BadgerDB database. As with the other
// backends, errors collapse into the contract's sentinels and are logged.
type Store struct {
	db     *badger.DB
	logger *zap.Logger
}

// Open opens (or creates) a Badger database under dataDir. With inMemory
// set, no files are written; tests use this mode. A nil logger disables
// logging.
func Open(dataDir string, inMemory bool, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(dataDir)
	}
	opts.Logger = &badgerLogger{logger: logger.Named("badger")}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, logger: logger}, nil
}

// Create writes contents under key, overwriting any existing value.
func (s *Store) Create(key, contents string) bool {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(contents))
	})
	if err != nil {
		s.logger.Warn("create failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Read returns the value under key, or "" when absent or unreadable.
func (s *Store) Read(key string) string {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.logger.Warn("read failed", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return string(value)
}

// Update overwrites the value under key. Same as Create on a KV store.
func (s *Store) Update(key, contents string) bool {
	return s.Create(key, contents)
}

// Delete removes the key and reports whether a removal occurred.
func (s *Store) Delete(key string) bool {
	existed := false
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(key)); err != nil {
			return err
		}
		existed = true
		return txn.Delete([]byte(key))
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.logger.Warn("delete failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return existed
}

// Append appends contents to the value under key, creating it if absent.
// The read-modify-write runs in one Badger transaction.
func (s *Store) Append(key, contents string) bool {
	err := s.db.Update(func(txn *badger.Txn) error {
		var existing []byte
		item, err := txn.Get([]byte(key))
		switch {
		case err == nil:
			existing, err = item.ValueCopy(nil)
			if err != nil {
				return err
			}
		case errors.Is(err, badger.ErrKeyNotFound):
			// Create-if-absent.
		default:
			return err
		}
		return txn.Set([]byte(key), append(existing, contents...))
	})
	if err != nil {
		s.logger.Warn("append failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Close closes the underlying Badger database.
func (s *Store) Close() error {
	return s.db.Close()
}
