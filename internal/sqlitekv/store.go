// Package sqlitekv implements the key/value storage backend on SQLite: a
// single blobs table keyed by storage key. It trades the filesystem
// backend's one-file-per-key layout for a single database file.
package sqlitekv

import (
	"database/sql"
	_ "embed"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// databaseFile is the SQLite file name under the data directory.
const databaseFile = "larder.db"

// Store satisfies types.Store over a SQLite blobs table.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (or creates) the database under dataDir and ensures the
// schema exists. A nil logger disables logging.
func Open(dataDir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, databaseFile))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, logger: logger}, nil
}

// Create upserts contents under key.
func (s *Store) Create(key, contents string) bool {
	_, err := s.db.Exec(
		`INSERT INTO blobs (key, contents) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET contents = excluded.contents`,
		key, contents)
	if err != nil {
		s.logger.Warn("create failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Read returns the contents under key, or "" when the row is absent or the
// query fails.
func (s *Store) Read(key string) string {
	var contents string
	err := s.db.QueryRow(`SELECT contents FROM blobs WHERE key = ?`, key).Scan(&contents)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("read failed", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return contents
}

// Update overwrites the contents under key. Same upsert as Create.
func (s *Store) Update(key, contents string) bool {
	return s.Create(key, contents)
}

// Delete removes the row and reports whether one was removed.
func (s *Store) Delete(key string) bool {
	res, err := s.db.Exec(`DELETE FROM blobs WHERE key = ?`, key)
	if err != nil {
		s.logger.Warn("delete failed", zap.String("key", key), zap.Error(err))
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		s.logger.Warn("delete rows affected", zap.String("key", key), zap.Error(err))
		return false
	}
	return n > 0
}

// Append concatenates contents onto the existing row, inserting the row if
// absent. The upsert makes the read-modify-write a single statement.
func (s *Store) Append(key, contents string) bool {
	_, err := s.db.Exec(
		`INSERT INTO blobs (key, contents) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET contents = blobs.contents || excluded.contents`,
		key, contents)
	if err != nil {
		s.logger.Warn("append failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
