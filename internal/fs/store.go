// Package fs implements the filesystem storage backend: one flat file per
// key under a data directory. The filesystem is an afero.Fs so tests run
// against an in-memory filesystem.
package fs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Store satisfies types.Store over a directory of flat files. I/O failures
// collapse into the contract's bool/empty-string sentinels and are logged
// here, since the caller cannot see them.
type Store struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// New creates a Store rooted at dataDir on the given filesystem, creating
// the directory if needed. A nil logger disables logging.
func New(fsys afero.Fs, dataDir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := fsys.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &Store{fs: fsys, dir: dataDir, logger: logger}, nil
}

// Open creates a Store on the OS filesystem.
func Open(dataDir string, logger *zap.Logger) (*Store, error) {
	return New(afero.NewOsFs(), dataDir, logger)
}

// path maps a storage key to its file path. Keys are decimal hash strings,
// so no escaping is needed.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Create writes contents to the key's file, truncating any existing file.
func (s *Store) Create(key, contents string) bool {
	if err := afero.WriteFile(s.fs, s.path(key), []byte(contents), 0o644); err != nil {
		s.logger.Warn("create failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Read returns the key's file contents, or "" when the file is absent or
// unreadable.
func (s *Store) Read(key string) string {
	b, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read failed", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return string(b)
}

// Update overwrites the key's file. Identical to Create on a filesystem.
func (s *Store) Update(key, contents string) bool {
	return s.Create(key, contents)
}

// Delete removes the key's file and reports whether a removal occurred.
func (s *Store) Delete(key string) bool {
	if err := s.fs.Remove(s.path(key)); err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("delete failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return true
}

// Append appends contents to the key's file, creating it if absent.
func (s *Store) Append(key, contents string) bool {
	f, err := s.fs.OpenFile(s.path(key), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		s.logger.Warn("append open failed", zap.String("key", key), zap.Error(err))
		return false
	}
	defer f.Close()

	if _, err := f.WriteString(contents); err != nil {
		s.logger.Warn("append write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Close releases nothing; the OS filesystem needs no teardown. Present so
// every backend satisfies the store factory's closable contract.
func (s *Store) Close() error { return nil }
