// Package store selects and opens a storage backend from a types.Config.
// Implementations live under internal/; this package is the only public way
// to construct them.
package store

import (
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/internal/badgerkv"
	"github.com/mesh-intelligence/larder/internal/fs"
	"github.com/mesh-intelligence/larder/internal/sqlitekv"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// Store is a closable blob store. The repository engine only borrows the
// types.Store part; whoever called Open owns Close.
type Store interface {
	types.Store
	io.Closer
}

// Open validates cfg and opens the selected backend rooted at cfg.DataDir.
// A nil logger disables backend logging.
//
// Example:
//
//	st, err := store.Open(types.Config{
//	    Backend: types.BackendFS,
//	    DataDir: ".larder-db",
//	}, nil)
//	defer st.Close()
func Open(cfg types.Config, logger *zap.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendFS:
		return fs.Open(cfg.DataDir, logger)
	case types.BackendBadger:
		return badgerkv.Open(cfg.DataDir, false, logger)
	case types.BackendSQLite:
		return sqlitekv.Open(cfg.DataDir, logger)
	default:
		return nil, types.ErrBackendUnknown
	}
}
