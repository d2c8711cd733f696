// Shared helpers for larder CLI commands.
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/internal/paths"
	"github.com/mesh-intelligence/larder/pkg/repo"
	"github.com/mesh-intelligence/larder/pkg/store"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// resolveBackend returns the backend name following flag > config.yaml >
// default precedence.
func resolveBackend() string {
	if flagBackend != "" {
		return flagBackend
	}
	if configBackend != "" {
		return configBackend
	}
	return types.BackendFS
}

// openDocuments opens the configured backend and binds a Document
// repository to it. The caller must close the returned store.
func openDocuments() (*repo.Repository[types.Document, string], store.Store, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	logger := zap.NewNop()
	if flagVerbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("build logger: %w", err)
		}
	}

	st, err := store.Open(types.Config{
		Backend: resolveBackend(),
		DataDir: dataDir,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	documents, err := repo.New[types.Document, string](st, types.DecodeDocument)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("open documents repository: %w", err)
	}
	return documents, st, nil
}
