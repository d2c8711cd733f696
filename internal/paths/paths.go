// Package paths resolves configuration and data directory locations for
// the larder CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".larder"
	DefaultDataDirName   = ".larder-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "LARDER_CONFIG_DIR"
	EnvDataDir   = "LARDER_DATA_DIR"
)

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/larder (fallback ~/.config/larder)
// macOS:   ~/Library/Application Support/larder
// Windows: %APPDATA%/larder
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "larder"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "larder"), nil
	default:
		// macOS and Windows use os.UserConfigDir, which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "larder"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > LARDER_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config.yaml value > LARDER_DATA_DIR env > $(CWD)/.larder-db.
//
// The CWD-relative default keeps a larder working tree self-contained when
// no override is active.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
