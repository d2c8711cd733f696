package types

// Config holds backend selection and parameters for store.Open. The data
// directory is always injected here; there is no compiled-in default path.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
const (
	BackendFS     = "fs"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFS:     true,
	BackendBadger: true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
