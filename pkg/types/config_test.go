package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "fs backend valid",
			config: Config{Backend: BackendFS, DataDir: "/tmp/larder"},
		},
		{
			name:   "badger backend valid",
			config: Config{Backend: BackendBadger, DataDir: "/tmp/larder"},
		},
		{
			name:   "sqlite backend valid",
			config: Config{Backend: BackendSQLite, DataDir: "/tmp/larder"},
		},
		{
			name:    "empty backend rejected",
			config:  Config{DataDir: "/tmp/larder"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  Config{Backend: "redis", DataDir: "/tmp/larder"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "empty data dir rejected",
			config:  Config{Backend: BackendFS},
			wantErr: ErrDataDirEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
