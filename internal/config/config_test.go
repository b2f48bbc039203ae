package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `server:
  port: ":9090"
storage:
  driver: memory
auth:
  enabled: true
jwt:
  secret_key: "0123456789abcdef0123"
  access_token_ttl: 2h
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("APP_LOG_LEVEL", "debug")

	require.NoError(t, LoadConfig(dir))
	assert.Equal(t, ":9090", Cfg.Server.Port)
	assert.Equal(t, StorageMemory, Cfg.Storage.Driver)
	assert.True(t, Cfg.Auth.Enabled)
	assert.Equal(t, 2*time.Hour, Cfg.JWT.AccessTokenTTL)
	assert.Equal(t, "debug", Cfg.Log.Level)
	assert.Equal(t, DefaultDatabaseDriver, Cfg.Database.Driver)
	assert.Contains(t, Cfg.CORS.AllowedHeaders, "X-Profile-ID")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown storage driver", yaml: "storage:\n  driver: floppy\n"},
		{name: "redis without address", yaml: "storage:\n  driver: redis\n"},
		{name: "auth without secret", yaml: "auth:\n  enabled: true\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tc.yaml), 0o600))
			assert.Error(t, LoadConfig(dir))
		})
	}
}
