package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("DICT_ENFORCE_OWNERSHIP", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.True(t, cfg.Dictionary.EnforceOwnership)
	assert.Equal(t, "session", cfg.Auth.CookieName)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "dictionary.db", cfg.Database.Path)
	assert.False(t, cfg.Dictionary.EnforceOwnership)
	assert.Equal(t, 100, cfg.Dictionary.PageSize)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
port: "9090"
database:
  driver: sqlite
  path: /tmp/words.db
auth:
  cookie_name: dict_session
dictionary:
  enforce_ownership: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("file values over defaults", func(t *testing.T) {
		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "/tmp/words.db", cfg.Database.Path)
		assert.Equal(t, "dict_session", cfg.Auth.CookieName)
		assert.True(t, cfg.Dictionary.EnforceOwnership)
		// untouched keys keep defaults
		assert.Equal(t, 10, cfg.Auth.BcryptCost)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", path)
		t.Setenv("PORT", "7070")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Port)
		assert.Equal(t, "/tmp/words.db", cfg.Database.Path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("port: [unterminated"), 0o600))
		_, err := LoadFile(bad)
		assert.Error(t, err)
	})
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
