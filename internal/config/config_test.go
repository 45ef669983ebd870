package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "missing.json"))
}

func TestLoad(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		isolate(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.ServerAddress)
		assert.Equal(t, "https://api.perukytyt.com", cfg.CatalogAPI.BaseURL)
		assert.Equal(t, cfg.CatalogAPI.BaseURL, cfg.CatalogAPI.ImageCDNURL)
		assert.Equal(t, int64(10), cfg.Uploads.MaxFileSizeMB)
		assert.False(t, cfg.UsePostgres())
	})

	t.Run("environment overrides file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"serverAddress":":9000","catalogApi":{"baseUrl":"http://file.example/"}}`), 0644))
		t.Setenv("CONFIG_PATH", path)
		t.Setenv("CATALOG_API_URL", "http://env.example/")
		t.Setenv("CATALOG_API_TOKEN", "secret")
		t.Setenv("DATABASE_URL", "postgres://localhost/admin")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":9000", cfg.ServerAddress)
		assert.Equal(t, "http://env.example", cfg.CatalogAPI.BaseURL)
		assert.Equal(t, "secret", cfg.CatalogAPI.Token)
		assert.True(t, cfg.UsePostgres())
	})

	t.Run("reads .env file", func(t *testing.T) {
		isolate(t)
		require.NoError(t, os.WriteFile(".env", []byte("ADMIN_USERNAME=owner\n"), 0644))
		t.Setenv("ADMIN_USERNAME", "")
		os.Unsetenv("ADMIN_USERNAME")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "owner", cfg.Security.AdminUsername)
		os.Unsetenv("ADMIN_USERNAME")
	})

	t.Run("client credentials need all three values", func(t *testing.T) {
		isolate(t)
		t.Setenv("CATALOG_API_CLIENT_ID", "console")
		t.Setenv("CATALOG_API_CLIENT_SECRET", "s3cret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.CatalogAPI.UsesClientCredentials())

		t.Setenv("CATALOG_API_TOKEN_URL", "https://auth.example/token")
		cfg, err = Load()
		require.NoError(t, err)
		assert.True(t, cfg.CatalogAPI.UsesClientCredentials())
	})

	t.Run("rejects invalid limits", func(t *testing.T) {
		isolate(t)
		t.Setenv("UPLOAD_MAX_FILE_SIZE_MB", "0")

		_, err := Load()
		assert.Error(t, err)
	})
}
