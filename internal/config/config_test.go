package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Assets.UploadRoot)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: "9090"
assets:
  uploadRoot: /srv/uploads
  logoPath: /srv/assets/logo.svg
baseURL: https://portal.example.org
postgresDsn: host=localhost user=club dbname=club
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/srv/uploads", cfg.Assets.UploadRoot)
	assert.Equal(t, "/srv/assets/logo.svg", cfg.Assets.LogoPath)
	assert.Equal(t, "https://portal.example.org", cfg.BaseURL)
	assert.Equal(t, "host=localhost user=club dbname=club", cfg.PostgresDsn)
}

func TestLoadPartialFileKeepsFallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}
