package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "8080"
logger:
  level: debug
  format: pretty
renderer:
  timeout_seconds: 15
  attempts: 1
storage:
  backend: minio
  minio:
    endpoint: "localhost:9000"
    bucket: cv
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "pretty", cfg.Logger.Format)
	assert.Equal(t, 15*time.Second, cfg.Renderer.Timeout())
	assert.Equal(t, 1, cfg.Renderer.Attempts)
	assert.Equal(t, 8.27, cfg.Renderer.PaperWidth)
	assert.Equal(t, "minio", cfg.Storage.Backend)
	assert.Equal(t, "cv", cfg.Storage.MinIO.Bucket)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, 3, cfg.Renderer.Attempts)
	assert.Equal(t, 60*time.Second, cfg.Renderer.Timeout())
	assert.NotEmpty(t, cfg.Storage.Dir)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("RESUME_OUTPUT_DIR", "/tmp/out")
	t.Setenv("DATABASE_URL", "postgres://x")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "/tmp/out", cfg.Storage.Dir)
	assert.Equal(t, "postgres://x", cfg.Database.URL)
}

func TestLoadConfigRejectsBadBackend(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "storage:\n  backend: ftp\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "storage:\n  backend: minio\n"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsTooManyAttempts(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "renderer:\n  attempts: 40\n"))
	assert.ErrorContains(t, err, "renderer.attempts")

	cfg, err := LoadConfig(writeConfig(t, "renderer:\n  attempts: 10\n"))
	require.NoError(t, err)
	assert.Equal(t, MaxRenderAttempts, cfg.Renderer.Attempts)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server: [unterminated"))
	assert.Error(t, err)
}
