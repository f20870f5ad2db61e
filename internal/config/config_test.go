package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 5*time.Minute, cfg.Templates.CacheTTL)
	assert.Equal(t, "resumeforge", cfg.Templates.KeyPrefix)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
  host: 127.0.0.1
logging:
  level: debug
templates:
  key_prefix: testforge
rate_limit:
  requests_per_minute: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "testforge", cfg.Templates.KeyPrefix)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)
	// Untouched sections keep their defaults.
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_CONFIG_HOST", "10.0.0.5")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  host: ${TEST_CONFIG_HOST}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.Server.Host)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("REDIS_TIMEOUT", "2s")
	t.Setenv("TEMPLATE_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 2*time.Second, cfg.Redis.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Templates.CacheTTL)
	assert.False(t, cfg.RateLimit.Enabled)
}
