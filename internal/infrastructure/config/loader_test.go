package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
database:
  host: db.internal
  username: relay
  database: logrelay
logBuffer:
  cacheSize: 50
  reportingThreshold: ERROR
  contexts:
    billing:
      cacheSize: 10
publisher:
  targets: [database, redis]
  redis:
    addr: redis:6379
`

func withConfigDir(t *testing.T, env, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))

	original := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = original })

	t.Setenv("LR_ENV", env)
}

func TestLoad(t *testing.T) {
	t.Run("File values and defaults", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)

		cfg, v, err := Load()
		require.NoError(t, err)

		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, time.Second, cfg.Database.RetryDelay)

		assert.Equal(t, 50, cfg.LogBuffer.CacheSize)
		assert.Equal(t, "INFO", cfg.LogBuffer.DebugThreshold)
		assert.Equal(t, "ERROR", cfg.LogBuffer.ReportingThreshold)
		assert.Equal(t, 5*time.Second, cfg.LogBuffer.PublishTimeout)

		assert.Equal(t, []string{"database", "redis"}, cfg.Publisher.Targets)
		assert.True(t, cfg.Publisher.HasTarget("redis"))
		assert.False(t, cfg.Publisher.HasTarget("sentry"))
		assert.Equal(t, 100*time.Millisecond, cfg.Publisher.Retry.RetryInterval)
		assert.Equal(t, 2*time.Second, cfg.Publisher.Sentry.FlushTimeout)

		assert.Equal(t, 10, v.GetInt("logBuffer.contexts.billing.cacheSize"))
	})

	t.Run("Environment overrides", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)
		t.Setenv("LR_DB_HOST", "override.internal")
		t.Setenv("LR_DB_QUERY_TIMEOUT_SECONDS", "7")
		t.Setenv("LR_DB_PASSWORD", "0123")
		t.Setenv("LR_LOG_BUFFER_CACHE_SIZE", "200")
		t.Setenv("LR_PUBLISHER_TARGETS", "sentry, beats")

		cfg, _, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "override.internal", cfg.Database.Host)
		assert.Equal(t, 7*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, "0123", cfg.Database.Password)
		assert.Equal(t, 200, cfg.LogBuffer.CacheSize)
		assert.Equal(t, []string{"sentry", "beats"}, cfg.Publisher.Targets)
	})

	t.Run("Missing file", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)
		t.Setenv("LR_ENV", "staging")

		_, _, err := Load()
		assert.Error(t, err)
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Empty(t, splitList(""))
}
