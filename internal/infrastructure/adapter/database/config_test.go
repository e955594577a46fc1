package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Host = "localhost"
	cfg.Username = "logrelay"
	cfg.Password = "secret"
	cfg.Database = "logrelay"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid", func(*Config) {}, ""},
		{"Missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"Bad port", func(c *Config) { c.Port = 70000 }, "invalid port number: 70000"},
		{"Missing user", func(c *Config) { c.Username = "" }, "database username is required"},
		{"Missing name", func(c *Config) { c.Database = "" }, "database name is required"},
		{"Unsupported driver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver: mysql"},
		{"Bad SSL mode", func(c *Config) { c.SSLMode = "maybe" }, "invalid SSL mode: maybe"},
		{"No connections", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections must be positive, got: 0"},
		{"No timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout must be positive"},
		{"No attempts", func(c *Config) { c.RetryAttempts = 0 }, "retry attempts must be at least 1, got: 0"},
		{"Negative delay", func(c *Config) { c.RetryDelay = -time.Second }, "retry delay must be non-negative, got: -1s"},
		{"Bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level: loud"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=logrelay password=secret dbname=logrelay sslmode=disable",
		validConfig().DSN())
}
