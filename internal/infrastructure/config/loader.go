package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. LR_DB_HOST
const EnvPrefix = "LR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	config, _, err := Load()
	return config, err
}

// Load loads configuration and also returns the viper tree it was decoded from,
// which backs the config settings source of the buffered loggers
func Load() (*Config, *viper.Viper, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	config, err := decode(v)
	if err != nil {
		return nil, nil, err
	}
	config.Environment = env

	return config, v, nil
}

// decode unmarshals v and converts the raw duration values
func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	processDurations(&config)
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("logBuffer.cacheSize", 100)
	v.SetDefault("logBuffer.debugThreshold", "INFO")
	v.SetDefault("logBuffer.reportingThreshold", "FATAL")
	v.SetDefault("logBuffer.publishTimeout", 5000)
	v.SetDefault("logBuffer.settingsSource", "config")
	v.SetDefault("logBuffer.debugSink", "zap")

	v.SetDefault("publisher.targets", []string{"database"})
	v.SetDefault("publisher.retry.maxRetries", 3)
	v.SetDefault("publisher.retry.retryInterval", 100)
	v.SetDefault("publisher.retry.maxInterval", 2000)
	v.SetDefault("publisher.redis.channel", "logrelay:events")
	v.SetDefault("publisher.sentry.flushTimeout", 2)

	v.SetDefault("monitoring.metricsEnabled", true)
	v.SetDefault("monitoring.metricsPath", "/metrics")
}

// getEnvironment determines the environment to use based on LR_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// envOverride maps a flat environment variable name to a config key.
// Numeric values are decoded before being set so duration and count fields accept them.
type envOverride struct {
	key     string
	numeric bool
}

var envOverrides = map[string]envOverride{
	"DB_HOST":                        {"database.host", false},
	"DB_PORT":                        {"database.port", true},
	"DB_USERNAME":                    {"database.username", false},
	"DB_PASSWORD":                    {"database.password", false},
	"DB_NAME":                        {"database.database", false},
	"DB_SSL_MODE":                    {"database.sslMode", false},
	"DB_MAX_OPEN_CONNS":              {"database.maxOpenConns", true},
	"DB_MAX_IDLE_CONNS":              {"database.maxIdleConns", true},
	"DB_QUERY_TIMEOUT_SECONDS":       {"database.queryTimeout", true},
	"DB_RETRY_ATTEMPTS":              {"database.retryAttempts", true},
	"DB_RETRY_DELAY_SECONDS":         {"database.retryDelay", true},
	"SERVER_HOST":                    {"server.host", false},
	"SERVER_PORT":                    {"server.port", true},
	"LOGGER_LEVEL":                   {"logger.level", false},
	"LOG_BUFFER_CACHE_SIZE":          {"logBuffer.cacheSize", true},
	"LOG_BUFFER_DEBUG_THRESHOLD":     {"logBuffer.debugThreshold", false},
	"LOG_BUFFER_REPORTING_THRESHOLD": {"logBuffer.reportingThreshold", false},
	"LOG_BUFFER_SETTINGS_SOURCE":     {"logBuffer.settingsSource", false},
	"REDIS_ADDR":                     {"publisher.redis.addr", false},
	"REDIS_PASSWORD":                 {"publisher.redis.password", false},
	"SENTRY_DSN":                     {"publisher.sentry.dsn", false},
	"BEATS_ENDPOINT":                 {"publisher.beats.endpoint", false},
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for name, o := range envOverrides {
		value, ok := os.LookupEnv(EnvPrefix + "_" + name)
		if !ok || value == "" {
			continue
		}
		if o.numeric {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				fmt.Printf("Warning: ignoring %s_%s=%q: %v\n", EnvPrefix, name, value, err)
				continue
			}
			v.Set(o.key, n)
			continue
		}
		v.Set(o.key, value)
	}

	if targets := os.Getenv(EnvPrefix + "_PUBLISHER_TARGETS"); targets != "" {
		v.Set("publisher.targets", splitList(targets))
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = scale(config.Server.ReadTimeout, time.Second)
	config.Server.WriteTimeout = scale(config.Server.WriteTimeout, time.Second)
	config.Server.IdleTimeout = scale(config.Server.IdleTimeout, time.Second)
	config.Server.ReadHeaderTimeout = scale(config.Server.ReadHeaderTimeout, time.Second)
	config.Server.ShutdownTimeout = scale(config.Server.ShutdownTimeout, time.Second)

	config.Database.ConnMaxLifetime = scale(config.Database.ConnMaxLifetime, time.Minute)
	config.Database.ConnMaxIdleTime = scale(config.Database.ConnMaxIdleTime, time.Minute)
	config.Database.QueryTimeout = scale(config.Database.QueryTimeout, time.Second)
	config.Database.RetryDelay = scale(config.Database.RetryDelay, time.Second)

	config.LogBuffer.PublishTimeout = scale(config.LogBuffer.PublishTimeout, time.Millisecond)
	config.Publisher.Retry.RetryInterval = scale(config.Publisher.Retry.RetryInterval, time.Millisecond)
	config.Publisher.Retry.MaxInterval = scale(config.Publisher.Retry.MaxInterval, time.Millisecond)
	config.Publisher.Sentry.FlushTimeout = scale(config.Publisher.Sentry.FlushTimeout, time.Second)
}

// scale treats a raw decoded count as a number of units
func scale(raw time.Duration, unit time.Duration) time.Duration {
	return raw * unit
}
