package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	LogBuffer   LogBufferConfig  `mapstructure:"logBuffer"`
	Publisher   PublisherConfig  `mapstructure:"publisher"`
	Monitoring  MonitoringConfig `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// LoggerConfig contains settings of the service's own zap logger
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LogBufferConfig contains the defaults of every buffered logger
type LogBufferConfig struct {
	CacheSize          int           `mapstructure:"cacheSize"`
	DebugThreshold     string        `mapstructure:"debugThreshold"`
	ReportingThreshold string        `mapstructure:"reportingThreshold"`
	PublishTimeout     time.Duration `mapstructure:"publishTimeout"` // milliseconds
	SettingsSource     string        `mapstructure:"settingsSource"` // database, config or none
	DebugSink          string        `mapstructure:"debugSink"`      // zap or none
}

// PublisherConfig selects and configures the event publisher targets
type PublisherConfig struct {
	Targets []string     `mapstructure:"targets"` // database, redis, sentry, beats
	Retry   RetryConfig  `mapstructure:"retry"`
	Redis   RedisConfig  `mapstructure:"redis"`
	Sentry  SentryConfig `mapstructure:"sentry"`
	Beats   BeatsConfig  `mapstructure:"beats"`
}

// RetryConfig contains publish retry settings
type RetryConfig struct {
	MaxRetries    int           `mapstructure:"maxRetries"`
	RetryInterval time.Duration `mapstructure:"retryInterval"` // milliseconds
	MaxInterval   time.Duration `mapstructure:"maxInterval"`   // milliseconds
}

// RedisConfig contains the Redis pub/sub target settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
	Channel  string `mapstructure:"channel"`
}

// SentryConfig contains the Sentry target settings
type SentryConfig struct {
	DSN          string        `mapstructure:"dsn"`
	Release      string        `mapstructure:"release"`
	FlushTimeout time.Duration `mapstructure:"flushTimeout"` // seconds
}

// BeatsConfig contains the Logstash/Beats target settings
type BeatsConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// MonitoringConfig contains Prometheus settings
type MonitoringConfig struct {
	MetricsEnabled bool   `mapstructure:"metricsEnabled"`
	MetricsPath    string `mapstructure:"metricsPath"`
}

// HasTarget reports whether name is among the configured publisher targets
func (c PublisherConfig) HasTarget(name string) bool {
	for _, t := range c.Targets {
		if t == name {
			return true
		}
	}
	return false
}
