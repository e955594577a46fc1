package main

import (
	"context"
	"fmt"

	portconfig "github.com/amirhossein-jamali/logrelay/internal/domain/port/config"
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/sink"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/publisher"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/settings"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/config"
	"github.com/spf13/viper"
)

// Publisher target names accepted in publisher.targets
const (
	targetDatabase = "database"
	targetRedis    = "redis"
	targetSentry   = "sentry"
	targetBeats    = "beats"
)

// Settings sources accepted in logBuffer.settingsSource
const (
	settingsDatabase = "database"
	settingsConfig   = "config"
	settingsNone     = "none"
)

// buildPublisher creates one retrying publisher per configured target and fans out to all of them
func buildPublisher(
	ctx context.Context,
	cfg *config.Config,
	eventRepo *repository.LogEventRepository,
	logger coreport.Logger,
) (*publisher.MultiPublisher, error) {
	retry := publisher.DefaultRetryConfig()
	if cfg.Publisher.Retry.MaxRetries > 0 {
		retry.MaxRetries = cfg.Publisher.Retry.MaxRetries
	}
	if cfg.Publisher.Retry.RetryInterval > 0 {
		retry.RetryInterval = cfg.Publisher.Retry.RetryInterval
	}
	if cfg.Publisher.Retry.MaxInterval > 0 {
		retry.MaxInterval = cfg.Publisher.Retry.MaxInterval
	}

	var targets []publisher.Target
	add := func(name string, p sink.EventPublisher) {
		targets = append(targets, publisher.Target{
			Name:      name,
			Publisher: publisher.NewRetryPublisher(p, retry, logger.With(map[string]any{"target": name})),
		})
	}

	for _, name := range cfg.Publisher.Targets {
		switch name {
		case targetDatabase:
			add(name, eventRepo)
		case targetRedis:
			client, err := publisher.ConnectRedis(ctx, publisher.RedisConfig{
				Addr:     cfg.Publisher.Redis.Addr,
				Username: cfg.Publisher.Redis.Username,
				Password: cfg.Publisher.Redis.Password,
				DB:       cfg.Publisher.Redis.DB,
				TLS:      cfg.Publisher.Redis.TLS,
			}, logger)
			if err != nil {
				return nil, fmt.Errorf("redis target: %w", err)
			}
			add(name, publisher.NewRedisPublisher(client, cfg.Publisher.Redis.Channel))
		case targetSentry:
			p, err := publisher.NewSentryPublisher(publisher.SentryConfig{
				DSN:          cfg.Publisher.Sentry.DSN,
				Environment:  cfg.Environment,
				Release:      cfg.Publisher.Sentry.Release,
				FlushTimeout: cfg.Publisher.Sentry.FlushTimeout,
			}, nil)
			if err != nil {
				return nil, fmt.Errorf("sentry target: %w", err)
			}
			add(name, p)
		case targetBeats:
			add(name, publisher.NewBeatsPublisher(cfg.Publisher.Beats.Endpoint, publisher.DialBeats))
		default:
			return nil, fmt.Errorf("unknown publisher target: %s", name)
		}
	}

	return publisher.NewMultiPublisher(targets...), nil
}

// buildSettingsSource selects where per-context logger settings come from. nil keeps the configured defaults.
func buildSettingsSource(
	cfg *config.Config,
	v *viper.Viper,
	settingsRepo *repository.LoggerSettingsRepository,
) portconfig.SettingsSource {
	switch cfg.LogBuffer.SettingsSource {
	case settingsDatabase:
		return settingsRepo
	case settingsConfig:
		return settings.NewViperSource(v, "logBuffer")
	default:
		return nil
	}
}
