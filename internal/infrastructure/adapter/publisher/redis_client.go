package publisher

import (
	"context"
	"crypto/tls"
	"time"

	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	redis "github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for the Redis target
type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	TLS      bool
	Channel  string
}

// ConnectRedis instantiates a redis client and checks it with a ping
func ConnectRedis(ctx context.Context, cfg RedisConfig, logger coreport.Logger) (*redis.Client, error) {
	options := &redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(options)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis ping failed", map[string]any{
			"addr":  cfg.Addr,
			"error": err.Error(),
		})
		_ = client.Close()
		return nil, err
	}

	logger.Info("Connected to Redis", map[string]any{"addr": cfg.Addr, "db": cfg.DB})
	return client, nil
}
