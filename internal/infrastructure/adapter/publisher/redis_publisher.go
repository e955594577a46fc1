package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	redis "github.com/redis/go-redis/v9"
)

// DefaultRedisChannel is the pub/sub channel used when none is configured
const DefaultRedisChannel = "logrelay:events"

// redisPublishClient is the subset of *redis.Client the publisher needs
type redisPublishClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisPublisher publishes events as JSON on a Redis pub/sub channel
type RedisPublisher struct {
	client  redisPublishClient
	channel string
}

// NewRedisPublisher creates a publisher on client. An empty channel selects DefaultRedisChannel.
func NewRedisPublisher(client redisPublishClient, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	return &RedisPublisher{client: client, channel: channel}
}

// Publish implements sink.EventPublisher
func (p *RedisPublisher) Publish(ctx context.Context, event *entity.LogEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish to %s: %w", p.channel, err)
	}
	return nil
}

// Close closes the client when it owns a connection pool
func (p *RedisPublisher) Close() error {
	if c, ok := p.client.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
