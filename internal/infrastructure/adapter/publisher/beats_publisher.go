package publisher

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	lumberjack "github.com/elastic/go-lumber/client/v2"
)

// BeatsClient is the subset of the lumberjack sync client the publisher needs
type BeatsClient interface {
	Send(data []interface{}) (int, error)
	Close() error
}

// BeatsDialer opens a connection to a beats (lumberjack) server
type BeatsDialer func(endpoint string) (BeatsClient, error)

// DialBeats opens an uncompressed lumberjack v2 connection
func DialBeats(endpoint string) (BeatsClient, error) {
	compression := lumberjack.CompressionLevel(0)
	timeout := lumberjack.Timeout(3 * time.Second)

	client, err := lumberjack.SyncDial(endpoint, compression, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed connection to beats server: %w", err)
	}
	return client, nil
}

// BeatsPublisher ships events to a Logstash or Beats endpoint.
// The connection is dialed on first use and redialed after a failed send.
type BeatsPublisher struct {
	endpoint string
	dial     BeatsDialer

	mu     sync.Mutex
	client BeatsClient
}

// NewBeatsPublisher creates a publisher for endpoint. dial may be nil to use DialBeats.
func NewBeatsPublisher(endpoint string, dial BeatsDialer) *BeatsPublisher {
	if dial == nil {
		dial = DialBeats
	}
	return &BeatsPublisher{endpoint: endpoint, dial: dial}
}

// Publish implements sink.EventPublisher
func (p *BeatsPublisher) Publish(ctx context.Context, event *entity.LogEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		client, err := p.dial(p.endpoint)
		if err != nil {
			return err
		}
		p.client = client
	}

	if _, err := p.client.Send([]interface{}{beatsFields(event)}); err != nil {
		_ = p.client.Close()
		p.client = nil
		return fmt.Errorf("beats send to %s: %w", p.endpoint, err)
	}
	return nil
}

// Close shuts the connection down
func (p *BeatsPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}

func beatsFields(event *entity.LogEvent) map[string]interface{} {
	hostname, _ := os.Hostname()
	return map[string]interface{}{
		"@timestamp": event.CreatedAt,
		"message":    event.Message,
		"log": map[string]interface{}{
			"id":        event.ID.String(),
			"logger":    event.Context,
			"level":     event.Level.String(),
			"truncated": event.Truncated,
		},
		"host": map[string]interface{}{
			"name": hostname,
		},
		"agent": map[string]interface{}{
			"type": "logrelay",
			"pid":  os.Getpid(),
		},
	}
}
