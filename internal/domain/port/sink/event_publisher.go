package sink

import (
	"context"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
)

// EventPublisher receives the flattened buffer when a line passes the reporting threshold.
// Errors are returned to the code that logged the triggering line.
type EventPublisher interface {
	Publish(ctx context.Context, event *entity.LogEvent) error
}

// EventPublisherFunc adapts a function to EventPublisher
type EventPublisherFunc func(ctx context.Context, event *entity.LogEvent) error

// Publish calls f(ctx, event)
func (f EventPublisherFunc) Publish(ctx context.Context, event *entity.LogEvent) error {
	return f(ctx, event)
}

// NoopEventPublisher discards every event
type NoopEventPublisher struct{}

// Publish implements EventPublisher
func (NoopEventPublisher) Publish(context.Context, *entity.LogEvent) error {
	return nil
}
