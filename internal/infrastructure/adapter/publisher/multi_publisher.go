package publisher

import (
	"context"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/sink"
	"go.uber.org/multierr"
)

// Target is a named publisher
type Target struct {
	Name      string
	Publisher sink.EventPublisher
}

// MultiPublisher delivers every event to all targets in order.
// Each target is attempted; failures are combined into one error.
type MultiPublisher struct {
	targets []Target
}

// NewMultiPublisher creates a fan-out publisher
func NewMultiPublisher(targets ...Target) *MultiPublisher {
	return &MultiPublisher{targets: targets}
}

// Targets returns the configured target names
func (p *MultiPublisher) Targets() []string {
	names := make([]string, len(p.targets))
	for i, t := range p.targets {
		names[i] = t.Name
	}
	return names
}

// Publish implements sink.EventPublisher
func (p *MultiPublisher) Publish(ctx context.Context, event *entity.LogEvent) error {
	var err error
	for _, t := range p.targets {
		if pubErr := t.Publisher.Publish(ctx, event); pubErr != nil {
			err = multierr.Append(err, errs.NewPublishError(event.Context, t.Name, pubErr))
		}
	}
	return err
}

// Close closes every target that holds a connection
func (p *MultiPublisher) Close() error {
	var err error
	for _, t := range p.targets {
		if c, ok := t.Publisher.(interface{ Close() error }); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
