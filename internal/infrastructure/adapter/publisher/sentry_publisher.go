package publisher

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	"github.com/getsentry/sentry-go"
)

// ErrSentryDropped is returned when the Sentry client refuses to queue an event
var ErrSentryDropped = errors.New("sentry dropped the event")

// SentryConfig holds settings for the Sentry target
type SentryConfig struct {
	DSN          string
	Environment  string
	Release      string
	FlushTimeout time.Duration
}

// SentryPublisher captures events as Sentry messages on a dedicated hub
type SentryPublisher struct {
	hub          *sentry.Hub
	flushTimeout time.Duration
}

// NewSentryPublisher creates a client from cfg. transport may be nil to use the HTTP transport.
func NewSentryPublisher(cfg SentryConfig, transport sentry.Transport) (*SentryPublisher, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		SampleRate:  1.0,
		Transport:   transport,
	})
	if err != nil {
		return nil, err
	}

	flushTimeout := cfg.FlushTimeout
	if flushTimeout <= 0 {
		flushTimeout = 2 * time.Second
	}

	return &SentryPublisher{
		hub:          sentry.NewHub(client, sentry.NewScope()),
		flushTimeout: flushTimeout,
	}, nil
}

// Publish implements sink.EventPublisher
func (p *SentryPublisher) Publish(ctx context.Context, event *entity.LogEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := p.hub.CaptureEvent(&sentry.Event{
		Message:   event.Message,
		Level:     sentryLevel(event.Level),
		Timestamp: event.CreatedAt,
		Logger:    event.Context,
		Tags: map[string]string{
			"context": event.Context,
		},
		Extra: map[string]any{
			"event_id":  event.ID.String(),
			"truncated": event.Truncated,
		},
	})
	if id == nil {
		return ErrSentryDropped
	}
	return nil
}

// Close flushes queued events
func (p *SentryPublisher) Close() error {
	p.hub.Flush(p.flushTimeout)
	return nil
}

func sentryLevel(level entity.Severity) sentry.Level {
	switch level {
	case entity.SeverityDebug:
		return sentry.LevelDebug
	case entity.SeverityInfo:
		return sentry.LevelInfo
	case entity.SeverityWarn:
		return sentry.LevelWarning
	case entity.SeverityError:
		return sentry.LevelError
	default:
		return sentry.LevelFatal
	}
}
