package logbuffer

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/sink"
)

// Default configuration of a Logger created with New
const (
	DefaultDebugThreshold     = entity.SeverityInfo
	DefaultReportingThreshold = entity.SeverityFatal
	DefaultPublishTimeout     = 5 * core.Second
)

// Option customizes a Logger
type Option func(*Logger)

// WithDebugSink sets the sink for lines passing the debug threshold.
// name labels contained failures in diagnostics and metrics.
func WithDebugSink(s sink.DebugSink, name string) Option {
	return func(l *Logger) {
		if s != nil {
			l.debugSink = s
			l.sinkName = name
		}
	}
}

// WithEventPublisher sets the publisher used by reports
func WithEventPublisher(p sink.EventPublisher) Option {
	return func(l *Logger) {
		if p != nil {
			l.publisher = p
		}
	}
}

// WithDebugThreshold overrides the default debug threshold.
// Invalid levels are ignored; validate names with entity.ParseSeverity first.
func WithDebugThreshold(level entity.Severity) Option {
	return func(l *Logger) {
		if level.Valid() {
			l.debugThreshold = level
		}
	}
}

// WithReportingThreshold overrides the default reporting threshold.
// Invalid levels are ignored; validate names with entity.ParseSeverity first.
func WithReportingThreshold(level entity.Severity) Option {
	return func(l *Logger) {
		if level.Valid() {
			l.reportingThreshold = level
		}
	}
}

// WithTimeProvider sets the clock used for entry timestamps and publish timeouts
func WithTimeProvider(tp core.TimeProvider) Option {
	return func(l *Logger) {
		if tp != nil {
			l.clock = tp
		}
	}
}

// WithDiagnostics sets the logger that receives contained sink failures
func WithDiagnostics(diag core.Logger) Option {
	return func(l *Logger) {
		l.diag = diag
	}
}

// WithMetrics sets the metrics side channel
func WithMetrics(m core.Metrics) Option {
	return func(l *Logger) {
		if m != nil {
			l.metrics = m
		}
	}
}

// WithPublishTimeout bounds each publish call. Zero or negative disables the bound.
func WithPublishTimeout(d core.Duration) Option {
	return func(l *Logger) {
		l.publishTimeout = d
	}
}

// systemClock is the TimeProvider used when none is supplied
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

func (systemClock) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
