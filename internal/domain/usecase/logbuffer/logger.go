package logbuffer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/config"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/sink"
)

// Logger writes formatted lines into the buffer of its Scope.
//
// A line whose level reaches the debug threshold is also written to the debug sink;
// sink errors and panics are contained and only show up in diagnostics and metrics.
// A line whose level reaches the reporting threshold triggers Report, and a publisher
// error is returned to the caller of the logging method.
type Logger struct {
	scope *Scope
	name  string

	mu                 sync.RWMutex
	debugThreshold     entity.Severity
	reportingThreshold entity.Severity

	debugSink      sink.DebugSink
	sinkName       string
	publisher      sink.EventPublisher
	clock          core.TimeProvider
	diag           core.Logger
	metrics        core.Metrics
	publishTimeout core.Duration
}

// New returns a logger bound to contextName with the default thresholds
// (debug INFO, reporting FATAL), a no-op debug sink and a no-op publisher.
// It does not change the capacity of the scope's buffer.
func New(scope *Scope, contextName string, opts ...Option) *Logger {
	l := &Logger{
		scope:              scope,
		name:               contextName,
		debugThreshold:     DefaultDebugThreshold,
		reportingThreshold: DefaultReportingThreshold,
		debugSink:          sink.NoopDebugSink{},
		sinkName:           "noop",
		publisher:          sink.NoopEventPublisher{},
		clock:              systemClock{},
		metrics:            core.NoopMetrics{},
		publishTimeout:     DefaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewWithConfig returns a fully parameterized logger and resizes the scope's buffer to cacheSize.
// No I/O happens here.
func NewWithConfig(
	scope *Scope,
	contextName string,
	cacheSize int,
	debugThreshold entity.Severity,
	reportingThreshold entity.Severity,
	debugSink sink.DebugSink,
	publisher sink.EventPublisher,
	opts ...Option,
) (*Logger, error) {
	l := New(scope, contextName, opts...)
	if debugSink != nil {
		l.debugSink = debugSink
		l.sinkName = fmt.Sprintf("%T", debugSink)
	}
	if publisher != nil {
		l.publisher = publisher
	}

	if err := l.SetDebugThreshold(debugThreshold); err != nil {
		return nil, err
	}
	if err := l.SetReportingThreshold(reportingThreshold); err != nil {
		return nil, err
	}
	if err := l.SetCacheSize(cacheSize); err != nil {
		return nil, err
	}
	return l, nil
}

// NewFromSettings returns a logger configured from source. Settings are read once;
// absent values keep the defaults and unknown level names are an error.
func NewFromSettings(
	ctx context.Context,
	scope *Scope,
	contextName string,
	source config.SettingsSource,
	opts ...Option,
) (*Logger, error) {
	settings, err := source.LoggerSettings(ctx, contextName)
	if err != nil {
		return nil, fmt.Errorf("failed to read logger settings for %s: %w", contextName, err)
	}

	l := New(scope, contextName, opts...)
	if err := l.ApplySettings(settings); err != nil {
		return nil, err
	}
	return l, nil
}

// ApplySettings sets every value present in settings. Level names are validated
// before anything is changed.
func (l *Logger) ApplySettings(settings config.LoggerSettings) error {
	debugThreshold, reportingThreshold := l.thresholds()

	var err error
	if settings.DebugThreshold != "" {
		if debugThreshold, err = entity.ParseSeverity(settings.DebugThreshold); err != nil {
			return fmt.Errorf("debug threshold: %w", err)
		}
	}
	if settings.ReportingThreshold != "" {
		if reportingThreshold, err = entity.ParseSeverity(settings.ReportingThreshold); err != nil {
			return fmt.Errorf("reporting threshold: %w", err)
		}
	}
	if settings.CacheSize != nil {
		if err := l.SetCacheSize(*settings.CacheSize); err != nil {
			return err
		}
	}

	l.mu.Lock()
	l.debugThreshold = debugThreshold
	l.reportingThreshold = reportingThreshold
	l.mu.Unlock()
	return nil
}

// Context returns the context identifier stamped on every line
func (l *Logger) Context() string {
	return l.name
}

// Scope returns the unit of work the logger writes to
func (l *Logger) Scope() *Scope {
	return l.scope
}

// SetCacheSize resizes the shared buffer, evicting the oldest excess lines immediately
func (l *Logger) SetCacheSize(n int) error {
	return l.scope.buffer.SetCapacity(n)
}

// CacheSize returns the capacity of the shared buffer
func (l *Logger) CacheSize() int {
	return l.scope.buffer.Capacity()
}

// SetDebugThreshold replaces the debug threshold for subsequent calls
func (l *Logger) SetDebugThreshold(level entity.Severity) error {
	if !level.Valid() {
		return errs.NewLevelError(strconv.Itoa(int(level)))
	}
	l.mu.Lock()
	l.debugThreshold = level
	l.mu.Unlock()
	return nil
}

// SetReportingThreshold replaces the reporting threshold for subsequent calls
func (l *Logger) SetReportingThreshold(level entity.Severity) error {
	if !level.Valid() {
		return errs.NewLevelError(strconv.Itoa(int(level)))
	}
	l.mu.Lock()
	l.reportingThreshold = level
	l.mu.Unlock()
	return nil
}

// DebugThreshold returns the current debug threshold
func (l *Logger) DebugThreshold() entity.Severity {
	d, _ := l.thresholds()
	return d
}

// ReportingThreshold returns the current reporting threshold
func (l *Logger) ReportingThreshold() entity.Severity {
	_, r := l.thresholds()
	return r
}

// Log formats and buffers one line. args replace {0}-style placeholders in message.
func (l *Logger) Log(level entity.Severity, message string, args ...any) error {
	if !level.Valid() {
		return errs.NewLevelError(strconv.Itoa(int(level)))
	}

	entry := entity.NewLogEntry(l.clock.Now(), level, l.name, message, args...)
	debugThreshold, reportingThreshold := l.thresholds()

	if debugThreshold.Encompasses(level) {
		l.writeDebug(level, entry.String())
	}

	l.scope.buffer.Append(entry)

	if reportingThreshold.Encompasses(level) {
		return l.report(level)
	}
	return nil
}

// Debug logs at DEBUG
func (l *Logger) Debug(message string, args ...any) error {
	return l.Log(entity.SeverityDebug, message, args...)
}

// Info logs at INFO
func (l *Logger) Info(message string, args ...any) error {
	return l.Log(entity.SeverityInfo, message, args...)
}

// Warn logs at WARN
func (l *Logger) Warn(message string, args ...any) error {
	return l.Log(entity.SeverityWarn, message, args...)
}

// Error logs at ERROR
func (l *Logger) Error(message string, args ...any) error {
	return l.Log(entity.SeverityError, message, args...)
}

// Fatal logs at FATAL. It does not exit the process.
func (l *Logger) Fatal(message string, args ...any) error {
	return l.Log(entity.SeverityFatal, message, args...)
}

// Report publishes the whole buffer as one event. The buffer is not cleared.
func (l *Logger) Report() error {
	return l.report(l.ReportingThreshold())
}

// PrintLogs writes the whole buffer to the debug sink as one INFO message
func (l *Logger) PrintLogs() {
	l.writeDebug(entity.SeverityInfo, l.scope.buffer.Join())
}

func (l *Logger) report(level entity.Severity) error {
	event := entity.NewLogEvent(l.name, l.scope.buffer.Join(), level, l.clock.Now())

	ctx := l.scope.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if l.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = l.clock.WithTimeout(ctx, l.publishTimeout)
		defer cancel()
	}

	start := l.clock.Now()
	if err := l.publisher.Publish(ctx, event); err != nil {
		l.metrics.PublishFailure(l.clock.Since(start))

		var pubErr *errs.PublishError
		if errors.As(err, &pubErr) {
			return err
		}
		return errs.NewPublishError(l.name, "", err)
	}

	l.metrics.EventPublished(event.Truncated, l.clock.Since(start))
	return nil
}

func (l *Logger) writeDebug(level entity.Severity, message string) {
	defer func() {
		if r := recover(); r != nil {
			l.sinkFailed(fmt.Errorf("panic: %v", r))
		}
	}()

	if err := l.debugSink.Write(level, message); err != nil {
		l.sinkFailed(err)
	}
}

func (l *Logger) sinkFailed(err error) {
	l.metrics.SinkFailure(l.sinkName)
	if l.diag == nil {
		return
	}

	sinkErr := &errs.SinkError{Sink: l.sinkName, Err: err}
	fields := sinkErr.LogFields()
	fields["context"] = l.name
	fields["scope_id"] = l.scope.id.String()
	l.diag.Warn("Debug sink write failed", fields)
}

func (l *Logger) thresholds() (entity.Severity, entity.Severity) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.debugThreshold, l.reportingThreshold
}
