package sink

import "github.com/amirhossein-jamali/logrelay/internal/domain/entity"

// DebugSink receives single formatted lines whose level passes the debug threshold.
// Failures are contained by the caller; a sink must never be relied on to stop logging.
type DebugSink interface {
	Write(level entity.Severity, message string) error
}

// DebugSinkFunc adapts a function to DebugSink
type DebugSinkFunc func(level entity.Severity, message string) error

// Write calls f(level, message)
func (f DebugSinkFunc) Write(level entity.Severity, message string) error {
	return f(level, message)
}

// NoopDebugSink drops every line
type NoopDebugSink struct{}

// Write implements DebugSink
func (NoopDebugSink) Write(entity.Severity, string) error {
	return nil
}
