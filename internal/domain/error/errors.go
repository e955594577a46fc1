package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest   = 4001
	CodeUnknownLevel     = 4002
	CodeInvalidCacheSize = 4003
	CodeEventNotFound    = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeDatabaseError  = 5001
	CodePublishFailed  = 5020
	CodeScopeMissing   = 5030
)

// Base error types
var (
	// ErrUnknownLevel is returned when a severity name or value is not one of DEBUG, INFO, WARN, ERROR, FATAL
	ErrUnknownLevel = errors.New("unknown level")

	// ErrInvalidCacheSize is returned when a negative cache size is configured
	ErrInvalidCacheSize = errors.New("cache size must be non-negative")

	// ErrPublishFailed is returned when the event publisher rejects a report
	ErrPublishFailed = errors.New("event publish failed")

	// ErrSinkFailed marks a contained debug sink failure; it never reaches logging callers
	ErrSinkFailed = errors.New("debug sink write failed")

	// ErrScopeMissing is returned when no log scope is attached to the request context
	ErrScopeMissing = errors.New("log scope missing from context")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEventNotFound is returned when the requested published event doesn't exist
	ErrEventNotFound = errors.New("log event not found")

	// ErrSettingsNotFound is returned when no settings row matches a context
	ErrSettingsNotFound = errors.New("logger settings not found")

	// ErrDatabaseConnection is returned when the event store cannot be reached
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnknownLevel):
		return CodeUnknownLevel
	case errors.Is(err, ErrInvalidCacheSize):
		return CodeInvalidCacheSize
	case errors.Is(err, ErrEventNotFound):
		return CodeEventNotFound
	case errors.Is(err, ErrPublishFailed):
		return CodePublishFailed
	case errors.Is(err, ErrScopeMissing):
		return CodeScopeMissing
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseError
	default:
		return CodeInternalServer
	}
}

// LevelError reports a severity name that could not be parsed
type LevelError struct {
	Name string
}

// Error implements the error interface
func (e *LevelError) Error() string {
	return fmt.Sprintf("unknown level %q", e.Name)
}

// Is checks if the target error is an ErrUnknownLevel
func (e *LevelError) Is(target error) bool {
	return target == ErrUnknownLevel
}

// NewLevelError creates a new unknown level error
func NewLevelError(name string) error {
	return &LevelError{Name: name}
}

// PublishError wraps a failure returned by an event publisher during a report
type PublishError struct {
	Context string
	Target  string
	Err     error
}

// Error implements the error interface for PublishError
func (e *PublishError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("publish failed for context %s: %v", e.Context, e.Err)
	}
	return fmt.Sprintf("publish to %s failed for context %s: %v", e.Target, e.Context, e.Err)
}

// Unwrap returns the underlying error
func (e *PublishError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrPublishFailed
func (e *PublishError) Is(target error) bool {
	return target == ErrPublishFailed
}

// LogFields returns a map of fields for structured logging
func (e *PublishError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "publish_error",
		"context":    e.Context,
		"target":     e.Target,
		"error":      e.Err.Error(),
		"error_code": CodePublishFailed,
	}
}

// NewPublishError creates a detailed publish error
func NewPublishError(context, target string, err error) error {
	return &PublishError{
		Context: context,
		Target:  target,
		Err:     err,
	}
}

// SinkError records a debug sink failure that was contained by the logger
type SinkError struct {
	Sink string
	Err  error
}

// Error implements the error interface for SinkError
func (e *SinkError) Error() string {
	return fmt.Sprintf("debug sink %s failed: %v", e.Sink, e.Err)
}

// Unwrap returns the underlying error
func (e *SinkError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrSinkFailed
func (e *SinkError) Is(target error) bool {
	return target == ErrSinkFailed
}

// LogFields returns a map of fields for structured logging
func (e *SinkError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "sink_error",
		"sink":       e.Sink,
		"error":      e.Err.Error(),
	}
}

// NewSinkError creates a new contained sink error
func NewSinkError(sink string, err error) error {
	return &SinkError{Sink: sink, Err: err}
}

// IsUnknownLevelError checks if the error is an unknown level error
func IsUnknownLevelError(err error) bool {
	return errors.Is(err, ErrUnknownLevel)
}

// IsPublishError checks if the error came from the event publisher
func IsPublishError(err error) bool {
	return errors.Is(err, ErrPublishFailed)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrSettingsNotFound)
}
