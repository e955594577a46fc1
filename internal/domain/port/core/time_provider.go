package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts time operations for the domain
type TimeProvider interface {
	// Now returns the current time; log entry timestamps come from here
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) Duration
	// WithTimeout bounds a blocking call such as an event publish
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
