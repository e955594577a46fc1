package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock
type RealTimeProvider struct {
	loc *time.Location
}

// NewRealTimeProvider creates a time provider reporting UTC timestamps
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{loc: time.UTC}
}

// NewLocalTimeProvider creates a time provider reporting timestamps in loc
func NewLocalTimeProvider(loc *time.Location) core.TimeProvider {
	if loc == nil {
		loc = time.Local
	}
	return &RealTimeProvider{loc: loc}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.loc)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
