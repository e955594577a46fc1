package logbuffer

import (
	"context"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const scopeKey contextKey = "logbuffer.scope"

// Scope is one unit of work. Every logger created from the same Scope appends to
// the same buffer; the buffer is dropped with the Scope.
type Scope struct {
	id     uuid.UUID
	ctx    context.Context
	buffer *entity.LogBuffer
}

// NewScope starts a unit of work with a buffer of entity.DefaultCacheSize entries
func NewScope(ctx context.Context) *Scope {
	return &Scope{
		id:     uuid.New(),
		ctx:    ctx,
		buffer: entity.NewDefaultLogBuffer(),
	}
}

// NewScopeWithCapacity starts a unit of work with a buffer bounded at capacity
func NewScopeWithCapacity(ctx context.Context, capacity int) (*Scope, error) {
	buffer, err := entity.NewLogBuffer(capacity)
	if err != nil {
		return nil, err
	}
	return &Scope{
		id:     uuid.New(),
		ctx:    ctx,
		buffer: buffer,
	}, nil
}

// ID identifies the unit of work
func (s *Scope) ID() uuid.UUID {
	return s.id
}

// Context returns the context publishes run under
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Buffer returns the shared buffer
func (s *Scope) Buffer() *entity.LogBuffer {
	return s.buffer
}

// WithScope attaches s to ctx
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey, s)
}

// ScopeFromContext returns the scope attached to ctx
func ScopeFromContext(ctx context.Context) (*Scope, error) {
	if s, ok := ctx.Value(scopeKey).(*Scope); ok && s != nil {
		return s, nil
	}
	return nil, errs.ErrScopeMissing
}
