package persistence

import (
	"context"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	"github.com/google/uuid"
)

// EventFilter narrows a listing of published events
type EventFilter struct {
	Context string
	Limit   int
}

// LogEventRepository defines read access to events persisted by the database publisher
type LogEventRepository interface {
	// GetByID retrieves a published event by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LogEvent, error)

	// List returns events newest first
	List(ctx context.Context, filter EventFilter) ([]*entity.LogEvent, error)
}
