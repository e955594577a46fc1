package usecase

import (
	"context"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	"github.com/google/uuid"
)

// IngestEntry is one line submitted by a client
type IngestEntry struct {
	Level   string
	Message string
	Args    []any
}

// IngestCommand carries a batch of lines for one context. Threshold and cache size
// fields override the stored settings for this request only; empty means keep.
type IngestCommand struct {
	Context            string
	Entries            []IngestEntry
	DebugThreshold     string
	ReportingThreshold string
	CacheSize          *int
	Flush              bool
}

// IngestResult describes the buffer after a batch was logged
type IngestResult struct {
	ScopeID            uuid.UUID
	Context            string
	Accepted           int
	Reports            int
	DebugThreshold     entity.Severity
	ReportingThreshold entity.Severity
	Lines              []string
}

// RelayUseCase defines the operations exposed by the relay API
type RelayUseCase interface {
	// Ingest logs every entry of the command into the request's log scope.
	// Lines at or above the reporting threshold publish the buffer; a publish
	// failure aborts the batch and is returned.
	Ingest(ctx context.Context, cmd IngestCommand) (*IngestResult, error)

	// ListEvents returns published events newest first, optionally for one context
	ListEvents(ctx context.Context, contextName string, limit int) ([]*entity.LogEvent, error)

	// GetEvent returns one published event
	GetEvent(ctx context.Context, id uuid.UUID) (*entity.LogEvent, error)
}
