package relay

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/config"
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/logrelay/internal/domain/usecase/logbuffer"
	"github.com/google/uuid"
)

// Listing limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Service implements the relay use case on top of the buffered logger
type Service struct {
	factory   *logbuffer.Factory
	eventRepo persistence.LogEventRepository
	logger    coreport.Logger
}

// NewService creates a new relay service
func NewService(
	factory *logbuffer.Factory,
	eventRepo persistence.LogEventRepository,
	logger coreport.Logger,
) usecase.RelayUseCase {
	return &Service{
		factory:   factory,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Ingest logs a batch into the scope attached to ctx
func (s *Service) Ingest(ctx context.Context, cmd usecase.IngestCommand) (*usecase.IngestResult, error) {
	contextName := strings.TrimSpace(cmd.Context)
	if contextName == "" {
		return nil, fmt.Errorf("%w: context is required", errs.ErrInvalidRequest)
	}
	if len(cmd.Entries) == 0 && !cmd.Flush {
		return nil, fmt.Errorf("%w: at least one entry is required", errs.ErrInvalidRequest)
	}

	levels, err := parseLevels(cmd.Entries)
	if err != nil {
		return nil, err
	}

	scope, err := logbuffer.ScopeFromContext(ctx)
	if err != nil {
		return nil, err
	}

	logger, err := s.factory.Logger(ctx, scope, contextName)
	if err != nil {
		return nil, err
	}
	if err := logger.ApplySettings(config.LoggerSettings{
		CacheSize:          cmd.CacheSize,
		DebugThreshold:     cmd.DebugThreshold,
		ReportingThreshold: cmd.ReportingThreshold,
	}); err != nil {
		return nil, err
	}

	result := &usecase.IngestResult{
		ScopeID:            scope.ID(),
		Context:            contextName,
		DebugThreshold:     logger.DebugThreshold(),
		ReportingThreshold: logger.ReportingThreshold(),
	}

	for i, e := range cmd.Entries {
		if logger.ReportingThreshold().Encompasses(levels[i]) {
			result.Reports++
		}
		if err := logger.Log(levels[i], e.Message, e.Args...); err != nil {
			s.logger.Error("Report failed during ingest", map[string]any{
				"context":  contextName,
				"scope_id": scope.ID().String(),
				"entry":    i,
				"error":    err.Error(),
			})
			return nil, err
		}
		result.Accepted++
	}

	if cmd.Flush {
		if err := logger.Report(); err != nil {
			s.logger.Error("Explicit flush failed", map[string]any{
				"context":  contextName,
				"scope_id": scope.ID().String(),
				"error":    err.Error(),
			})
			return nil, err
		}
		result.Reports++
	}

	result.Lines = scope.Buffer().Lines()

	s.logger.Debug("Ingested log batch", map[string]any{
		"context":  contextName,
		"scope_id": scope.ID().String(),
		"accepted": result.Accepted,
		"reports":  result.Reports,
	})

	return result, nil
}

// ListEvents returns published events newest first
func (s *Service) ListEvents(ctx context.Context, contextName string, limit int) ([]*entity.LogEvent, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return s.eventRepo.List(ctx, persistence.EventFilter{
		Context: strings.TrimSpace(contextName),
		Limit:   limit,
	})
}

// GetEvent returns one published event
func (s *Service) GetEvent(ctx context.Context, id uuid.UUID) (*entity.LogEvent, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: event id is required", errs.ErrInvalidRequest)
	}
	return s.eventRepo.GetByID(ctx, id)
}

// parseLevels validates every level before anything is logged
func parseLevels(entries []usecase.IngestEntry) ([]entity.Severity, error) {
	levels := make([]entity.Severity, len(entries))
	for i, e := range entries {
		level, err := entity.ParseSeverity(e.Level)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		levels[i] = level
	}
	return levels, nil
}
