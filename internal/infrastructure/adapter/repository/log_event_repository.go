package repository

import (
	"context"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogEventRepository stores published reports in the log_events table.
// It is both the database event publisher and the read side behind the events API.
type LogEventRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLogEventRepository creates a new LogEventRepository instance
func NewLogEventRepository(db *gorm.DB, logger coreport.Logger) *LogEventRepository {
	return &LogEventRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Publish implements sink.EventPublisher by inserting the event
func (r *LogEventRepository) Publish(ctx context.Context, event *entity.LogEvent) error {
	row := eventToModel(event)

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "storing log event", err, nil, map[string]any{
			"event_id": event.ID.String(),
			"context":  event.Context,
		})
	}

	r.logger.Debug("Log event stored", map[string]any{
		"event_id":  event.ID.String(),
		"context":   event.Context,
		"truncated": event.Truncated,
	})
	return nil
}

// GetByID retrieves a published event by ID
func (r *LogEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LogEvent, error) {
	var row model.LogEvent
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting log event", err, errs.ErrEventNotFound, map[string]any{
			"event_id": id.String(),
		})
	}
	return modelToEvent(&row), nil
}

// List returns events newest first, optionally for one context
func (r *LogEventRepository) List(ctx context.Context, filter persistence.EventFilter) ([]*entity.LogEvent, error) {
	query := r.db.WithContext(ctx).Model(&model.LogEvent{})
	if filter.Context != "" {
		query = query.Where("context = ?", filter.Context)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []model.LogEvent
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing log events", err, nil, map[string]any{
			"context": filter.Context,
		})
	}

	events := make([]*entity.LogEvent, len(rows))
	for i := range rows {
		events[i] = modelToEvent(&rows[i])
	}
	return events, nil
}

func eventToModel(event *entity.LogEvent) model.LogEvent {
	return model.LogEvent{
		ID:        event.ID,
		Context:   event.Context,
		Level:     event.Level.String(),
		Message:   event.Message,
		Truncated: event.Truncated,
		CreatedAt: event.CreatedAt,
	}
}

func modelToEvent(row *model.LogEvent) *entity.LogEvent {
	level, err := entity.ParseSeverity(row.Level)
	if err != nil {
		level = entity.SeverityFatal
	}
	return &entity.LogEvent{
		ID:        row.ID,
		Context:   row.Context,
		Message:   row.Message,
		Level:     level,
		Truncated: row.Truncated,
		CreatedAt: row.CreatedAt,
	}
}
