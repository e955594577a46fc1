package repository

import (
	"context"

	"github.com/amirhossein-jamali/logrelay/internal/domain/port/config"
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoggerSettingsRepository reads per-context logger settings from the logger_settings table.
// A context without its own row falls back to the "default" row column by column.
type LoggerSettingsRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLoggerSettingsRepository creates a new LoggerSettingsRepository instance
func NewLoggerSettingsRepository(db *gorm.DB, logger coreport.Logger) *LoggerSettingsRepository {
	return &LoggerSettingsRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// LoggerSettings implements config.SettingsSource
func (r *LoggerSettingsRepository) LoggerSettings(ctx context.Context, contextName string) (config.LoggerSettings, error) {
	var rows []model.LoggerSetting
	err := r.db.WithContext(ctx).
		Where("context IN ?", []string{contextName, model.DefaultSettingsContext}).
		Find(&rows).Error
	if err != nil {
		return config.LoggerSettings{}, handleDatabaseError(r.logger, r.errorClassifier, "reading logger settings", err, nil, map[string]any{
			"context": contextName,
		})
	}

	var own, fallback *model.LoggerSetting
	for i := range rows {
		switch rows[i].Context {
		case contextName:
			own = &rows[i]
		case model.DefaultSettingsContext:
			fallback = &rows[i]
		}
	}
	return mergeSettings(own, fallback), nil
}

// Save creates or replaces the row for contextName
func (r *LoggerSettingsRepository) Save(ctx context.Context, contextName string, settings config.LoggerSettings) error {
	row := model.LoggerSetting{
		Context:            contextName,
		CacheSize:          settings.CacheSize,
		DebugThreshold:     optionalString(settings.DebugThreshold),
		ReportingThreshold: optionalString(settings.ReportingThreshold),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "context"}},
		DoUpdates: clause.AssignmentColumns([]string{"cache_size", "debug_threshold", "reporting_threshold", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "saving logger settings", err, nil, map[string]any{
			"context": contextName,
		})
	}
	return nil
}

// mergeSettings prefers values from own and fills the gaps from fallback
func mergeSettings(own, fallback *model.LoggerSetting) config.LoggerSettings {
	var settings config.LoggerSettings
	for _, row := range []*model.LoggerSetting{fallback, own} {
		if row == nil {
			continue
		}
		if row.CacheSize != nil {
			size := *row.CacheSize
			settings.CacheSize = &size
		}
		if row.DebugThreshold != nil && *row.DebugThreshold != "" {
			settings.DebugThreshold = *row.DebugThreshold
		}
		if row.ReportingThreshold != nil && *row.ReportingThreshold != "" {
			settings.ReportingThreshold = *row.ReportingThreshold
		}
	}
	return settings
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
