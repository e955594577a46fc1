package migration

import (
	"context"

	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSettings are the values written to the "default" logger_settings row
type DefaultSettings struct {
	CacheSize          int
	DebugThreshold     string
	ReportingThreshold string
}

// SeedDefaultSettings creates the "default" row unless one already exists
func SeedDefaultSettings(ctx context.Context, db *gorm.DB, defaults DefaultSettings) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(defaultSettingsRow(defaults)).Error
}

func defaultSettingsRow(defaults DefaultSettings) *model.LoggerSetting {
	row := &model.LoggerSetting{Context: model.DefaultSettingsContext}
	if defaults.CacheSize > 0 {
		size := defaults.CacheSize
		row.CacheSize = &size
	}
	if defaults.DebugThreshold != "" {
		debug := defaults.DebugThreshold
		row.DebugThreshold = &debug
	}
	if defaults.ReportingThreshold != "" {
		reporting := defaults.ReportingThreshold
		row.ReportingThreshold = &reporting
	}
	return row
}
