package model

import (
	"time"
)

// DefaultSettingsContext is the row consulted when a context has no row of its own
const DefaultSettingsContext = "default"

// LoggerSetting represents per-context logger configuration.
// Null columns keep the built-in default.
type LoggerSetting struct {
	Context            string    `gorm:"primaryKey;size:255"`
	CacheSize          *int      `gorm:"null"`
	DebugThreshold     *string   `gorm:"size:10;null"`
	ReportingThreshold *string   `gorm:"size:10;null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for LoggerSetting
func (LoggerSetting) TableName() string {
	return "logger_settings"
}
