package model

import (
	"time"

	"github.com/google/uuid"
)

// LogEvent represents the database model for published buffer reports
type LogEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Context   string    `gorm:"not null;size:255;index:idx_log_events_context_created,priority:1"`
	Level     string    `gorm:"not null;size:10"`
	Message   string    `gorm:"type:text;not null"`
	Truncated bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index:idx_log_events_context_created,priority:2,sort:desc"`
}

// TableName specifies the table name for LogEvent
func (LogEvent) TableName() string {
	return "log_events"
}
