package config

import "context"

// LoggerSettings holds the optional values a settings store can supply.
// Nil or empty fields mean "keep the default".
type LoggerSettings struct {
	CacheSize          *int
	DebugThreshold     string
	ReportingThreshold string
}

// SettingsSource reads logger settings for a context identifier
type SettingsSource interface {
	LoggerSettings(ctx context.Context, contextName string) (LoggerSettings, error)
}
