package dto

import "time"

// LogEntryRequest is one line of an ingest batch. Args replace {0}-style placeholders.
type LogEntryRequest struct {
	Level   string `json:"level" binding:"required"`
	Message string `json:"message"`
	Args    []any  `json:"args,omitempty"`
}

// IngestRequest represents the API request for logging a batch into the request scope
type IngestRequest struct {
	Context            string            `json:"context" binding:"required"`
	Entries            []LogEntryRequest `json:"entries" binding:"dive"`
	DebugThreshold     string            `json:"debugThreshold,omitempty"`
	ReportingThreshold string            `json:"reportingThreshold,omitempty"`
	CacheSize          *int              `json:"cacheSize,omitempty" binding:"omitempty,min=0"`
	Flush              bool              `json:"flush,omitempty"`
}

// IngestResponse represents the buffer after an ingest batch
type IngestResponse struct {
	ScopeID            string   `json:"scopeId"`
	Context            string   `json:"context"`
	Accepted           int      `json:"accepted"`
	Reports            int      `json:"reports"`
	DebugThreshold     string   `json:"debugThreshold"`
	ReportingThreshold string   `json:"reportingThreshold"`
	Lines              []string `json:"lines"`
}

// EventResponse represents one published event
type EventResponse struct {
	ID        string    `json:"id"`
	Context   string    `json:"context"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Truncated bool      `json:"truncated"`
	CreatedAt time.Time `json:"createdAt"`
}

// EventListResponse represents a page of published events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}

// HealthResponse represents the service health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
