package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxMessageSize is the largest message, in characters, carried by a published event
const MaxMessageSize = 131072

// LogEvent is the record handed to an event publisher when a report is triggered
type LogEvent struct {
	ID        uuid.UUID `json:"id"`
	Context   string    `json:"context"`
	Message   string    `json:"message"`
	Level     Severity  `json:"level"`
	Truncated bool      `json:"truncated"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewLogEvent builds an event for context from the flattened buffer.
// Payloads longer than MaxMessageSize keep only their last MaxMessageSize characters.
func NewLogEvent(context, payload string, level Severity, createdAt time.Time) *LogEvent {
	message, truncated := TruncateTail(payload, MaxMessageSize)
	return &LogEvent{
		ID:        uuid.New(),
		Context:   context,
		Message:   message,
		Level:     level,
		Truncated: truncated,
		CreatedAt: createdAt,
	}
}

// TruncateTail returns the last limit characters of s and whether anything was dropped
func TruncateTail(s string, limit int) (string, bool) {
	if len(s) <= limit {
		return s, false
	}
	count := utf8.RuneCountInString(s)
	if count <= limit {
		return s, false
	}

	// Walk forward past the characters that overflow the limit.
	skip := count - limit
	offset := 0
	for i := 0; i < skip; i++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return s[offset:], true
}
