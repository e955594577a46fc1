package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewLogEvent(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Small payload is kept whole", func(t *testing.T) {
		event := NewLogEvent("billing", "line1\nline2", SeverityFatal, createdAt)

		assert.NotEqual(t, uuid.Nil, event.ID)
		assert.Equal(t, "billing", event.Context)
		assert.Equal(t, "line1\nline2", event.Message)
		assert.Equal(t, SeverityFatal, event.Level)
		assert.False(t, event.Truncated)
		assert.Equal(t, createdAt, event.CreatedAt)
	})

	t.Run("Oversized payload keeps the tail", func(t *testing.T) {
		head := strings.Repeat("a", 128)
		tail := strings.Repeat("b", MaxMessageSize)
		payload := head + tail
		assert.Len(t, payload, 131200)

		event := NewLogEvent("billing", payload, SeverityError, createdAt)

		assert.True(t, event.Truncated)
		assert.Len(t, event.Message, MaxMessageSize)
		assert.Equal(t, payload[len(payload)-MaxMessageSize:], event.Message)
	})

	t.Run("Payload exactly at the limit", func(t *testing.T) {
		payload := strings.Repeat("x", MaxMessageSize)
		event := NewLogEvent("billing", payload, SeverityError, createdAt)

		assert.False(t, event.Truncated)
		assert.Equal(t, payload, event.Message)
	})
}

func TestTruncateTail(t *testing.T) {
	t.Run("Counts characters not bytes", func(t *testing.T) {
		out, truncated := TruncateTail("héllo wörld", 5)
		assert.True(t, truncated)
		assert.Equal(t, "wörld", out)

		out, truncated = TruncateTail("héllo", 5)
		assert.False(t, truncated)
		assert.Equal(t, "héllo", out)
	})

	t.Run("Short input", func(t *testing.T) {
		out, truncated := TruncateTail("abc", 10)
		assert.False(t, truncated)
		assert.Equal(t, "abc", out)
	})
}
