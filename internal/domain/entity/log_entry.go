package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// TimestampLayout is the ISO-8601 layout used for the first field of every line
const TimestampLayout = "2006-01-02T15:04:05.000Z0700"

// FieldSeparator joins the fields of a formatted line
const FieldSeparator = "|"

// LogEntry is one formatted line held by a LogBuffer. It is never modified after creation.
type LogEntry struct {
	timestamp time.Time
	level     Severity
	context   string
	message   string
	line      string
}

// NewLogEntry renders message with args and formats the line as timestamp|LEVEL|context|message
func NewLogEntry(timestamp time.Time, level Severity, context, message string, args ...any) LogEntry {
	rendered := RenderMessage(message, args...)
	line := strings.Join([]string{
		timestamp.Format(TimestampLayout),
		level.String(),
		context,
		rendered,
	}, FieldSeparator)

	return LogEntry{
		timestamp: timestamp,
		level:     level,
		context:   context,
		message:   rendered,
		line:      line,
	}
}

// Timestamp returns the generation time of the entry
func (e LogEntry) Timestamp() time.Time {
	return e.timestamp
}

// Level returns the severity of the entry
func (e LogEntry) Level() Severity {
	return e.level
}

// Context returns the context identifier of the logger that produced the entry
func (e LogEntry) Context() string {
	return e.context
}

// Message returns the rendered message without the other fields
func (e LogEntry) Message() string {
	return e.message
}

// String returns the full formatted line
func (e LogEntry) String() string {
	return e.line
}

// RenderMessage substitutes {N} placeholders with the N-th argument.
// With no arguments the message is returned verbatim. Placeholders that do not
// name an existing argument are left as they are.
func RenderMessage(message string, args ...any) string {
	if len(args) == 0 {
		return message
	}

	var b strings.Builder
	b.Grow(len(message))

	for i := 0; i < len(message); {
		if message[i] == '{' {
			if end := strings.IndexByte(message[i+1:], '}'); end > 0 {
				if idx, ok := placeholderIndex(message[i+1 : i+1+end]); ok && idx < len(args) {
					b.WriteString(formatArg(args[idx]))
					i += end + 2
					continue
				}
			}
		}
		b.WriteByte(message[i])
		i++
	}

	return b.String()
}

// placeholderIndex parses the digits between braces
func placeholderIndex(s string) (int, bool) {
	if len(s) == 0 || len(s) > 4 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func formatArg(arg any) string {
	if arg == nil {
		return "null"
	}
	if s, err := cast.ToStringE(arg); err == nil {
		return s
	}
	return fmt.Sprint(arg)
}
