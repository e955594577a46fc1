package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/logrelay/internal/domain/error"
)

// Severity is the urgency of a log line. Values are ordered by rank.
type Severity int

// Severity levels in increasing order of urgency
const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
	SeverityFatal
)

var severityNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// Severities lists every level from least to most urgent
func Severities() []Severity {
	return []Severity{SeverityDebug, SeverityInfo, SeverityWarn, SeverityError, SeverityFatal}
}

// String returns the upper-case level name
func (s Severity) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// Valid reports whether s is one of the five defined levels
func (s Severity) Valid() bool {
	return s >= SeverityDebug && s <= SeverityFatal
}

// Encompasses reports whether a line at level other passes a threshold of s
func (s Severity) Encompasses(other Severity) bool {
	return other >= s
}

// ParseSeverity converts a level name to a Severity.
// Matching ignores case and surrounding whitespace; anything else is an unknown level.
func ParseSeverity(name string) (Severity, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range severityNames {
		if n == normalized {
			return Severity(i), nil
		}
	}
	return SeverityDebug, errs.NewLevelError(name)
}

// MarshalText implements encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errs.NewLevelError(s.String())
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
