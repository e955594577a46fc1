package entity

import (
	"strings"
	"sync"

	errs "github.com/amirhossein-jamali/logrelay/internal/domain/error"
)

// DefaultCacheSize is the capacity of a new LogBuffer
const DefaultCacheSize = 100

// LineSeparator joins buffered lines when the buffer is flattened
const LineSeparator = "\n"

// LogBuffer is a bounded FIFO of log entries shared by every logger of one unit of work.
// All methods are safe for concurrent use.
type LogBuffer struct {
	mu       sync.Mutex
	entries  []LogEntry
	capacity int
}

// NewLogBuffer creates an empty buffer holding at most capacity entries
func NewLogBuffer(capacity int) (*LogBuffer, error) {
	if capacity < 0 {
		return nil, errs.ErrInvalidCacheSize
	}
	return &LogBuffer{
		entries:  make([]LogEntry, 0, min(capacity, DefaultCacheSize)),
		capacity: capacity,
	}, nil
}

// NewDefaultLogBuffer creates an empty buffer with DefaultCacheSize capacity
func NewDefaultLogBuffer() *LogBuffer {
	buf, _ := NewLogBuffer(DefaultCacheSize)
	return buf
}

// Append adds entry as the newest line, evicting the oldest lines beyond capacity
func (b *LogBuffer) Append(entry LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, entry)
	b.evictLocked()
}

// SetCapacity changes the bound and evicts the oldest excess entries immediately
func (b *LogBuffer) SetCapacity(capacity int) error {
	if capacity < 0 {
		return errs.ErrInvalidCacheSize
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.capacity = capacity
	b.evictLocked()
	return nil
}

// Capacity returns the current bound
func (b *LogBuffer) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capacity
}

// Len returns the number of buffered entries
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Snapshot returns a copy of the entries, oldest first
func (b *LogBuffer) Snapshot() []LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Lines returns the formatted lines, oldest first
func (b *LogBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]string, len(b.entries))
	for i, e := range b.entries {
		lines[i] = e.String()
	}
	return lines
}

// Join flattens the buffer into one string with LineSeparator between lines
func (b *LogBuffer) Join() string {
	return strings.Join(b.Lines(), LineSeparator)
}

// evictLocked drops the oldest entries until the length fits the capacity.
// Caller must hold b.mu.
func (b *LogBuffer) evictLocked() {
	excess := len(b.entries) - b.capacity
	if excess <= 0 {
		return
	}
	// Shift in place so the backing array stays bounded.
	n := copy(b.entries, b.entries[excess:])
	clear(b.entries[n:])
	b.entries = b.entries[:n]
}
