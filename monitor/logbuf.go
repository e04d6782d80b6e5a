package monitor

import (
	"fmt"
	"sync"
	"time"
)

type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

type Entry struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// LogBuffer keeps the last `capacity` entries at or above `min`.
// Construct one and pass it where it's needed; there is no package
// global.
type LogBuffer struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
	min     Level
}

func NewLogBuffer(capacity int, min Level) *LogBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &LogBuffer{entries: make([]Entry, capacity), min: min}
}

func (b *LogBuffer) Logf(level Level, format string, args ...any) {
	if level < b.min {
		return
	}
	e := Entry{Time: time.Now(), Level: level.String(), Message: fmt.Sprintf(format, args...)}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[b.next] = e
	b.next++
	if b.next == len(b.entries) {
		b.next = 0
		b.full = true
	}
}

func (b *LogBuffer) Debugf(format string, args ...any) { b.Logf(LevelDebug, format, args...) }
func (b *LogBuffer) Infof(format string, args ...any)  { b.Logf(LevelInfo, format, args...) }
func (b *LogBuffer) Warnf(format string, args ...any)  { b.Logf(LevelWarn, format, args...) }
func (b *LogBuffer) Errorf(format string, args ...any) { b.Logf(LevelError, format, args...) }

// Entries returns a copy, oldest first.
func (b *LogBuffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.full {
		out := make([]Entry, b.next)
		copy(out, b.entries[:b.next])
		return out
	}
	out := make([]Entry, 0, len(b.entries))
	out = append(out, b.entries[b.next:]...)
	out = append(out, b.entries[:b.next]...)
	return out
}
