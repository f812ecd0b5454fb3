package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/themevars/internal/ports"
)

const defaultBufferLimit = 256

// Level of a buffered entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Entry is one buffered log call.
type Entry struct {
	Ctx    context.Context
	Level  Level
	Msg    string
	Fields []interface{}
}

// Field returns the value recorded for key, if any.
func (e Entry) Field(key string) (interface{}, bool) {
	for i := 0; i+1 < len(e.Fields); i += 2 {
		if k, ok := e.Fields[i].(string); ok && k == key {
			return e.Fields[i+1], true
		}
	}
	return nil, false
}

// EventBuffer stores log entries emitted before the configured logger exists,
// for instance while the CLI is still reading its config file. The oldest
// entries are discarded once the limit is reached.
type EventBuffer struct {
	mu     sync.Mutex
	limit  int
	events []Entry
}

// NewEventBuffer creates a buffer with the provided capacity.
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{
		limit:  limit,
		events: make([]Entry, 0, limit),
	}
}

func (b *EventBuffer) add(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == b.limit {
		copy(b.events, b.events[1:])
		b.events[len(b.events)-1] = entry
		return
	}
	b.events = append(b.events, entry)
}

// Entries returns a snapshot of the buffered entries.
func (b *EventBuffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.events))
	copy(out, b.events)
	return out
}

// Flush replays buffered entries into delegate, preserving order, and empties the buffer.
func (b *EventBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	events := make([]Entry, len(b.events))
	copy(events, b.events)
	b.events = b.events[:0]
	b.mu.Unlock()

	for _, entry := range events {
		switch entry.Level {
		case LevelDebug:
			delegate.Debug(entry.Ctx, entry.Msg, entry.Fields...)
		case LevelWarn:
			delegate.Warn(entry.Ctx, entry.Msg, entry.Fields...)
		case LevelError:
			delegate.Error(entry.Ctx, entry.Msg, entry.Fields...)
		default:
			delegate.Info(entry.Ctx, entry.Msg, entry.Fields...)
		}
	}
}
