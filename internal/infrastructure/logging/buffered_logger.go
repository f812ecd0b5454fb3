package logging

import (
	"context"

	"github.com/alexisbeaulieu97/themevars/internal/ports"
)

// BufferedLogger records entries into an EventBuffer until a real sink is
// ready. Persistent fields from With are prepended to every entry.
type BufferedLogger struct {
	buffer *EventBuffer
	fields []interface{}
}

// NewBufferedLogger returns a logger backed by buffer.
func NewBufferedLogger(buffer *EventBuffer) *BufferedLogger {
	return &BufferedLogger{buffer: buffer}
}

func (l *BufferedLogger) Debug(ctx context.Context, msg string, kv ...interface{}) {
	l.record(ctx, LevelDebug, msg, kv)
}

func (l *BufferedLogger) Info(ctx context.Context, msg string, kv ...interface{}) {
	l.record(ctx, LevelInfo, msg, kv)
}

func (l *BufferedLogger) Warn(ctx context.Context, msg string, kv ...interface{}) {
	l.record(ctx, LevelWarn, msg, kv)
}

func (l *BufferedLogger) Error(ctx context.Context, msg string, kv ...interface{}) {
	l.record(ctx, LevelError, msg, kv)
}

// With shares the buffer with the parent.
func (l *BufferedLogger) With(kv ...interface{}) ports.Logger {
	return &BufferedLogger{buffer: l.buffer, fields: joinFields(l.fields, kv)}
}

func (l *BufferedLogger) record(ctx context.Context, level Level, msg string, kv []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	l.buffer.add(Entry{Ctx: ctx, Level: level, Msg: msg, Fields: joinFields(l.fields, kv)})
}

func joinFields(base, extra []interface{}) []interface{} {
	out := make([]interface{}, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

var _ ports.Logger = (*BufferedLogger)(nil)
