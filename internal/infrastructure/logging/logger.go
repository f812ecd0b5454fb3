package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/themevars/internal/ports"
)

// Output formats accepted by ParseFormat.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Options configures the charmbracelet/log adapter.
type Options struct {
	// Writer defaults to stderr so that rendered themes on stdout stay clean.
	Writer io.Writer
	Level  string
	Format string
	// TimeFormat enables timestamps when set.
	TimeFormat string
	// Layer defaults to "infrastructure".
	Layer     string
	Component string
}

// Logger implements ports.Logger using charmbracelet/log. Every entry carries
// the layer and, when ctx has one, the correlation id.
type Logger struct {
	logger *cblog.Logger
	fields []interface{}
	layer  string
}

// ParseFormat maps a format name onto a charmbracelet/log formatter.
func ParseFormat(name string) (cblog.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatText:
		return cblog.TextFormatter, nil
	case FormatJSON:
		return cblog.JSONFormatter, nil
	case FormatLogfmt:
		return cblog.LogfmtFormatter, nil
	}
	return cblog.TextFormatter, fmt.Errorf("unknown log format %q", name)
}

// New creates a Logger adapter with the supplied options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	formatter, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: opts.TimeFormat != "",
		Formatter:       formatter,
	})

	l := &Logger{logger: base, layer: opts.Layer}
	if l.layer == "" {
		l.layer = "infrastructure"
	}
	if opts.Component != "" {
		l.fields = setFields(nil, "component", opts.Component)
	}
	return l, nil
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, fields...)
}

// With derives a logger with persistent fields. A key that is already set
// is replaced in place.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return discard{}
	}
	return &Logger{logger: l.logger, fields: setFields(l.fields, fields...), layer: l.layer}
}

// WithLayer derives a logger tagged with another architectural layer.
func (l *Logger) WithLayer(layer string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{logger: l.logger, fields: l.fields, layer: layer}
}

func (l *Logger) log(ctx context.Context, level cblog.Level, msg string, fields ...interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	payload := setFields(l.fields, fields...)
	payload = setFields(payload, "layer", l.layer)
	if id := ports.GetCorrelationID(ctx); id != "" {
		payload = setFields(payload, "correlation_id", id)
	}
	l.logger.Log(level, msg, payload...)
}

// setFields returns a copy of kv with the pairs in updates applied. Pairs
// whose key is not a non-empty string are ignored.
func setFields(kv []interface{}, updates ...interface{}) []interface{} {
	out := make([]interface{}, len(kv), len(kv)+len(updates))
	copy(out, kv)
next:
	for i := 0; i+1 < len(updates); i += 2 {
		key, ok := updates[i].(string)
		if !ok || key == "" {
			continue
		}
		for j := 0; j+1 < len(out); j += 2 {
			if out[j] == key {
				out[j+1] = updates[i+1]
				continue next
			}
		}
		out = append(out, key, updates[i+1])
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
