// Package logger holds the zerolog logger the themevars binary uses before
// its configuration has been read. Once settings are loaded the CLI switches
// to the structured ports.Logger from internal/infrastructure/logging.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/themevars/internal/ports"
)

// DefaultLevel applies when neither Options nor the environment name a level.
const DefaultLevel = "warn"

// Options configures the bootstrap logger.
type Options struct {
	Level string
	// Console renders entries for humans instead of one JSON object per line.
	Console bool
	Writer  io.Writer
}

// Logger is a thin zerolog wrapper. A nil *Logger drops everything.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to opts.Writer, or stderr when unset.
func New(opts Options) (*Logger, error) {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: !isTerminal(out)}
	}

	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// LevelFromEnv returns the lowercased level stored in key, or DefaultLevel
// when the variable is unset or not a level zerolog understands.
func LevelFromEnv(key string) string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if raw == "" {
		return DefaultLevel
	}
	if _, err := zerolog.ParseLevel(raw); err != nil {
		return DefaultLevel
	}
	return raw
}

// ForContext attaches the correlation id carried by ctx, if any.
func (l *Logger) ForContext(ctx context.Context) *Logger {
	if l == nil {
		return nil
	}
	id := ports.GetCorrelationID(ctx)
	if id == "" {
		return l
	}
	return &Logger{zl: l.zl.With().Str("correlation_id", id).Logger()}
}

// With returns a derived logger carrying key/value pairs.
func (l *Logger) With(kv ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Fields(kv).Logger()}
}

// DebugEnabled reports whether debug entries are written.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.zl.GetLevel() <= zerolog.DebugLevel
}

func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.zl.Debug().Msg(msg)
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.zl.Info().Msg(msg)
}

// Error logs msg with err attached under the "error" key.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	l.zl.Error().Err(err).Msg(msg)
}

func parseLevel(raw string) (zerolog.Level, error) {
	if raw == "" {
		raw = DefaultLevel
	}
	return zerolog.ParseLevel(strings.ToLower(raw))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
