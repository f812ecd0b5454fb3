package fonts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
	"github.com/alexisbeaulieu97/themevars/internal/ports"
)

// LoggingLoader implements ports.FontLoader by recording each font face as a
// structured log entry. Faces already seen are skipped.
type LoggingLoader struct {
	logger ports.Logger
	mu     sync.Mutex
	seen   map[string]struct{}
}

// NewLoggingLoader creates a font loader that reports through logger.
func NewLoggingLoader(logger ports.Logger) *LoggingLoader {
	return &LoggingLoader{
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

// Load registers fonts. Faces without a family or source are reported in the
// returned error; the rest are still registered.
func (l *LoggingLoader) Load(ctx context.Context, fonts []theme.FontRef) error {
	if l == nil {
		return nil
	}

	var errs []error
	for _, font := range fonts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if strings.TrimSpace(font.FontFamily) == "" || strings.TrimSpace(font.Src) == "" {
			errs = append(errs, fmt.Errorf("font %q: family and src are required", font.FontFamily))
			continue
		}

		key := faceKey(font)
		l.mu.Lock()
		_, dup := l.seen[key]
		if !dup {
			l.seen[key] = struct{}{}
		}
		l.mu.Unlock()
		if dup {
			continue
		}

		if l.logger != nil {
			l.logger.Info(ctx, "font registered",
				"font_family", font.FontFamily,
				"font_weight", font.FontWeight,
				"font_style", font.FontStyle,
				"font_display", font.FontDisplay,
				"src", font.Src,
			)
		}
	}
	return errors.Join(errs...)
}

// Registered reports how many distinct faces have been loaded.
func (l *LoggingLoader) Registered() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}

func faceKey(font theme.FontRef) string {
	return strings.Join([]string{font.FontFamily, font.FontWeight, font.FontStyle, font.Src}, "|")
}

var _ ports.FontLoader = (*LoggingLoader)(nil)
