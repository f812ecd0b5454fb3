package ports

import (
	"context"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

// ThemeSet is everything a resolver needs: the theme registry and the
// component defaults folded into the synthetic root.
type ThemeSet struct {
	Registry *theme.Registry
	Defaults theme.ComponentDefaults
	// Files lists the source files in load order.
	Files []string
}

// ThemeLoader loads theme definitions from an external source such as a
// directory of YAML/JSON files. Implementations must be deterministic, respect
// context cancellation, and translate infrastructure failures into domain
// error codes:
//   - io/fs.ErrNotExist → ErrCodeNotFound
//   - schema or YAML parsing failures → ErrCodeValidation
//   - duplicate ids across files → ErrCodeDuplicate
//   - extends cycles → ErrCodeCycle
//   - context cancellation → ErrCodeCancelled
//   - unexpected I/O issues → ErrCodeInternal with wrapped cause
type ThemeLoader interface {
	Load(ctx context.Context, dir string) (*ThemeSet, error)
}

// FontLoader fetches or registers web fonts once a table has been resolved.
// It runs outside the resolution path; failures are reported, never fatal.
type FontLoader interface {
	Load(ctx context.Context, fonts []theme.FontRef) error
}
