package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/themevars/internal/cache"
	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
	"github.com/alexisbeaulieu97/themevars/internal/ports"
)

// Options wires the service to its collaborators. Loader and Dir are required;
// Fonts, Logger and Memo are optional.
type Options struct {
	Loader ports.ThemeLoader
	Fonts  ports.FontLoader
	Logger ports.Logger
	Memo   *cache.Memo
	Dir    string
}

// Service loads a theme set once and resolves tables from it, memoizing
// results and loading fonts in the background.
type Service struct {
	loader ports.ThemeLoader
	fonts  ports.FontLoader
	logger ports.Logger
	memo   *cache.Memo
	dir    string

	mu       sync.RWMutex
	set      *ports.ThemeSet
	resolver *theme.Resolver

	pending sync.WaitGroup
}

// ResolveOutcome is the result of one resolution.
type ResolveOutcome struct {
	Table    *theme.Table
	Cached   bool
	Duration time.Duration
}

// NewService constructs an application theme service.
func NewService(opts Options) (*Service, error) {
	if opts.Loader == nil {
		return nil, errors.New("theme service: loader is required")
	}
	if opts.Dir == "" {
		return nil, errors.New("theme service: themes directory is required")
	}
	return &Service{
		loader: opts.Loader,
		fonts:  opts.Fonts,
		logger: opts.Logger,
		memo:   opts.Memo,
		dir:    opts.Dir,
	}, nil
}

// Load (re)reads the theme set from disk and replaces the active one.
// Memoized tables stay valid because keys carry content fingerprints.
func (s *Service) Load(ctx context.Context) (*ports.ThemeSet, error) {
	set, err := s.loader.Load(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.set = set
	s.resolver = theme.NewResolver(set.Registry, set.Defaults)
	s.mu.Unlock()

	s.logDebug(ctx, "theme set activated", "themes", set.Registry.Len(), "components", len(set.Defaults))
	return set, nil
}

// ThemeSet returns the active theme set, loading it on first use.
func (s *Service) ThemeSet(ctx context.Context) (*ports.ThemeSet, error) {
	set, _, err := s.active(ctx)
	return set, err
}

// Themes lists the registered definitions in registration order.
func (s *Service) Themes(ctx context.Context) ([]theme.Definition, error) {
	set, err := s.ThemeSet(ctx)
	if err != nil {
		return nil, err
	}
	return set.Registry.Definitions(), nil
}

// Resolve produces the table for req. Requests carrying custom generators
// bypass the memo.
func (s *Service) Resolve(ctx context.Context, req theme.Request) (*ResolveOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set, resolver, err := s.active(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	compute := func() (*theme.Table, error) { return resolver.Resolve(req) }

	var (
		table  *theme.Table
		cached bool
	)
	if s.memo != nil && req.Generators == nil {
		table, cached, err = s.memo.GetOrCompute(cache.KeyFor(set.Registry, set.Defaults, req), compute)
	} else {
		table, err = compute()
	}
	if err != nil {
		s.logError(ctx, "theme resolution failed", err, "theme_id", req.ThemeID, "tone", req.Tone)
		return nil, err
	}

	outcome := &ResolveOutcome{Table: table, Cached: cached, Duration: time.Since(start)}
	s.report(ctx, outcome)
	s.loadFonts(ctx, table)
	return outcome, nil
}

// Get resolves req and returns a single variable.
func (s *Service) Get(ctx context.Context, req theme.Request, name string) (string, error) {
	outcome, err := s.Resolve(ctx, req)
	if err != nil {
		return "", err
	}
	value, ok := outcome.Table.Get(name)
	if !ok {
		return "", fmt.Errorf("variable %q is not defined for theme %q (%s)", name, outcome.Table.ThemeID, outcome.Table.Tone)
	}
	return value, nil
}

// Wait blocks until background font loads finish or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) active(ctx context.Context) (*ports.ThemeSet, *theme.Resolver, error) {
	s.mu.RLock()
	set, resolver := s.set, s.resolver
	s.mu.RUnlock()
	if set != nil {
		return set, resolver, nil
	}

	if _, err := s.Load(ctx); err != nil {
		return nil, nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set, s.resolver, nil
}

func (s *Service) report(ctx context.Context, outcome *ResolveOutcome) {
	table := outcome.Table
	for _, missing := range table.MissingExtends {
		s.logWarn(ctx, "extends target not registered", "theme_id", table.ThemeID, "missing", missing)
	}
	for _, u := range table.Unresolved {
		s.logWarn(ctx, "dropped unresolved variable", "name", u.Name, "reference", u.Reference, "reason", string(u.Reason))
	}
	s.logDebug(ctx, "theme resolved",
		"theme_id", table.ThemeID,
		"tone", table.Tone,
		"vars", table.Len(),
		"cached", outcome.Cached,
		"duration", outcome.Duration.String(),
	)
}

func (s *Service) loadFonts(ctx context.Context, table *theme.Table) {
	if s.fonts == nil {
		return
	}
	fonts := table.Fonts()
	if len(fonts) == 0 {
		return
	}

	bg := context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.fonts.Load(bg, fonts); err != nil {
			s.logWarn(bg, "font loading failed", "theme_id", table.ThemeID, "error", err)
		}
	}()
}

func (s *Service) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(ctx, msg, fields...)
	}
}

func (s *Service) logWarn(ctx context.Context, msg string, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(ctx, msg, fields...)
	}
}

func (s *Service) logError(ctx context.Context, msg string, err error, fields ...interface{}) {
	if s.logger != nil {
		s.logger.Error(ctx, msg, append(fields, "error", err)...)
	}
}
