package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	themeapp "github.com/alexisbeaulieu97/themevars/internal/app/theme"
	"github.com/alexisbeaulieu97/themevars/internal/cache"
	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
	infraconfig "github.com/alexisbeaulieu97/themevars/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/themevars/internal/infrastructure/fonts"
	"github.com/alexisbeaulieu97/themevars/internal/infrastructure/logging"
)

const fontWaitTimeout = 5 * time.Second

// appContext bundles the services created once the configuration is known.
type appContext struct {
	cfg     settings
	logger  *logging.Logger
	service *themeapp.Service
}

func (a *appContext) init(cmd *cobra.Command, cfg settings) error {
	ctx := cmd.Context()

	// Entries logged before the real logger exists are replayed into it.
	buffer := logging.NewEventBuffer(0)
	boot := logging.NewBufferedLogger(buffer)
	boot.Debug(ctx, "configuration loaded",
		"config_file", cfg.ConfigFile,
		"themes_dir", cfg.ThemesDir,
		"tone", cfg.Tone,
		"cache_size", cfg.CacheSize,
	)

	log, err := logging.New(logging.Options{
		Writer:    cmd.ErrOrStderr(),
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Layer:     "interface",
		Component: "cli",
	})
	if err != nil {
		return newCommandError(cmd.Name(), "configuring logging", err, "Use --log-level debug|info|warn|error and --log-format text|json|logfmt.")
	}
	buffer.Flush(log)

	memo, err := cache.New(cfg.CacheSize)
	if err != nil {
		return newCommandError(cmd.Name(), "creating the table cache", err, "Set cache.size to a positive number.")
	}

	infra := log.WithLayer("infrastructure")
	service, err := themeapp.NewService(themeapp.Options{
		Loader: infraconfig.NewYAMLLoader(infra.With("component", "yaml_loader")),
		Fonts:  fonts.NewLoggingLoader(infra.With("component", "fonts")),
		Logger: log.WithLayer("application").With("component", "theme_service"),
		Memo:   memo,
		Dir:    cfg.ThemesDir,
	})
	if err != nil {
		return newCommandError(cmd.Name(), "creating the theme service", err, "Set --themes or themes.dir to a theme directory.")
	}

	a.cfg = cfg
	a.logger = log
	a.service = service
	return nil
}

func (a *appContext) close(ctx context.Context) error {
	if a.service == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	waitCtx, cancel := context.WithTimeout(ctx, fontWaitTimeout)
	defer cancel()
	if err := a.service.Wait(waitCtx); err != nil {
		a.logger.Warn(ctx, "gave up waiting for font loading", "error", err)
	}
	return nil
}

// request builds a resolution request from the settings and an optional
// positional theme id.
func (a *appContext) request(args []string) (theme.Request, error) {
	id, err := a.cfg.themeOrDefault(args)
	if err != nil {
		return theme.Request{}, err
	}
	return theme.Request{ThemeID: id, Tone: a.cfg.Tone, Prefix: a.cfg.Prefix}, nil
}

func (a *appContext) resolve(cmd *cobra.Command, operation string, req theme.Request) (*theme.Table, error) {
	outcome, err := a.service.Resolve(cmd.Context(), req)
	if err != nil {
		return nil, resolveError(operation, req, err)
	}
	return outcome.Table, nil
}

func resolveError(operation string, req theme.Request, err error) error {
	detail := fmt.Sprintf("resolving theme %q (%s)", req.ThemeID, req.Tone)
	switch {
	case theme.HasCode(err, theme.ErrCodeThemeNotFound):
		return newCommandError(operation, detail, err, "Run 'themevars list' to see the registered themes.")
	case theme.HasCode(err, theme.ErrCodeCycle):
		return newCommandError(operation, detail, err, "Remove one of the extends links that form the cycle.")
	case theme.HasCode(err, theme.ErrCodeNotFound):
		return newCommandError(operation, "loading themes", err, "Point --themes (or themes.dir) at a directory of theme files.")
	case theme.HasCode(err, theme.ErrCodeValidation), theme.HasCode(err, theme.ErrCodeDuplicate):
		return newCommandError(operation, "loading themes", err, "Fix the reported theme file and try again.")
	}
	return newCommandError(operation, detail, err, "Re-run with --verbose for details.")
}
