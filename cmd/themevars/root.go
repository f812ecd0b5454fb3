package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/themevars/internal/cache"
	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

const (
	configName = "themevars"
	envPrefix  = "THEMEVARS"

	keyThemesDir    = "themes.dir"
	keyThemeDefault = "theme.default"
	keyThemeTone    = "theme.tone"
	keyOutputPrefix = "output.prefix"
	keyOutputFormat = "output.format"
	keyLogLevel     = "log.level"
	keyLogFormat    = "log.format"
	keyCacheSize    = "cache.size"
)

type rootFlags struct {
	configFile string
	verbose    bool
}

// settings is the effective configuration after flags, environment and the
// config file have been merged by viper.
type settings struct {
	ConfigFile string
	ThemesDir  string
	Theme      string
	Tone       string
	Prefix     string
	Format     string
	LogLevel   string
	LogFormat  string
	CacheSize  int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	v := viper.New()
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "themevars",
		Short:         "Resolve layered design-token themes into CSS custom properties",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "expand" {
				return nil
			}
			cfg, err := loadSettings(v, flags)
			if err != nil {
				return newCommandError(cmd.Name(), "reading configuration", err, "Check themevars.yaml and THEMEVARS_* environment variables.")
			}
			return app.init(cmd, cfg)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close(cmd.Context())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "Path to a themevars config file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.String("themes", "themes", "Directory (or single file) holding theme definitions")
	pf.StringP("theme", "t", "", "Theme id to resolve")
	pf.String("tone", theme.ToneLight, "Tone to overlay (light, dark or a custom tone)")
	pf.String("prefix", theme.DefaultPrefix, "Custom property prefix")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json, logfmt)")
	pf.Int("cache-size", cache.DefaultSize, "Number of resolved tables kept in memory")

	bindings := map[string]string{
		keyThemesDir:    "themes",
		keyThemeDefault: "theme",
		keyThemeTone:    "tone",
		keyOutputPrefix: "prefix",
		keyLogLevel:     "log-level",
		keyLogFormat:    "log-format",
		keyCacheSize:    "cache-size",
	}
	for key, flag := range bindings {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	cmd.AddCommand(newResolveCmd(app, v))
	cmd.AddCommand(newGetCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newExpandCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func loadSettings(v *viper.Viper, flags *rootFlags) (settings, error) {
	v.SetDefault(keyThemesDir, "themes")
	v.SetDefault(keyThemeTone, theme.ToneLight)
	v.SetDefault(keyOutputPrefix, theme.DefaultPrefix)
	v.SetDefault(keyOutputFormat, "css")
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyCacheSize, cache.DefaultSize)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags.configFile != "" {
		v.SetConfigFile(flags.configFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if flags.configFile != "" || !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("load config: %w", err)
		}
	}

	cfg := settings{
		ConfigFile: v.ConfigFileUsed(),
		ThemesDir:  v.GetString(keyThemesDir),
		Theme:      v.GetString(keyThemeDefault),
		Tone:       v.GetString(keyThemeTone),
		Prefix:     v.GetString(keyOutputPrefix),
		Format:     v.GetString(keyOutputFormat),
		LogLevel:   v.GetString(keyLogLevel),
		LogFormat:  v.GetString(keyLogFormat),
		CacheSize:  v.GetInt(keyCacheSize),
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func (s settings) themeOrDefault(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if s.Theme != "" {
		return s.Theme, nil
	}
	return "", errors.New("no theme selected")
}
