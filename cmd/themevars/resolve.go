package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/themevars/internal/render"
)

type resolveOptions struct {
	selector  string
	noFonts   bool
	requested []string
}

func newResolveCmd(app *appContext, v *viper.Viper) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [theme-id]",
		Short: "Resolve a theme and print its variables",
		Long: "Resolve a theme for one tone and print the flat variable table.\n" +
			"Formats: css (default), json, table and preview.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, args, opts)
		},
	}

	cmd.Flags().StringP("format", "f", "css", "Output format (css, json, table, preview)")
	cmd.Flags().StringVar(&opts.selector, "selector", ":root", "CSS selector wrapping the custom properties")
	cmd.Flags().BoolVar(&opts.noFonts, "no-fonts", false, "Omit @font-face blocks from CSS output")
	cmd.Flags().StringSliceVar(&opts.requested, "request", nil, "Extra variable names to resolve through fallbacks")
	_ = v.BindPFlag(keyOutputFormat, cmd.Flags().Lookup("format"))

	return cmd
}

func runResolve(cmd *cobra.Command, app *appContext, args []string, opts *resolveOptions) error {
	format, err := render.ParseFormat(app.cfg.Format)
	if err != nil {
		return newCommandError("resolve", "selecting the output format", err, "Use --format css, json, table or preview.")
	}

	req, err := app.request(args)
	if err != nil {
		return newCommandError("resolve", "selecting a theme", err, "Pass a theme id or set theme.default in themevars.yaml.")
	}
	req.Requested = opts.requested

	table, err := app.resolve(cmd, "resolve", req)
	if err != nil {
		return err
	}

	if format == render.FormatCSS {
		return render.CSS(cmd.OutOrStdout(), table, render.CSSOptions{
			Selector:      opts.selector,
			OmitFontFaces: opts.noFonts,
		})
	}
	return render.Write(cmd.OutOrStdout(), format, table)
}
