package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

type getOptions struct {
	cssName bool
}

func newGetCmd(app *appContext) *cobra.Command {
	opts := &getOptions{}

	cmd := &cobra.Command{
		Use:   "get <variable> [theme-id]",
		Short: "Print the resolved value of one variable",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, app, args[0], args[1:], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.cssName, "css-name", false, "Print the custom property name alongside the value")

	return cmd
}

func runGet(cmd *cobra.Command, app *appContext, name string, args []string, opts *getOptions) error {
	req, err := app.request(args)
	if err != nil {
		return newCommandError("get", "selecting a theme", err, "Pass a theme id or set theme.default in themevars.yaml.")
	}
	req.Requested = []string{name}

	table, err := app.resolve(cmd, "get", req)
	if err != nil {
		return err
	}

	value, ok := table.Get(name)
	if !ok {
		return newCommandError("get", fmt.Sprintf("looking up %q in theme %q (%s)", name, table.ThemeID, table.Tone),
			fmt.Errorf("variable %q is not defined", name),
			"Run 'themevars resolve --format table' to list the available variables.")
	}

	if opts.cssName {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", theme.CSSVarName(table.Prefix, name), value)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
