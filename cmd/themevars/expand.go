package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

type expandOptions struct {
	css bool
}

func newExpandCmd() *cobra.Command {
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand <name=value>...",
		Short: "Show what shorthands and generators derive from a few variables",
		Example: "  themevars expand 'padding-Card=4px 8px' 'border-Card=1px solid #ccc'\n" +
			"  themevars expand space-base=0.25rem",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.css, "css", false, "Print CSS declarations instead of name: value pairs")

	return cmd
}

func runExpand(cmd *cobra.Command, args []string, opts *expandOptions) error {
	input, err := parseAssignments(args)
	if err != nil {
		return newCommandError("expand", "parsing arguments", err, "Pass variables as name=value, for example padding-Card=4px.")
	}

	// expand skips config loading, so the root flags are read directly.
	tone, _ := cmd.Flags().GetString("tone")
	prefix, _ := cmd.Flags().GetString("prefix")

	generated := theme.Generate(input, theme.DefaultGenerators(tone))
	merged := theme.MergeLayers(
		theme.Layer{Source: "generated", Vars: generated},
		theme.Layer{Source: "input", Vars: input},
	)
	expanded := theme.ExpandShorthands(merged)

	out := cmd.OutOrStdout()
	for _, name := range expanded.Keys() {
		value := expanded[name]
		if opts.css {
			fmt.Fprintf(out, "%s: %s;\n", theme.CSSVarName(prefix, name), theme.RewriteEmbedded(value, prefix))
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", name, value)
	}
	return nil
}

func parseAssignments(args []string) (theme.Vars, error) {
	vars := theme.Vars{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=value, got %q", arg)
		}
		if _, dup := vars[name]; dup {
			return nil, fmt.Errorf("variable %q given twice", name)
		}
		vars[name] = strings.TrimSpace(value)
	}
	if len(vars) == 0 {
		return nil, errors.New("no variables given")
	}
	return vars, nil
}
