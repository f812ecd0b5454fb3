package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
	"github.com/alexisbeaulieu97/themevars/pkg/diff"
)

type diffOptions struct {
	against     string
	againstTone string
	context     int
	inline      bool
}

func newDiffCmd(app *appContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff [theme-id]",
		Short: "Compare two resolved tables",
		Long: "Compare a theme against another theme (--against) or against another\n" +
			"tone of itself (--against-tone). Without either flag the light and dark\n" +
			"tones are compared.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, app, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.against, "against", "", "Theme id to compare with")
	cmd.Flags().StringVar(&opts.againstTone, "against-tone", "", "Tone to compare with")
	cmd.Flags().IntVar(&opts.context, "context", 3, "Lines of context in the unified diff")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "List changed variables with inline value edits")

	return cmd
}

func runDiff(cmd *cobra.Command, app *appContext, args []string, opts *diffOptions) error {
	left, err := app.request(args)
	if err != nil {
		return newCommandError("diff", "selecting a theme", err, "Pass a theme id or set theme.default in themevars.yaml.")
	}

	right := left
	switch {
	case opts.against != "":
		right.ThemeID = opts.against
		if opts.againstTone != "" {
			right.Tone = opts.againstTone
		}
	case opts.againstTone != "":
		right.Tone = opts.againstTone
	default:
		left.Tone, right.Tone = theme.ToneLight, theme.ToneDark
	}

	before, err := app.resolve(cmd, "diff", left)
	if err != nil {
		return err
	}
	after, err := app.resolve(cmd, "diff", right)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.inline {
		changes := diff.Changes(before.CSSVars(), after.CSSVars())
		for _, change := range changes {
			switch change.Kind {
			case diff.Added:
				fmt.Fprintf(out, "+ %s: %s\n", change.Name, change.New)
			case diff.Removed:
				fmt.Fprintf(out, "- %s: %s\n", change.Name, change.Old)
			default:
				fmt.Fprintf(out, "~ %s: %s\n", change.Name, diff.InlineValue(change.Old, change.New))
			}
		}
		if len(changes) == 0 {
			fmt.Fprintln(out, "No differences.")
		}
		return nil
	}

	text, err := diff.Unified(before.CSSVars(), after.CSSVars(), label(before), label(after), opts.context)
	if err != nil {
		return newCommandError("diff", "rendering the diff", err, "Re-run with --inline for a per-variable listing.")
	}
	if text == "" {
		fmt.Fprintln(out, "No differences.")
		return nil
	}
	fmt.Fprint(out, text)
	return nil
}

func label(table *theme.Table) string {
	return fmt.Sprintf("%s (%s)", table.ThemeID, table.Tone)
}
