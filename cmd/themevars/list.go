package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(app *appContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, app *appContext, opts *listOptions) error {
	set, err := app.service.ThemeSet(cmd.Context())
	if err != nil {
		return resolveError("list", theme.Request{}, err)
	}

	defs := set.Registry.Definitions()
	if len(defs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No themes registered.")
		return nil
	}

	if opts.jsonOutput {
		return renderListJSON(cmd.OutOrStdout(), defs, set.Files)
	}
	return renderListTable(cmd.OutOrStdout(), defs)
}

func renderListTable(out io.Writer, defs []theme.Definition) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	arrow := extendsSeparator(out)

	fmt.Fprintln(writer, "ID\tNAME\tEXTENDS\tTONES\tVARS")
	for _, def := range defs {
		extends := "-"
		if len(def.Extends) > 0 {
			extends = strings.Join(def.Extends, arrow)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d\n",
			def.ID,
			displayName(def),
			extends,
			valueOrFallback(strings.Join(toneNames(def), ","), "-"),
			len(def.ThemeVars),
		)
	}

	return writer.Flush()
}

type listJSONTheme struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Extends []string `json:"extends"`
	Tones   []string `json:"tones"`
	Vars    int      `json:"vars"`
}

type listJSONPayload struct {
	Version string          `json:"version"`
	Count   int             `json:"count"`
	Files   []string        `json:"files"`
	Themes  []listJSONTheme `json:"themes"`
}

func renderListJSON(out io.Writer, defs []theme.Definition, files []string) error {
	payload := listJSONPayload{
		Version: "1.0",
		Count:   len(defs),
		Files:   files,
		Themes:  make([]listJSONTheme, len(defs)),
	}
	for i, def := range defs {
		extends := def.Extends
		if extends == nil {
			extends = []string{}
		}
		payload.Themes[i] = listJSONTheme{
			ID:      def.ID,
			Name:    displayName(def),
			Extends: extends,
			Tones:   toneNames(def),
			Vars:    len(def.ThemeVars),
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// displayName uses the authored name, or title-cases the id.
func displayName(def theme.Definition) string {
	if strings.TrimSpace(def.Name) != "" {
		return def.Name
	}
	words := strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(def.ID)
	return cases.Title(language.English).String(words)
}

func toneNames(def theme.Definition) []string {
	tones := make([]string, 0, len(def.Tones))
	for tone := range def.Tones {
		tones = append(tones, tone)
	}
	sort.Strings(tones)
	return tones
}

func extendsSeparator(writer any) string {
	if supportsUnicode(writer) {
		return " → "
	}
	return ", "
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
