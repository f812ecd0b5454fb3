package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

const swatchWidth = 6

// Preview prints a swatch for every variable whose value is a plain colour.
// Colour output follows the capabilities of w; plain writers get text only.
func Preview(w io.Writer, table *theme.Table) error {
	renderer := lipgloss.NewRenderer(w)
	title := renderer.NewStyle().Bold(true)
	name := renderer.NewStyle().Width(longestColorName(table) + 2)
	muted := renderer.NewStyle().Faint(true)

	var sb strings.Builder
	sb.WriteString(title.Render(fmt.Sprintf("%s (%s)", table.ThemeID, table.Tone)))
	sb.WriteString("\n")

	count := 0
	for _, key := range table.Names() {
		value, _ := table.Get(key)
		c, err := theme.ParseColor(value)
		if err != nil {
			continue
		}
		count++

		hex := c.Clamped().Hex()
		fg := "#000000"
		if l, _, _ := c.Lab(); l < 0.55 {
			fg = "#ffffff"
		}
		swatch := renderer.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(fg)).
			Width(swatchWidth).
			Render("")

		sb.WriteString(swatch)
		sb.WriteString(" ")
		sb.WriteString(name.Render(key))
		sb.WriteString(muted.Render(value))
		sb.WriteString("\n")
	}
	if count == 0 {
		sb.WriteString(muted.Render("no colour variables"))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func longestColorName(table *theme.Table) int {
	longest := 0
	for _, key := range table.Names() {
		value, _ := table.Get(key)
		if _, err := theme.ParseColor(value); err != nil {
			continue
		}
		if len(key) > longest {
			longest = len(key)
		}
	}
	return longest
}
