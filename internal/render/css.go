package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

// CSSOptions tunes the stylesheet output.
type CSSOptions struct {
	// Selector wraps the custom properties; defaults to :root.
	Selector string
	// OmitFontFaces skips the @font-face blocks.
	OmitFontFaces bool
}

// CSS writes @font-face blocks for the table's fonts followed by one rule
// holding every custom property in name order.
func CSS(w io.Writer, table *theme.Table, opts CSSOptions) error {
	selector := opts.Selector
	if selector == "" {
		selector = ":root"
	}

	var sb strings.Builder
	if !opts.OmitFontFaces {
		for _, font := range table.Fonts() {
			writeFontFace(&sb, font)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, name := range table.Names() {
		value, _ := table.Get(name)
		fmt.Fprintf(&sb, "  %s: %s;\n", theme.CSSVarName(table.Prefix, name), value)
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeFontFace(sb *strings.Builder, font theme.FontRef) {
	sb.WriteString("@font-face {\n")
	fmt.Fprintf(sb, "  font-family: %s;\n", quoteFamily(font.FontFamily))
	if font.FontStyle != "" {
		fmt.Fprintf(sb, "  font-style: %s;\n", font.FontStyle)
	}
	if font.FontWeight != "" {
		fmt.Fprintf(sb, "  font-weight: %s;\n", font.FontWeight)
	}
	if font.FontDisplay != "" {
		fmt.Fprintf(sb, "  font-display: %s;\n", font.FontDisplay)
	}
	fmt.Fprintf(sb, "  src: %s;\n", font.Src)
	sb.WriteString("}\n")
}

func quoteFamily(family string) string {
	if strings.HasPrefix(family, `"`) || strings.HasPrefix(family, "'") {
		return family
	}
	return `"` + strings.ReplaceAll(family, `"`, `\"`) + `"`
}
