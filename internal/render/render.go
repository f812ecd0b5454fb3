// Package render writes resolved theme tables in the supported output formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

// Format names an output format.
type Format string

const (
	FormatCSS     Format = "css"
	FormatJSON    Format = "json"
	FormatTable   Format = "table"
	FormatPreview Format = "preview"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSS, FormatJSON, FormatTable, FormatPreview}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatCSS, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (expected one of css, json, table, preview)", name)
}

// Write renders table to w in the given format.
func Write(w io.Writer, format Format, table *theme.Table) error {
	switch format {
	case FormatCSS, "":
		return CSS(w, table, CSSOptions{})
	case FormatJSON:
		return JSON(w, table)
	case FormatTable:
		return Table(w, table)
	case FormatPreview:
		return Preview(w, table)
	}
	return fmt.Errorf("unknown output format %q", format)
}
