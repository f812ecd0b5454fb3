package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

// Table writes one aligned row per variable.
func Table(w io.Writer, table *theme.Table) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tPROPERTY\tVALUE")
	for _, name := range table.Names() {
		value, _ := table.Get(name)
		fmt.Fprintf(writer, "%s\t%s\t%s\n", name, theme.CSSVarName(table.Prefix, name), value)
	}

	return writer.Flush()
}
