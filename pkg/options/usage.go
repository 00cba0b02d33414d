package options

import (
	"fmt"
	"io"
)

// flagColumnWidth is the width the flag column of help output is padded to.
const flagColumnWidth = 27

// RenderUsage writes help for t to w. When msg is non-empty it is printed
// first, prefixed with the program name. Hidden rows are skipped.
func RenderUsage(w io.Writer, program, msg string, t Table) {
	if msg != "" {
		fmt.Fprintf(w, "%s: %s\n", program, msg)
	}
	fmt.Fprintf(w, "Usage: %s [options] <grammar file>\n", program)
	fmt.Fprintln(w, "Options:")

	for _, s := range t.specs {
		if s.IsBlank() {
			fmt.Fprintln(w)
			continue
		}
		if !s.Visible {
			continue
		}
		fmt.Fprintf(w, "%-*s %s\n", flagColumnWidth, s.Synopsis(), s.Help)
	}
}
