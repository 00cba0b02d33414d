package cli

import (
	"fmt"
	"strconv"
)

// Diagnostic is the one-line report of a missing or malformed grammar.
type Diagnostic struct {
	Program     string
	GrammarFile string
	// Line is omitted from the output when 0.
	Line    int
	Message string
}

// String renders "<program>:<file>:<line>:<message>". A message that does not
// start with a digit is preceded by a space.
func (d Diagnostic) String() string {
	line := ""
	if d.Line > 0 {
		line = strconv.Itoa(d.Line)
	}

	msg := d.Message
	if msg == "" || msg[0] < '0' || msg[0] > '9' {
		msg = " " + msg
	}

	return fmt.Sprintf("%s:%s:%s:%s", d.Program, d.GrammarFile, line, msg)
}
