// Package options resolves command-line flags against a declarative option table
// and renders that same table as help text.
package options

import (
	"fmt"
	"strings"
)

// Spec is one row of an option table. A row with neither Short nor Long is a
// blank-line marker: the resolver ignores it and help renders it as an empty line.
type Spec struct {
	Visible  bool
	Short    string // e.g. "-o"
	Long     string // e.g. "--output-file"
	TakesArg bool
	ArgName  string // placeholder shown in help, e.g. "<outfile>"
	Help     string
}

// Blank returns a marker row used to group options in help output.
func Blank() Spec {
	return Spec{Visible: true}
}

// IsBlank reports whether the row is a blank-line marker.
func (s Spec) IsBlank() bool {
	return s.Short == "" && s.Long == ""
}

// Key is the canonical name a resolved value is stored under: the long flag
// when one exists, otherwise the short flag.
func (s Spec) Key() string {
	if s.Long != "" {
		return s.Long
	}
	return s.Short
}

// Synopsis is the flag column of the help line, e.g. "-o,--output-file <outfile>".
func (s Spec) Synopsis() string {
	var names []string
	if s.Short != "" {
		names = append(names, s.Short)
	}
	if s.Long != "" {
		names = append(names, s.Long)
	}
	synopsis := strings.Join(names, ",")
	if s.TakesArg {
		synopsis += " " + s.ArgName
	}
	return synopsis
}

// Table is an immutable ordered list of option rows.
type Table struct {
	specs []Spec
	short map[string]int
	long  map[string]int
}

// NewTable validates the rows and builds a table. Every flag token must be
// unique across the table.
func NewTable(specs ...Spec) (Table, error) {
	t := Table{
		specs: append([]Spec(nil), specs...),
		short: make(map[string]int),
		long:  make(map[string]int),
	}

	for i, s := range t.specs {
		if s.IsBlank() {
			if s.TakesArg || s.Help != "" {
				return Table{}, fmt.Errorf("option row %d has no flags", i)
			}
			continue
		}
		if s.Short != "" {
			if len(s.Short) != 2 || s.Short[0] != '-' || s.Short[1] == '-' {
				return Table{}, fmt.Errorf("option row %d: malformed short flag %q", i, s.Short)
			}
			if _, dup := t.short[s.Short]; dup {
				return Table{}, fmt.Errorf("duplicate flag %q", s.Short)
			}
			t.short[s.Short] = i
		}
		if s.Long != "" {
			if len(s.Long) < 3 || !strings.HasPrefix(s.Long, "--") || strings.Contains(s.Long, "=") {
				return Table{}, fmt.Errorf("option row %d: malformed long flag %q", i, s.Long)
			}
			if _, dup := t.long[s.Long]; dup {
				return Table{}, fmt.Errorf("duplicate flag %q", s.Long)
			}
			t.long[s.Long] = i
		}
		if s.TakesArg && s.ArgName == "" {
			return Table{}, fmt.Errorf("option %q takes an argument but has no placeholder", s.Key())
		}
	}

	return t, nil
}

// MustTable is like NewTable but panics on an invalid table. Option tables are
// static, so an invalid one is a programming error.
func MustTable(specs ...Spec) Table {
	t, err := NewTable(specs...)
	if err != nil {
		panic("options: " + err.Error())
	}
	return t
}

// Specs returns a copy of the rows in declaration order.
func (t Table) Specs() []Spec {
	return append([]Spec(nil), t.specs...)
}

func (t Table) lookupShort(flag string) (Spec, bool) {
	i, ok := t.short[flag]
	if !ok {
		return Spec{}, false
	}
	return t.specs[i], true
}

// matchLong finds the row for a long flag, accepting any unambiguous prefix.
func (t Table) matchLong(name string) (Spec, error) {
	if i, ok := t.long[name]; ok {
		return t.specs[i], nil
	}
	if name == "--" {
		return Spec{}, unknownFlag(name)
	}

	var candidates []Spec
	for _, s := range t.specs {
		if s.Long != "" && strings.HasPrefix(s.Long, name) {
			candidates = append(candidates, s)
		}
	}

	switch len(candidates) {
	case 0:
		return Spec{}, unknownFlag(name)
	case 1:
		return candidates[0], nil
	default:
		longs := make([]string, len(candidates))
		for i, c := range candidates {
			longs[i] = c.Long
		}
		return Spec{}, ambiguousFlag(name, longs)
	}
}
