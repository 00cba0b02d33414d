package core

import (
	"fmt"
	"regexp"
)

// macroRefRegex matches {NAME} macro references. A backslash before the brace
// keeps it literal.
var macroRefRegex = regexp.MustCompile(`(\\?)\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// identRegex matches macro names, state names and token kinds.
var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// MacroTable maps macro names to their expanded patterns.
type MacroTable map[string]string

// Expand replaces every {NAME} reference in pattern with the named macro
// wrapped in a non-capturing group.
func (m MacroTable) Expand(pattern string) (string, error) {
	var expandErr error

	expanded := macroRefRegex.ReplaceAllStringFunc(pattern, func(ref string) string {
		match := macroRefRegex.FindStringSubmatch(ref)
		if match[1] != "" {
			return ref
		}
		name := match[2]
		body, ok := m[name]
		if !ok {
			if expandErr == nil {
				expandErr = fmt.Errorf("undefined macro %q", name)
			}
			return ref
		}
		return "(?:" + body + ")"
	})

	if expandErr != nil {
		return "", expandErr
	}
	return expanded, nil
}
