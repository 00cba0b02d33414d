// Package lexer is the runtime shared by scanners generated by rex.
package lexer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Token is one match produced by a Scanner.
type Token struct {
	Kind string
	Text string
	Line int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%s %q", t.Line, t.Kind, t.Text)
}

// Rule is one scanner rule. A rule applies only while the scanner is in State
// ("" is the initial state). An empty Kind skips the match. When Switch is set
// the scanner moves to Next after matching.
type Rule struct {
	State   string
	Pattern *regexp.Regexp
	Kind    string
	Next    string
	Switch  bool
}

// ScanError reports input that no rule in the current state matches.
type ScanError struct {
	Line  int
	State string
	Near  string
}

func (e *ScanError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("%d: scan error in state %s near %q", e.Line, e.State, e.Near)
	}
	return fmt.Sprintf("%d: scan error near %q", e.Line, e.Near)
}

// Scanner tokenizes a string using an ordered rule list. The first active
// rule that matches at the current position wins.
type Scanner struct {
	rules []Rule
	src   string
	pos   int
	line  int
	state string
}

// New returns a scanner over rules. Patterns must be anchored with \A.
func New(rules []Rule) *Scanner {
	return &Scanner{rules: rules, line: 1}
}

// Reset starts scanning src from the beginning in the initial state.
func (s *Scanner) Reset(src string) {
	s.src = src
	s.pos = 0
	s.line = 1
	s.state = ""
}

func (s *Scanner) State() string {
	return s.state
}

func (s *Scanner) SetState(state string) {
	s.state = state
}

// Line is the line number of the current position.
func (s *Scanner) Line() int {
	return s.line
}

// Next returns the next token. It returns io.EOF at the end of input.
func (s *Scanner) Next() (Token, error) {
	for s.pos < len(s.src) {
		rest := s.src[s.pos:]
		matched := false

		for _, r := range s.rules {
			if r.State != s.state {
				continue
			}
			loc := r.Pattern.FindStringIndex(rest)
			if loc == nil || loc[0] != 0 || loc[1] == 0 {
				continue
			}

			text := rest[:loc[1]]
			tok := Token{Kind: r.Kind, Text: text, Line: s.line}
			s.pos += loc[1]
			s.line += strings.Count(text, "\n")
			if r.Switch {
				s.state = r.Next
			}
			if r.Kind != "" {
				return tok, nil
			}
			matched = true
			break
		}

		if !matched {
			near := rest
			if len(near) > 16 {
				near = near[:16]
			}
			return Token{}, &ScanError{Line: s.line, State: s.state, Near: near}
		}
	}

	return Token{}, io.EOF
}

// All scans src to the end and returns every token.
func (s *Scanner) All(src string) ([]Token, error) {
	s.Reset(src)
	var toks []Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}
