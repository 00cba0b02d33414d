package core

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type section int

const (
	sectionHeader section = iota
	sectionOption
	sectionMacro
	sectionRule
	sectionInner
	sectionEnd
)

var sectionKeywords = map[string]section{
	"option": sectionOption,
	"macro":  sectionMacro,
	"rule":   sectionRule,
	"inner":  sectionInner,
	"end":    sectionEnd,
}

func (s section) String() string {
	switch s {
	case sectionOption:
		return "option"
	case sectionMacro:
		return "macro"
	case sectionRule:
		return "rule"
	case sectionInner:
		return "inner"
	case sectionEnd:
		return "end"
	default:
		return "header"
	}
}

// grammarParser parses a grammar one line at a time. line is the 1-based
// number of the line being parsed.
type grammarParser struct {
	file    string
	cfg     Config
	line    int
	section section
	grammar *Grammar
	macros  MacroTable
	inner   strings.Builder
	// declared records the line of each header declaration and macro.
	declared map[string]int
}

func newGrammarParser(file string, cfg Config) *grammarParser {
	return &grammarParser{
		file:     file,
		cfg:      cfg,
		grammar:  &Grammar{},
		macros:   make(MacroTable),
		declared: make(map[string]int),
	}
}

func (p *grammarParser) errorf(format string, args ...any) *GrammarError {
	return parseError(p.file, p.line, format, args...)
}

func (p *grammarParser) parse(src []byte) (*Grammar, error) {
	text := strings.TrimSuffix(string(src), "\n")
	for i, raw := range strings.Split(text, "\n") {
		p.line = i + 1
		if err := p.parseLine(strings.TrimRight(raw, "\r")); err != nil {
			return nil, err
		}
	}

	if p.section != sectionEnd {
		return nil, p.errorf(`unexpected end of file, expecting "end"`)
	}
	return p.grammar, nil
}

func (p *grammarParser) parseLine(text string) error {
	trimmed := strings.TrimSpace(text)

	if p.section == sectionInner && trimmed != "end" {
		p.inner.WriteString(text)
		p.inner.WriteByte('\n')
		return nil
	}
	if next, ok := sectionKeywords[trimmed]; ok {
		return p.enter(next)
	}
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	switch p.section {
	case sectionHeader:
		return p.parseHeader(trimmed)
	case sectionOption:
		return p.parseOption(trimmed)
	case sectionMacro:
		return p.parseMacro(trimmed)
	case sectionRule:
		return p.parseRule(trimmed)
	default:
		return p.errorf(`unexpected %q after "end"`, firstField(trimmed))
	}
}

func (p *grammarParser) enter(next section) error {
	if next == p.section {
		return p.errorf("duplicate %q section", next.String())
	}
	if next < p.section {
		return p.errorf("unexpected %q section after %q", next.String(), p.section.String())
	}
	p.section = next

	if next == sectionEnd {
		p.grammar.Inner = p.inner.String()
		if err := validateGrammar(p.grammar, p.file, p.line); err != nil {
			p.line = err.Line
			return err
		}
	}
	return nil
}

func (p *grammarParser) parseHeader(text string) error {
	fields := cutComment(strings.Fields(text), 1)

	switch fields[0] {
	case "package", "scanner", "import":
	default:
		return p.errorf("unexpected token %q", fields[0])
	}
	if len(fields) != 2 {
		return p.errorf(`expected "%s <name>"`, fields[0])
	}

	keyword, value := fields[0], fields[1]
	if keyword == "import" {
		path, err := strconv.Unquote(value)
		if err != nil || path == "" {
			return p.errorf("invalid import path %s", value)
		}
		p.grammar.Imports = append(p.grammar.Imports, path)
		return nil
	}

	if prev, ok := p.declared[keyword]; ok {
		return p.errorf("%s already declared on line %d", keyword, prev)
	}
	if !isGoIdent(value) {
		return p.errorf("invalid %s name %q", keyword, value)
	}
	p.declared[keyword] = p.line

	if keyword == "package" {
		p.grammar.Package = value
	} else {
		p.grammar.Name = value
	}
	return nil
}

func (p *grammarParser) parseOption(text string) error {
	for _, opt := range cutComment(strings.Fields(text), 0) {
		switch opt {
		case "ignorecase":
			p.grammar.Options.IgnoreCase = true
		case "independent":
			p.grammar.Options.Independent = true
		case "stub":
			p.grammar.Options.Stub = true
		default:
			return p.errorf("unknown option %q", opt)
		}
	}
	return nil
}

func (p *grammarParser) parseMacro(text string) error {
	fields := cutComment(splitFields(text), 2)
	name := fields[0]

	if !identRegex.MatchString(name) {
		return p.errorf("invalid macro name %q", name)
	}
	if len(fields) < 2 {
		return p.errorf("macro %q has no pattern", name)
	}
	if len(fields) > 2 {
		return p.errorf("unexpected token %q", fields[2])
	}
	if _, ok := p.macros[name]; ok {
		return p.errorf("macro %q already defined on line %d", name, p.declared["macro "+name])
	}

	expanded, err := p.macros.Expand(fields[1])
	if err != nil {
		return p.errorf("%s", err.Error())
	}
	if _, err := regexp.Compile("(?:" + expanded + ")"); err != nil {
		return p.errorf("invalid pattern %q: %s", fields[1], regexpReason(err))
	}

	p.macros[name] = expanded
	p.declared["macro "+name] = p.line
	p.grammar.Macros = append(p.grammar.Macros, Macro{Name: name, Pattern: expanded, Line: p.line})
	return nil
}

func (p *grammarParser) parseRule(text string) error {
	fields := splitFields(text)
	rule := Rule{Line: p.line}

	if strings.HasPrefix(fields[0], ":") && identRegex.MatchString(fields[0][1:]) {
		rule.State = fields[0][1:]
		fields = fields[1:]
	}
	fields = cutComment(fields, 1)
	if len(fields) == 0 {
		return p.errorf("rule has no pattern")
	}

	rule.Source = fields[0]
	if err := p.parseAction(&rule, fields[1:]); err != nil {
		return err
	}

	expanded, err := p.macros.Expand(rule.Source)
	if err != nil {
		return p.errorf("%s", err.Error())
	}
	pattern := `\A(?:` + expanded + `)`
	if p.cfg.IgnoreCase || p.grammar.Options.IgnoreCase {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return p.errorf("invalid pattern %q: %s", rule.Source, regexpReason(err))
	}
	if re.MatchString("") {
		return p.errorf("pattern %q matches the empty string", rule.Source)
	}

	rule.Pattern = pattern
	p.grammar.Rules = append(p.grammar.Rules, rule)
	return nil
}

// parseAction reads the fields after a rule's pattern: nothing (skip), a token
// kind, a state switch, or a token kind followed by a state switch.
func (p *grammarParser) parseAction(rule *Rule, action []string) error {
	if len(action) > 2 {
		return p.errorf("unexpected token %q", action[2])
	}
	if len(action) == 0 {
		return nil
	}

	if !strings.HasPrefix(action[0], ":") {
		if !identRegex.MatchString(action[0]) {
			return p.errorf("invalid token kind %q", action[0])
		}
		rule.Kind = action[0]
		action = action[1:]
	} else if len(action) == 2 {
		return p.errorf("unexpected token %q", action[1])
	}

	if len(action) == 0 {
		return nil
	}
	next := action[0]
	if !strings.HasPrefix(next, ":") {
		return p.errorf("unexpected token %q", next)
	}
	next = next[1:]
	if next != "" && !identRegex.MatchString(next) {
		return p.errorf("invalid state %q", next)
	}
	rule.Next = next
	rule.Switch = true
	return nil
}

// splitFields splits a macro or rule line on whitespace that is neither
// escaped nor inside a character class, so patterns may contain `\ ` and `[ ]`.
func splitFields(s string) []string {
	var fields []string
	var cur strings.Builder
	escaped := false
	classPos := -1 // runes read since the opening '[', or -1 outside a class

	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}

	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
			if classPos >= 0 {
				classPos++
			}
		case classPos >= 0:
			if r == ']' && classPos > 0 {
				classPos = -1
			} else if r != '^' || classPos > 0 {
				classPos++
			}
		case r == '[':
			classPos = 0
		case unicode.IsSpace(r):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()

	return fields
}

// cutComment drops the fields from the first one at or after index from that
// starts with '#'.
func cutComment(fields []string, from int) []string {
	for i := from; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "#") {
			return fields[:i]
		}
	}
	return fields
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return s
}

func isGoIdent(s string) bool {
	if s == "" || s == "_" {
		return false
	}
	for i, r := range s {
		if !unicode.IsLetter(r) && r != '_' && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// regexpReason strips the "error parsing regexp: " prefix so messages read as
// a single phrase.
func regexpReason(err error) string {
	return strings.TrimPrefix(err.Error(), "error parsing regexp: ")
}
