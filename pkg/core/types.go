package core

// Level is a log severity.
type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// Config holds the settings the command line forwards to the generator.
type Config struct {
	OutputFile  string
	Stub        bool
	IgnoreCase  bool
	Independent bool
	Debug       bool
	// Package is used when the grammar does not declare one.
	Package string
}

// GrammarOptions are the flags a grammar can set in its option section.
type GrammarOptions struct {
	IgnoreCase  bool `yaml:"ignorecase"`
	Independent bool `yaml:"independent"`
	Stub        bool `yaml:"stub"`
}

type Macro struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Line    int    `yaml:"line"`
}

// Rule is one scanner rule. Pattern is the compiled regular expression source
// with macros expanded; Source is the pattern as written.
type Rule struct {
	State   string `yaml:"state,omitempty"`
	Source  string `yaml:"source"`
	Pattern string `yaml:"pattern"`
	Kind    string `yaml:"kind,omitempty"`
	Next    string `yaml:"next,omitempty"`
	Switch  bool   `yaml:"switch,omitempty"`
	Line    int    `yaml:"line"`
}

// Grammar is a parsed grammar file.
type Grammar struct {
	Package string         `yaml:"package"`
	Name    string         `yaml:"scanner"`
	Options GrammarOptions `yaml:"options"`
	Macros  []Macro        `yaml:"macros"`
	Rules   []Rule         `yaml:"rules"`
	Imports []string       `yaml:"imports,omitempty"`
	Inner   string         `yaml:"inner,omitempty"`
}

// States returns the exclusive states named by rules, in order of first use.
func (g *Grammar) States() []string {
	seen := make(map[string]bool)
	var states []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			states = append(states, s)
		}
	}
	for _, r := range g.Rules {
		add(r.State)
		add(r.Next)
	}
	return states
}
