package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Generator reads a grammar file, parses it and writes the scanner source.
// It implements Engine.
type Generator struct {
	cfg     Config
	logger  Logger
	file    string
	src     []byte
	parser  *grammarParser
	grammar *Grammar
}

func NewGenerator(cfg Config, logger Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		logger: logger,
	}
}

func (g *Generator) SetGrammarFile(path string) {
	g.file = path
}

func (g *Generator) GrammarFile() string {
	return g.file
}

// Grammar returns the parsed grammar, or nil before a successful Parse.
func (g *Generator) Grammar() *Grammar {
	return g.grammar
}

func (g *Generator) Line() int {
	if g.parser == nil {
		return 0
	}
	return g.parser.line
}

func (g *Generator) ReadGrammar() error {
	data, err := os.ReadFile(g.file)
	if errors.Is(err, fs.ErrNotExist) {
		return notFound(g.file)
	}
	if err != nil {
		return fmt.Errorf("reading grammar file %q: %w", g.file, err)
	}

	g.src = data
	g.logger.Debug().Int("bytes", len(data)).Msgf("Read grammar file %s", g.file)
	return nil
}

func (g *Generator) Parse() error {
	if g.src == nil {
		return fmt.Errorf("parsing grammar %q: grammar has not been read", g.file)
	}

	g.parser = newGrammarParser(g.file, g.cfg)
	grammar, err := g.parser.parse(g.src)
	if err != nil {
		return err
	}
	g.grammar = grammar

	for _, s := range unreachableStates(grammar) {
		g.logger.Warn().Str("state", s).Msgf("State %s has rules but is never entered", s)
	}
	if g.cfg.Debug {
		g.logGrammar()
	}
	return nil
}

func (g *Generator) logGrammar() {
	for _, m := range g.grammar.Macros {
		g.logger.Debug().Int("line", m.Line).Msgf("macro %s = %s", m.Name, m.Pattern)
	}
	for _, r := range g.grammar.Rules {
		g.logger.Debug().Int("line", r.Line).Str("state", r.State).Str("kind", r.Kind).Msgf("rule %s", r.Pattern)
	}

	dump, err := yaml.Marshal(g.grammar)
	if err != nil {
		g.logger.Warn().Err(err).Msg("Could not dump parsed grammar")
		return
	}
	g.logger.Debug().Msgf("Parsed grammar:\n%s", dump)
}

func (g *Generator) WriteScanner() error {
	if g.grammar == nil {
		return fmt.Errorf("writing scanner for %q: grammar has not been parsed", g.file)
	}

	src, err := g.emit()
	if err != nil {
		return err
	}

	out := OutputPath(g.file, g.cfg.OutputFile)
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("writing scanner file %q: %w", out, err)
	}

	g.logger.Info().Str("output", out).Msgf("Wrote scanner %s", g.grammar.Name)
	return nil
}
