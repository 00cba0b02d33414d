// Package cli implements the rex command: option handling, the grammar
// pipeline and its exit statuses.
package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arnavsurve/rexgen/internal/info"
	"github.com/arnavsurve/rexgen/pkg/config"
	"github.com/arnavsurve/rexgen/pkg/core"
	"github.com/arnavsurve/rexgen/pkg/options"
)

// EngineFactory returns the engine a run drives. Every run gets a fresh one.
type EngineFactory func(cfg core.Config, logger core.Logger) core.Engine

// Runner executes rex invocations.
type Runner struct {
	Stdout     io.Writer
	Stderr     io.Writer
	NewEngine  EngineFactory
	LoadConfig func() (*config.Config, error)
}

func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{
		Stdout: stdout,
		Stderr: stderr,
		NewEngine: func(cfg core.Config, logger core.Logger) core.Engine {
			return core.NewGenerator(cfg, logger)
		},
		LoadConfig: config.Load,
	}
}

// Main runs rex with args, where args[0] is the program path, and returns the
// exit status.
func (r *Runner) Main(args []string) int {
	program := "rex"
	if len(args) > 0 {
		program = programName(args[0])
		args = args[1:]
	}
	return r.run(program, args).Status()
}

func programName(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".exe", ".go"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func (r *Runner) usage(program, msg string) {
	options.RenderUsage(r.Stderr, program, msg, rexOptions)
}

// run resolves options and drives the pipeline, returning the state the
// invocation terminates in.
func (r *Runner) run(program string, args []string) RunState {
	state := ParsingOptions

	resolved, positional, err := options.Resolve(rexOptions, args)
	if err != nil {
		r.usage(program, err.Error())
		return state
	}

	switch {
	case resolved.Has(optHelp):
		r.usage(program, "")
		return HelpRequested
	case resolved.Has(optVersion):
		fmt.Fprintf(r.Stdout, "%s version %s\n", program, info.Version)
		return VersionRequested
	case resolved.Has(optCopyright):
		fmt.Fprintf(r.Stdout, "%s version %s\n", program, info.Version)
		fmt.Fprintf(r.Stdout, "%s <%s>\n", info.Copyright, info.Contact)
		return CopyrightRequested
	}

	switch {
	case len(positional) == 0:
		r.usage(program, "no grammar file given")
		return state
	case len(positional) > 1:
		r.usage(program, "too many grammar files given")
		return state
	}
	grammarFile := positional[0]
	state = Ready

	cfg, err := r.LoadConfig()
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s: %v\n", program, err)
		return state
	}

	logger, logRouter, err := newRunLogger(r.Stderr, cfg, resolved.Has(optDebug), grammarFile)
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s: %v\n", program, err)
		return state
	}
	defer func() {
		if err := logRouter.Close(); err != nil {
			fmt.Fprintf(r.Stderr, "%s: closing log: %v\n", program, err)
		}
	}()

	return r.runPipeline(program, grammarFile, engineConfig(resolved, cfg), resolved.Has(optCheckOnly), logger)
}

func engineConfig(resolved options.Resolved, cfg *config.Config) core.Config {
	outputFile, _ := resolved.Arg(optOutputFile)
	return core.Config{
		OutputFile:  outputFile,
		Stub:        resolved.Has(optStub),
		IgnoreCase:  resolved.Has(optIgnoreCase),
		Independent: resolved.Has(optIndependent),
		Debug:       resolved.Has(optDebug),
		Package:     cfg.Package,
	}
}

func (r *Runner) runPipeline(program, grammarFile string, cfg core.Config, checkOnly bool, logger core.Logger) RunState {
	engine := r.NewEngine(cfg, logger)
	engine.SetGrammarFile(grammarFile)

	logger.Debug().Msgf("Reading grammar %s", grammarFile)
	if err := engine.ReadGrammar(); err != nil {
		return r.fail(program, engine, err, logger)
	}
	if err := engine.Parse(); err != nil {
		return r.fail(program, engine, err, logger)
	}

	if checkOnly {
		fmt.Fprintln(r.Stderr, "syntax ok")
		return CheckOnlySucceeded
	}

	if err := engine.WriteScanner(); err != nil {
		return r.fail(program, engine, err, logger)
	}
	return ScannerWritten
}

// fail reports err. Missing and malformed grammars become a Diagnostic and end
// the run as Failed; any other error ends it in the Running state.
func (r *Runner) fail(program string, engine core.Engine, err error, logger core.Logger) RunState {
	var grammarErr *core.GrammarError
	if errors.As(err, &grammarErr) {
		fmt.Fprintln(r.Stderr, Diagnostic{
			Program:     program,
			GrammarFile: engine.GrammarFile(),
			Line:        engine.Line(),
			Message:     grammarErr.Msg,
		})
		return Failed
	}

	logger.Debug().Err(err).Msg("Run failed with an unexpected error")
	fmt.Fprintf(r.Stderr, "%s: %v\n", program, err)
	return Running
}
