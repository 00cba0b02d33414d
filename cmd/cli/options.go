package cli

import "github.com/arnavsurve/rexgen/pkg/options"

// Canonical keys of the rex options.
const (
	optOutputFile  = "--output-file"
	optStub        = "--stub"
	optIgnoreCase  = "--ignorecase"
	optCheckOnly   = "--check-only"
	optIndependent = "--independent"
	optDebug       = "--debug"
	optHelp        = "--help"
	optVersion     = "--version"
	optCopyright   = "--copyright"
)

var rexOptions = options.MustTable(
	options.Spec{Visible: true, Short: "-o", Long: optOutputFile, TakesArg: true, ArgName: "<outfile>", Help: "file name of output [<filename>.go]"},
	options.Spec{Visible: true, Short: "-s", Long: optStub, Help: "append stub code for debug"},
	options.Spec{Visible: true, Short: "-i", Long: optIgnoreCase, Help: "ignore char case"},
	options.Spec{Visible: true, Short: "-C", Long: optCheckOnly, Help: "syntax check only"},
	options.Spec{Visible: true, Long: optIndependent, Help: "independent mode"},
	options.Spec{Visible: true, Short: "-d", Long: optDebug, Help: "print debug information"},
	options.Spec{Visible: true, Short: "-h", Long: optHelp, Help: "print this message and quit"},
	options.Spec{Visible: true, Long: optVersion, Help: "print version and quit"},
	options.Spec{Visible: true, Long: optCopyright, Help: "print copyright and quit"},
)
