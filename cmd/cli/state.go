package cli

// Exit statuses of rex.
const (
	ExitSuccess = 0
	// ExitFailure covers missing or malformed grammars and check-only runs.
	ExitFailure = 1
	// ExitUsage covers bad options, bad positional arguments and --help.
	ExitUsage = 2
)

// RunState is the stage a rex invocation has reached.
type RunState int

const (
	ParsingOptions RunState = iota
	HelpRequested
	VersionRequested
	CopyrightRequested
	Ready
	Running
	CheckOnlySucceeded
	ScannerWritten
	Failed
)

func (s RunState) String() string {
	switch s {
	case ParsingOptions:
		return "parsing-options"
	case HelpRequested:
		return "help-requested"
	case VersionRequested:
		return "version-requested"
	case CopyrightRequested:
		return "copyright-requested"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case CheckOnlySucceeded:
		return "check-only-succeeded"
	case ScannerWritten:
		return "scanner-written"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is the exit status of a run that terminates in state s.
func (s RunState) Status() int {
	switch s {
	case ParsingOptions, HelpRequested, Ready:
		return ExitUsage
	case VersionRequested, CopyrightRequested, ScannerWritten:
		return ExitSuccess
	case CheckOnlySucceeded:
		// A check-only run never sets a status of its own; it terminates with
		// the one in effect while running.
		return Running.Status()
	default:
		return ExitFailure
	}
}
