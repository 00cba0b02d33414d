package core

// Event defines a single log event.
type Event interface {
	Msg(msg string)
	Msgf(format string, v ...any)
	Err(err error) Event
	Interface(key string, value any) Event
	Str(key, value string) Event
	Int(key string, value int) Event
}

// Context defines a logging context.
type Context interface {
	Str(key, value string) Context
	Int(key string, value int) Context
	Interface(key string, value any) Context
	Timestamp() Context
	Logger() Logger
}

// Logger defines the logging interface.
type Logger interface {
	Debug() Event
	Info() Event
	Warn() Event
	Error() Event
	Fatal() Event
	With() Context
}

// Engine is the grammar pipeline driven by the command-line runner. Each run
// owns one Engine.
type Engine interface {
	SetGrammarFile(path string)
	GrammarFile() string
	// ReadGrammar loads the grammar file. A missing file is a *GrammarError
	// of kind NotFound.
	ReadGrammar() error
	// Parse parses the loaded grammar. Malformed input is a *GrammarError of
	// kind Parse.
	Parse() error
	WriteScanner() error
	// Line is the parser's current line, or 0 before parsing starts.
	Line() int
}
