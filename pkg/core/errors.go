package core

import "fmt"

// GrammarErrorKind classifies the recoverable grammar failures.
type GrammarErrorKind int

const (
	NotFound GrammarErrorKind = iota + 1
	Parse
)

// GrammarError is a grammar file that is missing or malformed. Line is 0 when
// the error is not tied to a line.
type GrammarError struct {
	Kind GrammarErrorKind
	File string
	Line int
	Msg  string
}

func (e *GrammarError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
	}
	return e.Msg
}

func notFound(file string) *GrammarError {
	return &GrammarError{Kind: NotFound, File: file, Msg: "No such file or directory - " + file}
}

func parseError(file string, line int, format string, args ...any) *GrammarError {
	return &GrammarError{Kind: Parse, File: file, Line: line, Msg: fmt.Sprintf(format, args...)}
}
