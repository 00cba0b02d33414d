package options

import (
	"fmt"
	"strings"
)

// Kind classifies a resolution failure.
type Kind int

const (
	AmbiguousFlag Kind = iota + 1
	UnknownFlag
	MissingArgument
	UnexpectedArgument
	DuplicateFlag
)

func (k Kind) String() string {
	switch k {
	case AmbiguousFlag:
		return "ambiguous flag"
	case UnknownFlag:
		return "unknown flag"
	case MissingArgument:
		return "missing argument"
	case UnexpectedArgument:
		return "unexpected argument"
	case DuplicateFlag:
		return "duplicate flag"
	default:
		return "unknown error"
	}
}

// Error is returned by Resolve. Msg is suitable for printing after the
// program name in usage output.
type Error struct {
	Kind Kind
	Flag string
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func ambiguousFlag(flag string, candidates []string) *Error {
	quoted := make([]string, len(candidates))
	for i, c := range candidates {
		quoted[i] = "'" + c + "'"
	}
	return &Error{
		Kind: AmbiguousFlag,
		Flag: flag,
		Msg:  fmt.Sprintf("option '%s' is ambiguous; possibilities: %s", flag, strings.Join(quoted, " ")),
	}
}

func unknownFlag(flag string) *Error {
	msg := fmt.Sprintf("unrecognized option '%s'", flag)
	if !strings.HasPrefix(flag, "--") {
		msg = fmt.Sprintf("invalid option -- '%s'", strings.TrimPrefix(flag, "-"))
	}
	return &Error{Kind: UnknownFlag, Flag: flag, Msg: msg}
}

func missingArgument(flag string) *Error {
	msg := fmt.Sprintf("option '%s' requires an argument", flag)
	if !strings.HasPrefix(flag, "--") {
		msg = fmt.Sprintf("option requires an argument -- '%s'", strings.TrimPrefix(flag, "-"))
	}
	return &Error{Kind: MissingArgument, Flag: flag, Msg: msg}
}

func unexpectedArgument(flag string) *Error {
	return &Error{
		Kind: UnexpectedArgument,
		Flag: flag,
		Msg:  fmt.Sprintf("option '%s' doesn't allow an argument", flag),
	}
}

func duplicateFlag(key string) *Error {
	return &Error{Kind: DuplicateFlag, Flag: key, Msg: fmt.Sprintf("%s given twice", key)}
}
