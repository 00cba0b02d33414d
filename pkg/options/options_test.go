package options_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arnavsurve/rexgen/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() options.Table {
	return options.MustTable(
		options.Spec{Visible: true, Short: "-o", Long: "--output-file", TakesArg: true, ArgName: "<outfile>", Help: "file name of output"},
		options.Spec{Visible: true, Short: "-s", Long: "--stub", Help: "append stub code"},
		options.Spec{Visible: true, Short: "-i", Long: "--ignorecase", Help: "ignore char case"},
		options.Spec{Visible: true, Short: "-C", Long: "--check-only", Help: "syntax check only"},
		options.Spec{Visible: true, Long: "--independent", Help: "independent mode"},
		options.Spec{Visible: false, Short: "-x", Help: "hidden short-only flag"},
		options.Spec{Visible: true, Long: "--copyright", Help: "print copyright"},
	)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		want       options.Resolved
		positional []string
	}{
		{
			name:       "Long and short flags",
			args:       []string{"--stub", "-i", "calc.rex"},
			want:       options.Resolved{"--stub": {}, "--ignorecase": {}},
			positional: []string{"calc.rex"},
		},
		{
			name:       "Argument as next token",
			args:       []string{"-o", "out.go", "calc.rex"},
			want:       options.Resolved{"--output-file": {Arg: "out.go", HasArg: true}},
			positional: []string{"calc.rex"},
		},
		{
			name:       "Attached short argument",
			args:       []string{"-oout.go", "calc.rex"},
			want:       options.Resolved{"--output-file": {Arg: "out.go", HasArg: true}},
			positional: []string{"calc.rex"},
		},
		{
			name:       "Long flag with equals",
			args:       []string{"--output-file=out.go", "calc.rex"},
			want:       options.Resolved{"--output-file": {Arg: "out.go", HasArg: true}},
			positional: []string{"calc.rex"},
		},
		{
			name:       "Unambiguous prefix",
			args:       []string{"--ind", "--out", "x.go", "calc.rex"},
			want:       options.Resolved{"--independent": {}, "--output-file": {Arg: "x.go", HasArg: true}},
			positional: []string{"calc.rex"},
		},
		{
			name:       "Bundled short flags ending in an argument",
			args:       []string{"-sio", "x.go", "calc.rex"},
			want:       options.Resolved{"--stub": {}, "--ignorecase": {}, "--output-file": {Arg: "x.go", HasArg: true}},
			positional: []string{"calc.rex"},
		},
		{
			name:       "Hidden short-only flag keys on the short form",
			args:       []string{"-x", "calc.rex"},
			want:       options.Resolved{"-x": {}},
			positional: []string{"calc.rex"},
		},
		{
			name:       "Positionals interleaved with flags",
			args:       []string{"a.rex", "-s", "b.rex"},
			want:       options.Resolved{"--stub": {}},
			positional: []string{"a.rex", "b.rex"},
		},
		{
			name:       "Double dash ends options",
			args:       []string{"-s", "--", "-i", "-"},
			want:       options.Resolved{"--stub": {}},
			positional: []string{"-i", "-"},
		},
		{
			name:       "No arguments",
			args:       nil,
			want:       options.Resolved{},
			positional: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, positional, err := options.Resolve(testTable(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.positional, positional)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind options.Kind
		msg  string
	}{
		{
			name: "Ambiguous prefix",
			args: []string{"--c", "calc.rex"},
			kind: options.AmbiguousFlag,
			msg:  "option '--c' is ambiguous; possibilities: '--check-only' '--copyright'",
		},
		{
			name: "Unknown long flag",
			args: []string{"--verbose"},
			kind: options.UnknownFlag,
			msg:  "unrecognized option '--verbose'",
		},
		{
			name: "Unknown short flag",
			args: []string{"-z"},
			kind: options.UnknownFlag,
			msg:  "invalid option -- 'z'",
		},
		{
			name: "Unknown flag inside a bundle",
			args: []string{"-sz"},
			kind: options.UnknownFlag,
			msg:  "invalid option -- 'z'",
		},
		{
			name: "Missing long argument",
			args: []string{"--output-file"},
			kind: options.MissingArgument,
			msg:  "option '--output-file' requires an argument",
		},
		{
			name: "Missing short argument",
			args: []string{"-o"},
			kind: options.MissingArgument,
			msg:  "option requires an argument -- 'o'",
		},
		{
			name: "Empty attached argument",
			args: []string{"--output-file=", "calc.rex"},
			kind: options.MissingArgument,
			msg:  "option '--output-file' requires an argument",
		},
		{
			name: "Argument on a plain flag",
			args: []string{"--stub=yes"},
			kind: options.UnexpectedArgument,
			msg:  "option '--stub' doesn't allow an argument",
		},
		{
			name: "Same flag twice",
			args: []string{"-o", "a.go", "-o", "b.go", "calc.rex"},
			kind: options.DuplicateFlag,
			msg:  "--output-file given twice",
		},
		{
			name: "Short and long form of the same flag",
			args: []string{"-s", "--stub"},
			kind: options.DuplicateFlag,
			msg:  "--stub given twice",
		},
		{
			name: "Repeated inside a bundle",
			args: []string{"-ss"},
			kind: options.DuplicateFlag,
			msg:  "--stub given twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := options.Resolve(testTable(), tt.args)
			require.Error(t, err)

			var optErr *options.Error
			require.True(t, errors.As(err, &optErr))
			assert.Equal(t, tt.kind, optErr.Kind)
			assert.Equal(t, tt.msg, optErr.Error())
		})
	}
}

func TestNewTable_RejectsDuplicates(t *testing.T) {
	_, err := options.NewTable(
		options.Spec{Short: "-s", Long: "--stub"},
		options.Spec{Short: "-s", Long: "--silent"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate flag "-s"`)

	assert.Panics(t, func() {
		options.MustTable(
			options.Spec{Long: "--stub"},
			options.Spec{Long: "--stub"},
		)
	})
}

func TestNewTable_RejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		spec options.Spec
	}{
		{"Long short flag", options.Spec{Short: "-ab"}},
		{"Short flag without dash", options.Spec{Short: "a"}},
		{"Long flag with single dash", options.Spec{Long: "-stub"}},
		{"Argument without placeholder", options.Spec{Long: "--out", TakesArg: true}},
		{"Help on a blank row", options.Spec{Help: "orphan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := options.NewTable(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestRenderUsage(t *testing.T) {
	table := options.MustTable(
		options.Spec{Visible: true, Short: "-o", Long: "--output-file", TakesArg: true, ArgName: "<outfile>", Help: "file name of output"},
		options.Spec{Visible: true, Short: "-s", Long: "--stub", Help: "append stub code"},
		options.Blank(),
		options.Spec{Visible: true, Long: "--version", Help: "print version and quit"},
		options.Spec{Visible: false, Long: "--secret", Help: "never shown"},
	)

	var buf bytes.Buffer
	options.RenderUsage(&buf, "rex", "no grammar file given", table)

	want := "rex: no grammar file given\n" +
		"Usage: rex [options] <grammar file>\n" +
		"Options:\n" +
		"-o,--output-file <outfile>  file name of output\n" +
		"-s,--stub                   append stub code\n" +
		"\n" +
		"--version                   print version and quit\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderUsage_NoMessage(t *testing.T) {
	var buf bytes.Buffer
	options.RenderUsage(&buf, "rex", "", options.MustTable(options.Spec{Visible: true, Short: "-h", Long: "--help", Help: "print this message and quit"}))

	assert.Equal(t, "Usage: rex [options] <grammar file>\nOptions:\n-h,--help                   print this message and quit\n", buf.String())
}

func TestSpec_Synopsis(t *testing.T) {
	assert.Equal(t, "-o,--output-file <outfile>", options.Spec{Short: "-o", Long: "--output-file", TakesArg: true, ArgName: "<outfile>"}.Synopsis())
	assert.Equal(t, "--independent", options.Spec{Long: "--independent"}.Synopsis())
	assert.Equal(t, "-x", options.Spec{Short: "-x"}.Synopsis())
}
