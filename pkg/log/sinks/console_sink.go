package sinks

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/arnavsurve/rexgen/pkg/core"
	"github.com/arnavsurve/rexgen/pkg/log"
	"github.com/fatih/color"
)

// ConsoleSink writes human-readable, colored log lines. Colors are dropped
// when the output is not a terminal.
type ConsoleSink struct {
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = os.Stderr
	}
	return &ConsoleSink{out: out}
}

var levelColorMap = map[core.Level]*color.Color{
	core.DebugLevel: color.New(color.FgCyan),
	core.InfoLevel:  color.New(color.FgGreen),
	core.WarnLevel:  color.New(color.FgYellow),
	core.ErrorLevel: color.New(color.FgRed),
	core.FatalLevel: color.New(color.FgRed, color.Bold),
}

// consoleFields are printed after the message, in this order, when present.
var consoleFields = []string{"state", "kind", "line", "output"}

func (c *ConsoleSink) Write(event *log.LogEvent) error {
	levelStr := strings.ToUpper(levelToString(event.Level))
	timestampStr := event.Timestamp.Format(time.TimeOnly)

	levelFmt := color.New(color.FgWhite).SprintFunc()
	if lc, ok := levelColorMap[event.Level]; ok {
		levelFmt = lc.SprintFunc()
	}

	label := getStringField(event.Fields, "grammar")
	if label == "" {
		label = "rex"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s %s] %s: %s",
		levelFmt(levelStr),
		color.New(color.FgWhite).Sprint(timestampStr),
		color.CyanString(label),
		event.Message,
	)

	var extras []string
	for _, key := range consoleFields {
		if v, ok := event.Fields[key]; ok && v != "" {
			extras = append(extras, fmt.Sprintf("%s=%v", color.BlueString(key), v))
		}
	}
	if errorMsg := getStringField(event.Fields, "error"); errorMsg != "" {
		extras = append(extras, fmt.Sprintf("%s=%s", color.RedString("error"), errorMsg))
	}
	if len(extras) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(extras, " "))
	}

	_, err := fmt.Fprintln(c.out, b.String())
	return err
}

// Helper to safely get string field from LogEvent.Fields
func getStringField(fields map[string]any, key string) string {
	if val, ok := fields[key]; ok {
		if strVal, isStr := val.(string); isStr {
			return strVal
		}
	}
	return ""
}

// Helper to convert core.Level to string
func levelToString(l core.Level) string {
	switch l {
	case core.DebugLevel:
		return "debug"
	case core.InfoLevel:
		return "info"
	case core.WarnLevel:
		return "warn"
	case core.ErrorLevel:
		return "error"
	case core.FatalLevel:
		return "fatal"
	default:
		return "unknown"
	}
}

func (c *ConsoleSink) Close() error {
	return nil // Console doesn't need closing
}
