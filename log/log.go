// Package log is a minimal, ansi-colorized debug/trace logger in the style
// graft instruments its operators with: two independent verbosity toggles
// (DebugOn, TraceOn) checked at the call site, so hot paths pay nothing
// when logging is off.
package log

import (
	"fmt"
	"os"

	"github.com/starkandwayne/goutils/ansi"
)

// DebugOn enables DEBUG-level output when true.
var DebugOn bool

// TraceOn enables TRACE-level output when true. Turning TraceOn on also
// implies DebugOn, but callers are expected to set both (see cmd/reshape).
var TraceOn bool

// DEBUG prints a debug line to stderr, ansi-colorized, if DebugOn is set.
func DEBUG(format string, args ...interface{}) {
	if !DebugOn {
		return
	}
	content := fmt.Sprintf(format, args...)
	ansi.Fprintf(os.Stderr, "@G{DEBUG> }@g{%s}\n", content)
}

// TRACE prints a trace line to stderr, ansi-colorized, if TraceOn is set.
func TRACE(format string, args ...interface{}) {
	if !TraceOn {
		return
	}
	content := fmt.Sprintf(format, args...)
	ansi.Fprintf(os.Stderr, "@B{TRACE> }@b{%s}\n", content)
}

// PrintfStdErr writes directly to stderr regardless of verbosity toggles;
// used for user-facing warnings and fatal errors.
func PrintfStdErr(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// Warn prints an ansi-colorized warning to stderr.
func Warn(format string, args ...interface{}) {
	content := fmt.Sprintf(format, args...)
	ansi.Fprintf(os.Stderr, "@Y{warning:} %s\n", content)
}
