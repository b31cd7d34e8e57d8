// Package gatewaylog is the module's ambient logging surface. Process
// bootstrap and sink configuration are external collaborators (spec.md §1);
// this package only owns the call sites, matching arikawa's ad hoc
// ws.WSDebug/ws.WSError free-function pattern but collected under one name
// and with levels, and colorized/pretty-printed the way arikawa's bot
// package formats debug dumps for a terminal.
package gatewaylog

import (
	"fmt"
	"log"
	"os"

	"github.com/k0kubun/pp"
	"github.com/mattn/go-colorable"
)

// Logger is the minimal sink this package writes to. *log.Logger satisfies
// it, as does any adapter a host process wants to plug in.
type Logger interface {
	Printf(format string, v ...interface{})
}

// std is the default sink: a *log.Logger writing to a colorized stdout, so
// ANSI sequences from pp.Sprint survive on Windows consoles too.
var std Logger = log.New(colorable.NewColorableStdout(), "", log.LstdFlags)

// SetLogger replaces the package-level sink. The zero value (nil) is
// rejected; callers that want to silence logging should install a no-op
// Logger instead.
func SetLogger(l Logger) {
	if l != nil {
		std = l
	}
}

// Pretty controls whether Debug pretty-prints its trailing values with
// k0kubun/pp instead of fmt's default verbs. Defaults to true when stdout is
// a terminal, mirroring the debug-dump helper arikawa's bot/debug.go wires
// up for interactive sessions.
var Pretty = isTerminal(os.Stdout.Fd())

// Debug logs a recoverable, expected-to-be-noisy event: a dropped unknown
// opcode, an event-ordering miss in an API message factory, a skipped
// not-yet-implemented handler. Values after msg are rendered with pp when
// Pretty is set, so callers can pass whole payload structs without
// pre-formatting them.
func Debug(msg string, values ...interface{}) {
	std.Printf("debug: %s%s", msg, renderValues(values))
}

// Warn logs a recoverable condition worth a human's attention: an unknown
// dispatch event name, a not-yet-implemented handler invocation.
func Warn(msg string, values ...interface{}) {
	std.Printf("warn: %s%s", msg, renderValues(values))
}

// Error logs a transient or terminal failure: a dead connection, an
// exhausted reconnect budget, a gateway discovery failure.
func Error(msg string, err error) {
	std.Printf("error: %s: %v", msg, err)
}

func renderValues(values []interface{}) string {
	if len(values) == 0 {
		return ""
	}
	if Pretty {
		return " " + pp.Sprint(values...)
	}
	return " " + fmt.Sprint(values...)
}

func isTerminal(fd uintptr) bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0 && fd == os.Stdout.Fd()
}
