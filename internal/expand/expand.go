// Package expand turns a parsed directive and a build mode into the
// code that mode compiles.
//
// The mode is a static parameter of the build, resolved before any
// code is produced: exactly one of the four emissions below exists per
// invocation, and the unused branch is never emitted. Emitted code
// never branches on the mode at runtime.
package expand

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sufield/assume/internal/directive"
)

// Mode selects which of the two mutually exclusive code paths an
// expansion becomes.
type Mode int

const (
	// ModeVerified compiles runtime checks; false assumptions abort.
	ModeVerified Mode = iota
	// ModeOptimized compiles optimizer hints; false assumptions are
	// undefined behavior by contract.
	ModeOptimized
)

func (m Mode) String() string {
	switch m {
	case ModeVerified:
		return "verified"
	case ModeOptimized:
		return "optimized"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "verified":
		return ModeVerified, nil
	case "optimized":
		return ModeOptimized, nil
	}
	return 0, fmt.Errorf("unknown build mode %q (must be verified or optimized)", s)
}

const (
	assumePath = "github.com/sufield/assume"
	hintPath   = assumePath + "/hint"
)

// Expansion is the emitted behavior of one directive in one mode.
type Expansion struct {
	Code    string   // Go statement(s)
	Imports []string // import paths the code requires
}

// Expand selects and produces exactly one expansion for d in mode.
func Expand(d directive.Directive, mode Mode) (Expansion, error) {
	switch mode {
	case ModeVerified:
		if d.Kind == directive.KindUnreachable {
			return Expansion{
				Code:    fmt.Sprintf("assume.Failf(%s)", failArgs(d)),
				Imports: []string{assumePath},
			}, nil
		}
		return Expansion{
			Code:    fmt.Sprintf("if !(%s) {\n\tassume.Failf(%s)\n}", d.Cond, failArgs(d)),
			Imports: []string{assumePath},
		}, nil
	case ModeOptimized:
		if d.Kind == directive.KindUnreachable {
			return Expansion{
				Code:    "hint.Unreachable()",
				Imports: []string{hintPath},
			}, nil
		}
		// The condition moves into a closure the hint adapter never
		// invokes: optimized builds do not evaluate assumptions, even
		// for side effects.
		return Expansion{
			Code:    fmt.Sprintf("hint.True(func() bool { return %s })", d.Cond),
			Imports: []string{hintPath},
		}, nil
	}
	return Expansion{}, fmt.Errorf("unknown build mode %v", mode)
}

// failArgs renders the Failf argument list: the quoted diagnostic
// format naming the asserted fact, then the forwarded arguments. The
// asserted fact is spliced into the format string, so any percent
// signs in its source text are escaped; the author's template is kept
// verbatim so its verbs bind to the forwarded arguments.
func failArgs(d directive.Directive) string {
	msg := strings.ReplaceAll("assumption failed: "+d.Display(), "%", "%%")
	if d.Template != "" {
		msg += ": " + d.Template
	}
	parts := append([]string{strconv.Quote(msg)}, d.Args...)
	return strings.Join(parts, ", ")
}
