package assume

import "fmt"

const (
	failedPrefix      = "assumption failed"
	unreachablePrefix = "assumption failed: @unreachable"
)

// Failf formats a diagnostic and invokes the abort primitive. It is
// the failure path that expanded directives call in verified builds
// and it never returns.
func Failf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}

func failf(prefix, format string, args []any) {
	if format == "" {
		panic(prefix)
	}
	panic(prefix + ": " + fmt.Sprintf(format, args...))
}
