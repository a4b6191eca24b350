//go:build optimize

package assume

import "github.com/sufield/assume/hint"

// Verified reports whether assumption checks are compiled in. It is a
// build-time constant, so branches guarded by it disappear entirely
// from optimized binaries.
const Verified = false

// That is a no-op in optimized builds. The condition was already
// evaluated at the call site; a false value is undefined behavior by
// contract and is not detected here.
func That(cond bool, format string, args ...any) {}

// Holds is a no-op in optimized builds. cond is never invoked.
func Holds(cond func() bool, format string, args ...any) {}

// Never marks the call site unreachable. Reaching it anyway diverges
// via the hint adapter's trap; no diagnostic is formatted.
func Never(format string, args ...any) {
	hint.Unreachable()
}
