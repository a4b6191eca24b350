//go:build !optimize

package assume

// Verified reports whether assumption checks are compiled in. It is a
// build-time constant, so branches guarded by it disappear entirely
// from optimized binaries.
const Verified = true

// That checks the assumption that cond is true and aborts with a
// formatted diagnostic when it is not. The format may be empty.
//
// That is a no-op when compiled with the optimize build tag; cond is
// still evaluated at the call site, so keep side effects out of it.
func That(cond bool, format string, args ...any) {
	if !cond {
		failf(failedPrefix, format, args)
	}
}

// Holds checks the assumption that cond() returns true. Unlike That,
// the condition is a closure that optimized builds never invoke, so it
// may be arbitrarily expensive without costing optimized binaries
// anything.
func Holds(cond func() bool, format string, args ...any) {
	if !cond() {
		failf(failedPrefix, format, args)
	}
}

// Never states that this point is not reachable. In verified builds it
// always aborts with the formatted diagnostic. In optimized builds it
// collapses to the unreachable hint.
//
// Never, not a false That, is the right way to mark an impossible
// branch: it diverges, so code after it is not expected to produce a
// value.
func Never(format string, args ...any) {
	failf(unreachablePrefix, format, args)
}
