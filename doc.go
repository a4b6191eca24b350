// Package assume lets code state invariants the author believes always
// hold at a given program point, for optimizer guidance rather than
// correctness verification.
//
// In verified builds (the default) every assumption is evaluated and a
// false one aborts the program with a diagnostic. Under the optimize
// build tag the checks are gone: the stated fact is handed to the
// optimizer instead, and violating it is undefined behavior by
// contract. The safe, always-checked alternative to an assumption is a
// plain assertion; assume trades that safety for performance under an
// explicit, auditable contract.
//
// A typical use is vouching for an index so a later bounds check can be
// proven dead:
//
//	assume.That(index < len(v), "index %d beyond v length", index)
//	element := v[index] // bounds check elidable in optimized builds
//
// Side effects in conditions are a caller hazard: optimized builds do
// not run assumption checks, so behavior would differ between modes.
// Use Holds when the condition must not be evaluated at all in
// optimized builds, and Never for branches that are impossible to
// reach. Always exercise verified builds in tests before shipping an
// optimized binary; the assume vet command flags the obvious hazards.
//
// The assume command expands the textual directive form
//
//	assume(unsafe: <condition> [, <template> [, <arg>...]])
//	assume(unsafe: @unreachable [, <template> [, <arg>...]])
//
// into the code each build mode compiles. The unsafe: qualifier is
// mandatory on every invocation; it records that the author accepts
// the unchecked contract of the optimized path. Omitting it is a
// build-time error, never a runtime one.
package assume
