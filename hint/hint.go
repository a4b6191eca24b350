// Package hint adapts the "declare unreachable" optimizer primitive
// behind two entry points: True asserts a condition without checking
// it, Unreachable asserts that a point is never reached.
//
// Go exposes no portable equivalent of llvm.assume or Rust's
// unreachable_unchecked, so the adapter realizes the hint with what
// the toolchain can use: True compiles to an empty, inlinable call
// whose closure argument is never invoked, and Unreachable diverges by
// panicking a preallocated sentinel. Go also has no bottom type, so
// divergence through panic is what makes code after Unreachable
// provably dead to the compiler.
package hint

import "errors"

// ErrReached is the fixed value Unreachable panics with. It is
// preallocated: the optimized path constructs no message at runtime.
var ErrReached = errors.New("hint: unreachable code executed")

// True records the assumption that cond would return true, without
// checking it. cond is never invoked, so side effects inside it do
// not run in any build mode.
func True(cond func() bool) {}

// Unreachable declares that control flow cannot reach this point.
// It never returns normally; if the declaration was wrong, execution
// traps on ErrReached rather than continuing on corrupted state.
func Unreachable() {
	panic(ErrReached)
}
