package directive

import (
	"errors"
	"strings"
	"testing"
)

// FuzzParse fuzzes the invocation parser to ensure arbitrary input
// never panics and that every rejection is one of the documented
// build-time errors.
func FuzzParse(f *testing.F) {
	// Valid invocations
	f.Add("unsafe: i < len(v)")
	f.Add(`unsafe: i < len(v), "index %d beyond v length", i`)
	f.Add("unsafe: @unreachable")
	f.Add(`unsafe: @unreachable, "bad state %v", 7`)
	f.Add(`assume(unsafe: 2 < 5, "unreachable: %v", "x")`)
	f.Add("unsafe: ok,")

	// Malformed invocations
	f.Add("")
	f.Add("i < len(v)")
	f.Add("unsafe:")
	f.Add("unsafe: @sometime")
	f.Add(`unsafe: ok, msg`)
	f.Add(`unsafe: ok, "index %d"`)
	f.Add(`unsafe: f(x`)
	f.Add("unsafe: `raw")
	f.Add(`unsafe: ok, "unterminated`)
	f.Add("unsafe: ok, ,")
	f.Add(strings.Repeat("(", 100))
	f.Add("unsafe: \x00")
	f.Add("unsafe: héllo < 5")

	f.Fuzz(func(t *testing.T, src string) {
		d, err := Parse(src)
		if err != nil {
			// Invariant 1: every rejection maps to a sentinel, so
			// callers can classify build errors.
			if !errors.Is(err, ErrMissingQualifier) &&
				!errors.Is(err, ErrBadForm) &&
				!errors.Is(err, ErrBadTemplate) &&
				!errors.Is(err, ErrBadArgument) &&
				!errors.Is(err, ErrArity) {
				t.Errorf("Parse(%q) returned an unclassified error: %v", src, err)
			}
			return
		}

		// Invariant 2: exactly one form is selected.
		switch d.Kind {
		case KindCondition:
			if d.Cond == "" {
				t.Errorf("Parse(%q) accepted a condition directive without a condition", src)
			}
		case KindUnreachable:
			if d.Cond != "" {
				t.Errorf("Parse(%q) accepted an unreachable directive with a condition", src)
			}
		default:
			t.Errorf("Parse(%q) produced unknown kind %v", src, d.Kind)
		}

		// Invariant 3: the default diagnostic always names the fact.
		if d.Display() == "" {
			t.Errorf("Parse(%q) produced an empty display text", src)
		}

		// Invariant 4: an accepted template matches its arguments.
		if d.Template != "" || len(d.Args) > 0 {
			if err := CheckArity(d.Template, len(d.Args)); err != nil {
				t.Errorf("Parse(%q) accepted mismatched arity: %v", src, err)
			}
		}
	})
}
