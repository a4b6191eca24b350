// Package directive parses assume invocations.
//
// An invocation is the argument list of the assume directive, with or
// without the surrounding assume( ... ) wrapper:
//
//	unsafe: <condition> [, <template> [, <arg>...]]
//	unsafe: @unreachable [, <template> [, <arg>...]]
//
// Every error here is a build-time error: a malformed assumption must
// never silently compile into weaker or stronger guarantees than the
// author intended.
package directive

import (
	"errors"
	"fmt"
	"go/parser"
	"strconv"
	"strings"
)

var (
	// ErrMissingQualifier rejects invocations without the unsafe:
	// qualifier that acknowledges the unchecked optimized path.
	ErrMissingQualifier = errors.New("assumption must be prefixed with 'unsafe:'")
	// ErrBadForm rejects invocations that are neither a boolean
	// expression nor the @unreachable marker, and malformed argument
	// lists in general.
	ErrBadForm = errors.New("assumption must be an expression or @unreachable")
	// ErrBadTemplate rejects message templates that are not quoted
	// string literals.
	ErrBadTemplate = errors.New("message template must be a quoted string")
	// ErrBadArgument rejects message arguments that are not valid Go
	// expressions.
	ErrBadArgument = errors.New("message argument must be an expression")
	// ErrArity rejects templates whose placeholders do not match the
	// supplied argument count.
	ErrArity = errors.New("message template does not match argument count")
)

// Marker is the token that selects the unreachable form in place of a
// boolean condition.
const Marker = "@unreachable"

// Kind distinguishes the two directive forms.
type Kind int

const (
	// KindCondition asserts a boolean expression is true.
	KindCondition Kind = iota
	// KindUnreachable asserts the invocation point is never reached.
	KindUnreachable
)

func (k Kind) String() string {
	if k == KindUnreachable {
		return "unreachable"
	}
	return "condition"
}

// Directive is the parsed form of one invocation. Exactly one form is
// selected; it is consumed once by the expander and has no life beyond
// that single expansion.
type Directive struct {
	Kind     Kind
	Cond     string   // condition source text, empty for the unreachable form
	Template string   // unquoted message template, empty when absent
	Args     []string // source text of each positional argument
}

// Display returns the source text naming the asserted fact, used in
// the default diagnostic.
func (d Directive) Display() string {
	if d.Kind == KindUnreachable {
		return Marker
	}
	return d.Cond
}

// Parse recognizes one invocation and validates its grammar.
func Parse(src string) (Directive, error) {
	s := strings.TrimSpace(src)
	if rest, ok := strings.CutPrefix(s, "assume("); ok {
		rest = strings.TrimSpace(rest)
		inner, ok := strings.CutSuffix(rest, ")")
		if !ok {
			return Directive{}, fmt.Errorf("%w: unterminated invocation", ErrBadForm)
		}
		s = strings.TrimSpace(inner)
	}

	s, ok := cutQualifier(s)
	if !ok {
		return Directive{}, ErrMissingQualifier
	}

	items, err := splitArgs(s)
	if err != nil {
		return Directive{}, err
	}
	if len(items) == 0 {
		return Directive{}, ErrBadForm
	}

	var d Directive
	if items[0] == Marker {
		d.Kind = KindUnreachable
	} else {
		// A condition that still mentions the marker (e.g. joined to
		// an expression) fails here too: '@' is not Go syntax.
		if _, err := parser.ParseExpr(items[0]); err != nil {
			return Directive{}, fmt.Errorf("%w: %q", ErrBadForm, items[0])
		}
		d.Kind = KindCondition
		d.Cond = items[0]
	}

	if len(items) > 1 {
		tmpl, err := strconv.Unquote(items[1])
		if err != nil {
			return Directive{}, fmt.Errorf("%w: %s", ErrBadTemplate, items[1])
		}
		d.Template = tmpl
		for _, arg := range items[2:] {
			if _, err := parser.ParseExpr(arg); err != nil {
				return Directive{}, fmt.Errorf("%w: %q", ErrBadArgument, arg)
			}
			d.Args = append(d.Args, arg)
		}
		if err := CheckArity(d.Template, len(d.Args)); err != nil {
			return Directive{}, err
		}
	}
	return d, nil
}

// CheckArity validates template/argument arity by delegating to the
// formatting subsystem itself: fmt renders arity violations as
// explicit markers, so a probe render with placeholder operands is
// inspected instead of counting verbs here. Operand types are not
// validated; the probe only answers "how many". Star width and
// precision verbs consume an operand the render cannot attribute, so
// templates using them are rejected outright.
func CheckArity(template string, nargs int) error {
	if err := rejectStarVerbs(template); err != nil {
		return err
	}
	probe := make([]any, nargs)
	for i := range probe {
		probe[i] = i
	}
	out := fmt.Sprintf(template, probe...)
	if strings.Contains(out, "(MISSING)") {
		return fmt.Errorf("%w: %q needs more than %d argument(s)", ErrArity, template, nargs)
	}
	if strings.Contains(out, "%!(EXTRA") {
		return fmt.Errorf("%w: %q given %d argument(s)", ErrArity, template, nargs)
	}
	return nil
}

// rejectStarVerbs refuses templates with a '*' width or precision. The
// scan walks each verb up to its terminating letter; %% stays literal.
func rejectStarVerbs(template string) error {
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		i++
		if i < len(template) && template[i] == '%' {
			continue
		}
		for ; i < len(template); i++ {
			c := template[i]
			if c == '*' {
				return fmt.Errorf("%w: %q uses star width or precision", ErrBadTemplate, template)
			}
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				break
			}
		}
	}
	return nil
}

// cutQualifier strips the mandatory unsafe: prefix.
func cutQualifier(s string) (string, bool) {
	rest, ok := strings.CutPrefix(s, "unsafe")
	if !ok {
		return "", false
	}
	rest = strings.TrimLeft(rest, " \t")
	rest, ok = strings.CutPrefix(rest, ":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// splitArgs splits the invocation tail on top-level commas, honoring
// nesting and string literals. A trailing comma is tolerated, matching
// the original grammar.
func splitArgs(s string) ([]string, error) {
	var (
		items []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced %q", ErrBadForm, string(c))
			}
		case '"', '\'', '`':
			end, err := skipString(s, i)
			if err != nil {
				return nil, err
			}
			i = end
		case ',':
			if depth != 0 {
				continue
			}
			item := strings.TrimSpace(s[start:i])
			if item == "" {
				return nil, fmt.Errorf("%w: empty argument", ErrBadForm)
			}
			items = append(items, item)
			start = i + 1
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced parentheses", ErrBadForm)
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" {
		items = append(items, tail)
	}
	return items, nil
}

// skipString returns the index of the closing quote of the literal
// opening at start.
func skipString(s string, start int) (int, error) {
	q := s[start]
	if q == '`' {
		if j := strings.IndexByte(s[start+1:], '`'); j >= 0 {
			return start + 1 + j, nil
		}
		return 0, fmt.Errorf("%w: unterminated raw string", ErrBadForm)
	}
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unterminated string", ErrBadForm)
}
