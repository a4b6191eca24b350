package expand

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/sufield/assume"
	"github.com/sufield/assume/hint"
)

// Symbols binds the real assume and hint packages into an interpreter,
// so expansions run against the same runtime surface compiled code
// sees. The assume entries resolve per the harness's own build mode.
var Symbols = interp.Exports{
	"github.com/sufield/assume/assume": {
		"That":     reflect.ValueOf(assume.That),
		"Holds":    reflect.ValueOf(assume.Holds),
		"Never":    reflect.ValueOf(assume.Never),
		"Failf":    reflect.ValueOf(assume.Failf),
		"Verified": reflect.ValueOf(assume.Verified),
	},
	"github.com/sufield/assume/hint/hint": {
		"True":        reflect.ValueOf(hint.True),
		"Unreachable": reflect.ValueOf(hint.Unreachable),
		"ErrReached":  reflect.ValueOf(&hint.ErrReached).Elem(),
	},
}

// Outcome is the observable result of executing an expansion: whether
// the abort primitive fired, and with which diagnostic.
type Outcome struct {
	Aborted bool
	Message string
}

// Runner executes emitted code in an embedded interpreter.
// Declarations evaluated in the prelude (counters, helpers) stay
// visible to every subsequent Run.
type Runner struct {
	i *interp.Interpreter
}

// NewRunner builds an interpreter with the runtime packages imported
// and the prelude evaluated.
func NewRunner(prelude string) (*Runner, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib symbols: %w", err)
	}
	if err := i.Use(Symbols); err != nil {
		return nil, fmt.Errorf("load assume symbols: %w", err)
	}
	for _, imp := range []string{
		`import "github.com/sufield/assume"`,
		`import "github.com/sufield/assume/hint"`,
	} {
		if _, err := i.Eval(imp); err != nil {
			return nil, fmt.Errorf("import runtime packages: %w", err)
		}
	}
	if prelude != "" {
		if _, err := i.Eval(prelude); err != nil {
			return nil, fmt.Errorf("evaluate prelude: %w", err)
		}
	}
	return &Runner{i: i}, nil
}

// Run executes one expansion. An abort in the emitted code is reported
// as an Outcome, not an error; errors mean the code did not interpret.
func (r *Runner) Run(code string) (out Outcome, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = Outcome{Aborted: true, Message: panicMessage(rec)}
			err = nil
		}
	}()
	if _, evalErr := r.i.Eval(code); evalErr != nil {
		var p interp.Panic
		if errors.As(evalErr, &p) {
			return Outcome{Aborted: true, Message: panicMessage(p.Value)}, nil
		}
		return Outcome{}, fmt.Errorf("evaluate expansion: %w", evalErr)
	}
	return Outcome{}, nil
}

// Int reads an int declared by the prelude, typically a side-effect
// counter.
func (r *Runner) Int(name string) (int, error) {
	v, err := r.i.Eval(name)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}
	if v.Kind() != reflect.Int {
		return 0, fmt.Errorf("%s is %s, not int", name, v.Kind())
	}
	return int(v.Int()), nil
}

func panicMessage(v any) string {
	switch m := v.(type) {
	case interp.Panic:
		return panicMessage(m.Value)
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}
