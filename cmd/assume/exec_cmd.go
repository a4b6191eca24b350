package main

import (
	"flag"
	"fmt"

	"github.com/sufield/assume/internal/directive"
	"github.com/sufield/assume/internal/expand"
)

func execCommand(args []string) error {
	fs := flag.NewFlagSet("exec", flag.ExitOnError)
	modeFlag := fs.String("mode", "", "Build mode: verified or optimized (overrides config)")
	prelude := fs.String("prelude", "", "Go declarations evaluated before the expansion")
	configPath := fs.String("config", "", "Path to assume configuration file")

	fs.Usage = func() {
		fmt.Printf("%s\n", `Expand a directive and execute the result in an interpreter

The expansion runs against the real assume and hint packages, so the
printed outcome is what a program compiled in that mode would observe.

USAGE:
    assume exec [flags] '<directive>'

FLAGS:
    --mode string      Build mode: verified or optimized (default from config, "verified")
    --prelude string   Go declarations evaluated before the expansion
    --config string    Path to assume configuration file

EXAMPLES:
    # A holding assumption: completes without aborting
    assume exec 'unsafe: 2 < 5, "unreachable: %v", "x"'

    # A violated assumption in the verified build
    assume exec 'unsafe: 5 < 2, "unreachable: %v", "x"'

    # The same violation in the optimized build: nothing runs
    assume exec --mode optimized 'unsafe: 5 < 2, "unreachable: %v", "x"'

    # Declarations the condition can reference
    assume exec --prelude 'var hits int' 'unsafe: hits == 0'`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("directive required")
	}

	cfg, err := resolveConfig(*configPath)
	if err != nil {
		return err
	}
	if *modeFlag != "" {
		cfg.Mode = *modeFlag
	}
	mode, err := expand.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	d, err := directive.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("build error: %w", err)
	}
	exp, err := expand.Expand(d, mode)
	if err != nil {
		return err
	}

	runner, err := expand.NewRunner(*prelude)
	if err != nil {
		return err
	}
	out, err := runner.Run(exp.Code)
	if err != nil {
		return err
	}
	if out.Aborted {
		fmt.Printf("aborted: %s\n", out.Message)
	} else {
		fmt.Println("completed: no abort")
	}
	return nil
}
