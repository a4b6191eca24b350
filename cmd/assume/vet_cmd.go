package main

import (
	"flag"
	"fmt"

	"github.com/sufield/assume/internal/vet"
)

func vetCommand(args []string) error {
	fs := flag.NewFlagSet("vet", flag.ExitOnError)
	strict := fs.Bool("strict", false, "Treat usage hazards as errors")
	configPath := fs.String("config", "", "Path to assume configuration file")

	fs.Usage = func() {
		fmt.Println(`Check Go sources for malformed or hazardous assumptions

Reported problems:
  - //assume(...) comment directives that fail the invocation grammar
  - message templates whose placeholders do not match the arguments
  - side-effecting expressions in eagerly evaluated conditions
    (optimized builds do not evaluate assumptions)

USAGE:
    assume vet [flags] [path ...]

FLAGS:
    --strict          Treat usage hazards as errors
    --config string   Path to assume configuration file

EXAMPLES:
    # Check the current module
    assume vet .

    # Gate CI on a clean tree, hazards included
    assume vet --strict ./internal ./pkg`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := resolveConfig(*configPath)
	if err != nil {
		return err
	}
	if *strict {
		cfg.Strict = true
	}
	paths := fs.Args()
	if len(paths) == 0 {
		paths = cfg.Paths
	}

	diags, err := vet.Files(paths...)
	if err != nil {
		return err
	}

	var problems int
	for _, d := range diags {
		fmt.Println(d)
		if !d.Hazard || cfg.Strict {
			problems++
		}
	}
	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}
