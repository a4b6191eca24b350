package main

import (
	"flag"
	"fmt"

	"github.com/sufield/assume/internal/config"
	"github.com/sufield/assume/internal/directive"
	"github.com/sufield/assume/internal/expand"
)

func expandCommand(args []string) error {
	fs := flag.NewFlagSet("expand", flag.ExitOnError)
	modeFlag := fs.String("mode", "", "Build mode: verified or optimized (overrides config)")
	configPath := fs.String("config", "", "Path to assume configuration file")

	fs.Usage = func() {
		fmt.Printf("%s\n", `Expand an assume directive into the code one build mode compiles

USAGE:
    assume expand [flags] '<directive>'

FLAGS:
    --mode string     Build mode: verified or optimized (default from config, "verified")
    --config string   Path to assume configuration file

The directive uses the invocation grammar, with or without the
assume( ... ) wrapper:

    unsafe: <condition> [, <template> [, <arg>...]]
    unsafe: @unreachable [, <template> [, <arg>...]]

EXAMPLES:
    # Verified build: runtime check that aborts with a diagnostic
    assume expand 'unsafe: i < len(v), "index %d beyond v length", i'

    # Optimized build: optimizer hint, condition never evaluated
    assume expand --mode optimized 'unsafe: i < len(v)'

    # Unreachable form
    assume expand 'assume(unsafe: @unreachable, "bad state %v", s)'`)
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

	for _, imp := range exp.Imports {
		fmt.Printf("// import %q\n", imp)
	}
	fmt.Println(exp.Code)
	return nil
}

// resolveConfig loads the named config file, or the env-derived
// default configuration when none is given.
func resolveConfig(path string) (config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
