package main

import (
	"fmt"
	"os"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Create version info
	versionInfo := VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	// Create and configure registry
	registry := NewCommandRegistry(versionInfo)

	// Register all commands
	registerCommands(registry)

	// Execute
	if err := registry.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func registerCommands(r *CommandRegistry) {
	r.Register(&Command{
		Name:        "expand",
		Description: "Expand an assume directive into the code one build mode compiles",
		Usage:       "assume expand [flags] '<directive>'",
		Examples: []string{
			`assume expand 'unsafe: i < len(v), "index %d beyond v length", i'`,
			`assume expand --mode optimized 'unsafe: last != nil'`,
			`assume expand 'assume(unsafe: @unreachable, "bad state %v", s)'`,
		},
		Run: expandCommand,
	})

	r.Register(&Command{
		Name:        "exec",
		Description: "Expand a directive and execute the result in an interpreter",
		Usage:       "assume exec [flags] '<directive>'",
		Examples: []string{
			`assume exec 'unsafe: 2 < 5, "unreachable: %v", "x"'`,
			`assume exec --mode optimized --prelude 'var hits int' 'unsafe: hits == 0'`,
		},
		Run: execCommand,
	})

	r.Register(&Command{
		Name:        "vet",
		Description: "Check Go sources for malformed or hazardous assumptions",
		Usage:       "assume vet [flags] [path ...]",
		Examples: []string{
			"assume vet .",
			"assume vet --strict ./internal ./pkg",
			"assume vet --config assume.yaml",
		},
		Run: vetCommand,
	})

	r.Register(&Command{
		Name:        "version",
		Description: "Show version information",
		Usage:       "assume version",
		Examples:    []string{"assume version"},
		Run: func(args []string) error {
			fmt.Printf("assume %s (commit: %s, built: %s)\n", version, commit, date)
			return nil
		},
	})
}
