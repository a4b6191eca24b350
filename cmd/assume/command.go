package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Command represents a CLI command with common functionality
type Command struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Run         func(args []string) error
}

// NewFlagSet creates a standardized flag set for a command
func (c *Command) NewFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() { c.PrintUsage() }
	return fs
}

// PrintUsage prints standardized usage information
func (c *Command) PrintUsage() {
	fmt.Fprintf(os.Stderr, "%s\n\n", c.Description)
	fmt.Fprintf(os.Stderr, "USAGE:\n    %s\n\n", c.Usage)
	if len(c.Examples) > 0 {
		fmt.Fprintf(os.Stderr, "EXAMPLES:\n")
		for _, example := range c.Examples {
			fmt.Fprintf(os.Stderr, "    %s\n", example)
		}
	}
}

// CommandRegistry manages all CLI commands
type CommandRegistry struct {
	commands map[string]*Command
	version  VersionInfo
}

// VersionInfo holds build-time version information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(v VersionInfo) *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]*Command),
		version:  v,
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
}

// Execute runs the appropriate command based on args
func (r *CommandRegistry) Execute(args []string) error {
	if len(args) < 1 {
		r.PrintHelp(os.Stdout)
		return fmt.Errorf("no command specified")
	}

	cmdName := args[0]

	// Handle special commands
	switch cmdName {
	case "help", "-h", "--help":
		r.PrintHelp(os.Stdout)
		return nil
	}

	// Execute registered command
	cmd, ok := r.commands[cmdName]
	if !ok {
		r.PrintHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	return cmd.Run(args[1:])
}

// PrintHelp prints overall CLI help
func (r *CommandRegistry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "assume - expand and check optimizer-guidance assumptions")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "    assume <command> [arguments]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "COMMANDS:")

	// Print commands in a consistent order
	order := []string{"version", "expand", "exec", "vet", "help"}
	for _, name := range order {
		if cmd, ok := r.commands[name]; ok {
			fmt.Fprintf(w, "    %-12s %s\n", cmd.Name, cmd.Description)
		}
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'assume <command> --help' for more information on a command.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "EXAMPLES:")
	fmt.Fprintln(w, "    # Expand a directive for the verified build")
	fmt.Fprintf(w, "%s\n", `    assume expand 'unsafe: i < len(v), "index %d beyond v length", i'`)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "    # See what the optimized build compiles instead")
	fmt.Fprintln(w, "    assume expand --mode optimized 'unsafe: @unreachable'")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "    # Check a source tree for assumption hazards")
	fmt.Fprintln(w, "    assume vet --strict .")
}
