package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/osse101/WarekiBot_Go/internal/conversion"
)

// ErrInputsFailed is returned when at least one input could not be handled.
var ErrInputsFailed = errors.New("one or more inputs failed")

// Command interface that all wareki subcommands must implement
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, args []string, env *Env) error
}

// Env is what a command reads from and writes to.
type Env struct {
	Service conversion.Service
	Out     io.Writer
	Err     io.Writer
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered commands
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: wareki <command> [flags] [args...]")
	fmt.Fprintln(w, "\nAvailable Commands:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Name()) > maxLen {
			maxLen = len(cmd.Name())
		}
	}

	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Name()) + 2
		fmt.Fprintf(w, "  %s%*s%s\n", cmd.Name(), padding, "", cmd.Description())
	}
}

// defaultRegistry holds every wareki subcommand.
func defaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ConvertCommand{})
	r.Register(&ReverseCommand{})
	r.Register(&ErasCommand{})
	return r
}
