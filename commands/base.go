package commands

import (
	"fmt"
	"io"
	"sort"

	getopt "github.com/pborman/getopt/v2"
	"github.com/tinyshell/tinysh/core/sys"
)

// Entry describes one registered builtin: its name, entrypoint and whether
// it runs isolated in a child process or inside the shell itself. Commands
// that must mutate shell state (cd, env, exit) are the only non-isolated
// ones.
type Entry struct {
	Name     string
	Main     sys.ProcessFunc
	Isolated bool
}

// registry is the fixed command table, populated once at init time.
var registry []Entry

// mustRegister adds a command to the table. Names must be unique.
func mustRegister(name string, main sys.ProcessFunc, isolated bool) {
	if _, ok := Lookup(name); ok {
		panic(fmt.Sprintf("duplicate command %q", name))
	}
	registry = append(registry, Entry{Name: name, Main: main, Isolated: isolated})
}

// Lookup finds a command by exact, case-sensitive name match.
func Lookup(name string) (Entry, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns the registered commands sorted by name.
func All() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SimpleCommand wires getopt parsing and help output for a builtin.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses flags from p.Argv and, if parsing succeeded, calls back.
func (s *SimpleCommand) Run(p *sys.Proc, callback func() int) int {
	opts := s.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(p.Argv, nil); err != nil {
		fmt.Fprintf(p.Stderr, "error: %s\n\n", err)
		s.PrintHelp(p.Stdout)
		return 1
	}

	if *showHelp {
		s.PrintHelp(p.Stdout)
		return 0
	}

	return callback()
}
