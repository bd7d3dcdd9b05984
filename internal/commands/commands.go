package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrNoCommand is returned by Execute when args name no subcommand and no default is set.
var ErrNoCommand = errors.New("missing subcommand")

// UnknownError is returned by Execute for a subcommand that was never registered.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return "unknown command: " + e.Name
}

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds     map[string]*Command
	fallback string
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after
// fs.Parse succeeds. The FlagSet should use flag.ContinueOnError so Execute can return errors.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// SetDefault names the subcommand used when args is empty or starts with a flag.
func (r *Registry) SetDefault(name string) {
	r.fallback = name
}

// Given returns fields[name] for every flag of fs that was set on the command line, in flag
// name order. Flags missing from fields are skipped.
func Given(fs *flag.FlagSet, fields map[string]string) []string {
	var out []string
	fs.Visit(func(f *flag.Flag) {
		if name, ok := fields[f.Name]; ok {
			out = append(out, name)
		}
	})
	return out
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		if r.fallback == "" {
			return ErrNoCommand
		}
		args = append([]string{r.fallback}, args...)
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return &UnknownError{Name: name}
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run()
}

// Usage writes one line per subcommand, sorted by name.
func (r *Registry) Usage(w io.Writer) {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		mark := ""
		if n == r.fallback {
			mark = " (default)"
		}
		fmt.Fprintf(w, "  %-8s %s%s\n", n, r.cmds[n].Summary, mark)
	}
}
