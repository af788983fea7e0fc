// Package cli is the command-line entry point. Every subcommand parses its
// own pflag set into a command.CLI command and hands it to the same use cases
// the HTTP API uses.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/panda-project/panda/internal/app"
	"github.com/panda-project/panda/internal/domain"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// errUsage marks an error whose message has already been printed with the
// usage text. errHelp ends a run after -h printed the usage.
var (
	errUsage = errors.New("usage")
	errHelp  = errors.New("help requested")
)

type action func(ctx context.Context, args []string) error

// Runner dispatches subcommands against one App.
type Runner struct {
	app    *app.App
	stdout io.Writer
	stderr io.Writer

	commands map[string]action
}

// New creates a Runner writing results to stdout and failures to stderr.
func New(a *app.App, stdout, stderr io.Writer) *Runner {
	r := &Runner{app: a, stdout: stdout, stderr: stderr}
	r.commands = map[string]action{
		"init":            r.initialize,
		"employee add":    r.employeeAdd,
		"employee edit":   r.employeeEdit,
		"employee remove": r.employeeRemove,
		"employee list":   r.employeeList,
		"team create":     r.teamCreate,
		"team edit":       r.teamEdit,
		"team disband":    r.teamDisband,
		"team show":       r.teamShow,
		"project show":    r.projectShow,
		"reset-db":        r.resetDB,
		"check":           r.check,
	}
	return r
}

// Run executes args (without the program name) and returns the exit code.
func (r *Runner) Run(ctx context.Context, args []string) int {
	name, rest, ok := r.lookup(args)
	if !ok {
		r.usage()
		return ExitUsage
	}
	return r.report(r.commands[name](ctx, rest))
}

// lookup matches "group sub" before a single word.
func (r *Runner) lookup(args []string) (string, []string, bool) {
	if len(args) >= 2 {
		if _, ok := r.commands[args[0]+" "+args[1]]; ok {
			return args[0] + " " + args[1], args[2:], true
		}
	}
	if len(args) >= 1 {
		if _, ok := r.commands[args[0]]; ok {
			return args[0], args[1:], true
		}
	}
	return "", nil, false
}

func (r *Runner) usage() {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(r.stderr, "usage: panda <command> [flags]")
	fmt.Fprintln(r.stderr, "commands:")
	for _, name := range names {
		fmt.Fprintf(r.stderr, "  %s\n", name)
	}
}

// report prints err and maps it to an exit code. Validation failures are
// printed one per line as "<flag>: <message>".
func (r *Runner) report(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, errHelp) {
		return ExitOK
	}
	if errors.Is(err, errUsage) {
		return ExitUsage
	}
	if verrs, ok := domain.AsValidation(err); ok {
		for _, v := range verrs {
			fmt.Fprintf(r.stderr, "%s: %s\n", v.Field, v.Message)
		}
		return ExitUsage
	}
	fmt.Fprintf(r.stderr, "error: %v\n", err)
	return ExitFailure
}

// flags returns a flag set for one subcommand. Parse errors are reported by
// parse.
func (r *Runner) flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("panda "+name, pflag.ContinueOnError)
	fs.SetOutput(r.stderr)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(r.stderr, "usage: panda %s [flags]\n", name)
		fs.PrintDefaults()
	}
	return fs
}

func (r *Runner) parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return errHelp
		}
		fmt.Fprintln(r.stderr, err)
		fs.Usage()
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(r.stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return errUsage
	}
	return nil
}
