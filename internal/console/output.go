// Package console writes user-facing messages for the s3find CLI.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/mgutz/ansi"
)

// Output writes lines to stdout and diagnostics to stderr, optionally in
// colour.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	yellow func(string) string
	red    func(string) string
}

// NewOutput creates a new Output.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		yellow: color("yellow"),
		red:    color("red+b"),
	}
}

// ColorEnabled reports whether the environment asks for coloured output
// (terminal detection, NO_COLOR, CLICOLOR_FORCE).
func ColorEnabled() bool {
	return term.FromEnv().IsColorEnabled()
}

// Println writes args to stdout, separated by spaces. Arguments that
// contain whitespace are quoted.
func (o *Output) Println(args ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			a = fmt.Sprintf("%q", a)
		}
		quoted[i] = a
	}
	fmt.Fprintln(o.stdout, strings.Join(quoted, " "))
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}

// Errorf writes a formatted error message to stderr.
func (o *Output) Errorf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.red("Error: ")+format+"\n", args...)
}
