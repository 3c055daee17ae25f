package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jparise/s3find/internal/findopt"
	"github.com/spf13/pflag"
)

// splitAction separates the flag section of args from the trailing action.
// The action starts at the first single-dash token that is not one of the
// command's own shorthand flags; values of long flags are skipped so that
// "--size -5k" stays in the flag section.
func splitAction(flags *pflag.FlagSet, args []string) (flagArgs, actionArgs []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args, nil
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			if strings.Contains(name, "=") {
				continue
			}
			if f := flags.Lookup(name); f != nil && f.NoOptDefVal == "" {
				i++
			}
		case len(arg) > 1 && arg[0] == '-':
			if len(arg) == 2 && flags.ShorthandLookup(arg[1:]) != nil {
				continue
			}
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// parseAction parses the action section. An empty section means no action
// was given.
func parseAction(args []string) (*findopt.Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	kind, ok := findopt.LookupCommandKind(args[0])
	if !ok {
		return nil, fmt.Errorf("unknown action %q (expected one of %s)", args[0], actionNames())
	}
	rest := args[1:]

	for _, arg := range rest {
		if other, ok := findopt.LookupCommandKind(arg); ok {
			return nil, fmt.Errorf("only one action may be given, got %s and %s", kind, other)
		}
	}

	var (
		command findopt.Command
		err     error
	)
	switch kind {
	case findopt.CommandExec:
		if len(rest) != 1 {
			return nil, fmt.Errorf("%s takes exactly one utility argument", kind)
		}
		command, err = findopt.Exec(rest[0])

	case findopt.CommandDownload:
		fs := pflag.NewFlagSet(string(kind), pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		force := fs.BoolP("force", "f", false,
			"overwrite files that already exist in the destination")
		if err := fs.Parse(rest); err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		if fs.NArg() != 1 {
			return nil, fmt.Errorf("%s takes exactly one destination argument", kind)
		}
		command, err = findopt.Download(fs.Arg(0), *force)

	case findopt.CommandSetTags:
		tags := make([]findopt.Tag, 0, len(rest))
		for _, arg := range rest {
			tag, err := findopt.ParseTag(arg)
			if err != nil {
				return nil, err
			}
			tags = append(tags, tag)
		}
		command, err = findopt.SetTags(tags)

	default:
		if len(rest) > 0 {
			return nil, fmt.Errorf("%s takes no arguments, got %q", kind, rest[0])
		}
		command, err = findopt.Simple(kind)
	}
	if err != nil {
		return nil, err
	}

	return &command, nil
}

func actionNames() string {
	names := make([]string, len(findopt.CommandKinds))
	for i, k := range findopt.CommandKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
