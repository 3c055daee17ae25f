package findopt

import (
	"fmt"
	"slices"
	"strings"
)

// CommandKind names the action run against every matched key.
type CommandKind string

const (
	CommandExec       CommandKind = "-exec"
	CommandPrint      CommandKind = "-print"
	CommandDelete     CommandKind = "-delete"
	CommandDownload   CommandKind = "-download"
	CommandList       CommandKind = "-ls"
	CommandListTags   CommandKind = "-lstags"
	CommandSetTags    CommandKind = "-tags"
	CommandMakePublic CommandKind = "-public"
)

// CommandKinds lists every action in help-text order.
var CommandKinds = []CommandKind{
	CommandExec,
	CommandPrint,
	CommandDelete,
	CommandDownload,
	CommandList,
	CommandListTags,
	CommandSetTags,
	CommandMakePublic,
}

// LookupCommandKind returns the action named by a command-line token.
func LookupCommandKind(token string) (CommandKind, bool) {
	for _, k := range CommandKinds {
		if string(k) == token {
			return k, true
		}
	}
	return "", false
}

// Command is the terminal action of a request. Only the fields belonging
// to Kind are set.
type Command struct {
	Kind CommandKind

	Utility     string // CommandExec
	Force       bool   // CommandDownload
	Destination string // CommandDownload
	Tags        []Tag  // CommandSetTags
}

// Exec runs utility once per matched key.
func Exec(utility string) (Command, error) {
	return newCommand(Command{Kind: CommandExec, Utility: utility})
}

// Download copies matched keys into destination, overwriting existing
// files only when force is set.
func Download(destination string, force bool) (Command, error) {
	return newCommand(Command{Kind: CommandDownload, Destination: destination, Force: force})
}

// SetTags replaces the tags of every matched key.
func SetTags(tags []Tag) (Command, error) {
	return newCommand(Command{Kind: CommandSetTags, Tags: slices.Clone(tags)})
}

// Simple returns one of the actions that take no arguments.
func Simple(kind CommandKind) (Command, error) {
	return newCommand(Command{Kind: kind})
}

func newCommand(c Command) (Command, error) {
	if err := c.Validate(); err != nil {
		return Command{}, err
	}
	return c, nil
}

// Validate checks that the payload matches the kind.
func (c Command) Validate() error {
	hasPayload := c.Utility != "" || c.Force || c.Destination != "" || len(c.Tags) > 0

	switch c.Kind {
	case CommandExec:
		if c.Utility == "" {
			return fmt.Errorf("%w: %s requires a utility", ErrCommand, c.Kind)
		}
		if c.Force || c.Destination != "" || len(c.Tags) > 0 {
			return fmt.Errorf("%w: %s takes only a utility", ErrCommand, c.Kind)
		}
	case CommandDownload:
		if c.Destination == "" {
			return fmt.Errorf("%w: %s requires a destination", ErrCommand, c.Kind)
		}
		if c.Utility != "" || len(c.Tags) > 0 {
			return fmt.Errorf("%w: %s takes only a destination and --force", ErrCommand, c.Kind)
		}
	case CommandSetTags:
		if len(c.Tags) == 0 {
			return fmt.Errorf("%w: %s requires at least one key:value tag", ErrCommand, c.Kind)
		}
		if c.Utility != "" || c.Force || c.Destination != "" {
			return fmt.Errorf("%w: %s takes only tags", ErrCommand, c.Kind)
		}
	case CommandPrint, CommandDelete, CommandList, CommandListTags, CommandMakePublic:
		if hasPayload {
			return fmt.Errorf("%w: %s takes no arguments", ErrCommand, c.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown action %q", ErrCommand, string(c.Kind))
	}
	return nil
}

// Args returns the action as command-line tokens, starting with its name.
func (c Command) Args() []string {
	args := []string{string(c.Kind)}
	switch c.Kind {
	case CommandExec:
		args = append(args, c.Utility)
	case CommandDownload:
		if c.Force {
			args = append(args, "-f")
		}
		args = append(args, c.Destination)
	case CommandSetTags:
		for _, t := range c.Tags {
			args = append(args, t.String())
		}
	}
	return args
}

func (c Command) String() string {
	return strings.Join(c.Args(), " ")
}
