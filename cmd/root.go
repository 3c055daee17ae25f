package cmd

import (
	"context"
	"io"

	"github.com/jparise/s3find/internal/console"
	"github.com/jparise/s3find/internal/findopt"
	"github.com/spf13/cobra"
)

var version = "dev"

// Handler receives the validated request. It is where the matching engine
// takes over; out is configured according to --color.
type Handler func(ctx context.Context, out *console.Output, opts *findopt.FindOptions) error

// rootFlags holds the flag values of one invocation.
type rootFlags struct {
	stdout io.Writer
	stderr io.Writer

	color     colorMode
	accessKey string
	secretKey string
	region    regionFlag
	names     *patternFlag
	inames    *patternFlag
	regexes   *patternFlag
	mtimes    timeFlag
	sizes     sizeFlag
	action    []string
}

const longHelp = `s3find walks an S3 path and runs an action on every matching key.

<path> is the S3 path to walk through, in the form s3://bucket/path.

--mtime matches the modification time against a time period:
  +5d            Modified between now-5d and now
  5d             Same as +5d
  -5d            Modified before now-5d

Possible time units are as follows:
  s  seconds
  m  minutes
  h  hours
  d  days
  w  weeks

--size matches the object size:
  5k             Exactly 5k
  +5k            Bigger than 5k
  -5k            Smaller than 5k

Possible size units are as follows:
  k  kilobytes (1024 bytes)
  M  megabytes (1024 kilobytes)
  G  gigabytes (1024 megabytes)
  T  terabytes (1024 gigabytes)
  P  petabytes (1024 terabytes)

All filters can be given multiple times; an object must match all of them.

Actions (at most one, after all flags):
  -exec <utility>              Run a shell utility with every key
  -print                       Extended print with detail information
  -delete                      Delete matched keys
  -download [-f] <destination> Download matched keys, -f overwrites existing files
  -ls                          Print the list of matched keys
  -lstags                      Print the list of matched keys with tags
  -tags <key:value>...         Set (overwrite) the tags of matched keys
  -public                      Make matched keys publicly readable

Examples:
  s3find s3://example-bucket/logs --name "*.gz" --mtime -30d -delete
  s3find s3://example-bucket --iname "readme*" -ls
  s3find s3://example-bucket/data --size +100M -download -f /tmp/data
  s3find s3://example-bucket --regex "^img/[0-9]+\.png$" -tags kind:image`

func newRootCmd(stdout, stderr io.Writer, handler Handler) (*cobra.Command, *rootFlags) {
	f := &rootFlags{
		stdout:  stdout,
		stderr:  stderr,
		color:   colorAuto,
		names:   newPatternFlag(findopt.PatternGlob),
		inames:  newPatternFlag(findopt.PatternCaseInsensitiveGlob),
		regexes: newPatternFlag(findopt.PatternRegex),
	}

	cmd := &cobra.Command{
		Use:           "s3find <path> [flags] [action]",
		Short:         "Walk an S3 path hierarchy",
		Long:          longHelp,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(args[0])
			if err != nil {
				return err
			}

			out := f.output()
			for _, c := range opts.Conflicts() {
				out.Warningf("%s, nothing will match", c)
			}
			if opts.Command != nil && !opts.HasFilters() && modifiesObjects(opts.Command.Kind) {
				out.Warningf("%s without filters applies to every key under %s", opts.Command.Kind, opts.Path)
			}

			return handler(cmd.Context(), out, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.Var(&f.color, "color",
		"colorize output: auto, always, never")
	flags.StringVar(&f.accessKey, "aws-access-key", "",
		"AWS access key (requires --aws-secret-key)")
	flags.StringVar(&f.secretKey, "aws-secret-key", "",
		"AWS secret key (requires --aws-access-key)")
	flags.Var(&f.region, "aws-region",
		"AWS region (default \""+findopt.DefaultRegion+"\")")
	flags.Var(f.names, "name",
		"glob pattern for match, can be multiple")
	flags.Var(f.inames, "iname",
		"case-insensitive glob pattern for match, can be multiple")
	flags.Var(f.regexes, "regex",
		"regex pattern for match, can be multiple")
	flags.Var(&f.mtimes, "mtime",
		"modification time for match (e.g. +5d, -2h), can be multiple")
	flags.Var(&f.sizes, "size",
		"file size for match (e.g. 5k, +10M, -1G), can be multiple")
	cmd.MarkFlagsRequiredTogether("aws-access-key", "aws-secret-key")

	return cmd, f
}

// output returns the console for this invocation. It is only meaningful
// once flags have been parsed; before that --color reads as auto.
func (f *rootFlags) output() *console.Output {
	return console.NewOutput(f.stdout, f.stderr, f.color.enabled())
}

// modifiesObjects reports whether an action changes the objects it matches.
func modifiesObjects(kind findopt.CommandKind) bool {
	switch kind {
	case findopt.CommandDelete, findopt.CommandSetTags, findopt.CommandMakePublic:
		return true
	default:
		return false
	}
}

// options assembles the request from the parsed flags, the positional path
// and the action section.
func (f *rootFlags) options(path string) (*findopt.FindOptions, error) {
	p, err := findopt.ParsePath(path)
	if err != nil {
		return nil, err
	}

	command, err := parseAction(f.action)
	if err != nil {
		return nil, err
	}

	return findopt.New(findopt.Params{
		Path:      p,
		AccessKey: f.accessKey,
		SecretKey: f.secretKey,
		Region:    string(f.region),
		Names:     f.names.patterns,
		INames:    f.inames.patterns,
		Regexes:   f.regexes.patterns,
		Sizes:     f.sizes,
		Times:     f.mtimes,
		Command:   command,
	})
}

// Execute parses args (without the program name) and hands the resulting
// request to handler. Errors are reported on stderr before being returned.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, handler Handler) error {
	cmd, f := newRootCmd(stdout, stderr, handler)

	// Help and version flags are normally added during Execute; register
	// them now so splitAction recognises -h and -v.
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	flagArgs, actionArgs := splitAction(cmd.Flags(), args)
	f.action = actionArgs

	// A nil slice would make cobra fall back to os.Args.
	if flagArgs == nil {
		flagArgs = []string{}
	}
	cmd.SetArgs(flagArgs)
	if err := cmd.ExecuteContext(ctx); err != nil {
		f.output().Errorf("%v", err)
		return err
	}
	return nil
}
