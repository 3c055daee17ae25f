package findopt

import (
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Credentials is a static AWS key pair.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Params holds the parsed fields of a request before validation.
type Params struct {
	Path      PathSpec
	AccessKey string
	SecretKey string
	Region    string // empty means DefaultRegion
	Names     []Pattern
	INames    []Pattern
	Regexes   []Pattern
	Sizes     []SizeSpec
	Times     []TimeSpec
	Command   *Command // nil means the engine's default action
}

// FindOptions is a fully validated find request. Filters are combined with
// a logical AND by the engine; each slice keeps command-line order.
type FindOptions struct {
	Path        PathSpec
	Credentials *Credentials // nil when no keys were given
	Region      string
	Names       []Pattern
	INames      []Pattern
	Regexes     []Pattern
	Sizes       []SizeSpec
	Times       []TimeSpec
	Command     *Command
}

// New validates p and returns the request it describes.
func New(p Params) (*FindOptions, error) {
	if p.Path.Bucket == "" {
		return nil, fmt.Errorf("%w: empty bucket", ErrPathParse)
	}

	opts := &FindOptions{
		Path:    p.Path,
		Names:   slices.Clone(p.Names),
		INames:  slices.Clone(p.INames),
		Regexes: slices.Clone(p.Regexes),
		Sizes:   slices.Clone(p.Sizes),
		Times:   slices.Clone(p.Times),
	}

	switch {
	case p.AccessKey != "" && p.SecretKey != "":
		opts.Credentials = &Credentials{AccessKey: p.AccessKey, SecretKey: p.SecretKey}
	case p.AccessKey != "" || p.SecretKey != "":
		return nil, ErrCredentials
	}

	if p.Region != "" {
		region, err := ParseRegion(p.Region)
		if err != nil {
			return nil, err
		}
		opts.Region = region
	}

	for _, group := range []struct {
		patterns []Pattern
		kind     PatternKind
		flag     string
	}{
		{p.Names, PatternGlob, "--name"},
		{p.INames, PatternCaseInsensitiveGlob, "--iname"},
		{p.Regexes, PatternRegex, "--regex"},
	} {
		for _, pat := range group.patterns {
			if pat.Kind != group.kind {
				return nil, fmt.Errorf("pattern %q has the wrong kind for %s", pat.Source, group.flag)
			}
		}
	}

	if p.Command != nil {
		if err := p.Command.Validate(); err != nil {
			return nil, err
		}
		cmd := *p.Command
		cmd.Tags = slices.Clone(cmd.Tags)
		opts.Command = &cmd
	}

	return opts, nil
}

// HasFilters reports whether any filter was given. A request without
// filters matches every key under the path.
func (o *FindOptions) HasFilters() bool {
	return len(o.Names)+len(o.INames)+len(o.Regexes)+len(o.Sizes)+len(o.Times) > 0
}

// EffectiveRegion returns the region to talk to.
func (o *FindOptions) EffectiveRegion() string {
	if o.Region == "" {
		return DefaultRegion
	}
	return o.Region
}

// AWSConfigOptions returns the SDK load options for this request. They are
// meant for config.LoadDefaultConfig; building them does no I/O. Without
// explicit keys the SDK's default credential chain applies.
func (o *FindOptions) AWSConfigOptions() []func(*config.LoadOptions) error {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(o.EffectiveRegion()),
	}
	if o.Credentials != nil {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.Credentials.AccessKey, o.Credentials.SecretKey, ""),
		))
	}
	return opts
}

// Args renders the request as an equivalent s3find command line. The
// secret key is masked.
func (o *FindOptions) Args() []string {
	args := []string{o.Path.String()}
	if o.Credentials != nil {
		args = append(args, "--aws-access-key", o.Credentials.AccessKey, "--aws-secret-key", "****")
	}
	if o.Region != "" {
		args = append(args, "--aws-region", o.Region)
	}
	for _, p := range o.Names {
		args = append(args, "--name", p.Source)
	}
	for _, p := range o.INames {
		args = append(args, "--iname", p.Source)
	}
	for _, p := range o.Regexes {
		args = append(args, "--regex", p.Source)
	}
	for _, t := range o.Times {
		args = append(args, "--mtime", t.String())
	}
	for _, s := range o.Sizes {
		args = append(args, "--size", s.String())
	}
	if o.Command != nil {
		args = append(args, o.Command.Args()...)
	}
	return args
}
