package cmd

import (
	"fmt"
	"strings"

	"github.com/jparise/s3find/internal/console"
	"github.com/jparise/s3find/internal/findopt"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

// enabled resolves the mode, consulting the terminal for auto. The zero
// value behaves like auto.
func (c *colorMode) enabled() bool {
	switch *c {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return console.ColorEnabled()
	}
}

// The filter flag types below implement pflag.Value. Each Set call parses one flag
// occurrence and appends it, so repeated flags keep command-line order and
// a bad value fails before any later flag is looked at.

// sizeFlag collects --size values.
type sizeFlag []findopt.SizeSpec

func (f *sizeFlag) String() string {
	return joinStrings(*f)
}

func (f *sizeFlag) Set(v string) error {
	s, err := findopt.ParseSize(v)
	if err != nil {
		return err
	}
	*f = append(*f, s)
	return nil
}

func (f *sizeFlag) Type() string {
	return "size"
}

// timeFlag collects --mtime values.
type timeFlag []findopt.TimeSpec

func (f *timeFlag) String() string {
	return joinStrings(*f)
}

func (f *timeFlag) Set(v string) error {
	t, err := findopt.ParseTime(v)
	if err != nil {
		return err
	}
	*f = append(*f, t)
	return nil
}

func (f *timeFlag) Type() string {
	return "time"
}

// patternFlag collects --name, --iname or --regex values, depending on
// the constructor it was created with.
type patternFlag struct {
	parse    func(string) (findopt.Pattern, error)
	typ      string
	patterns []findopt.Pattern
}

func newPatternFlag(kind findopt.PatternKind) *patternFlag {
	switch kind {
	case findopt.PatternCaseInsensitiveGlob:
		return &patternFlag{parse: findopt.NewCaseInsensitiveGlob, typ: "glob"}
	case findopt.PatternRegex:
		return &patternFlag{parse: findopt.NewRegex, typ: "regex"}
	default:
		return &patternFlag{parse: findopt.NewGlob, typ: "glob"}
	}
}

func (f *patternFlag) String() string {
	return joinStrings(f.patterns)
}

func (f *patternFlag) Set(v string) error {
	p, err := f.parse(v)
	if err != nil {
		return err
	}
	f.patterns = append(f.patterns, p)
	return nil
}

func (f *patternFlag) Type() string {
	return f.typ
}

// regionFlag holds --aws-region.
type regionFlag string

func (f *regionFlag) String() string {
	return string(*f)
}

func (f *regionFlag) Set(v string) error {
	region, err := findopt.ParseRegion(v)
	if err != nil {
		return err
	}
	*f = regionFlag(region)
	return nil
}

func (f *regionFlag) Type() string {
	return "region"
}

func joinStrings[T interface{ String() string }](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}
