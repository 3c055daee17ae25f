package findopt

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternKind identifies how a Pattern's source is to be matched.
type PatternKind int

const (
	PatternGlob                PatternKind = iota // --name
	PatternCaseInsensitiveGlob                    // --iname
	PatternRegex                                  // --regex
)

// Pattern is a validated key pattern. Globs keep only their source; regex
// patterns also carry the compiled expression so matching never recompiles.
type Pattern struct {
	Kind   PatternKind
	Source string
	Regexp *regexp.Regexp // set for PatternRegex only
}

// NewGlob validates a case-sensitive glob pattern.
func NewGlob(pattern string) (Pattern, error) {
	if err := validateGlob(pattern); err != nil {
		return Pattern{}, err
	}
	return Pattern{Kind: PatternGlob, Source: pattern}, nil
}

// NewCaseInsensitiveGlob validates a glob pattern that is to be matched
// without regard to case.
func NewCaseInsensitiveGlob(pattern string) (Pattern, error) {
	if err := validateGlob(pattern); err != nil {
		return Pattern{}, err
	}
	return Pattern{Kind: PatternCaseInsensitiveGlob, Source: pattern}, nil
}

// NewRegex compiles a regular expression pattern.
func NewRegex(pattern string) (Pattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Pattern{}, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}
	return Pattern{Kind: PatternRegex, Source: pattern, Regexp: re}, nil
}

func validateGlob(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return nil
}

func (p Pattern) String() string {
	return p.Source
}
