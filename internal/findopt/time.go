package findopt

import (
	"fmt"
	"strconv"
)

// TimeOp is the direction of a TimeSpec.
type TimeOp int

const (
	// TimeUpper matches objects modified within the last Seconds.
	TimeUpper TimeOp = iota
	// TimeLower matches objects modified more than Seconds ago.
	TimeLower
)

// TimeSpec is a parsed --mtime filter.
type TimeSpec struct {
	Op      TimeOp
	Seconds int64
}

var timeUnits = map[string]int64{
	"":  1,
	"s": 1,
	"m": 60,
	"h": 60 * 60,
	"d": 24 * 60 * 60,
	"w": 7 * 24 * 60 * 60,
}

// ParseTime parses a relative time literal of the form
// [+|-]<integer>[s|m|h|d|w].
//
// There is no exact-match form: "5d" and "+5d" both mean "modified within
// the last five days", "-5d" means "modified before five days ago".
func ParseTime(s string) (TimeSpec, error) {
	lit, err := scanLiteral(s)
	if err != nil {
		return TimeSpec{}, fmt.Errorf("%w %q: %v", ErrTimeParse, s, err)
	}

	mult, ok := timeUnits[lit.unit]
	if !ok {
		return TimeSpec{}, fmt.Errorf("%w %q: unknown unit %q (supported: s, m, h, d, w)", ErrTimeParse, s, lit.unit)
	}
	seconds, err := lit.scale(mult)
	if err != nil {
		return TimeSpec{}, fmt.Errorf("%w %q: %v", ErrTimeParse, s, err)
	}

	if lit.sign == '-' {
		return TimeSpec{Op: TimeLower, Seconds: seconds}, nil
	}
	return TimeSpec{Op: TimeUpper, Seconds: seconds}, nil
}

// String returns the canonical literal, in plain seconds.
func (t TimeSpec) String() string {
	n := strconv.FormatInt(t.Seconds, 10)
	if t.Op == TimeLower {
		return "-" + n
	}
	return n
}
