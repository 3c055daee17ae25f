package findopt

import (
	"fmt"
	"strconv"
)

// SizeOp is the comparison a SizeSpec applies to an object's size.
type SizeOp int

const (
	SizeEqual  SizeOp = iota // exactly Bytes
	SizeBigger               // more than Bytes
	SizeLower                // less than Bytes
)

// SizeSpec is a parsed --size filter.
type SizeSpec struct {
	Op    SizeOp
	Bytes int64
}

// sizeUnits are binary multipliers, matching find(1) -size suffixes.
var sizeUnits = map[string]int64{
	"":  1,
	"k": 1 << 10,
	"M": 1 << 20,
	"G": 1 << 30,
	"T": 1 << 40,
	"P": 1 << 50,
}

// ParseSize parses a size literal of the form [+|-]<integer>[k|M|G|T|P].
//
//	5k  - exactly 5 KiB
//	+5k - bigger than 5 KiB
//	-5k - smaller than 5 KiB
func ParseSize(s string) (SizeSpec, error) {
	lit, err := scanLiteral(s)
	if err != nil {
		return SizeSpec{}, fmt.Errorf("%w %q: %v", ErrSizeParse, s, err)
	}

	mult, ok := sizeUnits[lit.unit]
	if !ok {
		return SizeSpec{}, fmt.Errorf("%w %q: unknown unit %q (supported: k, M, G, T, P)", ErrSizeParse, s, lit.unit)
	}
	bytes, err := lit.scale(mult)
	if err != nil {
		return SizeSpec{}, fmt.Errorf("%w %q: %v", ErrSizeParse, s, err)
	}

	switch lit.sign {
	case '+':
		return SizeSpec{Op: SizeBigger, Bytes: bytes}, nil
	case '-':
		return SizeSpec{Op: SizeLower, Bytes: bytes}, nil
	default:
		return SizeSpec{Op: SizeEqual, Bytes: bytes}, nil
	}
}

// String returns the canonical literal, in plain bytes.
func (s SizeSpec) String() string {
	n := strconv.FormatInt(s.Bytes, 10)
	switch s.Op {
	case SizeBigger:
		return "+" + n
	case SizeLower:
		return "-" + n
	default:
		return n
	}
}
