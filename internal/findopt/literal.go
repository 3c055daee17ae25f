package findopt

import (
	"errors"
	"math"
	"strconv"
)

// literal is the [+|-]digits[unit] shape shared by --size and --mtime.
type literal struct {
	sign   byte // '+', '-' or 0 when absent
	number int64
	unit   string
}

// scanLiteral splits s into sign, number and unit. The unit is returned
// as-is; validating it is up to the caller since size and time use
// different unit tables.
func scanLiteral(s string) (literal, error) {
	var lit literal
	if s != "" && (s[0] == '+' || s[0] == '-') {
		lit.sign = s[0]
		s = s[1:]
	}

	// Find where the unit starts (first non-digit)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return literal{}, errors.New("missing number")
	}

	num, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return literal{}, errors.New("number out of range")
	}
	lit.number = num
	lit.unit = s[i:]
	return lit, nil
}

// scale multiplies the literal's number by mult, rejecting overflow.
func (l literal) scale(mult int64) (int64, error) {
	if l.number > math.MaxInt64/mult {
		return 0, errors.New("value too large")
	}
	return l.number * mult, nil
}
