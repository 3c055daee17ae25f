package findopt

import "fmt"

// Conflicts describes filter combinations that no object can satisfy,
// such as "--size +10k --size -5k". Such requests are still valid; the
// CLI only warns about them.
func (o *FindOptions) Conflicts() []string {
	var conflicts []string
	conflicts = append(conflicts, sizeConflicts(o.Sizes)...)
	conflicts = append(conflicts, timeConflicts(o.Times)...)
	return conflicts
}

func sizeConflicts(sizes []SizeSpec) []string {
	var (
		bigger, lower, equal          SizeSpec
		hasBigger, hasLower, hasEqual bool
		conflicts                     []string
	)

	for _, s := range sizes {
		switch s.Op {
		case SizeBigger:
			if !hasBigger || s.Bytes > bigger.Bytes {
				bigger, hasBigger = s, true
			}
		case SizeLower:
			if !hasLower || s.Bytes < lower.Bytes {
				lower, hasLower = s, true
			}
		case SizeEqual:
			if hasEqual && s.Bytes != equal.Bytes {
				conflicts = append(conflicts, fmt.Sprintf("--size %s and --size %s cannot both match", equal, s))
				continue
			}
			equal, hasEqual = s, true
		}
	}

	// Sizes are whole bytes, so "+n" and "-(n+1)" leave nothing in between.
	if hasBigger && hasLower && lower.Bytes-bigger.Bytes <= 1 {
		conflicts = append(conflicts, fmt.Sprintf("--size %s and --size %s cannot both match", bigger, lower))
	}
	if hasEqual && hasBigger && equal.Bytes <= bigger.Bytes {
		conflicts = append(conflicts, fmt.Sprintf("--size %s and --size %s cannot both match", equal, bigger))
	}
	if hasEqual && hasLower && equal.Bytes >= lower.Bytes {
		conflicts = append(conflicts, fmt.Sprintf("--size %s and --size %s cannot both match", equal, lower))
	}
	return conflicts
}

func timeConflicts(times []TimeSpec) []string {
	var (
		upper, lower       TimeSpec
		hasUpper, hasLower bool
	)

	for _, t := range times {
		switch t.Op {
		case TimeUpper:
			if !hasUpper || t.Seconds < upper.Seconds {
				upper, hasUpper = t, true
			}
		case TimeLower:
			if !hasLower || t.Seconds > lower.Seconds {
				lower, hasLower = t, true
			}
		}
	}

	if hasUpper && hasLower && upper.Seconds <= lower.Seconds {
		return []string{fmt.Sprintf("--mtime %s and --mtime %s do not overlap", upper, lower)}
	}
	return nil
}
