package findopt

import (
	"fmt"
	"regexp"
)

// DefaultRegion is used when no --aws-region is given.
const DefaultRegion = "us-east-1"

// regionPattern matches the shape of AWS region names such as us-east-1,
// us-gov-west-1 or ap-southeast-2.
var regionPattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-[0-9]+$`)

// ParseRegion validates an AWS region name.
func ParseRegion(s string) (string, error) {
	if !regionPattern.MatchString(s) {
		return "", fmt.Errorf("%w %q (expected a region name like %s)", ErrRegionParse, s, DefaultRegion)
	}
	return s, nil
}
