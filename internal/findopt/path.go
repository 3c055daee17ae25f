// Package findopt models a validated s3find request and parses each of its
// command-line fields.
package findopt

import (
	"fmt"
	"strings"
)

// PathSpec is the bucket and optional key prefix to walk.
type PathSpec struct {
	Bucket string
	Prefix *string // nil when the path has no slash after the bucket
}

// ParsePath parses "s3://bucket[/prefix]".
//
// A trailing slash yields an empty, non-nil prefix: "s3://bucket/" and
// "s3://bucket" are distinct.
func ParsePath(s string) (PathSpec, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 3 || parts[0] != "s3:" || parts[1] != "" || parts[2] == "" {
		return PathSpec{}, fmt.Errorf("%w %q (expected s3://bucket/path)", ErrPathParse, s)
	}

	path := PathSpec{Bucket: parts[2]}
	if len(parts) > 3 {
		prefix := parts[3]
		path.Prefix = &prefix
	}
	return path, nil
}

// HasPrefix reports whether the path names a prefix, even an empty one.
func (p PathSpec) HasPrefix() bool {
	return p.Prefix != nil
}

// String returns the path in s3:// form.
func (p PathSpec) String() string {
	if !p.HasPrefix() {
		return "s3://" + p.Bucket
	}
	return "s3://" + p.Bucket + "/" + *p.Prefix
}
