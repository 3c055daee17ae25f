package findopt

import "errors"

// Parse errors. Each parser wraps one of these together with the offending
// input, so callers can test for a kind with errors.Is and still print a
// precise message.
var (
	ErrPathParse     = errors.New("invalid s3 path")
	ErrSizeParse     = errors.New("invalid size parameter")
	ErrTimeParse     = errors.New("invalid mtime parameter")
	ErrTagParse      = errors.New("cannot parse tag")
	ErrTagKeyParse   = errors.New("cannot parse tag key")
	ErrTagValueParse = errors.New("cannot parse tag value")
	ErrRegionParse   = errors.New("invalid aws region")
	ErrCredentials   = errors.New("aws access key and secret key must be given together")
	ErrCommand       = errors.New("invalid action")
)
