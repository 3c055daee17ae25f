package cmd

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/jparise/s3find/internal/console"
	"github.com/jparise/s3find/internal/findopt"
)

// PrintRequest is the handler used when no engine is linked in. It
// resolves the SDK settings the request would run with, reports them on
// stderr and echoes the request in its normalized form.
func PrintRequest(ctx context.Context, out *console.Output, opts *findopt.FindOptions) error {
	var lo config.LoadOptions
	for _, apply := range opts.AWSConfigOptions() {
		if err := apply(&lo); err != nil {
			return fmt.Errorf("aws config: %w", err)
		}
	}

	source := "default credential chain"
	if lo.Credentials != nil {
		creds, err := lo.Credentials.Retrieve(ctx)
		if err != nil {
			return fmt.Errorf("aws credentials: %w", err)
		}
		source = creds.Source
	}

	out.Infof("region %s, credentials from %s", lo.Region, source)
	out.Println(opts.Args()...)
	return nil
}
