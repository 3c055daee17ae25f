// s3find is a find(1)-like utility for walking S3 buckets.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jparise/s3find/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// No engine is linked into this binary, so the request is echoed in
	// its normalized form.
	if err := cmd.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, cmd.PrintRequest); err != nil {
		stop()
		os.Exit(1)
	}
}
