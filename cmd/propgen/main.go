// Package main provides the CLI entrypoint for propgen.
//
// propgen reads declaration manifests describing annotated C# types and
// generates the property accessors for their fields:
//   - Resolves access, prefix and naming configuration per member
//   - Validates delegated (capsule) fields and name collisions
//   - Writes one partial companion file per type, or checks them with --check
package main

import (
	"context"
	"os"
	"os/signal"

	"propgen/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}

	code := cli.NewRunner(os.Stdout, os.Stderr, dir, version).Run(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
