// Where: cmd/sitemap/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/poruru-code/sitemap-cli/internal/command"
	"github.com/poruru-code/sitemap-cli/internal/infra/sitemapio"
)

var newObjectStore = func(opts sitemapio.S3Options) sitemapio.ObjectStore {
	return sitemapio.NewLazyS3ObjectStore(opts)
}

// buildDependencies constructs the runtime dependencies required by the CLI.
// The returned cancel func releases the signal handler.
func buildDependencies() (command.Dependencies, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	deps := command.Dependencies{
		Context:        ctx,
		Out:            os.Stdout,
		ErrOut:         os.Stderr,
		NewObjectStore: newObjectStore,
	}
	return deps, cancel
}
