// Where: cmd/sitemap/main.go
// What: CLI entrypoint.
// Why: Execute sitemap commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru-code/sitemap-cli/internal/command"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	deps, cancel := buildDependencies()
	defer cancel()
	return command.Run(args, deps)
}
