// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru-code/sitemap-cli/internal/infra/sitemapio"
	"github.com/poruru-code/sitemap-cli/internal/meta"
	"github.com/poruru-code/sitemap-cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// This structure enables dependency injection for testing and allows swapping
// implementations of various subsystems.
type Dependencies struct {
	Context        context.Context
	Out            io.Writer
	ErrOut         io.Writer
	NewObjectStore func(sitemapio.S3Options) sitemapio.ObjectStore
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	ConfigFile string     `short:"c" name:"config-file" help:"Path to config file (default: ~/.sitemap/config.yaml)"`
	EnvFile    string     `name:"env-file" help:"Path to .env file"`
	Verbose    bool       `short:"v" help:"Verbose output"`
	Emoji      bool       `name:"emoji" help:"Enable emoji output (default: auto)"`
	NoEmoji    bool       `name:"no-emoji" help:"Disable emoji output"`
	Reverse    ReverseCmd `cmd:"" help:"Reverse the page order of a site map"`
	Order      OrderCmd   `cmd:"" help:"Print the page order of a site map"`
	Config     ConfigCmd  `cmd:"" name:"config" help:"Manage configuration"`
	Version    VersionCmd `cmd:"" help:"Show version information"`
}

type (
	// ReverseCmd defines the reverse command flags.
	ReverseCmd struct {
		Input  string `arg:"" name:"input" help:"Site map to read (path or s3://bucket/key; .json, .yaml, .yml, optionally .gz)"`
		Output string `short:"o" help:"Write the reversed site map to this location"`
		Save   bool   `help:"Write the reversed site map next to the input using the configured suffix"`
		DryRun bool   `name:"dry-run" help:"Report only; never write output"`
		Diff   bool   `help:"Show a diff of the page order"`
		Format string `help:"Go template for the summary (sprig functions available)"`
		Indent int    `default:"-1" help:"JSON indentation in spaces, 0-8 (-1: from config)"`
	}

	// OrderCmd defines the order command flags.
	OrderCmd struct {
		Input string `arg:"" name:"input" help:"Site map to read (path or s3://bucket/key)"`
		JSON  bool   `name:"json" help:"Print the page identifiers as a JSON array"`
	}

	ConfigCmd struct {
		Init ConfigInitCmd `cmd:"" help:"Write a default config file"`
		Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
	}

	ConfigInitCmd struct {
		Force bool `help:"Overwrite an existing config file"`
	}

	ConfigShowCmd struct{}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
		deps.Out = out
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	ui := plainUI(out)

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Reverse and inspect the page order of site map documents."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, deps)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			ui.Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", cli.EnvFile, err))
		}
	} else {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				ui.Warn(fmt.Sprintf("Warning: failed to load .env: %v", err))
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps); handled {
		return exitCode
	}

	ui.Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"config init": runConfigInit,
		"config show": runConfigShow,
		"version":     runVersion,
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "reverse", handler: runReverse},
		{prefix: "order", handler: runOrder},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, deps Dependencies) int {
	plainUI(deps.Out).Info(version.GetVersion())
	return 0
}

// runNoArgs handles the case when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	ui := plainUI(out)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s reverse <input> [-o <output> | --save] [--dry-run] [--diff]", cmd))
	ui.Info(fmt.Sprintf("  %s order <input> [--json]", cmd))
	ui.Info(fmt.Sprintf("  %s config init|show", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, deps Dependencies) int {
	msg := err.Error()
	ui := plainUI(deps.ErrOut)
	cmd := cliName()
	if strings.Contains(msg, "expected string value") {
		switch {
		case strings.Contains(msg, "--output"):
			ui.Warn("`-o/--output` expects a value. Provide a path or s3://bucket/key, or use --save.")
			ui.Info(fmt.Sprintf("Example: %s reverse ./site.json -o ./site-reversed.json", cmd))
			return 1
		case strings.Contains(msg, "--format"):
			ui.Warn("`--format` expects a Go template.")
			ui.Info(fmt.Sprintf("Example: %s reverse ./site.json --format '{{ join \", \" .Reversed }}'", cmd))
			return 1
		case strings.Contains(msg, "--config-file"):
			ui.Warn("`-c/--config-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s -c ./%s reverse ./site.json", cmd, meta.ConfigFilename))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --env-file .env.prod reverse ./site.json", cmd))
			return 1
		}
	}
	if strings.Contains(msg, `expected "<input>"`) {
		ui.Warn("A site map location is required.")
		ui.Info(fmt.Sprintf("Example: %s reverse ./site.json --save", cmd))
		return 1
	}
	return exitWithError(deps.ErrOut, err)
}
