// Where: internal/command/command_context.go
// What: Shared per-invocation state for site map commands.
// Why: Resolve config, output, logging and storage once per command.
package command

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/poruru-code/sitemap-cli/internal/infra/config"
	"github.com/poruru-code/sitemap-cli/internal/infra/envutil"
	"github.com/poruru-code/sitemap-cli/internal/infra/sitemapio"
	"github.com/poruru-code/sitemap-cli/internal/infra/ui"
)

const (
	envS3AccessKey = "S3_ACCESS_KEY"
	envS3SecretKey = "S3_SECRET_KEY"
)

type commandContext struct {
	ctx        context.Context
	cfg        config.Config
	configPath string
	ui         ui.UserInterface
	logger     *slog.Logger
	store      *sitemapio.Store
}

// newCommandContext loads the effective config and wires the store.
// An explicitly named config file must exist; the default one is optional.
func newCommandContext(cli CLI, deps Dependencies) (commandContext, error) {
	emoji, err := resolveEmojiEnabled(deps.Out, cli)
	if err != nil {
		return commandContext{}, err
	}
	path, err := config.ConfigPath(cli.ConfigFile)
	if err != nil {
		return commandContext{}, err
	}
	required := strings.TrimSpace(cli.ConfigFile) != ""
	cfg, err := config.Resolve(path, required)
	if err != nil {
		return commandContext{}, err
	}

	logger := newLogger(deps.ErrOut, cli.Verbose)
	logger.Debug("resolved config", "path", path, "indent", cfg.Output.Indent, "suffix", cfg.Output.Suffix)

	store := sitemapio.NewStore(newObjectStore(deps, cfg.S3), logger)
	store.Encode = sitemapio.EncodeOptions{
		Indent:     cfg.Output.Indent,
		EscapeHTML: cfg.Output.EscapeHTML,
	}

	return commandContext{
		ctx:        deps.Context,
		cfg:        cfg,
		configPath: path,
		ui:         ui.NewUI(deps.Out, emoji),
		logger:     logger,
		store:      store,
	}, nil
}

func newObjectStore(deps Dependencies, cfg config.S3Config) sitemapio.ObjectStore {
	opts := sitemapio.S3Options{
		Endpoint:     strings.TrimSpace(cfg.Endpoint),
		Region:       strings.TrimSpace(cfg.Region),
		UsePathStyle: cfg.PathStyle,
		AccessKey:    envutil.GetHostEnv(envS3AccessKey),
		SecretKey:    envutil.GetHostEnv(envS3SecretKey),
	}
	if deps.NewObjectStore != nil {
		return deps.NewObjectStore(opts)
	}
	return sitemapio.NewLazyS3ObjectStore(opts)
}

func newLogger(out io.Writer, verbose bool) *slog.Logger {
	if !verbose || out == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
