// Where: internal/command/config_cmd.go
// What: config init/show commands.
// Why: Create and inspect the config file without editing it by hand.
package command

import (
	"fmt"
	"strings"

	"github.com/poruru-code/sitemap-cli/internal/infra/config"
)

func runConfigInit(cli CLI, deps Dependencies) int {
	path, err := config.ConfigPath(cli.ConfigFile)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	written, err := config.EnsureConfig(path, cli.Config.Init.Force)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	ui := plainUI(deps.Out)
	if !written {
		return exitWithSuggestion(deps.ErrOut, fmt.Sprintf("Config already exists: %s", path), []string{
			fmt.Sprintf("%s config init --force", cliName()),
		})
	}
	ui.Success(fmt.Sprintf("Wrote config to %s", path))
	return 0
}

func runConfigShow(cli CLI, deps Dependencies) int {
	cc, err := newCommandContext(cli, deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	payload, err := config.Encode(cc.cfg)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	cc.ui.Info(fmt.Sprintf("# %s", cc.configPath))
	cc.ui.Info(strings.TrimRight(string(payload), "\n"))
	return 0
}
