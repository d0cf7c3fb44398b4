// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and emoji resolution.
package command

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/poruru-code/sitemap-cli/internal/infra/interaction"
	"github.com/poruru-code/sitemap-cli/internal/infra/ui"
)

func plainUI(out io.Writer) ui.UserInterface {
	return ui.NewUI(out, false)
}

func resolveEmojiEnabled(out io.Writer, cli CLI) (bool, error) {
	if cli.Emoji && cli.NoEmoji {
		return false, errors.New("--emoji and --no-emoji cannot be used together")
	}
	if cli.Emoji {
		return true, nil
	}
	if cli.NoEmoji {
		return false, nil
	}
	if strings.TrimSpace(os.Getenv("NO_EMOJI")) != "" {
		return false, nil
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "dumb" {
		return false, nil
	}
	if file, ok := out.(*os.File); ok {
		return interaction.IsTerminal(file), nil
	}
	return false, nil
}
