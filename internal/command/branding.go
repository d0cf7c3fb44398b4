// Where: internal/command/branding.go
// What: CLI naming for user-facing hints.
// Why: Keep example commands consistent when the binary is renamed.
package command

import (
	"os"
	"strings"

	"github.com/poruru-code/sitemap-cli/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv("CLI_CMD"))
	if name == "" {
		name = strings.TrimSpace(meta.AppName)
	}
	if name == "" {
		name = "sitemap"
	}
	return name
}
