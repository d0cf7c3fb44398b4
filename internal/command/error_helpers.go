// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Map load, reverse and write failures to consistent messages and hints.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/poruru-code/sitemap-cli/internal/domain/sitemap"
	"github.com/poruru-code/sitemap-cli/internal/infra/sitemapio"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	plainUI(out).Info(fmt.Sprintf("✗ %v", err))
	return 1
}

// exitWithSuggestion prints an error message with suggested next steps
// and returns exit code 1.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	ui := plainUI(out)
	ui.Info(fmt.Sprintf("⚠️  %s", message))
	if len(suggestions) > 0 {
		ui.Info("")
		ui.Info("💡 Next steps:")
		for _, s := range suggestions {
			ui.Info(fmt.Sprintf("   - %s", s))
		}
	}
	return 1
}

// exitWithSiteMapError classifies err and prints a hint for the known
// failure kinds.
func exitWithSiteMapError(out io.Writer, err error) int {
	var mismatch *sitemap.TypeMismatchError
	switch {
	case errors.As(err, &mismatch) && mismatch.Got == sitemap.KindMissing:
		return exitWithSuggestion(out, err.Error(), []string{
			fmt.Sprintf("Add a top-level %q object mapping page identifiers to pages.", sitemap.PagesField),
		})
	case errors.Is(err, sitemap.ErrTypeMismatch):
		return exitWithSuggestion(out, err.Error(), []string{
			fmt.Sprintf("Make %q an object; arrays and scalars have no key order to reverse.", sitemap.PagesField),
		})
	case errors.Is(err, sitemapio.ErrParse):
		return exitWithSuggestion(out, err.Error(), []string{
			"Check that the file is a single JSON or YAML object encoded as UTF-8.",
			"Use a .yaml/.yml extension for YAML and .gz for gzip-compressed input.",
		})
	case errors.Is(err, sitemapio.ErrIO):
		return exitWithSuggestion(out, err.Error(), []string{
			"Check that the path exists and is readable, and that the output directory is writable.",
			fmt.Sprintf("For s3:// locations, check the s3 section of `%s config show` and your credentials.", cliName()),
		})
	default:
		return exitWithError(out, err)
	}
}
