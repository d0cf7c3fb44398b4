// Where: internal/command/reverse.go
// What: reverse command implementation.
// Why: Load a site map, reverse its page order, report and optionally write it.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poruru-code/sitemap-cli/internal/domain/sitemap"
	"github.com/poruru-code/sitemap-cli/internal/infra/report"
	"github.com/poruru-code/sitemap-cli/internal/infra/sitemapio"
)

var errOutputAndSave = errors.New("reverse: --output and --save cannot be used together")

const maxIndent = 8

func runReverse(cli CLI, deps Dependencies) int {
	flags := cli.Reverse
	if strings.TrimSpace(flags.Output) != "" && flags.Save {
		return exitWithError(deps.ErrOut, errOutputAndSave)
	}
	if flags.Indent < -1 || flags.Indent > maxIndent {
		return exitWithError(deps.ErrOut, fmt.Errorf("reverse: --indent must be between 0 and %d", maxIndent))
	}

	cc, err := newCommandContext(cli, deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if flags.Indent >= 0 {
		cc.store.Encode.Indent = flags.Indent
	}

	target, err := reverseTarget(flags, cc.cfg.Output.Suffix)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	doc, err := cc.store.Load(cc.ctx, flags.Input)
	if err != nil {
		return exitWithSiteMapError(deps.ErrOut, err)
	}
	reversed, err := sitemap.Reverse(doc)
	if err != nil {
		return exitWithSiteMapError(deps.ErrOut, err)
	}
	original, err := sitemap.PageKeys(doc)
	if err != nil {
		return exitWithSiteMapError(deps.ErrOut, err)
	}
	after, err := sitemap.PageKeys(reversed)
	if err != nil {
		return exitWithSiteMapError(deps.ErrOut, err)
	}
	cc.logger.Debug("reversed pages", "input", flags.Input, "pages", len(original))

	tmpl := flags.Format
	if tmpl == "" {
		tmpl = cc.cfg.Report.Template
	}
	summary := report.Summary{
		Source:    flags.Input,
		Output:    target,
		DryRun:    flags.DryRun,
		PageCount: len(original),
		Original:  original,
		Reversed:  after,
	}
	if err := report.Render(deps.Out, tmpl, summary); err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if flags.Diff {
		diff, err := report.OrderDiff(original, after)
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		cc.ui.Block("🔀", "Page order diff", nil)
		cc.ui.Info(strings.TrimRight(diff, "\n"))
	}

	if target == "" {
		return 0
	}
	if flags.DryRun {
		cc.ui.Info(fmt.Sprintf("Dry run: %s was not written", target))
		return 0
	}
	if err := cc.store.Save(cc.ctx, target, reversed); err != nil {
		return exitWithSiteMapError(deps.ErrOut, err)
	}
	cc.ui.Success(fmt.Sprintf("Wrote %d pages to %s", len(after), target))
	return 0
}

// reverseTarget returns where the reversed document goes, or "" when it
// is only reported.
func reverseTarget(flags ReverseCmd, suffix string) (string, error) {
	if output := strings.TrimSpace(flags.Output); output != "" {
		return output, nil
	}
	if !flags.Save {
		return "", nil
	}
	return sitemapio.SiblingPath(flags.Input, suffix)
}
