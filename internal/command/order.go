// Where: internal/command/order.go
// What: order command implementation.
// Why: Show the current page order without writing anything.
package command

import (
	"encoding/json"
	"fmt"

	"github.com/poruru-code/sitemap-cli/internal/domain/sitemap"
	"github.com/poruru-code/sitemap-cli/internal/infra/ui"
)

func runOrder(cli CLI, deps Dependencies) int {
	cc, err := newCommandContext(cli, deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	doc, err := cc.store.Load(cc.ctx, cli.Order.Input)
	if err != nil {
		return exitWithSiteMapError(deps.ErrOut, err)
	}
	keys, err := sitemap.PageKeys(doc)
	if err != nil {
		return exitWithSiteMapError(deps.ErrOut, err)
	}

	if cli.Order.JSON {
		payload, err := json.Marshal(keys)
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		cc.ui.Info(string(payload))
		return 0
	}

	cc.ui.Block("🗺️", "Site map", []ui.KeyValue{
		{Key: "Source", Value: cli.Order.Input},
		{Key: "Pages", Value: len(keys)},
	})
	items := make([]string, 0, len(keys))
	for i, key := range keys {
		items = append(items, fmt.Sprintf("%d. %s", i+1, key))
	}
	cc.ui.List(items)
	return 0
}
