package cli

import (
	"fmt"

	"github.com/mbowen/daybook/internal/analytics"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *Context) error {
	doc := ctx.Store.Document()
	insights := analytics.Insights(doc, ctx.Now())
	if len(insights) == 0 {
		fmt.Println("Not enough history for insights yet")
		return nil
	}
	for _, in := range insights {
		fmt.Printf("%s  %s\n", insightStyle.Render(in.Title), in.Text)
	}
	return nil
}
