package cli

import (
	"fmt"
	"time"

	"github.com/mbowen/daybook/internal/analytics"
	"github.com/mbowen/daybook/internal/dates"
)

type MonthCmd struct {
	Month string `arg:"" optional:"" help:"Month (YYYY-MM); defaults to the current month."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	now := ctx.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		parsed, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, use YYYY-MM", c.Month)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	doc := ctx.Store.Document()
	total := analytics.MonthCompletion(doc, year, month)
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s %d", month, year)))
	fmt.Printf("Completion: %d%% (%d/%d)\n", total.Percent(), total.Done, total.Applicable)

	for d := 1; d <= dates.DaysInMonth(year, month); d++ {
		key := dates.DayKey(year, month, d)
		comp := analytics.DayCompletion(doc, key)
		ratio, ok := comp.Ratio()
		if !ok {
			continue
		}
		bar := ""
		switch {
		case ratio >= 1:
			bar = doneStyle.Render("full")
		case ratio > 0:
			bar = pendingStyle.Render("partial")
		default:
			bar = dimStyle.Render("none")
		}
		fmt.Printf("  %s  %d/%d %s\n", key, comp.Done, comp.Applicable, bar)
	}
	return nil
}
