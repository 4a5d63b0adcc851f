package cli

import (
	"fmt"

	"github.com/mbowen/daybook/internal/analytics"
	"github.com/mbowen/daybook/internal/dates"
)

type DayCmd struct {
	Date string `arg:"" optional:"" default:"today" help:"Date (YYYY-MM-DD, 'today', 'yesterday' or 'tomorrow')."`
}

func (c *DayCmd) Run(ctx *Context) error {
	dateKey, err := resolveDate(c.Date, ctx.Now)
	if err != nil {
		return err
	}
	doc := ctx.Store.Document()
	preview := analytics.Preview(doc, dateKey)

	weekday, _ := dates.Weekday(dateKey)
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%s)", dateKey, dayNames[weekday])))

	if preview.IsVacation {
		fmt.Println(vacationStyle.Render("On vacation"))
	}

	if len(preview.Goals) == 0 {
		fmt.Println("No goals scheduled")
	} else {
		comp := analytics.DayCompletion(doc, dateKey)
		fmt.Printf("Goals (%d/%d):\n", comp.Done, comp.Applicable)
		done := make(map[string]bool, len(doc.History[dateKey]))
		for _, id := range doc.History[dateKey] {
			done[id] = true
		}
		for _, h := range preview.Goals {
			mark := " "
			if done[h.ID] {
				mark = doneStyle.Render("x")
			}
			fmt.Printf("  [%s] %s %s\n", mark, h.Name, categoryStyle(h.Category).Render(string(h.Category)))
		}
	}

	if len(preview.Tasks) > 0 {
		fmt.Println("Tasks:")
		for _, t := range preview.Tasks {
			mark := " "
			if t.Done {
				mark = doneStyle.Render("x")
			}
			fmt.Printf("  [%s] %s %s\n", mark, t.Name, tierStyle(t.Tier).Render(fmt.Sprintf("tier %d", t.Tier)))
		}
	}

	if preview.HasClass {
		fmt.Println("Classes:")
		for _, cls := range doc.Classes {
			if !cls.MeetsOn(weekday) {
				continue
			}
			line := "  " + cls.Name
			if cls.Time != "" {
				line += "  " + dimStyle.Render(cls.Time)
			}
			if cls.Location != "" {
				line += "  " + dimStyle.Render("@ "+cls.Location)
			}
			fmt.Println(line)
		}
	}

	if preview.HasJournal {
		fmt.Println("Journal:")
		fmt.Println("  " + doc.Journal[dateKey].Text)
	}
	return nil
}
