package cli

import (
	"errors"
	"fmt"

	"github.com/mbowen/daybook/internal/analytics"
	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/engine"
	"github.com/mbowen/daybook/internal/models"
)

type VacationScheduleCmd struct {
	Start string `arg:"" help:"First vacation day (YYYY-MM-DD)."`
	End   string `arg:"" help:"Last vacation day (YYYY-MM-DD)."`
}

func (c *VacationScheduleCmd) Run(ctx *Context) error {
	schedule := func(confirmed bool) error {
		return ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
			return engine.ScheduleVacation(doc, c.Start, c.End, confirmed)
		})
	}

	err := schedule(false)
	var pause *engine.ConfirmationRequired
	if errors.As(err, &pause) {
		plural := ""
		if pause.PendingTasks != 1 {
			plural = "s"
		}
		ok, cerr := confirm(
			fmt.Sprintf("You have %d pending task%s during this vacation period. Schedule anyway?", pause.PendingTasks, plural),
			ctx.Yes)
		if cerr != nil {
			return cerr
		}
		if !ok {
			fmt.Println("Cancelled")
			return nil
		}
		err = schedule(true)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Vacation scheduled: %s to %s (%s)\n",
		c.Start, c.End, analytics.DurationLabel(dates.InclusiveDays(c.Start, c.End)))
	return nil
}

type VacationStatusCmd struct{}

func (c *VacationStatusCmd) Run(ctx *Context) error {
	doc := ctx.Store.Document()
	status := analytics.Status(doc.VacationMode, dates.Key(ctx.Now()))
	if status == nil {
		fmt.Println("No vacation scheduled")
		return nil
	}
	fmt.Println(vacationStyle.Render(fmt.Sprintf("%s %s of vacation", status.Verb, status.Duration)))
	fmt.Printf("  %s to %s\n", doc.VacationMode.StartDate, doc.VacationMode.EndDate)
	return nil
}

type VacationHistoryCmd struct{}

func (c *VacationHistoryCmd) Run(ctx *Context) error {
	doc := ctx.Store.Document()
	if len(doc.VacationHistory) == 0 {
		fmt.Println("No past vacations")
		return nil
	}
	fmt.Println("Past vacations:")
	for _, r := range doc.VacationHistory {
		fmt.Printf("  %s to %s  %s\n", r.StartDate, r.EndDate, dimStyle.Render(analytics.DurationLabel(r.Days)))
	}
	return nil
}

type VacationArchiveCmd struct{}

func (c *VacationArchiveCmd) Run(ctx *Context) error {
	before := ctx.Store.Document()
	if !before.VacationMode.Active {
		fmt.Println("No active vacation to archive")
		return nil
	}
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.ArchiveVacation(doc), nil
	}); err != nil {
		return err
	}
	fmt.Println("Vacation archived")
	return nil
}
