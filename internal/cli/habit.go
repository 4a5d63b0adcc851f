package cli

import (
	"fmt"
	"sort"

	"github.com/mbowen/daybook/internal/analytics"
	"github.com/mbowen/daybook/internal/engine"
	"github.com/mbowen/daybook/internal/models"
	"github.com/mbowen/daybook/internal/undo"
)

type HabitAddCmd struct {
	Name     string `arg:"" help:"Goal name."`
	Category string `short:"c" required:"" help:"Category (health|study|work|social|personal|creative|finance|home)."`
	Days     string `short:"d" help:"Comma-separated weekdays the goal applies to (empty = every day)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	days, err := parseWeekdays(c.Days)
	if err != nil {
		return err
	}
	in := engine.HabitInput{Name: c.Name, Category: models.Category(c.Category), SpecificDays: days}
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.SaveHabit(doc, in, "")
	}); err != nil {
		return err
	}
	fmt.Printf("Added goal: %s (%s, %s)\n", c.Name, c.Category, formatDays(days))
	return nil
}

type HabitEditCmd struct {
	Ref      string `arg:"" help:"Goal id or name."`
	Name     string `help:"New name."`
	Category string `short:"c" help:"New category."`
	Days     string `short:"d" help:"New weekday restriction (comma-separated; 'all' clears it)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store.Document(), c.Ref)
	if err != nil {
		return err
	}

	in := engine.HabitInput{Name: habit.Name, Category: habit.Category, SpecificDays: habit.SpecificDays}
	if c.Name != "" {
		in.Name = c.Name
	}
	if c.Category != "" {
		in.Category = models.Category(c.Category)
	}
	if c.Days == "all" {
		in.SpecificDays = nil
	} else if c.Days != "" {
		days, err := parseWeekdays(c.Days)
		if err != nil {
			return err
		}
		in.SpecificDays = days
	}

	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.SaveHabit(doc, in, habit.ID)
	}); err != nil {
		return err
	}
	fmt.Printf("Updated goal: %s\n", in.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	doc := ctx.Store.Document()
	if len(doc.Habits) == 0 {
		fmt.Println("No goals yet")
		return nil
	}

	habits := append([]models.Habit(nil), doc.Habits...)
	sort.SliceStable(habits, func(i, j int) bool { return habits[i].Pinned && !habits[j].Pinned })

	today := ctx.Now()
	todayKey := today.Format("2006-01-02")
	fmt.Println("Goals:")
	for _, h := range habits {
		mark := " "
		for _, id := range doc.History[todayKey] {
			if id == h.ID {
				mark = doneStyle.Render("x")
				break
			}
		}
		pin := ""
		if h.Pinned {
			pin = " *"
		}
		s := analytics.Streaks(doc, h.ID, today)
		fmt.Printf("  [%s] %s%s  %s  %s\n",
			mark, h.Name, pin,
			categoryStyle(h.Category).Render(string(h.Category)),
			dimStyle.Render(fmt.Sprintf("(%s, streak %d, best %d)", formatDays(h.SpecificDays), s.Current, s.Best)))
		fmt.Printf("      %s\n", dimStyle.Render("id: "+h.ID))
	}
	return nil
}

type HabitDoneCmd struct {
	Ref  string `arg:"" help:"Goal id or name."`
	Date string `short:"d" default:"today" help:"Date to toggle (YYYY-MM-DD or 'today')."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	dateKey, err := resolveDate(c.Date, ctx.Now)
	if err != nil {
		return err
	}
	habit, err := findHabit(ctx.Store.Document(), c.Ref)
	if err != nil {
		return err
	}
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.ToggleHabitForDate(doc, habit.ID, dateKey)
	}); err != nil {
		return err
	}

	marked := false
	for _, id := range ctx.Store.Document().History[dateKey] {
		if id == habit.ID {
			marked = true
			break
		}
	}
	if marked {
		fmt.Printf("Marked %q done on %s\n", habit.Name, dateKey)
	} else {
		fmt.Printf("Unmarked %q on %s\n", habit.Name, dateKey)
	}
	return nil
}

type HabitPinCmd struct {
	Ref string `arg:"" help:"Goal id or name."`
}

func (c *HabitPinCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store.Document(), c.Ref)
	if err != nil {
		return err
	}
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.TogglePin(doc, habit.ID)
	}); err != nil {
		return err
	}
	if habit.Pinned {
		fmt.Printf("Unpinned %q\n", habit.Name)
	} else {
		fmt.Printf("Pinned %q\n", habit.Name)
	}
	return nil
}

type HabitDeleteCmd struct {
	Ref   string `arg:"" help:"Goal id or name."`
	Force bool   `short:"f" help:"Delete immediately without holding the undo window open."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store.Document(), c.Ref)
	if err != nil {
		return err
	}
	var removed models.Habit
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		next, snapshot, err := engine.DeleteHabit(doc, habit.ID)
		removed = snapshot
		return next, err
	}); err != nil {
		return err
	}
	ctx.Undo.Stage(undo.Entry{Kind: undo.KindHabit, Habit: removed})
	return waitForUndo(ctx, c.Force)
}
