package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/engine"
	"github.com/mbowen/daybook/internal/models"
	"github.com/mbowen/daybook/internal/undo"
)

type TaskAddCmd struct {
	Name string   `arg:"" help:"Task name."`
	Due  string   `short:"d" required:"" help:"Due date (YYYY-MM-DD)."`
	At   string   `short:"t" default:"09:00" help:"Due time (HH:MM)."`
	Tier int      `short:"p" default:"2" help:"Priority tier (1 low .. 3 high)."`
	Sub  []string `short:"s" help:"Subtask text (repeatable)."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	due, err := buildDue(c.Due, c.At)
	if err != nil {
		return err
	}
	var subtasks []models.Subtask
	for _, text := range c.Sub {
		subtasks = engine.AddSubtask(subtasks, text)
	}
	in := engine.TaskInput{Name: c.Name, Due: due, Tier: c.Tier, Subtasks: subtasks}
	if err := saveTaskConfirming(ctx, in, ""); err != nil {
		return err
	}
	fmt.Printf("Added task: %s (due %s, tier %d)\n", c.Name, due, c.Tier)
	return nil
}

type TaskEditCmd struct {
	Ref       string   `arg:"" help:"Task id or name."`
	Name      string   `help:"New name."`
	Due       string   `short:"d" help:"New due date (YYYY-MM-DD)."`
	At        string   `short:"t" help:"New due time (HH:MM)."`
	Tier      int      `short:"p" help:"New priority tier."`
	AddSub    []string `help:"Append a subtask (repeatable)."`
	ToggleSub []int    `help:"Toggle the Nth subtask (1-based, repeatable)."`
	DropSub   []int    `help:"Remove the Nth subtask (1-based, repeatable)."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	task, err := findTask(ctx.Store.Document(), c.Ref)
	if err != nil {
		return err
	}

	in := engine.TaskInput{Name: task.Name, Due: task.Due, Tier: task.Tier, Subtasks: task.Subtasks}
	if c.Name != "" {
		in.Name = c.Name
	}
	if c.Due != "" || c.At != "" {
		date := task.DueDate()
		clock := dueClock(task.Due)
		if c.Due != "" {
			date = c.Due
		}
		if c.At != "" {
			clock = c.At
		}
		due, err := buildDue(date, clock)
		if err != nil {
			return err
		}
		in.Due = due
	}
	if c.Tier != 0 {
		in.Tier = c.Tier
	}

	// Drop first so toggle indices refer to what the user listed.
	for _, n := range c.DropSub {
		if id, ok := subtaskIDAt(in.Subtasks, n); ok {
			in.Subtasks = engine.DeleteSubtask(in.Subtasks, id)
		}
	}
	for _, n := range c.ToggleSub {
		if id, ok := subtaskIDAt(in.Subtasks, n); ok {
			in.Subtasks = engine.ToggleSubtask(in.Subtasks, id)
		}
	}
	for _, text := range c.AddSub {
		in.Subtasks = engine.AddSubtask(in.Subtasks, text)
	}

	if err := saveTaskConfirming(ctx, in, task.ID); err != nil {
		return err
	}
	fmt.Printf("Updated task: %s\n", in.Name)
	return nil
}

type TaskListCmd struct {
	Search string `help:"Filter by name substring."`
	Tier   int    `short:"p" help:"Filter by tier (1-3)."`
	Status string `default:"all" enum:"all,open,done,overdue" help:"Filter by status (all|open|done|overdue)."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	doc := ctx.Store.Document()
	now := ctx.Now()

	tasks := append([]models.Task(nil), doc.Tasks...)
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Done != tasks[j].Done {
			return !tasks[i].Done
		}
		return tasks[i].Due < tasks[j].Due
	})

	shown := 0
	for _, t := range tasks {
		overdue := !t.Done && isOverdue(t, now)
		if c.Search != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(c.Search)) {
			continue
		}
		if c.Tier != 0 && t.Tier != c.Tier {
			continue
		}
		switch c.Status {
		case "done":
			if !t.Done {
				continue
			}
		case "open":
			if t.Done || overdue {
				continue
			}
		case "overdue":
			if !overdue {
				continue
			}
		}

		if shown == 0 {
			fmt.Println("Tasks:")
		}
		shown++
		mark := " "
		if t.Done {
			mark = doneStyle.Render("x")
		}
		flag := ""
		if overdue {
			flag = " " + tierStyle(3).Render("OVERDUE")
		}
		fmt.Printf("  [%s] %s  %s  %s%s\n",
			mark, t.Name,
			tierStyle(t.Tier).Render(fmt.Sprintf("tier %d", t.Tier)),
			dimStyle.Render("due "+t.Due), flag)
		for _, s := range t.Subtasks {
			subMark := " "
			if s.Done {
				subMark = "x"
			}
			fmt.Printf("      [%s] %s\n", subMark, s.Text)
		}
	}
	if shown == 0 {
		fmt.Println("No tasks found")
	}
	return nil
}

type TaskDoneCmd struct {
	Ref string `arg:"" help:"Task id or name."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	task, err := findTask(ctx.Store.Document(), c.Ref)
	if err != nil {
		return err
	}
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.ToggleTaskDone(doc, task.ID)
	}); err != nil {
		return err
	}
	if task.Done {
		fmt.Printf("Reopened %q\n", task.Name)
	} else {
		fmt.Printf("Completed %q\n", task.Name)
	}
	return nil
}

type TaskDeleteCmd struct {
	Ref   string `arg:"" help:"Task id or name."`
	Force bool   `short:"f" help:"Delete immediately without holding the undo window open."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	task, err := findTask(ctx.Store.Document(), c.Ref)
	if err != nil {
		return err
	}
	var removed models.Task
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		next, snapshot, err := engine.DeleteTask(doc, task.ID)
		removed = snapshot
		return next, err
	}); err != nil {
		return err
	}
	ctx.Undo.Stage(undo.Entry{Kind: undo.KindTask, Task: removed})
	return waitForUndo(ctx, c.Force)
}

// saveTaskConfirming runs the save and, when it pauses on a vacation
// conflict, asks the user before retrying with the confirmed flag.
func saveTaskConfirming(ctx *Context, in engine.TaskInput, editID string) error {
	save := func(confirmed bool) error {
		return ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
			return engine.SaveTask(doc, in, editID, confirmed)
		})
	}

	err := save(false)
	var pause *engine.ConfirmationRequired
	if !errors.As(err, &pause) {
		return err
	}

	ok, cerr := confirm(
		fmt.Sprintf("You're on vacation on %s. Are you sure you want to add work?", pause.ConflictDate),
		ctx.Yes)
	if cerr != nil {
		return cerr
	}
	if !ok {
		fmt.Println("Cancelled")
		return nil
	}
	return save(true)
}

func buildDue(date, clock string) (string, error) {
	if !dates.Valid(date) {
		return "", fmt.Errorf("invalid due date %q, use YYYY-MM-DD", date)
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		return "", fmt.Errorf("invalid time %q, use HH:MM", clock)
	}
	return date + "T" + clock + ":00", nil
}

func dueClock(due string) string {
	if i := strings.IndexByte(due, 'T'); i >= 0 && len(due) >= i+6 {
		return due[i+1 : i+6]
	}
	return "09:00"
}

func isOverdue(t models.Task, now time.Time) bool {
	due, err := time.ParseInLocation(dates.DueLayout, t.Due, now.Location())
	if err != nil {
		return false
	}
	return due.Before(now)
}

func subtaskIDAt(subs []models.Subtask, n int) (string, bool) {
	if n < 1 || n > len(subs) {
		return "", false
	}
	return subs[n-1].ID, true
}
