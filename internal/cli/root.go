package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/mbowen/daybook/internal/backup"
	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
	"github.com/mbowen/daybook/internal/state"
	"github.com/mbowen/daybook/internal/storage"
	"github.com/mbowen/daybook/internal/undo"
)

// Context carries the wired application into every command.
type Context struct {
	Store    *state.Store
	Undo     *undo.Controller
	Provider storage.Provider
	Backups  *backup.Manager
	Logger   *zap.Logger
	Now      func() time.Time
	// Yes pre-answers confirmation prompts (--yes).
	Yes bool
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func parseWeekdays(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var weekdays []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		// Try parsing as number (0=Sunday, 6=Saturday)
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, num)
	}
	return weekdays, nil
}

func formatDays(days []int) string {
	if len(days) == 0 {
		return "every day"
	}
	var names []string
	for _, d := range days {
		if d >= 0 && d <= 6 {
			names = append(names, dayNames[d][:3])
		}
	}
	return strings.Join(names, ",")
}

// resolveDate accepts "today", "yesterday", "tomorrow" or a YYYY-MM-DD key.
func resolveDate(s string, now func() time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return dates.Key(now()), nil
	case "yesterday":
		return dates.Key(now().AddDate(0, 0, -1)), nil
	case "tomorrow":
		return dates.Key(now().AddDate(0, 0, 1)), nil
	}
	if !dates.Valid(s) {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD or 'today'", s)
	}
	return s, nil
}

// findHabit matches by id first, then by case-insensitive name.
func findHabit(doc models.Document, ref string) (models.Habit, error) {
	for _, h := range doc.Habits {
		if h.ID == ref {
			return h, nil
		}
	}
	for _, h := range doc.Habits {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("goal not found: %s", ref)
}

func findTask(doc models.Document, ref string) (models.Task, error) {
	for _, t := range doc.Tasks {
		if t.ID == ref {
			return t, nil
		}
	}
	for _, t := range doc.Tasks {
		if strings.EqualFold(t.Name, ref) {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task not found: %s", ref)
}

func findClass(doc models.Document, ref string) (models.ClassSession, error) {
	for _, c := range doc.Classes {
		if c.ID == ref {
			return c, nil
		}
	}
	for _, c := range doc.Classes {
		if strings.EqualFold(c.Name, ref) || strings.EqualFold(c.Code, ref) {
			return c, nil
		}
	}
	return models.ClassSession{}, fmt.Errorf("class not found: %s", ref)
}

// confirm asks the user a yes/no question; assumeYes short-circuits it.
func confirm(title string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	ok := false
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
