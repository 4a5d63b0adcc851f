package analytics

import (
	"strings"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

// DayPreview aggregates everything attached to one date. It is the single
// read path behind every per-day detail surface.
type DayPreview struct {
	Goals      []models.Habit
	Tasks      []models.Task
	HasJournal bool
	HasClass   bool
	IsVacation bool
}

// Preview builds the day preview for a date key.
func Preview(doc models.Document, dateKey string) DayPreview {
	var tasks []models.Task
	for _, t := range doc.Tasks {
		if strings.HasPrefix(t.Due, dateKey) {
			tasks = append(tasks, t)
		}
	}
	_, hasJournal := doc.Journal[dateKey]
	return DayPreview{
		Goals:      ApplicableHabits(doc, dateKey),
		Tasks:      tasks,
		HasJournal: hasJournal,
		HasClass:   hasClassOnDay(doc.Classes, dateKey),
		IsVacation: IsVacationDay(dateKey, doc.VacationMode),
	}
}

// PendingTasks filters the preview's tasks down to those not yet done.
func (p DayPreview) PendingTasks() []models.Task {
	var out []models.Task
	for _, t := range p.Tasks {
		if !t.Done {
			out = append(out, t)
		}
	}
	return out
}

func hasClassOnDay(classes []models.ClassSession, dateKey string) bool {
	weekday, err := dates.Weekday(dateKey)
	if err != nil {
		return false
	}
	for _, c := range classes {
		if c.MeetsOn(weekday) {
			return true
		}
	}
	return false
}
