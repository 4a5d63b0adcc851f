package analytics

import (
	"math"
	"time"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

// Completion is a done-over-applicable count pair.
type Completion struct {
	Done       int
	Applicable int
}

// Ratio returns done/applicable. ok is false when no habit was applicable;
// that is "no ratio", not zero.
func (c Completion) Ratio() (float64, bool) {
	if c.Applicable == 0 {
		return 0, false
	}
	return float64(c.Done) / float64(c.Applicable), true
}

// Percent returns the ratio rounded to a whole percentage, 0 when nothing
// was applicable.
func (c Completion) Percent() int {
	if c.Applicable == 0 {
		return 0
	}
	return int(math.Round(float64(c.Done) / float64(c.Applicable) * 100))
}

// ApplicableHabits returns the habits scheduled on the date's weekday: those
// with no specificDays restriction plus those whose restriction includes it.
func ApplicableHabits(doc models.Document, dateKey string) []models.Habit {
	weekday, err := dates.Weekday(dateKey)
	if err != nil {
		return nil
	}
	var out []models.Habit
	for _, h := range doc.Habits {
		if h.AppliesOn(weekday) {
			out = append(out, h)
		}
	}
	return out
}

// DayCompletion counts a single day's applicable habits and how many of them
// the ledger marks done.
func DayCompletion(doc models.Document, dateKey string) Completion {
	applicable := ApplicableHabits(doc, dateKey)
	done := 0
	for _, id := range doc.History[dateKey] {
		for _, h := range applicable {
			if h.ID == id {
				done++
				break
			}
		}
	}
	return Completion{Done: done, Applicable: len(applicable)}
}

// MonthCompletion sums day completions across every calendar day of a month.
func MonthCompletion(doc models.Document, year int, month time.Month) Completion {
	var total Completion
	for d := 1; d <= dates.DaysInMonth(year, month); d++ {
		c := DayCompletion(doc, dates.DayKey(year, month, d))
		total.Done += c.Done
		total.Applicable += c.Applicable
	}
	return total
}
