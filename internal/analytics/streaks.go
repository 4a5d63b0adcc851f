// Package analytics computes every derived view over a document snapshot:
// streaks, completion ratios, vacation status, day previews and insights.
// Everything here is read-only; no function mutates its input.
package analytics

import (
	"time"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

// Streak holds a habit's consecutive-day counts.
type Streak struct {
	Current int
	Best    int
}

// Streaks scans the 365 days ending at today, newest first, and counts
// consecutive days on which the habit appears in the history ledger.
//
// The scan intentionally does not filter by the habit's specificDays: a day
// the habit was not scheduled still extends or breaks a streak based purely
// on ledger presence. The current streak is pinned to 0 when today itself is
// not done.
func Streaks(doc models.Document, habitID string, today time.Time) Streak {
	cur, best, run := 0, 0, 0
	day := today
	for i := 0; i < 365; i++ {
		if doneOn(doc, habitID, dates.Key(day)) {
			run++
			if i == 0 || cur > 0 {
				cur = run
			}
		} else {
			if i == 0 {
				cur = 0
			}
			if run > best {
				best = run
			}
			run = 0
		}
		day = day.AddDate(0, 0, -1)
	}
	if run > best {
		best = run
	}
	return Streak{Current: cur, Best: best}
}

func doneOn(doc models.Document, habitID, dateKey string) bool {
	for _, id := range doc.History[dateKey] {
		if id == habitID {
			return true
		}
	}
	return false
}
