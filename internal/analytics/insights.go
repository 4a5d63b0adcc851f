package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

// Insight is one summary finding.
type Insight struct {
	Title string
	Text  string
}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Insights builds up to three findings in a fixed order: best weekday, top
// goal by best streak, and perfect-day count. Findings that would report
// nothing are omitted rather than zero-valued.
func Insights(doc models.Document, today time.Time) []Insight {
	var res []Insight

	var dayTotal, dayCount [7]int
	for key, ids := range doc.History {
		weekday, err := dates.Weekday(key)
		if err != nil {
			continue
		}
		dayTotal[weekday] += countExisting(ids, doc.Habits)
		dayCount[weekday]++
	}
	best, bestAvg := 0, 0.0
	for i := 0; i < 7; i++ {
		if dayCount[i] == 0 {
			continue
		}
		// Strict greater-than keeps the lowest weekday index on ties.
		if avg := float64(dayTotal[i]) / float64(dayCount[i]); avg > bestAvg {
			best, bestAvg = i, avg
		}
	}
	if bestAvg > 0 {
		res = append(res, Insight{
			Title: "Best Day",
			Text:  fmt.Sprintf("You perform best on %ss", weekdayNames[best]),
		})
	}

	type scored struct {
		name string
		best int
	}
	var tops []scored
	for _, h := range doc.Habits {
		if s := Streaks(doc, h.ID, today); s.Best > 3 {
			tops = append(tops, scored{name: h.Name, best: s.Best})
		}
	}
	// Stable sort so original list order breaks best-streak ties.
	sort.SliceStable(tops, func(i, j int) bool { return tops[i].best > tops[j].best })
	if len(tops) > 0 {
		res = append(res, Insight{
			Title: "Top Goal",
			Text:  fmt.Sprintf("%q — %d-day best streak", tops[0].name, tops[0].best),
		})
	}

	if perfect := PerfectDays(doc); perfect > 0 {
		res = append(res, Insight{
			Title: "Perfect Days",
			Text:  fmt.Sprintf("%d days with 100%% completion", perfect),
		})
	}
	return res
}

// PerfectDays counts dates whose ledger, filtered to still-existing habits,
// is non-empty and equals the total habit count of the document. This is
// deliberately not scoped to that day's applicable habits; it is a distinct
// rule from DayCompletion.
func PerfectDays(doc models.Document) int {
	perfect := 0
	for _, ids := range doc.History {
		if n := countExisting(ids, doc.Habits); n > 0 && n == len(doc.Habits) {
			perfect++
		}
	}
	return perfect
}

func countExisting(ids []string, habits []models.Habit) int {
	n := 0
	for _, id := range ids {
		for _, h := range habits {
			if h.ID == id {
				n++
				break
			}
		}
	}
	return n
}
