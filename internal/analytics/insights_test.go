package analytics

import (
	"testing"
	"time"

	"github.com/mbowen/daybook/internal/models"
)

func TestInsights_FixedOrder(t *testing.T) {
	today := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	doc := models.Default()
	doc.Habits = []models.Habit{
		{ID: "h1", Name: "Meditate", Category: models.CategoryPersonal},
		{ID: "h2", Name: "Read", Category: models.CategoryStudy},
	}
	// h1 runs Aug 26-30, h2 only Aug 29-30.
	for _, key := range []string{"2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29", "2026-08-30"} {
		doc.History[key] = append(doc.History[key], "h1")
	}
	doc.History["2026-08-29"] = append(doc.History["2026-08-29"], "h2")
	doc.History["2026-08-30"] = append(doc.History["2026-08-30"], "h2")

	insights := Insights(doc, today)
	if len(insights) != 3 {
		t.Fatalf("got %d insights, want 3: %+v", len(insights), insights)
	}
	if insights[0].Title != "Best Day" || insights[1].Title != "Top Goal" || insights[2].Title != "Perfect Days" {
		t.Fatalf("order = %q %q %q", insights[0].Title, insights[1].Title, insights[2].Title)
	}
	// Saturday and Sunday tie at 2.0; the lower weekday index wins.
	if insights[0].Text != "You perform best on Sundays" {
		t.Errorf("best day text = %q", insights[0].Text)
	}
	if insights[1].Text != `"Meditate" — 5-day best streak` {
		t.Errorf("top goal text = %q", insights[1].Text)
	}
	if insights[2].Text != "2 days with 100% completion" {
		t.Errorf("perfect days text = %q", insights[2].Text)
	}
}

func TestInsights_TopGoalRequiresBestOverThree(t *testing.T) {
	today := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	doc := models.Default()
	doc.Habits = []models.Habit{{ID: "h1", Name: "Read", Category: models.CategoryStudy}}
	for _, key := range []string{"2026-08-28", "2026-08-29", "2026-08-30"} {
		doc.History[key] = []string{"h1"}
	}

	for _, in := range Insights(doc, today) {
		if in.Title == "Top Goal" {
			t.Errorf("a 3-day best streak should not produce a top goal: %+v", in)
		}
	}
}

func TestInsights_TopGoalTieKeepsListOrder(t *testing.T) {
	today := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	doc := models.Default()
	doc.Habits = []models.Habit{
		{ID: "h1", Name: "First", Category: models.CategoryHealth},
		{ID: "h2", Name: "Second", Category: models.CategoryHealth},
	}
	for _, key := range []string{"2026-08-27", "2026-08-28", "2026-08-29", "2026-08-30"} {
		doc.History[key] = []string{"h1", "h2"}
	}

	var top *Insight
	for _, in := range Insights(doc, today) {
		if in.Title == "Top Goal" {
			in := in
			top = &in
		}
	}
	if top == nil {
		t.Fatal("expected a top goal insight")
	}
	if top.Text != `"First" — 4-day best streak` {
		t.Errorf("tie should keep list order: %q", top.Text)
	}
}

func TestInsights_EmptyDocument(t *testing.T) {
	today := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	if got := Insights(models.Default(), today); len(got) != 0 {
		t.Errorf("insights on empty document = %+v", got)
	}
}

func TestPerfectDays_IgnoresDeletedHabitIDs(t *testing.T) {
	doc := models.Default()
	doc.Habits = []models.Habit{{ID: "h1", Name: "Read", Category: models.CategoryStudy}}
	doc.History["2026-08-29"] = []string{"h1"}
	doc.History["2026-08-28"] = []string{"gone"}
	doc.History["2026-08-27"] = []string{"gone", "h1"}

	if got := PerfectDays(doc); got != 2 {
		t.Errorf("perfect days = %d, want 2 (stale ids filtered before comparing)", got)
	}
}
