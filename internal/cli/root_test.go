package cli

import (
	"testing"
	"time"

	"github.com/mbowen/daybook/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	days, err := parseWeekdays("mon, Wednesday,5")
	if err != nil {
		t.Fatalf("parseWeekdays failed: %v", err)
	}
	if len(days) != 3 || days[0] != 1 || days[1] != 3 || days[2] != 5 {
		t.Errorf("days = %v, want [1 3 5]", days)
	}

	if days, _ := parseWeekdays("  "); days != nil {
		t.Errorf("blank input = %v, want nil", days)
	}
	if _, err := parseWeekdays("funday"); err == nil {
		t.Error("expected error for unknown day name")
	}
	if _, err := parseWeekdays("7"); err == nil {
		t.Error("expected error for out-of-range number")
	}
}

func TestFormatDays(t *testing.T) {
	if got := formatDays(nil); got != "every day" {
		t.Errorf("formatDays(nil) = %q", got)
	}
	if got := formatDays([]int{1, 3, 5}); got != "Mon,Wed,Fri" {
		t.Errorf("formatDays = %q, want Mon,Wed,Fri", got)
	}
}

func TestResolveDate(t *testing.T) {
	now := func() time.Time { return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC) }

	cases := map[string]string{
		"today":      "2026-08-30",
		"":           "2026-08-30",
		"yesterday":  "2026-08-29",
		"tomorrow":   "2026-08-31",
		"2026-12-24": "2026-12-24",
	}
	for in, want := range cases {
		got, err := resolveDate(in, now)
		if err != nil {
			t.Fatalf("resolveDate(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("resolveDate(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := resolveDate("next tuesday", now); err == nil {
		t.Error("expected error for unsupported phrase")
	}
}

func TestBuildDue(t *testing.T) {
	due, err := buildDue("2026-09-01", "14:30")
	if err != nil {
		t.Fatalf("buildDue failed: %v", err)
	}
	if due != "2026-09-01T14:30:00" {
		t.Errorf("due = %q", due)
	}
	if _, err := buildDue("Sep 1", "14:30"); err == nil {
		t.Error("expected error for bad date")
	}
	if _, err := buildDue("2026-09-01", "2pm"); err == nil {
		t.Error("expected error for bad time")
	}
}

func TestDueClock(t *testing.T) {
	if got := dueClock("2026-09-01T14:30:00"); got != "14:30" {
		t.Errorf("dueClock = %q", got)
	}
	if got := dueClock("2026-09-01"); got != "09:00" {
		t.Errorf("dueClock fallback = %q", got)
	}
}

func TestFindHabit(t *testing.T) {
	doc := models.Default()
	doc.Habits = []models.Habit{
		{ID: "id-1", Name: "Read", Category: models.CategoryStudy},
		{ID: "id-2", Name: "Run", Category: models.CategoryHealth},
	}

	if h, err := findHabit(doc, "id-2"); err != nil || h.Name != "Run" {
		t.Errorf("lookup by id = %+v, %v", h, err)
	}
	if h, err := findHabit(doc, "read"); err != nil || h.ID != "id-1" {
		t.Errorf("case-insensitive name lookup = %+v, %v", h, err)
	}
	if _, err := findHabit(doc, "missing"); err == nil {
		t.Error("expected error for unknown reference")
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	if !isOverdue(models.Task{Due: "2026-08-30T09:00:00"}, now) {
		t.Error("earlier same-day due should be overdue")
	}
	if isOverdue(models.Task{Due: "2026-08-30T15:00:00"}, now) {
		t.Error("later same-day due should not be overdue")
	}
	if isOverdue(models.Task{Due: "not a due"}, now) {
		t.Error("malformed due should never flag overdue")
	}
}
