package engine

import (
	"errors"
	"testing"

	"github.com/mbowen/daybook/internal/models"
)

func docWithHabit(id, name string) models.Document {
	doc := models.Default()
	doc.Habits = []models.Habit{{ID: id, Name: name, Category: models.CategoryHealth}}
	return doc
}

func TestSaveHabit_AddsWithGeneratedID(t *testing.T) {
	doc := models.Default()
	next, err := SaveHabit(doc, HabitInput{Name: "  Run  ", Category: models.CategoryHealth}, "")
	if err != nil {
		t.Fatalf("SaveHabit failed: %v", err)
	}
	if len(next.Habits) != 1 {
		t.Fatalf("got %d habits, want 1", len(next.Habits))
	}
	h := next.Habits[0]
	if h.Name != "Run" {
		t.Errorf("name = %q, want trimmed %q", h.Name, "Run")
	}
	if h.ID == "" {
		t.Error("expected a generated id")
	}
	if h.SpecificDays != nil {
		t.Errorf("specificDays = %v, want nil for every day", h.SpecificDays)
	}
	if len(doc.Habits) != 0 {
		t.Error("input document was mutated")
	}
}

func TestSaveHabit_RejectsInvalidInput(t *testing.T) {
	doc := models.Default()
	cases := []struct {
		name string
		in   HabitInput
	}{
		{"empty name", HabitInput{Name: "   ", Category: models.CategoryHealth}},
		{"missing category", HabitInput{Name: "Run"}},
		{"unknown category", HabitInput{Name: "Run", Category: "sports"}},
		{"weekday out of range", HabitInput{Name: "Run", Category: models.CategoryHealth, SpecificDays: []int{7}}},
	}
	for _, tc := range cases {
		_, err := SaveHabit(doc, tc.in, "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
		}
	}
}

func TestSaveHabit_DuplicateNameIsCaseInsensitive(t *testing.T) {
	doc := docWithHabit("h1", "Read")
	_, err := SaveHabit(doc, HabitInput{Name: "read", Category: models.CategoryStudy}, "")
	var derr *DuplicateNameError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want DuplicateNameError", err)
	}
}

func TestSaveHabit_EditAllowsOwnName(t *testing.T) {
	doc := docWithHabit("h1", "Read")
	next, err := SaveHabit(doc, HabitInput{Name: "Read", Category: models.CategoryStudy, SpecificDays: []int{2, 4}}, "h1")
	if err != nil {
		t.Fatalf("SaveHabit edit failed: %v", err)
	}
	h := next.Habits[0]
	if h.ID != "h1" {
		t.Errorf("edit replaced the id: %q", h.ID)
	}
	if h.Category != models.CategoryStudy {
		t.Errorf("category = %q, want study", h.Category)
	}
	if len(h.SpecificDays) != 2 {
		t.Errorf("specificDays = %v, want [2 4]", h.SpecificDays)
	}
}

func TestSaveHabit_EditUnknownID(t *testing.T) {
	doc := docWithHabit("h1", "Read")
	_, err := SaveHabit(doc, HabitInput{Name: "Other", Category: models.CategoryStudy}, "missing")
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestDeleteHabit_PurgesHistory(t *testing.T) {
	doc := docWithHabit("h1", "Read")
	doc.Habits = append(doc.Habits, models.Habit{ID: "h2", Name: "Run", Category: models.CategoryHealth})
	doc.History["2026-08-29"] = []string{"h1", "h2"}
	doc.History["2026-08-30"] = []string{"h1"}

	next, removed, err := DeleteHabit(doc, "h1")
	if err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if removed.ID != "h1" || removed.Name != "Read" {
		t.Errorf("removed snapshot = %+v", removed)
	}
	if len(next.Habits) != 1 || next.Habits[0].ID != "h2" {
		t.Errorf("habits after delete = %+v", next.Habits)
	}
	if got := next.History["2026-08-29"]; len(got) != 1 || got[0] != "h2" {
		t.Errorf("shared date entry = %v, want [h2]", got)
	}
	if _, ok := next.History["2026-08-30"]; ok {
		t.Error("date left with an empty set should be removed")
	}
	if len(doc.History["2026-08-29"]) != 2 {
		t.Error("input document was mutated")
	}
}

func TestRestoreHabit_AppendsAtEnd(t *testing.T) {
	doc := docWithHabit("h1", "Read")
	next := RestoreHabit(doc, models.Habit{ID: "h0", Name: "Run", Category: models.CategoryHealth})
	if len(next.Habits) != 2 || next.Habits[1].ID != "h0" {
		t.Errorf("habits after restore = %+v", next.Habits)
	}
}

func TestTogglePin(t *testing.T) {
	doc := docWithHabit("h1", "Read")
	next, err := TogglePin(doc, "h1")
	if err != nil {
		t.Fatalf("TogglePin failed: %v", err)
	}
	if !next.Habits[0].Pinned {
		t.Error("pin should be set")
	}
	again, _ := TogglePin(next, "h1")
	if again.Habits[0].Pinned {
		t.Error("second toggle should clear the pin")
	}
}

func TestToggleHabitForDate_Symmetric(t *testing.T) {
	doc := docWithHabit("h1", "Read")

	marked, err := ToggleHabitForDate(doc, "h1", "2026-08-30")
	if err != nil {
		t.Fatalf("toggle on failed: %v", err)
	}
	if got := marked.History["2026-08-30"]; len(got) != 1 || got[0] != "h1" {
		t.Errorf("history after mark = %v", got)
	}

	unmarked, err := ToggleHabitForDate(marked, "h1", "2026-08-30")
	if err != nil {
		t.Fatalf("toggle off failed: %v", err)
	}
	if _, ok := unmarked.History["2026-08-30"]; ok {
		t.Error("unmarking the only habit should delete the date key")
	}
}

func TestToggleHabitForDate_Invalid(t *testing.T) {
	doc := docWithHabit("h1", "Read")
	if _, err := ToggleHabitForDate(doc, "h1", "August 30"); err == nil {
		t.Error("expected error for malformed date key")
	}
	if _, err := ToggleHabitForDate(doc, "missing", "2026-08-30"); err == nil {
		t.Error("expected error for unknown habit")
	}
}
