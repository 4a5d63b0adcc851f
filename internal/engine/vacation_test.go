package engine

import (
	"errors"
	"testing"

	"github.com/mbowen/daybook/internal/models"
)

func TestScheduleVacation_Activates(t *testing.T) {
	doc := models.Default()
	next, err := ScheduleVacation(doc, "2026-09-01", "2026-09-07", false)
	if err != nil {
		t.Fatalf("ScheduleVacation failed: %v", err)
	}
	vm := next.VacationMode
	if !vm.Active || vm.StartDate != "2026-09-01" || vm.EndDate != "2026-09-07" {
		t.Errorf("vacation mode = %+v", vm)
	}
	if doc.VacationMode.Active {
		t.Error("input document was mutated")
	}
}

func TestScheduleVacation_RejectsBadDates(t *testing.T) {
	doc := models.Default()
	cases := [][2]string{
		{"", "2026-09-07"},
		{"2026-09-01", ""},
		{"Sep 1", "2026-09-07"},
		{"2026-09-07", "2026-09-01"},
	}
	for _, c := range cases {
		_, err := ScheduleVacation(doc, c[0], c[1], false)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("ScheduleVacation(%q, %q) err = %v, want ValidationError", c[0], c[1], err)
		}
	}
}

func TestScheduleVacation_PendingTasksNeedConfirmation(t *testing.T) {
	doc := models.Default()
	doc.Tasks = []models.Task{
		{ID: "t1", Name: "Inside", Due: "2026-09-03T09:00:00", Tier: 2},
		{ID: "t2", Name: "Inside done", Due: "2026-09-04T09:00:00", Tier: 2, Done: true},
		{ID: "t3", Name: "Outside", Due: "2026-09-10T09:00:00", Tier: 2},
	}

	_, err := ScheduleVacation(doc, "2026-09-01", "2026-09-07", false)
	var pause *ConfirmationRequired
	if !errors.As(err, &pause) {
		t.Fatalf("err = %v, want ConfirmationRequired", err)
	}
	if pause.PendingTasks != 1 {
		t.Errorf("pending count = %d, want 1 (done and outside tasks excluded)", pause.PendingTasks)
	}

	next, err := ScheduleVacation(doc, "2026-09-01", "2026-09-07", true)
	if err != nil {
		t.Fatalf("confirmed schedule failed: %v", err)
	}
	if !next.VacationMode.Active {
		t.Error("vacation should be active after confirmation")
	}
}

func TestArchiveVacation(t *testing.T) {
	doc := models.Default()
	doc.VacationMode = models.VacationPeriod{Active: true, StartDate: "2026-07-01", EndDate: "2026-07-07"}

	next := ArchiveVacation(doc)
	if next.VacationMode.Active {
		t.Error("archived period should be inactive")
	}
	if len(next.VacationHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(next.VacationHistory))
	}
	rec := next.VacationHistory[0]
	if rec.StartDate != "2026-07-01" || rec.EndDate != "2026-07-07" || rec.Days != 7 {
		t.Errorf("record = %+v", rec)
	}

	// Idempotent on an inactive period.
	again := ArchiveVacation(next)
	if len(again.VacationHistory) != 1 {
		t.Errorf("second archive appended a record: %+v", again.VacationHistory)
	}
}

func TestSaveJournal(t *testing.T) {
	doc := models.Default()
	next, err := SaveJournal(doc, "2026-08-30", "  quiet sunday  ")
	if err != nil {
		t.Fatalf("SaveJournal failed: %v", err)
	}
	if got := next.Journal["2026-08-30"].Text; got != "quiet sunday" {
		t.Errorf("entry = %q, want trimmed text", got)
	}

	cleared, err := SaveJournal(next, "2026-08-30", "   ")
	if err != nil {
		t.Fatalf("clearing save failed: %v", err)
	}
	if _, ok := cleared.Journal["2026-08-30"]; ok {
		t.Error("blank text should delete the entry")
	}

	if _, err := SaveJournal(doc, "yesterday-ish", "text"); err == nil {
		t.Error("expected error for malformed date key")
	}
}

func TestSaveClass(t *testing.T) {
	doc := models.Default()
	next, err := SaveClass(doc, ClassInput{Name: "Algebra", Days: []int{5, 1, 3}}, "")
	if err != nil {
		t.Fatalf("SaveClass failed: %v", err)
	}
	cls := next.Classes[0]
	if cls.ID == "" {
		t.Error("expected a generated id")
	}
	if len(cls.Days) != 3 || cls.Days[0] != 1 || cls.Days[2] != 5 {
		t.Errorf("days = %v, want sorted [1 3 5]", cls.Days)
	}

	// Duplicate names are allowed for classes.
	if _, err := SaveClass(next, ClassInput{Name: "Algebra", Days: []int{2}}, ""); err != nil {
		t.Errorf("duplicate class name rejected: %v", err)
	}

	if _, err := SaveClass(doc, ClassInput{Name: "Algebra"}, ""); err == nil {
		t.Error("expected error for missing days")
	}
	if _, err := SaveClass(doc, ClassInput{Name: " ", Days: []int{1}}, ""); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestDeleteClass(t *testing.T) {
	doc := models.Default()
	doc.Classes = []models.ClassSession{{ID: "c1", Name: "Algebra", Days: []int{1}}}
	next, err := DeleteClass(doc, "c1")
	if err != nil {
		t.Fatalf("DeleteClass failed: %v", err)
	}
	if len(next.Classes) != 0 {
		t.Errorf("classes after delete = %+v", next.Classes)
	}
	if _, err := DeleteClass(doc, "missing"); err == nil {
		t.Error("expected error for unknown class")
	}
}
