package engine

import (
	"fmt"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

// ScheduleVacation activates the vacation period. When not-done tasks are due
// inside [start, end] and confirmed is false, it returns ConfirmationRequired
// carrying the count; nothing is committed until the caller confirms.
func ScheduleVacation(doc models.Document, start, end string, confirmed bool) (models.Document, error) {
	if start == "" || end == "" {
		return doc, &ValidationError{Field: "dates", Reason: "both start and end are required"}
	}
	if !dates.Valid(start) {
		return doc, &ValidationError{Field: "start", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", start)}
	}
	if !dates.Valid(end) {
		return doc, &ValidationError{Field: "end", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", end)}
	}
	if start > end {
		return doc, &ValidationError{Field: "dates", Reason: "start must not be after end"}
	}

	pending := 0
	for _, t := range doc.Tasks {
		if t.Done || t.Due == "" {
			continue
		}
		if due := t.DueDate(); due >= start && due <= end {
			pending++
		}
	}
	if pending > 0 && !confirmed {
		return doc, &ConfirmationRequired{PendingTasks: pending}
	}

	next := doc.Clone()
	next.VacationMode = models.VacationPeriod{Active: true, StartDate: start, EndDate: end}
	return next, nil
}

// ArchiveVacation deactivates the vacation period and appends a record with
// the inclusive day count. Archiving an inactive period is a no-op, which
// keeps the reactive auto-archive re-check from recursing.
func ArchiveVacation(doc models.Document) models.Document {
	if !doc.VacationMode.Active {
		return doc
	}
	next := doc.Clone()
	next.VacationHistory = append(next.VacationHistory, models.VacationRecord{
		StartDate: next.VacationMode.StartDate,
		EndDate:   next.VacationMode.EndDate,
		Days:      dates.InclusiveDays(next.VacationMode.StartDate, next.VacationMode.EndDate),
	})
	next.VacationMode = models.VacationPeriod{}
	return next
}
