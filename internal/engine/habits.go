// Package engine is the mutation layer: pure functions that take the current
// document plus an intent and return the next document or a validation
// failure. Inputs are never mutated; every operation clones before changing
// anything and returns the original document untouched on failure.
package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

// HabitInput carries the editable fields of a habit.
type HabitInput struct {
	Name         string
	Category     models.Category
	SpecificDays []int
}

// SaveHabit upserts a habit. With editID set it updates that habit in place,
// otherwise it appends a new one. An empty SpecificDays set is stored as nil
// ("every day"), never as an empty set.
func SaveHabit(doc models.Document, in HabitInput, editID string) (models.Document, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return doc, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.Category == "" {
		return doc, &ValidationError{Field: "category", Reason: "is required"}
	}
	if !in.Category.Valid() {
		return doc, &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", in.Category)}
	}
	days, err := normalizeWeekdays(in.SpecificDays)
	if err != nil {
		return doc, err
	}
	for _, h := range doc.Habits {
		if h.ID != editID && strings.EqualFold(h.Name, name) {
			return doc, &DuplicateNameError{Name: name}
		}
	}

	next := doc.Clone()
	if editID != "" {
		for i, h := range next.Habits {
			if h.ID == editID {
				next.Habits[i].Name = name
				next.Habits[i].Category = in.Category
				next.Habits[i].SpecificDays = days
				return next, nil
			}
		}
		return doc, &NotFoundError{Kind: "goal", ID: editID}
	}
	next.Habits = append(next.Habits, models.Habit{
		ID:           uuid.NewString(),
		Name:         name,
		Category:     in.Category,
		SpecificDays: days,
	})
	return next, nil
}

// DeleteHabit removes a habit and purges its id from every history entry,
// dropping date keys left empty. The removed snapshot is returned so the
// caller can stage it for undo.
func DeleteHabit(doc models.Document, id string) (models.Document, models.Habit, error) {
	idx := -1
	for i, h := range doc.Habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return doc, models.Habit{}, &NotFoundError{Kind: "goal", ID: id}
	}

	next := doc.Clone()
	removed := next.Habits[idx]
	next.Habits = append(next.Habits[:idx], next.Habits[idx+1:]...)
	for key, ids := range next.History {
		kept := ids[:0]
		for _, hid := range ids {
			if hid != id {
				kept = append(kept, hid)
			}
		}
		if len(kept) == 0 {
			delete(next.History, key)
		} else {
			next.History[key] = kept
		}
	}
	return next, removed, nil
}

// RestoreHabit re-inserts an undo snapshot at the end of the habit list.
// The original position is not preserved.
func RestoreHabit(doc models.Document, h models.Habit) models.Document {
	next := doc.Clone()
	next.Habits = append(next.Habits, h)
	return next
}

// TogglePin flips a habit's pinned flag.
func TogglePin(doc models.Document, id string) (models.Document, error) {
	for i, h := range doc.Habits {
		if h.ID == id {
			next := doc.Clone()
			next.Habits[i].Pinned = !h.Pinned
			return next, nil
		}
	}
	return doc, &NotFoundError{Kind: "goal", ID: id}
}

// ToggleHabitForDate marks or unmarks a habit done on a date: present ids are
// removed, absent ids appended. A date entry left empty is deleted outright.
func ToggleHabitForDate(doc models.Document, habitID, dateKey string) (models.Document, error) {
	if !dates.Valid(dateKey) {
		return doc, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", dateKey)}
	}
	found := false
	for _, h := range doc.Habits {
		if h.ID == habitID {
			found = true
			break
		}
	}
	if !found {
		return doc, &NotFoundError{Kind: "goal", ID: habitID}
	}

	next := doc.Clone()
	next.EnsureMaps()
	ids := next.History[dateKey]
	for i, hid := range ids {
		if hid == habitID {
			ids = append(ids[:i], ids[i+1:]...)
			if len(ids) == 0 {
				delete(next.History, dateKey)
			} else {
				next.History[dateKey] = ids
			}
			return next, nil
		}
	}
	next.History[dateKey] = append(ids, habitID)
	return next, nil
}

func normalizeWeekdays(days []int) ([]int, error) {
	if len(days) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, &ValidationError{Field: "days", Reason: fmt.Sprintf("weekday %d out of range 0-6", d)}
		}
		out = append(out, d)
	}
	return out, nil
}
