package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mbowen/daybook/internal/analytics"
	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

// TaskInput carries the editable fields of a task. Subtasks are form state
// assembled with the subtask helpers below and saved with the task.
type TaskInput struct {
	Name     string
	Due      string // YYYY-MM-DDTHH:MM:SS
	Tier     int
	Subtasks []models.Subtask
}

// SaveTask upserts a task. When the due date falls inside the active vacation
// window and confirmed is false, it returns ConfirmationRequired before any
// change; the caller re-invokes with confirmed=true to proceed. Edits keep the
// task's done flag and passthrough fields.
func SaveTask(doc models.Document, in TaskInput, editID string, confirmed bool) (models.Document, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return doc, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.Due == "" {
		return doc, &ValidationError{Field: "due", Reason: "is required"}
	}
	if _, err := time.Parse(dates.DueLayout, in.Due); err != nil {
		return doc, &ValidationError{Field: "due", Reason: fmt.Sprintf("%q is not a YYYY-MM-DDTHH:MM:SS timestamp", in.Due)}
	}
	if in.Tier < 1 || in.Tier > 3 {
		return doc, &ValidationError{Field: "tier", Reason: "must be 1, 2 or 3"}
	}

	dueDate := in.Due[:len(dates.KeyLayout)]
	if analytics.IsVacationDay(dueDate, doc.VacationMode) && !confirmed {
		return doc, &ConfirmationRequired{ConflictDate: dueDate}
	}

	next := doc.Clone()
	if editID != "" {
		for i, t := range next.Tasks {
			if t.ID == editID {
				next.Tasks[i].Name = name
				next.Tasks[i].Due = in.Due
				next.Tasks[i].Tier = in.Tier
				next.Tasks[i].Subtasks = in.Subtasks
				return next, nil
			}
		}
		return doc, &NotFoundError{Kind: "task", ID: editID}
	}
	next.Tasks = append(next.Tasks, models.Task{
		ID:       uuid.NewString(),
		Name:     name,
		Due:      in.Due,
		Tier:     in.Tier,
		Subtasks: in.Subtasks,
	})
	return next, nil
}

// DeleteTask removes a task and returns the removed snapshot for undo.
func DeleteTask(doc models.Document, id string) (models.Document, models.Task, error) {
	for i, t := range doc.Tasks {
		if t.ID == id {
			next := doc.Clone()
			removed := next.Tasks[i]
			next.Tasks = append(next.Tasks[:i], next.Tasks[i+1:]...)
			return next, removed, nil
		}
	}
	return doc, models.Task{}, &NotFoundError{Kind: "task", ID: id}
}

// RestoreTask re-inserts an undo snapshot at the end of the task list.
func RestoreTask(doc models.Document, t models.Task) models.Document {
	next := doc.Clone()
	next.Tasks = append(next.Tasks, t)
	return next
}

// ToggleTaskDone flips a task's done flag. Subtasks are untouched.
func ToggleTaskDone(doc models.Document, id string) (models.Document, error) {
	for i, t := range doc.Tasks {
		if t.ID == id {
			next := doc.Clone()
			next.Tasks[i].Done = !t.Done
			return next, nil
		}
	}
	return doc, &NotFoundError{Kind: "task", ID: id}
}

// AddSubtask appends a subtask to a form-state list. Blank text is a no-op.
func AddSubtask(subs []models.Subtask, text string) []models.Subtask {
	text = strings.TrimSpace(text)
	if text == "" {
		return subs
	}
	return append(subs, models.Subtask{ID: uuid.NewString(), Text: text})
}

// ToggleSubtask flips one subtask's done flag in a form-state list.
func ToggleSubtask(subs []models.Subtask, id string) []models.Subtask {
	out := append([]models.Subtask(nil), subs...)
	for i, s := range out {
		if s.ID == id {
			out[i].Done = !s.Done
		}
	}
	return out
}

// DeleteSubtask removes one subtask from a form-state list.
func DeleteSubtask(subs []models.Subtask, id string) []models.Subtask {
	out := make([]models.Subtask, 0, len(subs))
	for _, s := range subs {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
