package models

import (
	"encoding/json"
	"strings"
)

// Subtask is a checklist item owned by a single task. Subtasks are not
// persisted independently; they live and die with their task.
type Subtask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Task is a dated to-do with a priority tier (1 low .. 3 high).
type Task struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Due      string    `json:"due"` // YYYY-MM-DDTHH:MM:SS, local time
	Tier     int       `json:"tier"`
	Done     bool      `json:"done"`
	Subtasks []Subtask `json:"subtasks"`

	// Declared for forward compatibility and round-trip fidelity only;
	// no engine behavior reads these.
	ClassID   string          `json:"classId,omitempty"`
	Recurring json.RawMessage `json:"recurring,omitempty"`
	DependsOn []string        `json:"dependsOn,omitempty"`
}

// DueDate returns the date-key portion of the due timestamp.
func (t Task) DueDate() string {
	if i := strings.IndexByte(t.Due, 'T'); i >= 0 {
		return t.Due[:i]
	}
	return t.Due
}
