package engine

import "fmt"

// ValidationError reports a missing or malformed field. The operation is
// aborted and the document is unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateNameError reports a case-insensitive habit name collision.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a goal named %q already exists", e.Name)
}

// NotFoundError reports a reference to an entity that is not in the document.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ConfirmationRequired pauses a mutation until the caller re-invokes it with
// the confirmed flag set. It is a decision point, not a failure: nothing has
// been committed when it is returned.
type ConfirmationRequired struct {
	// PendingTasks counts not-done tasks due inside a vacation window being
	// scheduled.
	PendingTasks int
	// ConflictDate is the due date of a task landing inside the already
	// active vacation window.
	ConflictDate string
}

func (e *ConfirmationRequired) Error() string {
	if e.ConflictDate != "" {
		return fmt.Sprintf("task due %s falls inside the active vacation window", e.ConflictDate)
	}
	return fmt.Sprintf("%d pending task(s) fall inside the vacation window", e.PendingTasks)
}
