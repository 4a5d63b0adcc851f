package models

// ClassSession is a recurring class meeting on one or more weekdays.
type ClassSession struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Time     string `json:"time"`     // free text, e.g. "10:00 AM"
	Location string `json:"location"` // free text
	Days     []int  `json:"days"`     // weekday indices, 0=Sunday, stored sorted
	Color    string `json:"color"`
}

// MeetsOn reports whether the class meets on the given weekday.
func (c ClassSession) MeetsOn(weekday int) bool {
	for _, d := range c.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// Assignment is inert passthrough data kept for round-trip fidelity.
type Assignment struct {
	ID        string   `json:"id"`
	ClassID   string   `json:"classId"`
	Name      string   `json:"name"`
	DueDate   string   `json:"dueDate"`
	Grade     *float64 `json:"grade"`
	Completed bool     `json:"completed"`
	TaskID    string   `json:"taskId,omitempty"`
}
