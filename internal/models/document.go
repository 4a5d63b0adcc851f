package models

import "encoding/json"

// JournalEntry is one day's journal text. An absent date key means no entry.
type JournalEntry struct {
	Text string `json:"text"`
}

// TimerPresets are focus-timer durations in minutes.
type TimerPresets struct {
	Focus      int `json:"focus"`
	ShortBreak int `json:"shortBreak"`
}

// Document is the whole tracked state. It is treated as an immutable value:
// readers get clones and every change produces a new document through the
// mutation layer.
type Document struct {
	Habits []Habit `json:"habits"`
	Tasks  []Task  `json:"tasks"`
	// History maps a date key to the ids of habits marked done that day.
	// A date key with an empty set is removed, never stored empty.
	History map[string][]string     `json:"history"`
	Journal map[string]JournalEntry `json:"journal"`

	TargetDate    string `json:"targetDate"`
	SemesterStart string `json:"semesterStart"`
	SemesterEnd   string `json:"semesterEnd"`

	Classes         []ClassSession   `json:"classes"`
	TimerPresets    TimerPresets     `json:"timerPresets"`
	VacationMode    VacationPeriod   `json:"vacationMode"`
	VacationHistory []VacationRecord `json:"vacationHistory"`
	Assignments     []Assignment     `json:"assignments"`
}

// Default returns the document a fresh install starts from. Loading partial
// persisted data unmarshals over this value, which gives the shallow
// merge-with-defaults the load path promises.
func Default() Document {
	return Document{
		Habits:          []Habit{},
		Tasks:           []Task{},
		History:         map[string][]string{},
		Journal:         map[string]JournalEntry{},
		TargetDate:      "2026-08-31",
		SemesterStart:   "2026-01-06",
		SemesterEnd:     "2026-05-01",
		Classes:         []ClassSession{},
		TimerPresets:    TimerPresets{Focus: 25, ShortBreak: 5},
		VacationMode:    VacationPeriod{},
		VacationHistory: []VacationRecord{},
		Assignments:     []Assignment{},
	}
}

// EnsureMaps initializes nil collections after decoding.
func (d *Document) EnsureMaps() {
	if d.History == nil {
		d.History = map[string][]string{}
	}
	if d.Journal == nil {
		d.Journal = map[string]JournalEntry{}
	}
}

// Clone returns a deep copy. Shared backing arrays between the live document
// and snapshots handed to readers would let a reader mutate committed state,
// so everything nested is copied.
func (d Document) Clone() Document {
	out := d

	out.Habits = make([]Habit, len(d.Habits))
	for i, h := range d.Habits {
		h.SpecificDays = cloneInts(h.SpecificDays)
		out.Habits[i] = h
	}

	out.Tasks = make([]Task, len(d.Tasks))
	for i, t := range d.Tasks {
		if t.Subtasks != nil {
			t.Subtasks = append([]Subtask(nil), t.Subtasks...)
		}
		if t.Recurring != nil {
			t.Recurring = append(json.RawMessage(nil), t.Recurring...)
		}
		if t.DependsOn != nil {
			t.DependsOn = append([]string(nil), t.DependsOn...)
		}
		out.Tasks[i] = t
	}

	if d.History != nil {
		out.History = make(map[string][]string, len(d.History))
		for k, ids := range d.History {
			out.History[k] = append([]string(nil), ids...)
		}
	}
	if d.Journal != nil {
		out.Journal = make(map[string]JournalEntry, len(d.Journal))
		for k, v := range d.Journal {
			out.Journal[k] = v
		}
	}

	out.Classes = make([]ClassSession, len(d.Classes))
	for i, c := range d.Classes {
		c.Days = cloneInts(c.Days)
		out.Classes[i] = c
	}

	if d.VacationHistory != nil {
		out.VacationHistory = append([]VacationRecord(nil), d.VacationHistory...)
	}
	if d.Assignments != nil {
		out.Assignments = append([]Assignment(nil), d.Assignments...)
	}

	return out
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	return append([]int(nil), s...)
}
