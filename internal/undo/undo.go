// Package undo implements the single-slot, time-boxed recoverable delete.
// At most one deleted entity is held at a time; staging a new one
// unconditionally discards the previous entry with no recovery.
package undo

import (
	"sync"
	"time"

	"github.com/mbowen/daybook/internal/models"
)

// Window is the default time a staged delete stays recoverable.
const Window = 5 * time.Second

// Kind names the entity type held in the slot.
type Kind string

const (
	KindHabit Kind = "habit"
	KindTask  Kind = "task"
)

// Entry is a full snapshot of a deleted entity. It is a copy; the controller
// never shares mutable references back into the live document.
type Entry struct {
	Kind  Kind
	Habit models.Habit
	Task  models.Task
}

// Name returns the deleted entity's display name.
func (e Entry) Name() string {
	if e.Kind == KindHabit {
		return e.Habit.Name
	}
	return e.Task.Name
}

// TimerFactory schedules f to run after d and returns a stop function.
// Injecting it lets tests drive virtual time instead of waiting on the clock.
type TimerFactory func(d time.Duration, f func()) (stop func() bool)

func realTimer(d time.Duration, f func()) func() bool {
	t := time.AfterFunc(d, f)
	return t.Stop
}

// Controller is a two-state machine: Empty, or Pending with a deadline.
type Controller struct {
	mu      sync.Mutex
	window  time.Duration
	after   TimerFactory
	pending *Entry
	stop    func() bool
	gen     uint64
}

// New returns a controller with the default window and a wall-clock timer.
func New() *Controller {
	return NewWithTimer(Window, nil)
}

// NewWithTimer returns a controller with a custom window and timer factory.
// A nil factory falls back to time.AfterFunc.
func NewWithTimer(window time.Duration, after TimerFactory) *Controller {
	if window <= 0 {
		window = Window
	}
	if after == nil {
		after = realTimer
	}
	return &Controller{window: window, after: after}
}

// WindowLength returns the configured undo window.
func (c *Controller) WindowLength() time.Duration {
	return c.window
}

// Stage places a delete snapshot in the slot and starts its deadline,
// discarding any previous entry. The old timer is always stopped before the
// new one starts so a stale expiry cannot clear a fresh entry; a generation
// counter guards the window where a stopped timer already fired.
func (c *Controller) Stage(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
	c.gen++
	gen := c.gen
	c.pending = &e
	c.stop = c.after(c.window, func() { c.expire(gen) })
}

// Undo takes the pending entry out of the slot, cancelling its deadline.
// ok is false when the slot is empty or the deadline already elapsed.
func (c *Controller) Undo() (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return Entry{}, false
	}
	e := *c.pending
	c.clearLocked()
	return e, true
}

// Pending peeks at the slot without consuming it.
func (c *Controller) Pending() (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return Entry{}, false
	}
	return *c.pending, true
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.pending = nil
	c.stop = nil
}

func (c *Controller) clearLocked() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.pending = nil
}
