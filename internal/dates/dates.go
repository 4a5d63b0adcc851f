// Package dates works with the canonical YYYY-MM-DD date keys the document
// uses as map keys. The zero-padded format makes lexicographic comparison
// equivalent to chronological comparison, so keys are compared as strings.
package dates

import (
	"fmt"
	"time"
)

const (
	// KeyLayout is the canonical date-key format.
	KeyLayout = "2006-01-02"
	// DueLayout is the task due timestamp format.
	DueLayout = "2006-01-02T15:04:05"
)

// Key formats a time as a date key.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// Parse parses a date key.
func Parse(key string) (time.Time, error) {
	return time.Parse(KeyLayout, key)
}

// Valid reports whether key is a well-formed date key.
func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

// Weekday returns the weekday index of a date key, 0=Sunday.
func Weekday(key string) (int, error) {
	t, err := Parse(key)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// InclusiveDays counts the days from start through end, both included.
// Malformed keys yield 0.
func InclusiveDays(start, end string) int {
	s, err := Parse(start)
	if err != nil {
		return 0
	}
	e, err := Parse(end)
	if err != nil {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// DayKey builds a date key from calendar components.
func DayKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
