package dates

import (
	"testing"
	"time"
)

func TestKeyRoundTrip(t *testing.T) {
	in := time.Date(2026, time.March, 7, 15, 30, 0, 0, time.UTC)
	key := Key(in)
	if key != "2026-03-07" {
		t.Fatalf("Key = %q, want 2026-03-07", key)
	}
	parsed, err := Parse(key)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.Year() != 2026 || parsed.Month() != time.March || parsed.Day() != 7 {
		t.Errorf("Parse = %v, want 2026-03-07", parsed)
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"2026-01-06": true,
		"2026-1-6":   false,
		"01-06-2026": false,
		"":           false,
		"not a date": false,
	}
	for key, want := range cases {
		if got := Valid(key); got != want {
			t.Errorf("Valid(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestWeekday_SundayIsZero(t *testing.T) {
	// 2026-08-30 is a Sunday.
	wd, err := Weekday("2026-08-30")
	if err != nil {
		t.Fatalf("Weekday failed: %v", err)
	}
	if wd != 0 {
		t.Errorf("Weekday = %d, want 0", wd)
	}
	if wd, _ := Weekday("2026-08-31"); wd != 1 {
		t.Errorf("Weekday(Monday) = %d, want 1", wd)
	}
}

func TestInclusiveDays(t *testing.T) {
	if got := InclusiveDays("2026-07-01", "2026-07-01"); got != 1 {
		t.Errorf("single day = %d, want 1", got)
	}
	if got := InclusiveDays("2026-07-01", "2026-07-07"); got != 7 {
		t.Errorf("week = %d, want 7", got)
	}
	if got := InclusiveDays("bad", "2026-07-07"); got != 0 {
		t.Errorf("malformed start = %d, want 0", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2026, time.February); got != 28 {
		t.Errorf("Feb 2026 = %d, want 28", got)
	}
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Errorf("Feb 2024 = %d, want 29", got)
	}
	if got := DaysInMonth(2026, time.December); got != 31 {
		t.Errorf("Dec 2026 = %d, want 31", got)
	}
}

func TestDayKey_ZeroPads(t *testing.T) {
	if got := DayKey(2026, time.March, 7); got != "2026-03-07" {
		t.Errorf("DayKey = %q, want 2026-03-07", got)
	}
}
