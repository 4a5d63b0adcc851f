package analytics

import (
	"fmt"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

// VacationState classifies the active period relative to today.
type VacationState int

const (
	VacationUpcoming VacationState = iota
	VacationOngoing
	VacationPast
)

// VacationStatus is the derived view of the active vacation period.
type VacationStatus struct {
	State    VacationState
	Verb     string // "Scheduled", "Taking" or "Took"
	Duration string // human label, e.g. "a week"
}

// IsVacationDay reports whether dateKey falls inside the active vacation
// window, endpoints included.
func IsVacationDay(dateKey string, vm models.VacationPeriod) bool {
	if !vm.Active || vm.StartDate == "" || vm.EndDate == "" {
		return false
	}
	return dateKey >= vm.StartDate && dateKey <= vm.EndDate
}

// VacationLength returns the active period's inclusive day count, 0 when
// inactive or dates are missing.
func VacationLength(vm models.VacationPeriod) int {
	if !vm.Active || vm.StartDate == "" || vm.EndDate == "" {
		return 0
	}
	return dates.InclusiveDays(vm.StartDate, vm.EndDate)
}

// DurationLabel renders a day count the way the status widget words it.
func DurationLabel(days int) string {
	switch days {
	case 1:
		return "1 day"
	case 7:
		return "a week"
	case 14:
		return "2 weeks"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// Status derives the active period's state as of today. It returns nil when
// no period is active; archived records never produce a status.
func Status(vm models.VacationPeriod, today string) *VacationStatus {
	if !vm.Active || vm.StartDate == "" || vm.EndDate == "" {
		return nil
	}
	duration := DurationLabel(VacationLength(vm))
	switch {
	case today >= vm.StartDate && today <= vm.EndDate:
		return &VacationStatus{State: VacationOngoing, Verb: "Taking", Duration: duration}
	case today > vm.EndDate:
		return &VacationStatus{State: VacationPast, Verb: "Took", Duration: duration}
	default:
		return &VacationStatus{State: VacationUpcoming, Verb: "Scheduled", Duration: duration}
	}
}
