package models

// VacationPeriod is the single schedulable vacation window. When active,
// both dates are set and StartDate <= EndDate.
type VacationPeriod struct {
	Active    bool   `json:"active"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// VacationRecord is an archived vacation. Records are append-only and
// immutable once written.
type VacationRecord struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"` // inclusive day count
}
