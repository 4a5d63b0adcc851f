package models

// Category groups habits for display and filtering.
type Category string

const (
	CategoryHealth   Category = "health"
	CategoryStudy    Category = "study"
	CategoryWork     Category = "work"
	CategorySocial   Category = "social"
	CategoryPersonal Category = "personal"
	CategoryCreative Category = "creative"
	CategoryFinance  Category = "finance"
	CategoryHome     Category = "home"
)

// Categories lists every valid habit category in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryStudy,
	CategoryWork,
	CategorySocial,
	CategoryPersonal,
	CategoryCreative,
	CategoryFinance,
	CategoryHome,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Habit is a recurring goal, optionally restricted to specific weekdays.
type Habit struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	// SpecificDays holds weekday indices (0=Sunday). nil means the habit
	// applies every day; an empty set is never stored.
	SpecificDays []int `json:"specificDays"`
	Pinned       bool  `json:"pinned"`
}

// AppliesOn reports whether the habit is scheduled on the given weekday.
func (h Habit) AppliesOn(weekday int) bool {
	if len(h.SpecificDays) == 0 {
		return true
	}
	for _, d := range h.SpecificDays {
		if d == weekday {
			return true
		}
	}
	return false
}
