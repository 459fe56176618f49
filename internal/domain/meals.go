package domain

import "strconv"

// Meals is the variant meal field of a health log: either a meal count
// or a free-text description, never both. The form boundary resolves
// the raw input exactly once via ParseMeals.
type Meals struct {
	Count *int   `json:"count,omitempty"`
	Note  string `json:"note,omitempty"`
}

// ParseMeals interprets raw form input as a meal count when it is a
// non-negative integer and as a free-text note otherwise. Empty input
// yields the zero value.
func ParseMeals(raw string) Meals {
	if raw == "" {
		return Meals{}
	}
	if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
		return Meals{Count: &n}
	}
	return Meals{Note: raw}
}

// String renders the field for display regardless of which variant is set.
func (m Meals) String() string {
	if m.Count != nil {
		return strconv.Itoa(*m.Count)
	}
	return m.Note
}
