package fatsecret

import "strings"

// TokenPair is an OAuth access token and its secret. The pair returned by
// CompleteAuthorization (or by ProfileCreate / ProfileGetAuth) can be stored
// and supplied to WithAccessToken to resume the session later.
type TokenPair struct {
	Token  string
	Secret string
}

// Record is a single decoded JSON object returned by the API. Payload shapes
// vary per operation and per account, so records are kept dynamic instead of
// being forced into fixed structs.
type Record map[string]any

// String returns the named field as a string, or "" when absent or not a
// string. FatSecret encodes most scalar values as strings.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Meal identifies a diary meal slot.
type Meal string

// Meal types accepted by the API.
const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
	MealOther     Meal = "other"
)

// Valid reports whether m is one of the four meal types the API accepts.
func (m Meal) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealOther:
		return true
	}
	return false
}

// joinMeals renders a meal list as the comma-separated string the API
// expects.
func joinMeals(meals []Meal) string {
	parts := make([]string, len(meals))
	for i, m := range meals {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}
