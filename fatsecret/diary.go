package fatsecret

import (
	"context"
	"time"
)

// FoodEntryChanges describes the adjustable properties of a food diary
// entry. Zero values leave the corresponding property untouched. The date of
// an entry cannot be changed; delete and re-create the entry instead.
type FoodEntryChanges struct {
	Name          string
	ServingID     string
	NumberOfUnits float64
	Meal          Meal
}

// FoodEntriesCopy copies the food entries from one date to another,
// optionally limited to a single meal type.
func (c *Client) FoodEntriesCopy(ctx context.Context, fromDate, toDate time.Time, meal Meal) (bool, error) {
	params := newParams("food_entries.copy")
	setDate(params, "from_date", fromDate)
	setDate(params, "to_date", toDate)
	setString(params, "meal", string(meal))
	return c.callBool(ctx, params)
}

// FoodEntriesCopySavedMeal copies the items of a saved meal into the diary
// for the given meal slot. A zero date means the current day.
func (c *Client) FoodEntriesCopySavedMeal(ctx context.Context, mealID string, meal Meal, date time.Time) (bool, error) {
	params := newParams("food_entries.copy_saved_meal")
	params.Set("saved_meal_id", mealID)
	params.Set("meal", string(meal))
	setDate(params, "date", date)
	return c.callBool(ctx, params)
}

// FoodEntriesGet returns diary entries, either the single entry with
// foodEntryID or all entries recorded on date. Exactly one selector is
// consulted, the entry ID taking precedence. With neither selector supplied
// no network call is made and an absent result is returned.
func (c *Client) FoodEntriesGet(ctx context.Context, foodEntryID string, date time.Time) ([]Record, error) {
	params := newParams("food_entries.get")
	switch {
	case foodEntryID != "":
		params.Set("food_entry_id", foodEntryID)
	case !date.IsZero():
		setDate(params, "date", date)
	default:
		return nil, nil
	}
	return c.callRecords(ctx, params)
}

// FoodEntriesGetMonth returns summary daily nutrition for the month
// containing date. A zero date means the current month.
func (c *Client) FoodEntriesGetMonth(ctx context.Context, date time.Time) ([]Record, error) {
	params := newParams("food_entries.get_month")
	setDate(params, "date", date)
	return c.callRecords(ctx, params)
}

// FoodEntryCreate records a food diary entry and returns its identifier
// envelope. A zero date means the current day.
func (c *Client) FoodEntryCreate(ctx context.Context, foodID, entryName, servingID string, numberOfUnits float64, meal Meal, date time.Time) (any, error) {
	params := newParams("food_entry.create")
	params.Set("food_id", foodID)
	params.Set("food_entry_name", entryName)
	params.Set("serving_id", servingID)
	setFloat(params, "number_of_units", numberOfUnits)
	params.Set("meal", string(meal))
	setDate(params, "date", date)
	return c.call(ctx, params)
}

// FoodEntryDelete deletes the specified food diary entry.
func (c *Client) FoodEntryDelete(ctx context.Context, foodEntryID string) (bool, error) {
	params := newParams("food_entry.delete")
	params.Set("food_entry_id", foodEntryID)
	return c.callBool(ctx, params)
}

// FoodEntryEdit adjusts the recorded values of a food diary entry.
func (c *Client) FoodEntryEdit(ctx context.Context, foodEntryID string, changes FoodEntryChanges) (bool, error) {
	params := newParams("food_entry.edit")
	params.Set("food_entry_id", foodEntryID)
	setString(params, "food_entry_name", changes.Name)
	setString(params, "serving_id", changes.ServingID)
	setFloat(params, "number_of_units", changes.NumberOfUnits)
	setString(params, "meal", string(changes.Meal))
	return c.callBool(ctx, params)
}
