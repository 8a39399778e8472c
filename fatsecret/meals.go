package fatsecret

import (
	"context"
)

// SavedMealCreate records a saved meal and returns its identifier envelope.
// meals optionally lists the meal types the saved meal is suitable for.
func (c *Client) SavedMealCreate(ctx context.Context, name, description string, meals []Meal) (any, error) {
	params := newParams("saved_meal.create")
	params.Set("saved_meal_name", name)
	setString(params, "saved_meal_description", description)
	if len(meals) > 0 {
		params.Set("meals", joinMeals(meals))
	}
	return c.call(ctx, params)
}

// SavedMealDelete deletes the specified saved meal.
func (c *Client) SavedMealDelete(ctx context.Context, mealID string) (bool, error) {
	params := newParams("saved_meal.delete")
	params.Set("saved_meal_id", mealID)
	return c.callBool(ctx, params)
}

// SavedMealEdit records a change to a saved meal. Zero-valued arguments
// leave the corresponding property untouched.
func (c *Client) SavedMealEdit(ctx context.Context, mealID, newName, description string, meals []Meal) (bool, error) {
	params := newParams("saved_meal.edit")
	params.Set("saved_meal_id", mealID)
	setString(params, "saved_meal_name", newName)
	setString(params, "saved_meal_description", description)
	if len(meals) > 0 {
		params.Set("meals", joinMeals(meals))
	}
	return c.callBool(ctx, params)
}

// SavedMealsGet returns the saved meals for the authenticated user,
// optionally filtered to those suitable for the given meal type.
func (c *Client) SavedMealsGet(ctx context.Context, meal Meal) ([]Record, error) {
	params := newParams("saved_meals.get")
	setString(params, "meal", string(meal))
	return c.callRecords(ctx, params)
}

// SavedMealItemAdd adds a food to a saved meal and returns the item's
// identifier envelope.
func (c *Client) SavedMealItemAdd(ctx context.Context, mealID, foodID, entryName, servingID string, numberOfUnits float64) (any, error) {
	params := newParams("saved_meal_item.add")
	params.Set("saved_meal_id", mealID)
	params.Set("food_id", foodID)
	params.Set("food_entry_name", entryName)
	params.Set("serving_id", servingID)
	setFloat(params, "number_of_units", numberOfUnits)
	return c.call(ctx, params)
}

// SavedMealItemDelete deletes the specified saved meal item.
func (c *Client) SavedMealItemDelete(ctx context.Context, itemID string) (bool, error) {
	params := newParams("saved_meal_item.delete")
	params.Set("saved_meal_item_id", itemID)
	return c.callBool(ctx, params)
}

// SavedMealItemEdit records a change to a saved meal item. The serving of an
// item cannot be adjusted; delete and re-add the item instead.
func (c *Client) SavedMealItemEdit(ctx context.Context, itemID, name string, numberOfUnits float64) (bool, error) {
	params := newParams("saved_meal_item.edit")
	params.Set("saved_meal_item_id", itemID)
	setString(params, "saved_meal_item_name", name)
	setFloat(params, "number_of_units", numberOfUnits)
	return c.callBool(ctx, params)
}

// SavedMealItemsGet returns the items of the specified saved meal.
func (c *Client) SavedMealItemsGet(ctx context.Context, mealID string) ([]Record, error) {
	params := newParams("saved_meal_items.get")
	params.Set("saved_meal_id", mealID)
	return c.callRecords(ctx, params)
}
