package fatsecret

import (
	"context"
)

// FoodGet returns detailed nutritional information for the specified food.
func (c *Client) FoodGet(ctx context.Context, foodID string) (Record, error) {
	params := newParams("food.get")
	params.Set("food_id", foodID)
	return c.callRecord(ctx, params)
}

// FoodAddFavorite adds a food to the user's favorites. servingID and
// numberOfUnits record a favorite serving; they are only sent when both are
// present, otherwise both are dropped.
func (c *Client) FoodAddFavorite(ctx context.Context, foodID, servingID string, numberOfUnits float64) (bool, error) {
	params := newParams("food.add_favorite")
	params.Set("food_id", foodID)
	if servingID != "" && numberOfUnits != 0 {
		params.Set("serving_id", servingID)
		setFloat(params, "number_of_units", numberOfUnits)
	}
	return c.callBool(ctx, params)
}

// FoodDeleteFavorite removes a food from the user's favorites. The serving
// pair follows the same all-or-nothing rule as FoodAddFavorite.
func (c *Client) FoodDeleteFavorite(ctx context.Context, foodID, servingID string, numberOfUnits float64) (bool, error) {
	params := newParams("food.delete_favorite")
	params.Set("food_id", foodID)
	if servingID != "" && numberOfUnits != 0 {
		params.Set("serving_id", servingID)
		setFloat(params, "number_of_units", numberOfUnits)
	}
	return c.callBool(ctx, params)
}

// FoodsGetFavorites returns the favorite foods for the authenticated user.
func (c *Client) FoodsGetFavorites(ctx context.Context) ([]Record, error) {
	return c.callRecords(ctx, newParams("foods.get_favorites"))
}

// FoodsGetMostEaten returns the user's most eaten foods, optionally limited
// to a single meal type. Unknown meal values are silently ignored.
func (c *Client) FoodsGetMostEaten(ctx context.Context, meal Meal) ([]Record, error) {
	params := newParams("foods.get_most_eaten")
	if meal.Valid() {
		params.Set("meal", string(meal))
	}
	return c.callRecords(ctx, params)
}

// FoodsGetRecentlyEaten returns the user's recently eaten foods, optionally
// limited to a single meal type. Unknown meal values are silently ignored.
func (c *Client) FoodsGetRecentlyEaten(ctx context.Context, meal Meal) ([]Record, error) {
	params := newParams("foods.get_recently_eaten")
	if meal.Valid() {
		params.Set("meal", string(meal))
	}
	return c.callRecords(ctx, params)
}

// FoodsSearch searches the food database. Results are paginated with a
// zero-based page offset; pageNumber and maxResults are only sent when both
// are non-zero.
func (c *Client) FoodsSearch(ctx context.Context, expression string, pageNumber, maxResults int) ([]Record, error) {
	params := newParams("foods.search")
	params.Set("search_expression", expression)
	if pageNumber != 0 && maxResults != 0 {
		setInt(params, "page_number", pageNumber)
		setInt(params, "max_results", maxResults)
	}
	return c.callRecords(ctx, params)
}
