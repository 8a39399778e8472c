package fatsecret

import (
	"context"
)

// RecipeGet returns detailed information for the specified recipe.
func (c *Client) RecipeGet(ctx context.Context, recipeID string) (Record, error) {
	params := newParams("recipe.get")
	params.Set("recipe_id", recipeID)
	return c.callRecord(ctx, params)
}

// RecipesAddFavorite adds a recipe to the user's favorites.
func (c *Client) RecipesAddFavorite(ctx context.Context, recipeID string) (bool, error) {
	// The remote operation name really is plural.
	params := newParams("recipes.add_favorites")
	params.Set("recipe_id", recipeID)
	return c.callBool(ctx, params)
}

// RecipesDeleteFavorite removes a recipe from the user's favorites.
func (c *Client) RecipesDeleteFavorite(ctx context.Context, recipeID string) (bool, error) {
	params := newParams("recipes.delete_favorites")
	params.Set("recipe_id", recipeID)
	return c.callBool(ctx, params)
}

// RecipesGetFavorites returns the favorite recipes for the authenticated user.
func (c *Client) RecipesGetFavorites(ctx context.Context) ([]Record, error) {
	return c.callRecords(ctx, newParams("recipes.get_favorites"))
}

// RecipesSearch searches the recipe database. recipeType optionally filters
// by recipe type name; the pagination pair is only sent when both values are
// non-zero.
func (c *Client) RecipesSearch(ctx context.Context, expression, recipeType string, pageNumber, maxResults int) ([]Record, error) {
	params := newParams("recipes.search")
	params.Set("search_expression", expression)
	setString(params, "recipe_type", recipeType)
	if pageNumber != 0 && maxResults != 0 {
		setInt(params, "page_number", pageNumber)
		setInt(params, "max_results", maxResults)
	}
	return c.callRecords(ctx, params)
}

// RecipeTypesGet returns the full list of supported recipe type names.
func (c *Client) RecipeTypesGet(ctx context.Context) (Record, error) {
	return c.callRecord(ctx, newParams("recipe_types.get"))
}
