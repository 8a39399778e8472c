package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var recipeType string

// recipesCmd represents the recipes command group
var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Search the recipe database",
}

var recipesSearchCmd = &cobra.Command{
	Use:   "search <expression>",
	Short: "Search the recipe database",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesSearch,
}

var recipesGetCmd = &cobra.Command{
	Use:   "get <recipe-id>",
	Short: "Show detailed information for a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesGet,
}

var recipesTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported recipe types",
	RunE:  runRecipesTypes,
}

func init() {
	rootCmd.AddCommand(recipesCmd)
	recipesCmd.AddCommand(recipesSearchCmd)
	recipesCmd.AddCommand(recipesGetCmd)
	recipesCmd.AddCommand(recipesTypesCmd)

	recipesSearchCmd.Flags().IntVar(&pageNumber, "page", 0, "zero-based page of results to return")
	recipesSearchCmd.Flags().IntVar(&maxResults, "max-results", 0, "results per page")
	recipesSearchCmd.Flags().StringVar(&recipeType, "type", "", "filter by recipe type")
	recipesSearchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	recipesSearchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runRecipesSearch(cmd *cobra.Command, args []string) error {
	results, err := client.RecipesSearch(context.Background(), args[0], recipeType, pageNumber, maxResults)
	if err != nil {
		return err
	}

	results, err = applyFilter(results)
	if err != nil {
		return err
	}

	printRecords("recipes", results, "recipe_name", "recipe_description")
	return nil
}

func runRecipesGet(cmd *cobra.Command, args []string) error {
	recipe, err := client.RecipeGet(context.Background(), args[0])
	if err != nil {
		return err
	}
	if recipe == nil {
		fmt.Println("No recipe found.")
		return nil
	}
	printRecord(recipe)
	return nil
}

func runRecipesTypes(cmd *cobra.Command, args []string) error {
	types, err := client.RecipeTypesGet(context.Background())
	if err != nil {
		return err
	}
	if types == nil {
		fmt.Println("No recipe types returned.")
		return nil
	}

	names, _ := types["recipe_type"].([]any)
	for _, name := range names {
		fmt.Printf("• %v\n", name)
	}
	return nil
}
