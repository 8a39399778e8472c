package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lwagner94/fattrack/fatsecret"
	"github.com/lwagner94/fattrack/filter"
)

var (
	pageNumber int
	maxResults int
	mealFlag   string
)

// foodsCmd represents the foods command group
var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Search the food database and manage food favorites",
}

var foodsSearchCmd = &cobra.Command{
	Use:   "search <expression>",
	Short: "Search the food database",
	Long: `Search the food database. Results can be narrowed with an expr filter
evaluated against each result record, e.g.:

  fattrack foods search oats --filter 'food_type == "Generic"'`,
	Args: cobra.ExactArgs(1),
	RunE: runFoodsSearch,
}

var foodsGetCmd = &cobra.Command{
	Use:   "get <food-id>",
	Short: "Show detailed nutrition for a food",
	Args:  cobra.ExactArgs(1),
	RunE:  runFoodsGet,
}

var foodsFavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List the favorite foods of the authorized profile",
	RunE:  runFoodsFavorites,
}

var foodsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently eaten foods, optionally for a single meal",
	RunE:  runFoodsRecent,
}

func init() {
	rootCmd.AddCommand(foodsCmd)
	foodsCmd.AddCommand(foodsSearchCmd)
	foodsCmd.AddCommand(foodsGetCmd)
	foodsCmd.AddCommand(foodsFavoritesCmd)
	foodsCmd.AddCommand(foodsRecentCmd)

	foodsSearchCmd.Flags().IntVar(&pageNumber, "page", 0, "zero-based page of results to return")
	foodsSearchCmd.Flags().IntVar(&maxResults, "max-results", 0, "results per page")
	foodsSearchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	foodsSearchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	foodsRecentCmd.Flags().StringVar(&mealFlag, "meal", "", "meal type: breakfast, lunch, dinner or other")
}

func runFoodsSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	results, err := client.FoodsSearch(ctx, args[0], pageNumber, maxResults)
	if err != nil {
		return err
	}

	results, err = applyFilter(results)
	if err != nil {
		return err
	}

	printRecords("foods", results, "food_name", "brand_name", "food_description")
	return nil
}

func runFoodsGet(cmd *cobra.Command, args []string) error {
	food, err := client.FoodGet(context.Background(), args[0])
	if err != nil {
		return err
	}
	if food == nil {
		fmt.Println("No food found.")
		return nil
	}
	printRecord(food)
	return nil
}

func runFoodsFavorites(cmd *cobra.Command, args []string) error {
	if err := requireAuthorized(); err != nil {
		return err
	}
	favorites, err := client.FoodsGetFavorites(context.Background())
	if err != nil {
		return err
	}
	printRecords("favorite foods", favorites, "food_name", "brand_name")
	return nil
}

func runFoodsRecent(cmd *cobra.Command, args []string) error {
	if err := requireAuthorized(); err != nil {
		return err
	}
	foods, err := client.FoodsGetRecentlyEaten(context.Background(), fatsecret.Meal(mealFlag))
	if err != nil {
		return err
	}
	printRecords("recently eaten foods", foods, "food_name", "brand_name")
	return nil
}

// applyFilter narrows records with the configured filter expression, if any.
func applyFilter(records []fatsecret.Record) ([]fatsecret.Record, error) {
	expression, err := getFilterExpression()
	if err != nil {
		return nil, err
	}
	if expression == "" {
		return records, nil
	}

	logger.Debug().Str("filter", expression).Msg("Applying result filter")

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f.Apply(records)
}

// printRecords renders a record list, showing the named fields when details
// are enabled.
func printRecords(what string, records []fatsecret.Record, fields ...string) {
	if len(records) == 0 {
		fmt.Printf("No %s found.\n", what)
		return
	}

	fmt.Printf("\nFound %d %s:\n", len(records), what)
	fmt.Println(strings.Repeat("-", 80))

	for _, record := range records {
		name := record.String(fields[0])
		if name == "" {
			name = record.String("name")
		}
		fmt.Printf("• %s\n", name)
		if cfg.Safety.ShowDetails {
			for _, field := range fields[1:] {
				if value := record.String(field); value != "" {
					fmt.Printf("  %s: %s\n", field, value)
				}
			}
		}
	}
}

// printRecord renders every field of a single record.
func printRecord(record fatsecret.Record) {
	for key, value := range record {
		fmt.Printf("%s: %v\n", key, value)
	}
}
