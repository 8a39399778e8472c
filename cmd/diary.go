package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lwagner94/fattrack/fatsecret"
)

var (
	dateFlag    string
	foodEntryID string
)

// diaryCmd represents the diary command group
var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Read the food diary of the authorized profile",
}

var diaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food diary entries for a date, or a single entry by ID",
	RunE:  runDiaryList,
}

var diaryMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show daily nutrition summaries for a month",
	RunE:  runDiaryMonth,
}

var diarySummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show food, exercise and weight summaries for a month",
	Long: `Fetches the month's food diary summary, exercise calorie summary and
recorded weights in one go and prints them per day.`,
	RunE: runDiarySummary,
}

func init() {
	rootCmd.AddCommand(diaryCmd)
	diaryCmd.AddCommand(diaryListCmd)
	diaryCmd.AddCommand(diaryMonthCmd)
	diaryCmd.AddCommand(diarySummaryCmd)

	diaryListCmd.Flags().StringVar(&dateFlag, "date", "", "diary date (YYYY-MM-DD, default today)")
	diaryListCmd.Flags().StringVar(&foodEntryID, "entry-id", "", "single food entry ID")
	diaryMonthCmd.Flags().StringVar(&dateFlag, "date", "", "any date within the month (YYYY-MM-DD)")
	diarySummaryCmd.Flags().StringVar(&dateFlag, "date", "", "any date within the month (YYYY-MM-DD)")
}

func runDiaryList(cmd *cobra.Command, args []string) error {
	if err := requireAuthorized(); err != nil {
		return err
	}

	date, err := parseDateFlag(dateFlag)
	if err != nil {
		return err
	}
	if foodEntryID == "" && date.IsZero() {
		return fmt.Errorf("either --entry-id or --date is required")
	}

	entries, err := client.FoodEntriesGet(context.Background(), foodEntryID, date)
	if err != nil {
		return err
	}
	printRecords("food entries", entries, "food_entry_name", "meal", "calories")
	return nil
}

func runDiaryMonth(cmd *cobra.Command, args []string) error {
	if err := requireAuthorized(); err != nil {
		return err
	}

	date, err := parseDateFlag(dateFlag)
	if err != nil {
		return err
	}

	days, err := client.FoodEntriesGetMonth(context.Background(), date)
	if err != nil {
		return err
	}
	printRecords("diary days", days, "date_int", "calories", "carbohydrate", "protein", "fat")
	return nil
}

func runDiarySummary(cmd *cobra.Command, args []string) error {
	if err := requireAuthorized(); err != nil {
		return err
	}

	date, err := parseDateFlag(dateFlag)
	if err != nil {
		return err
	}

	// The three month views are independent; fetch them concurrently.
	var (
		foodDays     []fatsecret.Record
		exerciseDays []fatsecret.Record
		weightDays   []fatsecret.Record
	)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		foodDays, err = client.FoodEntriesGetMonth(ctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		exerciseDays, err = client.ExerciseEntriesGetMonth(ctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		weightDays, err = client.WeightsGetMonth(ctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch month summaries: %w", err)
	}

	printRecords("food diary days", foodDays, "date_int", "calories")
	printRecords("exercise diary days", exerciseDays, "date_int", "calories")
	printRecords("weigh-ins", weightDays, "date_int", "weight_kg", "weight_comment")
	return nil
}
