package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lwagner94/fattrack/fatsecret"
)

var (
	goalWeightKg    float64
	currentHeightCm float64
	weightComment   string
)

// weightCmd represents the weight command group
var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Record and review weigh-ins",
}

var weightUpdateCmd = &cobra.Command{
	Use:   "update <weight-kg>",
	Short: "Record a weigh-in for a date",
	Long: `Records the user's weight in kilograms. The first weigh-in of a profile
must also supply --goal and --height.`,
	Args: cobra.ExactArgs(1),
	RunE: runWeightUpdate,
}

var weightMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "List the recorded weights for a month",
	RunE:  runWeightMonth,
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightUpdateCmd)
	weightCmd.AddCommand(weightMonthCmd)

	weightUpdateCmd.Flags().StringVar(&dateFlag, "date", "", "weigh-in date (YYYY-MM-DD, default today)")
	weightUpdateCmd.Flags().Float64Var(&goalWeightKg, "goal", 0, "goal weight in kg (required for the first weigh-in)")
	weightUpdateCmd.Flags().Float64Var(&currentHeightCm, "height", 0, "height in cm (required for the first weigh-in)")
	weightUpdateCmd.Flags().StringVar(&weightComment, "comment", "", "comment for this weigh-in")
	weightMonthCmd.Flags().StringVar(&dateFlag, "date", "", "any date within the month (YYYY-MM-DD)")
}

func runWeightUpdate(cmd *cobra.Command, args []string) error {
	if err := requireAuthorized(); err != nil {
		return err
	}

	var weightKg float64
	if _, err := fmt.Sscanf(args[0], "%f", &weightKg); err != nil || weightKg <= 0 {
		return fmt.Errorf("invalid weight %q: expected a positive number of kilograms", args[0])
	}

	date, err := parseDateFlag(dateFlag)
	if err != nil {
		return err
	}

	ok, err := client.WeightUpdate(context.Background(), weightKg, fatsecret.WeightOptions{
		Date:            date,
		GoalWeightKg:    goalWeightKg,
		CurrentHeightCm: currentHeightCm,
		Comment:         weightComment,
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("weigh-in was not acknowledged")
	}

	fmt.Printf("✓ Recorded %.1f kg\n", weightKg)
	return nil
}

func runWeightMonth(cmd *cobra.Command, args []string) error {
	if err := requireAuthorized(); err != nil {
		return err
	}

	date, err := parseDateFlag(dateFlag)
	if err != nil {
		return err
	}

	weights, err := client.WeightsGetMonth(context.Background(), date)
	if err != nil {
		return err
	}
	printRecords("weigh-ins", weights, "date_int", "weight_kg", "weight_comment")
	return nil
}
