package fatsecret

import (
	"context"
	"time"
)

// WeightOptions carries the optional parameters of a weigh-in. First-time
// weigh-ins require GoalWeightKg and CurrentHeightCm; height can only be set
// once.
type WeightOptions struct {
	// Date selects the diary day; zero means the current day.
	Date time.Time

	// WeightType is the display unit for this profile, "kg" or "lb".
	// Defaults to "kg".
	WeightType string

	// HeightType is the display unit for this profile, "cm" or "inch".
	// Defaults to "cm".
	HeightType string

	GoalWeightKg    float64
	CurrentHeightCm float64
	Comment         string
}

// WeightUpdate records the user's weight for a nominated date. The weight is
// always supplied in kilograms regardless of the profile's display unit.
func (c *Client) WeightUpdate(ctx context.Context, currentWeightKg float64, opts WeightOptions) (bool, error) {
	if opts.WeightType == "" {
		opts.WeightType = "kg"
	}
	if opts.HeightType == "" {
		opts.HeightType = "cm"
	}

	params := newParams("weight.update")
	setFloat(params, "current_weight_kg", currentWeightKg)
	params.Set("weight_type", opts.WeightType)
	params.Set("height_type", opts.HeightType)
	setDate(params, "date", opts.Date)
	setFloat(params, "goal_weight_kg", opts.GoalWeightKg)
	setFloat(params, "current_height_cm", opts.CurrentHeightCm)
	setString(params, "comment", opts.Comment)
	return c.callBool(ctx, params)
}

// WeightsGetMonth returns the recorded weights for the month containing
// date. A zero date means the current month.
func (c *Client) WeightsGetMonth(ctx context.Context, date time.Time) ([]Record, error) {
	params := newParams("weights.get_month")
	setDate(params, "date", date)
	return c.callRecords(ctx, params)
}
