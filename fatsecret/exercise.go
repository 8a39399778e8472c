package fatsecret

import (
	"context"
	"strconv"
	"time"
)

// OtherExercise is the reserved exercise type ID meaning a custom ("Other")
// activity. Shifts involving it must carry a freeform activity name.
const OtherExercise = 0

// ExerciseShift describes a change to the exercise diary. Every change moves
// minutes from one activity to another, since a day always holds 24 hours
// worth of entries.
type ExerciseShift struct {
	// ToID and FromID are exercise type IDs. The value OtherExercise selects
	// a custom activity, which requires the corresponding name below.
	ToID   int
	FromID int

	// Minutes is the duration moved from the From activity to the To one.
	Minutes int

	// Date selects the diary day; zero means the current day.
	Date time.Time

	// ToName and FromName name custom activities. Required when the
	// corresponding ID is OtherExercise.
	ToName   string
	FromName string

	// Kcals optionally gives the energy expenditure of a custom target
	// activity, as an alternative to ToName.
	Kcals int
}

// ExercisesGet returns the full list of supported exercise type names and
// identifiers.
func (c *Client) ExercisesGet(ctx context.Context) ([]Record, error) {
	return c.callRecords(ctx, newParams("exercises.get"))
}

// ExerciseEntriesCommitDay saves the default exercise entries for the user
// on the nominated date. A zero date means the current day.
func (c *Client) ExerciseEntriesCommitDay(ctx context.Context, date time.Time) (bool, error) {
	params := newParams("exercises_entries.commit_day")
	setDate(params, "date", date)
	return c.callBool(ctx, params)
}

// ExerciseEntriesGet returns the daily exercise entries for the nominated
// date. The API always reports 24 hours worth of entries, either template
// values or saved ones. The payload is returned as decoded JSON.
func (c *Client) ExerciseEntriesGet(ctx context.Context, date time.Time) (any, error) {
	params := newParams("exercises_entries.get")
	setDate(params, "date", date)
	return c.call(ctx, params)
}

// ExerciseEntriesGetMonth returns the estimated daily calories expended for
// the month containing date. A zero date means the current month.
func (c *Client) ExerciseEntriesGetMonth(ctx context.Context, date time.Time) ([]Record, error) {
	params := newParams("exercises_entries.get_month")
	setDate(params, "date", date)
	return c.callRecords(ctx, params)
}

// ExerciseEntriesSaveTemplate saves the exercise entries on the nominated
// date as template entries for the given days of the week. days is a bitmask
// with Sunday as the least significant bit, between 0 and 128.
func (c *Client) ExerciseEntriesSaveTemplate(ctx context.Context, days int, date time.Time) (bool, error) {
	params := newParams("exercises_entries.save_template")
	params.Set("days", strconv.Itoa(days))
	setDate(params, "date", date)
	return c.callBool(ctx, params)
}

// ExerciseEntryEdit records a shift of minutes between two activities on the
// nominated date.
//
// When either activity is the custom type and the required name (or, for the
// target activity, Kcals) is missing, the call is skipped entirely: no
// network traffic, no error, false returned. Inspect the boolean to detect
// the skip.
func (c *Client) ExerciseEntryEdit(ctx context.Context, shift ExerciseShift) (bool, error) {
	params := newParams("exercise_entry.edit")
	params.Set("shift_to_id", strconv.Itoa(shift.ToID))
	params.Set("shift_from_id", strconv.Itoa(shift.FromID))
	params.Set("minutes", strconv.Itoa(shift.Minutes))
	setDate(params, "date", shift.Date)

	if shift.ToID == OtherExercise {
		switch {
		case shift.ToName != "":
			params.Set("shift_to_name", shift.ToName)
		case shift.Kcals != 0:
			setInt(params, "kcals", shift.Kcals)
		default:
			return false, nil
		}
	}
	if shift.FromID == OtherExercise {
		if shift.FromName == "" {
			return false, nil
		}
		params.Set("shift_from_name", shift.FromName)
	}

	return c.callBool(ctx, params)
}
