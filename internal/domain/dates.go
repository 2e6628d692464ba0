package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeValue reports an hour or minute outside its valid range.
var ErrInvalidTimeValue = errors.New("hour or minute out of range")

// AddDays returns base shifted by n calendar days. Month and year boundaries
// roll over; base itself is never modified.
func AddDays(base time.Time, n int) time.Time {
	return base.AddDate(0, 0, n)
}

// At returns the timestamp for the calendar day of day at hour:minute,
// in day's location. Hour and minute come from the static recurrence rule,
// so an out-of-range value means the rule table is misconfigured.
func At(day time.Time, hour, minute int) (time.Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeValue, hour, minute)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}
