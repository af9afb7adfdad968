package types

import (
	"fmt"
	"time"
)

// FirstOfMonthsBetween returns one Month per calendar month whose span
// overlaps [start, end], from the month of start through the month of end.
// It returns an empty slice when start is after end.
func FirstOfMonthsBetween(start, end time.Time) []Month {
	months := []Month{}
	if start.After(end) {
		return months
	}

	// Walk day by day from the first of start's month, collecting
	// every day-of-month 1 on the way.
	date := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for !date.After(end) {
		if date.Day() == 1 {
			months = append(months, MonthOf(date))
		}
		date = date.AddDate(0, 0, 1)
	}

	return months
}

// AddMonths adds a number of whole calendar months to t, keeping the
// day of the month. It returns an error when the target month does not
// have that day, e.g. January 31 plus one month. There is no clamping.
func AddMonths(t time.Time, months int) (time.Time, error) {
	result := t.AddDate(0, months, 0)

	// AddDate normalizes a nonexistent day into the following month,
	// so a changed day of the month means the date does not exist.
	if result.Day() != t.Day() {
		return time.Time{}, fmt.Errorf("adding %d months to %s does not result in a valid date", months, t.Format("2006-01-02"))
	}

	return result, nil
}
