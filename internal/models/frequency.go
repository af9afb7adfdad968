// Package models implements the cash event model for cashflow.
package models

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Interval is the recurrence interval of a cash event.
type Interval uint8

const (
	IntervalOneTime Interval = iota
	IntervalDaily
	IntervalWeekly
	IntervalBiWeekly
	IntervalMonthly
	IntervalQuarterly
	IntervalYearly
)

// Frequency describes how often a cash event occurs.
type Frequency struct {
	Interval Interval

	// Date is set only for dated one-time events. A one-time event
	// without a date never contributes to any month.
	Date time.Time
}

// ParseFrequency parses a frequency token, e.g. "monthly" or
// "once(2024-03-15)". Tokens are case-insensitive. A one-time event
// with a missing or unparseable date is kept as undated.
func ParseFrequency(s string) (Frequency, error) {
	token, arg, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "(")

	switch token {
	case "1", "once", "onetime":
		frequency := Frequency{Interval: IntervalOneTime}
		if arg, ok := strings.CutSuffix(arg, ")"); ok {
			if date, err := time.Parse("2006-01-02", arg); err == nil {
				frequency.Date = date
			}
		}
		return frequency, nil
	case "d", "day", "daily":
		return Frequency{Interval: IntervalDaily}, nil
	case "w", "week", "weekly":
		return Frequency{Interval: IntervalWeekly}, nil
	case "biweekly":
		return Frequency{Interval: IntervalBiWeekly}, nil
	case "m", "month", "monthly":
		return Frequency{Interval: IntervalMonthly}, nil
	case "quarter", "quarterly":
		return Frequency{Interval: IntervalQuarterly}, nil
	case "y", "year", "yearly":
		return Frequency{Interval: IntervalYearly}, nil
	}

	return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
}

// String returns the canonical token for the frequency. The result
// parses back to an equal Frequency.
func (f Frequency) String() string {
	switch f.Interval {
	case IntervalOneTime:
		if f.Date.IsZero() {
			return "once"
		}
		return fmt.Sprintf("once(%s)", f.Date.Format("2006-01-02"))
	case IntervalDaily:
		return "daily"
	case IntervalWeekly:
		return "weekly"
	case IntervalBiWeekly:
		return "biweekly"
	case IntervalMonthly:
		return "monthly"
	case IntervalQuarterly:
		return "quarterly"
	case IntervalYearly:
		return "yearly"
	}

	return "unknown"
}

// Scan reads the value from the database.
func (f *Frequency) Scan(value interface{}) error {
	nullString := &sql.NullString{}
	if err := nullString.Scan(value); err != nil {
		return err
	}

	parsed, err := ParseFrequency(nullString.String)
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (f Frequency) Value() (driver.Value, error) {
	return f.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Frequency) GormDataType() string {
	return "text"
}
