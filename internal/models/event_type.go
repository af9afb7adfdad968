package models

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
)

// EventType classifies a cash event. Income adds to the monthly net
// amount, every other type subtracts from it.
type EventType string

const (
	TypeBill         EventType = "bill"
	TypeIncome       EventType = "income"
	TypeInvestment   EventType = "investment"
	TypeSubscription EventType = "subscription"
	TypeOther        EventType = "other"
)

// ParseEventType parses a case-insensitive event type token.
func ParseEventType(s string) (EventType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bill":
		return TypeBill, nil
	case "income":
		return TypeIncome, nil
	case "investment":
		return TypeInvestment, nil
	case "sub", "subscription":
		return TypeSubscription, nil
	case "other":
		return TypeOther, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Scan reads the value from the database.
func (t *EventType) Scan(value interface{}) error {
	nullString := &sql.NullString{}
	if err := nullString.Scan(value); err != nil {
		return err
	}

	parsed, err := ParseEventType(nullString.String)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (t EventType) Value() (driver.Value, error) {
	return string(t), nil
}

// GormDataType defines the data type used by gorm for the type.
func (EventType) GormDataType() string {
	return "text"
}
