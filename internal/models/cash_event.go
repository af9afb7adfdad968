package models

import (
	"github.com/envelope-zero/cashflow/internal/types"
	"github.com/shopspring/decimal"
)

// Fixed monthly-equivalent factors. These are deliberate
// approximations, not derived from the calendar.
var (
	daysPerMonth     = decimal.NewFromInt(30)
	weeksPerMonth    = decimal.New(45, -1)  // 4.5
	biweeksPerMonth  = decimal.New(225, -2) // 2.25
	monthsPerQuarter = decimal.NewFromInt(3)
	monthsPerYear    = decimal.NewFromInt(12)
)

// CashEvent is one recurring or one-time inflow or outflow line item.
// Events are constructed once at load time and never mutated.
type CashEvent struct {
	Name      string          `gorm:"column:name"`
	Amount    decimal.Decimal `gorm:"column:usd;type:DECIMAL(20,8)"`
	Frequency Frequency       `gorm:"column:frequency"`
	Type      EventType       `gorm:"column:type_"`
	Taxable   bool            `gorm:"column:is_taxable;default:false"`
}

// TableName sets the table name for gorm.
func (CashEvent) TableName() string {
	return "cash_events"
}

// MonthlyAmount returns the signed contribution of the event to the
// given month: the amount is taxed if the event is taxable, normalized
// to a monthly rate by the frequency, and negated unless the event is
// income. One-time events contribute only in the month of their date,
// undated one-time events never contribute.
func (e CashEvent) MonthlyAmount(month types.Month, taxRate decimal.Decimal) decimal.Decimal {
	amount := e.Amount
	if e.Taxable {
		amount = amount.Mul(decimal.NewFromInt(1).Sub(taxRate))
	}

	switch e.Frequency.Interval {
	case IntervalOneTime:
		if e.Frequency.Date.IsZero() || !month.Contains(e.Frequency.Date) {
			return decimal.Zero
		}
	case IntervalDaily:
		amount = amount.Mul(daysPerMonth)
	case IntervalWeekly:
		amount = amount.Mul(weeksPerMonth)
	case IntervalBiWeekly:
		amount = amount.Mul(biweeksPerMonth)
	case IntervalMonthly:
	case IntervalQuarterly:
		amount = amount.Div(monthsPerQuarter)
	case IntervalYearly:
		amount = amount.Div(monthsPerYear)
	}

	if e.Type == TypeIncome {
		return amount
	}
	return amount.Neg()
}
