// Package forecast computes monthly net cash flow projections.
package forecast

import (
	"fmt"
	"io"

	"github.com/envelope-zero/cashflow/internal/models"
	"github.com/envelope-zero/cashflow/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// MonthlyNet sums the monthly contribution of every event for the month.
func MonthlyNet(events []models.CashEvent, month types.Month, taxRate decimal.Decimal) decimal.Decimal {
	net := decimal.Zero

	for _, event := range events {
		net = net.Add(event.MonthlyAmount(month, taxRate))
	}

	return net
}

// Line is one month of a projection.
type Line struct {
	Month types.Month

	// Net is the net amount for the month.
	Net decimal.Decimal

	// Cumulative is the running total from the first projected month
	// through this one.
	Cumulative decimal.Decimal
}

// Project computes the net amount and the running cumulative total for
// every month, in order.
func Project(events []models.CashEvent, months []types.Month, taxRate decimal.Decimal) []Line {
	lines := make([]Line, 0, len(months))
	sum := decimal.Zero

	for _, month := range months {
		net := MonthlyNet(events, month, taxRate)
		sum = sum.Add(net)
		lines = append(lines, Line{Month: month, Net: net, Cumulative: sum})
	}

	return lines
}

// Filter returns the events whose name matches the glob pattern.
// An empty pattern matches every event.
func Filter(events []models.CashEvent, pattern string) []models.CashEvent {
	if pattern == "" {
		return events
	}

	filtered := []models.CashEvent{}
	for _, event := range events {
		if glob.Glob(pattern, event.Name) {
			filtered = append(filtered, event)
		}
	}

	return filtered
}

// Write renders the projection with one line per month: the month, its
// net amount and the cumulative total, amounts right-aligned with two
// decimal places.
func Write(w io.Writer, lines []Line) error {
	for _, line := range lines {
		_, err := fmt.Fprintf(w, "%s:\t%10s\t==>\t%10s\n", line.Month, line.Net.StringFixed(2), line.Cumulative.StringFixed(2))
		if err != nil {
			return err
		}
	}

	return nil
}
