package forecast_test

import (
	"strings"
	"testing"
	"time"

	"github.com/envelope-zero/cashflow/internal/forecast"
	"github.com/envelope-zero/cashflow/internal/models"
	"github.com/envelope-zero/cashflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyEvent(name string, amount int64, eventType models.EventType) models.CashEvent {
	return models.CashEvent{
		Name:      name,
		Amount:    decimal.NewFromInt(amount),
		Frequency: models.Frequency{Interval: models.IntervalMonthly},
		Type:      eventType,
	}
}

func TestMonthlyNet(t *testing.T) {
	events := []models.CashEvent{
		monthlyEvent("Salary", 1000, models.TypeIncome),
		monthlyEvent("Rent", 200, models.TypeBill),
	}

	net := forecast.MonthlyNet(events, types.NewMonth(2024, 5), decimal.Zero)
	assert.True(t, net.Equal(decimal.NewFromInt(800)), "Net amount is %s, should be 800", net)
}

func TestMonthlyNetNoEvents(t *testing.T) {
	net := forecast.MonthlyNet([]models.CashEvent{}, types.NewMonth(2024, 5), decimal.Zero)
	assert.True(t, net.IsZero(), "Net amount is %s, should be 0", net)
}

func TestProject(t *testing.T) {
	events := []models.CashEvent{
		monthlyEvent("Salary", 1000, models.TypeIncome),
		monthlyEvent("Rent", 200, models.TypeBill),
	}
	months := []types.Month{
		types.NewMonth(2024, 5),
		types.NewMonth(2024, 6),
	}

	lines := forecast.Project(events, months, decimal.Zero)
	require.Len(t, lines, 2)

	for i, line := range lines {
		assert.Equal(t, months[i], line.Month)
		assert.True(t, line.Net.Equal(decimal.NewFromInt(800)), "Net amount is %s, should be 800", line.Net)
	}

	assert.True(t, lines[0].Cumulative.Equal(decimal.NewFromInt(800)), "Cumulative total is %s, should be 800", lines[0].Cumulative)
	assert.True(t, lines[1].Cumulative.Equal(decimal.NewFromInt(1600)), "Cumulative total is %s, should be 1600", lines[1].Cumulative)
}

func TestProjectOneTime(t *testing.T) {
	events := []models.CashEvent{
		monthlyEvent("Salary", 1000, models.TypeIncome),
		{
			Name:   "Tax refund",
			Amount: decimal.NewFromInt(500),
			Frequency: models.Frequency{
				Interval: models.IntervalOneTime,
				Date:     time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			},
			Type: models.TypeIncome,
		},
	}
	months := []types.Month{
		types.NewMonth(2024, 5),
		types.NewMonth(2024, 6),
		types.NewMonth(2024, 7),
	}

	lines := forecast.Project(events, months, decimal.Zero)
	require.Len(t, lines, 3)

	assert.True(t, lines[0].Net.Equal(decimal.NewFromInt(1000)), "Net amount is %s, should be 1000", lines[0].Net)
	assert.True(t, lines[1].Net.Equal(decimal.NewFromInt(1500)), "Net amount is %s, should be 1500", lines[1].Net)
	assert.True(t, lines[2].Net.Equal(decimal.NewFromInt(1000)), "Net amount is %s, should be 1000", lines[2].Net)
	assert.True(t, lines[2].Cumulative.Equal(decimal.NewFromInt(3500)), "Cumulative total is %s, should be 3500", lines[2].Cumulative)
}

func TestProjectNoMonths(t *testing.T) {
	lines := forecast.Project([]models.CashEvent{monthlyEvent("Salary", 1000, models.TypeIncome)}, []types.Month{}, decimal.Zero)
	assert.Empty(t, lines)
}

func TestFilter(t *testing.T) {
	events := []models.CashEvent{
		monthlyEvent("Netflix", 13, models.TypeSubscription),
		monthlyEvent("Net rent", 1500, models.TypeBill),
		monthlyEvent("Salary", 5000, models.TypeIncome),
	}

	tests := []struct {
		pattern string
		names   []string
	}{
		{"", []string{"Netflix", "Net rent", "Salary"}},
		{"Net*", []string{"Netflix", "Net rent"}},
		{"*rent*", []string{"Net rent"}},
		{"Salary", []string{"Salary"}},
		{"nomatch", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			filtered := forecast.Filter(events, tt.pattern)

			names := []string{}
			for _, event := range filtered {
				names = append(names, event.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestWrite(t *testing.T) {
	events := []models.CashEvent{
		monthlyEvent("Salary", 1000, models.TypeIncome),
		monthlyEvent("Rent", 200, models.TypeBill),
	}
	months := []types.Month{
		types.NewMonth(2024, 5),
		types.NewMonth(2024, 6),
	}

	var builder strings.Builder
	err := forecast.Write(&builder, forecast.Project(events, months, decimal.Zero))
	require.Nil(t, err)

	assert.Equal(t,
		"2024-05:\t    800.00\t==>\t    800.00\n"+
			"2024-06:\t    800.00\t==>\t   1600.00\n",
		builder.String())
}
