// Package finance aggregates all monetary records into daily and monthly
// figures.
package finance

import (
	"github.com/bizdesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DaySummary contains the figures for a single day.
type DaySummary struct {
	Date                types.Date      `json:"date"`
	Income              decimal.Decimal `json:"income"`   // Gross income of the day
	Taxes               decimal.Decimal `json:"taxes"`    // Tax due on the day's income
	Expenses            decimal.Decimal `json:"expenses"` // Operational expenses of tasks
	Profit              decimal.Decimal `json:"profit"`
	HasAdditionalIncome bool            `json:"hasAdditionalIncome"` // At least one ad-hoc income was received on the day
}

// MonthSummary contains the figures for a month.
type MonthSummary struct {
	Month            types.Month     `json:"month"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	IncomeFromSites  decimal.Decimal `json:"incomeFromSites"`  // Income from tasks
	AdditionalIncome decimal.Decimal `json:"additionalIncome"` // Income from ad-hoc income records
	ExtraWorkIncome  decimal.Decimal `json:"extraWorkIncome"`  // Paid extra work
	TotalTaxes       decimal.Decimal `json:"totalTaxes"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Profit           decimal.Decimal `json:"profit"`
	AverageCheck     decimal.Decimal `json:"averageCheck"` // Average task income per task that brought in money this month
	Expected         decimal.Decimal `json:"expected"`     // Outstanding budgets of tasks due this month

	// Credit repayments are not part of the profit calculation
	LoanPayments decimal.Decimal `json:"loanPayments"` // Planned payments of all schedule rows due this month
	LoanPaid     decimal.Decimal `json:"loanPaid"`     // Paid amounts of the paid schedule rows due this month

	Goal         decimal.NullDecimal `json:"goal"`         // The income goal for the month, if one is set
	GoalProgress decimal.Decimal     `json:"goalProgress"` // Total income in percent of the goal
}

// Report is the result of an aggregation.
type Report struct {
	Month MonthSummary          `json:"month"`
	ByDay map[string]DaySummary `json:"byDay"` // Keyed by the date as YYYY-MM-DD
}

// Days returns the day summaries ordered by date.
func (r Report) Days() []DaySummary {
	keys := maps.Keys(r.ByDay)
	slices.Sort(keys)

	days := make([]DaySummary, 0, len(keys))
	for _, k := range keys {
		days = append(days, r.ByDay[k])
	}
	return days
}
