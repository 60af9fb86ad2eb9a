package finance

import (
	"time"

	"github.com/bizdesk/backend/internal/events"
	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate calculates the figures for the month that contains now.
//
// Aggregate never fails. Inconsistent data such as negative amounts is
// used in the calculation as it is.
func Aggregate(
	tasks []models.Task,
	incomes []models.Income,
	works []models.ExtraWork,
	credits []models.Credit,
	goals []models.MonthlyGoal,
	now time.Time,
) Report {
	month := types.MonthOf(now)

	report := Report{
		Month: MonthSummary{Month: month},
		ByDay: make(map[string]DaySummary),
	}
	summary := &report.Month

	contributing := make(map[uuid.UUID]bool)

	for _, e := range Events(tasks, incomes, works) {
		if !month.Contains(e.Date) {
			continue
		}

		key := e.Date.String()
		day, ok := report.ByDay[key]
		if !ok {
			day.Date = e.Date
		}

		day.Profit = day.Profit.Add(e.Net())

		switch e.Kind {
		case events.Income:
			tax := e.Tax()
			day.Income = day.Income.Add(e.Amount)
			day.Taxes = day.Taxes.Add(tax)
			summary.TotalTaxes = summary.TotalTaxes.Add(tax)

			switch e.Source {
			case events.SourceIncome:
				day.HasAdditionalIncome = true
				summary.AdditionalIncome = summary.AdditionalIncome.Add(e.Amount)
			case events.SourceExtraWork:
				summary.ExtraWorkIncome = summary.ExtraWorkIncome.Add(e.Amount)
			default:
				contributing[e.TaskID] = true
				summary.IncomeFromSites = summary.IncomeFromSites.Add(e.Amount)
			}

		case events.Expense:
			day.Expenses = day.Expenses.Add(e.Amount)
			summary.TotalExpenses = summary.TotalExpenses.Add(e.Amount)
		}

		report.ByDay[key] = day
	}

	summary.TotalIncome = summary.IncomeFromSites.Add(summary.AdditionalIncome).Add(summary.ExtraWorkIncome)
	summary.Profit = summary.TotalIncome.Sub(summary.TotalTaxes).Sub(summary.TotalExpenses)

	if len(contributing) > 0 {
		summary.AverageCheck = summary.IncomeFromSites.Div(decimal.NewFromInt(int64(len(contributing))))
	}

	summary.Expected = expected(tasks, month, now)
	summary.LoanPayments, summary.LoanPaid = loans(credits, month)

	for _, g := range goals {
		if !g.Month.Equal(month) {
			continue
		}

		summary.Goal = decimal.NewNullDecimal(g.Amount)
		if g.Amount.IsPositive() {
			summary.GoalProgress = summary.TotalIncome.Mul(hundred).Div(g.Amount).Round(2)
		}
		break
	}

	return report
}

// expected sums up the unpaid budgets of the visible tasks that are due in
// the month. Tasks without deadline are due in the month they start.
func expected(tasks []models.Task, month types.Month, now time.Time) decimal.Decimal {
	sum := decimal.Zero

	for _, t := range VisibleTasks(tasks, now) {
		if !t.Amount.IsPositive() {
			continue
		}

		remaining := t.Remaining()
		if !remaining.IsPositive() {
			continue
		}

		due := t.Deadline
		if due.IsZero() {
			due = t.StartDate
		}

		if month.Contains(due) {
			sum = sum.Add(remaining)
		}
	}

	return sum
}

// loans returns the planned and the paid credit repayments of the month.
func loans(credits []models.Credit, month types.Month) (planned, paid decimal.Decimal) {
	for _, c := range credits {
		for _, item := range c.Schedule {
			if !month.Contains(item.PaymentDate) {
				continue
			}

			planned = planned.Add(item.PlannedPayment)

			if item.Paid {
				if item.PaidAmount.Valid {
					paid = paid.Add(item.PaidAmount.Decimal)
				} else {
					paid = paid.Add(item.PlannedPayment)
				}
			}
		}
	}

	return planned, paid
}
