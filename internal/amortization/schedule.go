package amortization

import (
	"fmt"

	"github.com/bizdesk/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Number of decimal places intermediate growth factors are kept at.
const growthPrecision = 20

type row struct {
	payment   decimal.Decimal
	interest  decimal.Decimal
	principal decimal.Decimal
	balance   decimal.Decimal
}

// BuildSchedule generates the repayment schedule for a new credit.
//
// The schedule has one row per month of the term. Every amount is rounded
// to cents per row and the last row absorbs the rounding difference, so
// the principal parts add up to the credit amount and the remaining
// balance ends at exactly zero.
func BuildSchedule(p Params) ([]models.CreditScheduleItem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rows := amortize(p.Amount, p.monthlyRate(), p.TermMonths, p.Type)

	schedule := make([]models.CreditScheduleItem, 0, len(rows))
	for i, r := range rows {
		schedule = append(schedule, p.item(i+1, r))
	}

	return schedule, nil
}

// RebuildSchedule regenerates the schedule of a credit with new parameters.
//
// Rows that are already paid are kept as they are. The months of the new
// term after the last paid row are recalculated, starting from the credit's
// current balance instead of the original amount. The paid rows must be the
// first months of the schedule.
func RebuildSchedule(credit models.Credit, p Params) ([]models.CreditScheduleItem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if p.CreditID == uuid.Nil {
		p.CreditID = credit.ID
	}

	var schedule []models.CreditScheduleItem
	lastPaid := 0
	for _, item := range credit.Schedule {
		if item.Paid {
			schedule = append(schedule, item)
			lastPaid = max(lastPaid, item.MonthNumber)
		}
	}

	if next, ok := NextPayment(credit); ok && next.MonthNumber < lastPaid {
		return nil, fmt.Errorf("%w: month %d is unpaid, month %d is paid", ErrEarlierItemUnpaid, next.MonthNumber, lastPaid)
	}

	if credit.CurrentBalance.IsPositive() {
		remaining := p.TermMonths - lastPaid
		if remaining <= 0 {
			return nil, ErrTermExhausted
		}

		for i, r := range amortize(credit.CurrentBalance, p.monthlyRate(), remaining, p.Type) {
			schedule = append(schedule, p.item(lastPaid+i+1, r))
		}
	}

	slices.SortStableFunc(schedule, func(a, b models.CreditScheduleItem) int {
		return a.MonthNumber - b.MonthNumber
	})

	return schedule, nil
}

// amortize splits the repayment of principal over n months.
func amortize(principal, rate decimal.Decimal, n int, kind models.ScheduleType) []row {
	var payment, fixedPrincipal decimal.Decimal
	if kind == models.ScheduleDifferentiated {
		fixedPrincipal = principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	} else {
		payment = annuityPayment(principal, rate, n)
	}

	rows := make([]row, 0, n)
	balance := principal

	for month := 1; month <= n; month++ {
		interest := balance.Mul(rate).Round(2)

		part := fixedPrincipal
		if kind != models.ScheduleDifferentiated {
			part = payment.Sub(interest)
		}

		// The last row takes whatever is left so that no cent remains owed
		// or overpaid
		if month == n || part.GreaterThan(balance) {
			part = balance
		}

		balance = balance.Sub(part)
		rows = append(rows, row{
			payment:   part.Add(interest),
			interest:  interest,
			principal: part,
			balance:   balance,
		})
	}

	return rows
}

// annuityPayment returns the constant monthly payment that repays principal
// in n months at the monthly rate.
func annuityPayment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	if rate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	}

	// (1+r)^n
	growth := decimal.NewFromInt(1)
	factor := rate.Add(growth)
	for range n {
		growth = growth.Mul(factor).Round(growthPrecision)
	}

	// P*r/(1-(1+r)^-n) == P*r*(1+r)^n/((1+r)^n-1)
	return principal.Mul(rate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1))).Round(2)
}
