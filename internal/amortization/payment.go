package amortization

import (
	"fmt"
	"time"

	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ApplyPayment marks a schedule row as paid and returns the updated credit.
//
// Rows are paid in the order of their month numbers. The paid amount
// defaults to the planned payment. The credit's current balance is lowered
// by the principal part of the row. Other rows are not recalculated, even if
// less than the planned payment was paid. Once every row is paid, the credit
// is closed.
func ApplyPayment(credit models.Credit, itemID uuid.UUID, amount decimal.NullDecimal, now time.Time) (models.Credit, error) {
	idx := slices.IndexFunc(credit.Schedule, func(item models.CreditScheduleItem) bool {
		return item.ID == itemID
	})
	if idx < 0 {
		return credit, fmt.Errorf("%w: %s", ErrScheduleItemNotFound, itemID)
	}

	item := credit.Schedule[idx]
	if item.Paid {
		return credit, fmt.Errorf("%w: month %d", ErrScheduleItemPaid, item.MonthNumber)
	}

	if first, ok := NextPayment(credit); ok && first.MonthNumber < item.MonthNumber {
		return credit, fmt.Errorf("%w: month %d is due before month %d", ErrEarlierItemUnpaid, first.MonthNumber, item.MonthNumber)
	}

	paid := item.PlannedPayment
	if amount.Valid {
		paid = amount.Decimal
	}

	paidAt := now
	item.Paid = true
	item.PaidAmount = decimal.NewNullDecimal(paid)
	item.PaidAt = &paidAt

	updated := credit
	updated.Schedule = slices.Clone(credit.Schedule)
	updated.Schedule[idx] = item

	updated.CurrentBalance = credit.CurrentBalance.Sub(item.PrincipalPart)
	if updated.CurrentBalance.IsNegative() {
		updated.CurrentBalance = decimal.Zero
	}

	if !slices.ContainsFunc(updated.Schedule, func(i models.CreditScheduleItem) bool { return !i.Paid }) {
		updated.Status = models.CreditClosed
	}

	return updated, nil
}

// NextPayment returns the unpaid row with the lowest month number.
func NextPayment(credit models.Credit) (models.CreditScheduleItem, bool) {
	var next models.CreditScheduleItem
	found := false
	for _, item := range credit.Schedule {
		if !item.Paid && (!found || item.MonthNumber < next.MonthNumber) {
			next = item
			found = true
		}
	}
	return next, found
}

// Overdue returns all unpaid rows that were due before the day of now.
func Overdue(credit models.Credit, now time.Time) []models.CreditScheduleItem {
	today := types.DateOf(now)

	var overdue []models.CreditScheduleItem
	for _, item := range credit.Schedule {
		if !item.Paid && item.PaymentDate.Before(today) {
			overdue = append(overdue, item)
		}
	}
	return overdue
}

// TotalInterest returns the sum of the interest parts of a schedule.
func TotalInterest(schedule []models.CreditScheduleItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range schedule {
		sum = sum.Add(item.InterestPart)
	}
	return sum
}
