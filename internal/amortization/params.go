// Package amortization builds and maintains the monthly repayment schedules
// of credits.
package amortization

import (
	"fmt"

	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Params are the loan parameters a schedule is generated from.
type Params struct {
	CreditID          uuid.UUID // Used to derive stable IDs for the schedule rows
	Amount            decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TermMonths        int
	StartDate         types.Date
	PaymentDay        int // Day of month the payments are due. The day of StartDate is used if 0
	Type              models.ScheduleType
}

// ParamsFor returns the schedule parameters of a credit.
func ParamsFor(c models.Credit) Params {
	return Params{
		CreditID:          c.ID,
		Amount:            c.Amount,
		AnnualRatePercent: c.InterestRatePercentAnnual,
		TermMonths:        c.TermMonths,
		StartDate:         c.StartDate,
		PaymentDay:        c.PaymentDay,
		Type:              c.ScheduleType,
	}
}

// Validate checks the parameters. No schedule row is ever generated from
// parameters that fail validation.
func (p Params) Validate() error {
	if p.TermMonths <= 0 {
		return fmt.Errorf("%w, got %d", ErrTermNotPositive, p.TermMonths)
	}

	if p.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("%w, got %s", ErrNegativeRate, p.AnnualRatePercent)
	}

	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrAmountNotPositive, p.Amount)
	}

	if p.StartDate.IsZero() {
		return ErrStartDateMissing
	}

	switch p.Type {
	case "", models.ScheduleAnnuity, models.ScheduleDifferentiated:
	default:
		return fmt.Errorf("%w: %q", models.ErrInvalidScheduleType, p.Type)
	}

	return nil
}

// monthlyRate is the interest rate per month as a fraction.
func (p Params) monthlyRate() decimal.Decimal {
	return p.AnnualRatePercent.Div(decimal.NewFromInt(1200))
}

// paymentDate returns the due date of a month of the schedule. Month 1 is
// due in the month after the start date.
func (p Params) paymentDate(monthNumber int) types.Date {
	day := p.PaymentDay
	if day <= 0 || day > 31 {
		day = p.StartDate.Day()
	}
	return p.StartDate.InMonth(monthNumber, day)
}

// ItemID returns the ID of the schedule row for a month of a credit.
func ItemID(creditID uuid.UUID, monthNumber int) uuid.UUID {
	return uuid.NewSHA1(creditID, fmt.Appendf(nil, "schedule/%d", monthNumber))
}

func (p Params) item(monthNumber int, r row) models.CreditScheduleItem {
	return models.CreditScheduleItem{
		DefaultModel:     models.DefaultModel{ID: ItemID(p.CreditID, monthNumber)},
		CreditID:         p.CreditID,
		MonthNumber:      monthNumber,
		PaymentDate:      p.paymentDate(monthNumber),
		PlannedPayment:   r.payment,
		InterestPart:     r.interest,
		PrincipalPart:    r.principal,
		RemainingBalance: r.balance,
	}
}
