package models

import (
	"fmt"
	"strings"

	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMode defines how an extra work shift is paid out.
type PaymentMode string

const (
	PaymentModeSingle PaymentMode = "single" // One payment for the whole shift
	PaymentModeDaily  PaymentMode = "daily"  // One payment per work date
	PaymentModeManual PaymentMode = "manual" // Payments are entered by hand
)

// PaymentStatus is the payment progress of an extra work shift.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

var hundred = decimal.NewFromInt(100)

// ExtraWork is a block of extra work days billed at a daily rate.
type ExtraWork struct {
	DefaultModel
	Title       string              `json:"title"`
	WorkDates   []types.Date        `json:"workDates" gorm:"serializer:json;type:text"`
	DailyRate   decimal.Decimal     `json:"dailyRate" gorm:"type:DECIMAL(20,8)"`
	WeekendRate decimal.NullDecimal `json:"weekendRate" gorm:"type:DECIMAL(20,8)"` // Rate for Saturdays and Sundays. DailyRate is used if unset
	TotalAmount decimal.Decimal     `json:"totalAmount" gorm:"type:DECIMAL(20,8)"` // Derived from the work dates and rates on every save
	PaymentMode PaymentMode         `json:"paymentMode"`
	Payments    []ExtraWorkPayment  `json:"payments" gorm:"constraint:OnDelete:CASCADE"`
}

// ExtraWorkPayment is a payment for an extra work shift. The payments of a
// shift do not need to add up to its total.
type ExtraWorkPayment struct {
	DefaultModel
	ExtraWorkID uuid.UUID       `json:"extraWorkId"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date        types.Date      `json:"date"`
	Paid        bool            `json:"paid"`
}

// BeforeSave recalculates the total so that it can never diverge from
// the work dates and rates.
func (w *ExtraWork) BeforeSave(_ *gorm.DB) error {
	w.Title = strings.TrimSpace(w.Title)

	if w.DailyRate.IsNegative() || (w.WeekendRate.Valid && w.WeekendRate.Decimal.IsNegative()) {
		return ErrExtraWorkRateNegative
	}

	switch w.PaymentMode {
	case "", PaymentModeSingle, PaymentModeDaily, PaymentModeManual:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMode, w.PaymentMode)
	}

	w.TotalAmount = w.Total()
	return nil
}

// RateFor returns the rate that applies to a work date.
func (w ExtraWork) RateFor(d types.Date) decimal.Decimal {
	if d.IsWeekend() && w.WeekendRate.Valid {
		return w.WeekendRate.Decimal
	}
	return w.DailyRate
}

// Total returns the payable amount for all work dates.
func (w ExtraWork) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range w.WorkDates {
		total = total.Add(w.RateFor(d))
	}
	return total
}

// PaidAmount returns the sum of all paid payments.
func (w ExtraWork) PaidAmount() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range w.Payments {
		if p.Paid {
			paid = paid.Add(p.Amount)
		}
	}
	return paid
}

// PaidPercent returns the paid share of the total in percent, clamped to
// [0, 100]. It is 0 for shifts without a positive total.
func (w ExtraWork) PaidPercent() decimal.Decimal {
	total := w.Total()
	if !total.IsPositive() {
		return decimal.Zero
	}

	percent := w.PaidAmount().Mul(hundred).Div(total)
	if percent.IsNegative() {
		return decimal.Zero
	}
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}

// PaymentStatus returns the payment progress of the shift.
func (w ExtraWork) PaymentStatus() PaymentStatus {
	percent := w.PaidPercent()

	switch {
	case !percent.IsPositive():
		return PaymentStatusUnpaid
	case percent.GreaterThanOrEqual(hundred):
		return PaymentStatusPaid
	default:
		return PaymentStatusPartial
	}
}

// Mode returns the payment mode of the shift. Records created before the
// mode was stored have it inferred from their payments.
func (w ExtraWork) Mode() PaymentMode {
	if w.PaymentMode != "" {
		return w.PaymentMode
	}
	return w.InferPaymentMode()
}

// InferPaymentMode guesses the payment mode from the shape of the payments.
//
// This is only a fallback for legacy records: a manual shift that happens to
// have one payment per work date is indistinguishable from a daily one.
func (w ExtraWork) InferPaymentMode() PaymentMode {
	if len(w.Payments) == 1 && w.Payments[0].Amount.Equal(w.Total()) {
		return PaymentModeSingle
	}

	if len(w.Payments) > 0 && len(w.Payments) == len(w.WorkDates) {
		return PaymentModeDaily
	}

	return PaymentModeManual
}

// PlanPayments returns the payments implied by the payment mode.
//
// A single shift gets one unpaid payment of the total on the given date, a
// daily shift one unpaid payment per work date at that date's rate. Manual
// shifts keep their payments.
func (w ExtraWork) PlanPayments(on types.Date) []ExtraWorkPayment {
	switch w.Mode() {
	case PaymentModeSingle:
		return []ExtraWorkPayment{{ExtraWorkID: w.ID, Amount: w.Total(), Date: on}}
	case PaymentModeDaily:
		payments := make([]ExtraWorkPayment, 0, len(w.WorkDates))
		for _, d := range w.WorkDates {
			payments = append(payments, ExtraWorkPayment{ExtraWorkID: w.ID, Amount: w.RateFor(d), Date: d})
		}
		return payments
	default:
		payments := make([]ExtraWorkPayment, len(w.Payments))
		copy(payments, w.Payments)
		return payments
	}
}
