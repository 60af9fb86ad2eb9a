package ledger

import (
	"context"
	"fmt"

	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CreateExtraWork stores a new extra work shift with the payments its
// payment mode implies.
//
// Shifts without a payment mode are paid in a single payment. The planned
// payments are due on the given date, or on the last work date if date is
// zero.
func (l Ledger) CreateExtraWork(ctx context.Context, work models.ExtraWork, due types.Date) (models.ExtraWork, error) {
	if work.ID == uuid.Nil {
		work.ID = uuid.New()
	}

	if work.PaymentMode == "" {
		work.PaymentMode = models.PaymentModeSingle
	}

	if due.IsZero() {
		for _, d := range work.WorkDates {
			if d.After(due) {
				due = d
			}
		}
	}

	work.Payments = work.PlanPayments(due)

	err := l.DB.WithContext(ctx).Create(&work).Error
	if err != nil {
		return models.ExtraWork{}, err
	}

	log.Info().
		Str("extraWork", work.ID.String()).
		Str("mode", string(work.PaymentMode)).
		Int("days", len(work.WorkDates)).
		Str("total", work.TotalAmount.String()).
		Msg("extra work created")

	return work, nil
}

// ExtraWorks returns all extra work shifts with their payments.
func (l Ledger) ExtraWorks(ctx context.Context) ([]models.ExtraWork, error) {
	var works []models.ExtraWork

	err := l.DB.WithContext(ctx).Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("date")
	}).Order("created_at").Find(&works).Error
	if err != nil {
		return nil, err
	}

	return works, nil
}

// PayExtraWork marks a payment of an extra work shift as paid. When date is
// set, it replaces the planned date of the payment.
func (l Ledger) PayExtraWork(ctx context.Context, paymentID uuid.UUID, date types.Date) (models.ExtraWorkPayment, error) {
	db := l.DB.WithContext(ctx)

	var payment models.ExtraWorkPayment
	err := db.First(&payment, "id = ?", paymentID).Error
	if err != nil {
		return models.ExtraWorkPayment{}, err
	}

	if payment.Paid {
		return models.ExtraWorkPayment{}, fmt.Errorf("%w: %s", ErrPaymentPaid, paymentID)
	}

	payment.Paid = true
	if !date.IsZero() {
		payment.Date = date
	}

	err = db.Model(&payment).Select("Paid", "Date").Updates(payment).Error
	if err != nil {
		return models.ExtraWorkPayment{}, err
	}

	log.Info().Str("payment", payment.ID.String()).Str("amount", payment.Amount.String()).Msg("extra work payment paid")
	return payment, nil
}
