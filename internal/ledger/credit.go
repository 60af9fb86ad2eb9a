package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/bizdesk/backend/internal/amortization"
	"github.com/bizdesk/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateCredit stores a new credit together with its generated schedule.
//
// The current balance starts at the credit amount. The schedule is not
// created when the loan parameters are invalid.
func (l Ledger) CreateCredit(ctx context.Context, credit models.Credit) (models.Credit, error) {
	if credit.ID == uuid.Nil {
		credit.ID = uuid.New()
	}

	schedule, err := amortization.BuildSchedule(amortization.ParamsFor(credit))
	if err != nil {
		return models.Credit{}, err
	}

	credit.CurrentBalance = credit.Amount
	credit.Status = models.CreditActive
	credit.Schedule = schedule

	err = l.DB.WithContext(ctx).Create(&credit).Error
	if err != nil {
		return models.Credit{}, err
	}

	log.Info().
		Str("credit", credit.ID.String()).
		Str("amount", credit.Amount.String()).
		Int("months", credit.TermMonths).
		Str("type", string(credit.ScheduleType)).
		Msg("credit created")

	return credit, nil
}

// Credit returns a credit with its schedule ordered by month.
func (l Ledger) Credit(ctx context.Context, id uuid.UUID) (models.Credit, error) {
	var credit models.Credit

	err := l.DB.WithContext(ctx).Preload("Schedule", models.ScheduleOrder).First(&credit, "id = ?", id).Error
	if err != nil {
		return models.Credit{}, err
	}

	return credit, nil
}

// Credits returns all credits with their schedules.
func (l Ledger) Credits(ctx context.Context) ([]models.Credit, error) {
	var credits []models.Credit

	err := l.DB.WithContext(ctx).Preload("Schedule", models.ScheduleOrder).Order("created_at").Find(&credits).Error
	if err != nil {
		return nil, err
	}

	return credits, nil
}

// PayScheduleItem marks a schedule row as paid. If amount is not valid, the
// planned payment is recorded as paid.
func (l Ledger) PayScheduleItem(ctx context.Context, creditID, itemID uuid.UUID, amount decimal.NullDecimal, now time.Time) (models.Credit, error) {
	credit, err := l.Credit(ctx, creditID)
	if err != nil {
		return models.Credit{}, err
	}

	updated, err := amortization.ApplyPayment(credit, itemID, amount, now)
	if err != nil {
		return models.Credit{}, err
	}

	idx := slices.IndexFunc(updated.Schedule, func(i models.CreditScheduleItem) bool { return i.ID == itemID })
	item := updated.Schedule[idx]

	err = l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&item).Select("Paid", "PaidAmount", "PaidAt").Updates(item).Error
		if err != nil {
			return fmt.Errorf("updating schedule item failed: %w", err)
		}

		return tx.Omit(clause.Associations).Save(&updated).Error
	})
	if err != nil {
		return models.Credit{}, err
	}

	log.Info().
		Str("credit", credit.ID.String()).
		Int("month", item.MonthNumber).
		Str("paid", item.PaidAmount.Decimal.String()).
		Str("balance", updated.CurrentBalance.String()).
		Str("status", string(updated.Status)).
		Msg("schedule item paid")

	return updated, nil
}

// RebuildCredit regenerates the schedule of a credit with new loan
// parameters. Paid rows are kept, all other rows are replaced.
func (l Ledger) RebuildCredit(ctx context.Context, creditID uuid.UUID, p amortization.Params) (models.Credit, error) {
	credit, err := l.Credit(ctx, creditID)
	if err != nil {
		return models.Credit{}, err
	}

	p.CreditID = credit.ID
	schedule, err := amortization.RebuildSchedule(credit, p)
	if err != nil {
		return models.Credit{}, err
	}

	credit.InterestRatePercentAnnual = p.AnnualRatePercent
	credit.TermMonths = p.TermMonths
	credit.ScheduleType = p.Type
	credit.StartDate = p.StartDate
	credit.PaymentDay = p.PaymentDay
	credit.Schedule = schedule

	credit.Status = models.CreditClosed
	var fresh []models.CreditScheduleItem
	for _, item := range schedule {
		if !item.Paid {
			fresh = append(fresh, item)
			credit.Status = models.CreditActive
		}
	}

	err = l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Rows are deleted permanently since their replacements reuse the IDs
		err := tx.Unscoped().Where("credit_id = ? AND paid = ?", credit.ID, false).Delete(&models.CreditScheduleItem{}).Error
		if err != nil {
			return fmt.Errorf("deleting unpaid schedule items failed: %w", err)
		}

		if len(fresh) > 0 {
			err = tx.Create(&fresh).Error
			if err != nil {
				return fmt.Errorf("creating schedule items failed: %w", err)
			}
		}

		return tx.Omit(clause.Associations).Save(&credit).Error
	})
	if err != nil {
		return models.Credit{}, err
	}

	log.Info().
		Str("credit", credit.ID.String()).
		Int("rows", len(fresh)).
		Str("balance", credit.CurrentBalance.String()).
		Msg("schedule rebuilt")

	return credit, nil
}
