// Package ledger reads and writes the records in the database and runs the
// financial calculations on them.
package ledger

import (
	"context"
	"time"

	"github.com/bizdesk/backend/internal/finance"
	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Ledger runs all operations on a database.
type Ledger struct {
	DB *gorm.DB
}

// New returns a Ledger for the database.
func New(db *gorm.DB) Ledger {
	return Ledger{DB: db}
}

// MonthReport aggregates the figures for a month.
//
// For the current month, now is used as the reference time. Other months
// are reported as seen from their first day.
func (l Ledger) MonthReport(ctx context.Context, month types.Month, now time.Time) (finance.Report, error) {
	snapshot, err := models.LoadSnapshot(l.DB.WithContext(ctx))
	if err != nil {
		return finance.Report{}, err
	}

	at := now
	if !month.Equal(types.MonthOf(now)) {
		at = month.FirstDay().Time()
	}

	log.Debug().
		Str("month", month.String()).
		Int("tasks", len(snapshot.Tasks)).
		Int("incomes", len(snapshot.Incomes)).
		Int("extraWorks", len(snapshot.ExtraWorks)).
		Int("credits", len(snapshot.Credits)).
		Msg("aggregating")

	return finance.Aggregate(snapshot.Tasks, snapshot.Incomes, snapshot.ExtraWorks, snapshot.Credits, snapshot.Goals, at), nil
}

// SetGoal sets the income goal for a month. An existing goal for the same
// month is overwritten.
func (l Ledger) SetGoal(ctx context.Context, goal models.MonthlyGoal) (models.MonthlyGoal, error) {
	db := l.DB.WithContext(ctx)

	if goal.Month.IsZero() {
		return models.MonthlyGoal{}, models.ErrGoalMonthMissing
	}

	var existing models.MonthlyGoal
	err := db.Where("month = ?", goal.Month).Limit(1).Find(&existing).Error
	if err != nil {
		return models.MonthlyGoal{}, err
	}

	if existing.ID != uuid.Nil {
		goal.DefaultModel = existing.DefaultModel
		err = db.Save(&goal).Error
	} else {
		err = db.Create(&goal).Error
	}
	if err != nil {
		return models.MonthlyGoal{}, err
	}

	log.Info().Str("month", goal.Month.String()).Str("amount", goal.Amount.String()).Msg("goal set")
	return goal, nil
}
