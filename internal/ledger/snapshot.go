package ledger

import (
	"context"
	"fmt"

	"github.com/bizdesk/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CleanupConfirmation must be passed to Cleanup to delete all records.
const CleanupConfirmation = "yes-please-delete-everything"

// Export returns all records in the database.
func (l Ledger) Export(ctx context.Context) (models.Snapshot, error) {
	return models.LoadSnapshot(l.DB.WithContext(ctx))
}

// Import stores all records of a snapshot, keeping their IDs.
//
// Unless replace is set, the database must not contain any records yet.
// With replace, all existing records are deleted first. Either all records
// are imported or none.
func (l Ledger) Import(ctx context.Context, snapshot models.Snapshot, replace bool) error {
	return l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := cleanup(tx); err != nil {
				return err
			}
		} else {
			empty, err := isEmpty(tx)
			if err != nil {
				return err
			}

			if !empty {
				return ErrNotEmpty
			}
		}

		// Nested records are created together with their parents
		batches := []struct {
			name  string
			value any
			count int
		}{
			{"tasks", &snapshot.Tasks, len(snapshot.Tasks)},
			{"incomes", &snapshot.Incomes, len(snapshot.Incomes)},
			{"extra work", &snapshot.ExtraWorks, len(snapshot.ExtraWorks)},
			{"credits", &snapshot.Credits, len(snapshot.Credits)},
			{"goals", &snapshot.Goals, len(snapshot.Goals)},
		}

		for _, b := range batches {
			if b.count == 0 {
				continue
			}

			if err := tx.Create(b.value).Error; err != nil {
				return fmt.Errorf("importing %s failed: %w", b.name, err)
			}

			log.Debug().Str("resource", b.name).Int("count", b.count).Msg("imported")
		}

		return nil
	})
}

// Cleanup permanently deletes all records. The confirmation must be the
// value of CleanupConfirmation.
func (l Ledger) Cleanup(ctx context.Context, confirm string) error {
	if confirm != CleanupConfirmation {
		return ErrCleanupConfirmation
	}

	return l.DB.WithContext(ctx).Transaction(cleanup)
}

// Foreign keys are checked during cleanup, models are listed
// before any of the models they reference
var resources = []any{
	models.TaskPayment{},
	models.Subtask{},
	models.ExpenseEntry{},
	models.PausedRange{},
	models.Task{},
	models.Income{},
	models.ExtraWorkPayment{},
	models.ExtraWork{},
	models.CreditScheduleItem{},
	models.Credit{},
	models.MonthlyGoal{},
}

func cleanup(tx *gorm.DB) error {
	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			return fmt.Errorf("cleanup of %T failed: %w", model, err)
		}
	}

	log.Info().Msg("all records deleted")
	return nil
}

func isEmpty(tx *gorm.DB) (bool, error) {
	for _, model := range resources {
		var count int64
		err := tx.Model(&model).Unscoped().Count(&count).Error
		if err != nil {
			return false, err
		}

		if count > 0 {
			return false, nil
		}
	}

	return true, nil
}
