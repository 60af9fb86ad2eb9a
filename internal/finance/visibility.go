package finance

import (
	"time"

	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
)

// IsVisible reports whether a task is still shown in active views.
//
// A closed task that is fully paid is hidden once the month of its latest
// paid payment lies before the month of now. Without a dated payment, the
// last update of the task is used.
func IsVisible(t models.Task, now time.Time) bool {
	if !t.IsClosed() || t.TotalPaid().LessThan(t.Amount) {
		return true
	}

	settled := t.LastPaymentDate()
	if settled.IsZero() {
		settled = types.DateOf(t.UpdatedAt)
	}

	if settled.IsZero() {
		return true
	}

	return !settled.Month().Before(types.MonthOf(now))
}

// VisibleTasks returns the tasks that are visible at now.
func VisibleTasks(tasks []models.Task, now time.Time) []models.Task {
	visible := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if IsVisible(t, now) {
			visible = append(visible, t)
		}
	}
	return visible
}
