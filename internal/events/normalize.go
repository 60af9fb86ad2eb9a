package events

import (
	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
)

// Normalize returns the monetary events of a task, ordered by date.
//
// Itemized subtask billing, itemized payments and a task that is paid in
// one lump sum all end up as the same kind of event stream:
//
//  1. Every subtask with an amount and a date is income on that date.
//  2. Every paid payment with a date is income on that date, taxed at the
//     payment's own rate.
//  3. Every expense entry is an expense on its date, or on the creation
//     date of the task if it has none. A task without entries but with a
//     flat expense total gets a single expense on its creation date.
//  4. A task with a budget that produced no income from 1. or 2. gets one
//     fallback income on its last update (or deadline, or creation) date,
//     unless a dated payment or subtask lies before that date.
//
// Normalize never fails: records with missing dates fall through to the
// rules above.
func Normalize(task models.Task) []Event {
	var result []Event
	created := types.DateOf(task.CreatedAt)

	for _, s := range task.Subtasks {
		if !s.Amount.Valid || s.Amount.Decimal.IsZero() || s.Date.IsZero() {
			continue
		}

		result = append(result, Event{
			Amount:   s.Amount.Decimal,
			Date:     s.Date,
			Kind:     Income,
			Source:   SourceSubtask,
			TaskID:   task.ID,
			RecordID: s.ID,
		})
	}

	for _, p := range task.Payments {
		if !p.Paid || p.Date.IsZero() {
			continue
		}

		result = append(result, Event{
			Amount:         p.Total(),
			Date:           p.Date,
			TaxRatePercent: p.TaxRate(),
			Kind:           Income,
			Source:         SourcePayment,
			TaskID:         task.ID,
			RecordID:       p.ID,
		})
	}

	itemized := len(result) > 0

	for _, e := range task.ExpenseEntries {
		date := e.Date
		if date.IsZero() {
			date = created
		}

		result = append(result, Event{
			Amount:   e.Amount,
			Date:     date,
			Kind:     Expense,
			Source:   SourceExpense,
			TaskID:   task.ID,
			RecordID: e.ID,
		})
	}

	if len(task.ExpenseEntries) == 0 && task.Expenses.IsPositive() && !created.IsZero() {
		result = append(result, Event{
			Amount:   task.Expenses,
			Date:     created,
			Kind:     Expense,
			Source:   SourceExpense,
			TaskID:   task.ID,
			RecordID: task.ID,
		})
	}

	if !itemized && task.Amount.IsPositive() {
		if date := fallbackDate(task); !date.IsZero() && !hasDatedItemBefore(task, date) {
			result = append(result, Event{
				Amount:   task.Amount,
				Date:     date,
				Kind:     Income,
				Source:   SourceFallback,
				TaskID:   task.ID,
				RecordID: task.ID,
			})
		}
	}

	Sort(result)
	return result
}

// fallbackDate is the date a task without itemized billing is booked on.
func fallbackDate(task models.Task) types.Date {
	for _, d := range []types.Date{types.DateOf(task.UpdatedAt), task.Deadline, types.DateOf(task.CreatedAt)} {
		if !d.IsZero() {
			return d
		}
	}
	return types.Date{}
}

// hasDatedItemBefore reports whether any payment or subtask of the task,
// billed or not, is dated strictly before d. Such a task is billed item by
// item and a lump sum on d would count the same money twice.
func hasDatedItemBefore(task models.Task, d types.Date) bool {
	for _, p := range task.Payments {
		if !p.Date.IsZero() && p.Date.Before(d) {
			return true
		}
	}

	for _, s := range task.Subtasks {
		if !s.Date.IsZero() && s.Date.Before(d) {
			return true
		}
	}

	return false
}
