package finance

import (
	"github.com/bizdesk/backend/internal/events"
	"github.com/bizdesk/backend/internal/models"
)

// Events returns the monetary events of all tasks, ad-hoc incomes and paid
// extra work, ordered by date. Ad-hoc incomes and extra work are untaxed.
func Events(tasks []models.Task, incomes []models.Income, works []models.ExtraWork) []events.Event {
	var all []events.Event

	for _, t := range tasks {
		all = append(all, events.Normalize(t)...)
	}

	for _, i := range incomes {
		all = append(all, events.Event{
			Amount:   i.Amount,
			Date:     i.Date,
			Kind:     events.Income,
			Source:   events.SourceIncome,
			RecordID: i.ID,
		})
	}

	for _, w := range works {
		for _, p := range w.Payments {
			if !p.Paid {
				continue
			}

			all = append(all, events.Event{
				Amount:   p.Amount,
				Date:     p.Date,
				Kind:     events.Income,
				Source:   events.SourceExtraWork,
				RecordID: p.ID,
			})
		}
	}

	events.Sort(all)
	return all
}
