// Package events turns tasks into a uniform stream of dated income and
// expense events.
package events

import (
	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Kind is the direction of a monetary event.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Source is the kind of record an event was derived from.
type Source string

const (
	SourceSubtask   Source = "subtask"
	SourcePayment   Source = "payment"
	SourceExpense   Source = "expense"
	SourceFallback  Source = "fallback" // Synthetic income for a task without itemized dated billing
	SourceIncome    Source = "income"
	SourceExtraWork Source = "extra-work"
)

var hundred = decimal.NewFromInt(100)

// Event is a dated amount of money coming in or going out. Events are
// derived and never persisted.
type Event struct {
	Amount         decimal.Decimal `json:"amount"`
	Date           types.Date      `json:"date"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	Kind           Kind            `json:"kind"`
	Source         Source          `json:"source"`
	TaskID         uuid.UUID       `json:"taskId"`   // The task the event belongs to, Nil for incomes and extra work
	RecordID       uuid.UUID       `json:"recordId"` // The record the event was derived from
}

// Tax returns the tax due for the event. Expenses carry no tax.
func (e Event) Tax() decimal.Decimal {
	if e.Kind != Income {
		return decimal.Zero
	}
	return e.Amount.Mul(e.TaxRatePercent).Div(hundred)
}

// Net returns the effect of the event on profit: the amount after tax for
// income, the negated amount for expenses.
func (e Event) Net() decimal.Decimal {
	if e.Kind == Expense {
		return e.Amount.Neg()
	}
	return e.Amount.Sub(e.Tax())
}

// Sort orders events by date. Events on the same date keep their order.
func Sort(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		return a.Date.Compare(b.Date)
	})
}
