package models

import (
	"strings"

	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ColumnClosed is the board column of finished tasks. All other columns
// are free-form.
const ColumnClosed = "closed"

// Task is a unit of billable work on the task board.
type Task struct {
	DefaultModel
	Title              string          `json:"title"`
	ColumnID           string          `json:"columnId"`
	PausedFromColumnID string          `json:"pausedFromColumnId,omitempty"` // Column the task was in before it was paused
	Amount             decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`   // The budget of the task. Zero means no budget is set
	Expenses           decimal.Decimal `json:"expenses" gorm:"type:DECIMAL(20,8)"` // Flat expense total for tasks without itemized entries
	Deadline           types.Date      `json:"deadline"`
	StartDate          types.Date      `json:"startDate"`
	Payments           []TaskPayment   `json:"payments" gorm:"constraint:OnDelete:CASCADE"`
	Subtasks           []Subtask       `json:"subtasks" gorm:"constraint:OnDelete:CASCADE"`
	ExpenseEntries     []ExpenseEntry  `json:"expensesEntries" gorm:"constraint:OnDelete:CASCADE"`
	PausedRanges       []PausedRange   `json:"pausedRanges" gorm:"constraint:OnDelete:CASCADE"`
}

// TaskPayment is a payment received for a task. The amount is either given
// directly or as quantity times price.
type TaskPayment struct {
	DefaultModel
	TaskID         uuid.UUID           `json:"taskId"`
	Amount         decimal.NullDecimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Qty            decimal.NullDecimal `json:"qty" gorm:"type:DECIMAL(20,8)"`
	Price          decimal.NullDecimal `json:"price" gorm:"type:DECIMAL(20,8)"`
	Paid           bool                `json:"paid"`
	Date           types.Date          `json:"date"`
	TaxRatePercent decimal.NullDecimal `json:"taxRatePercent" gorm:"type:DECIMAL(20,8)"`
}

// Subtask is a part of a task that can be billed on its own.
type Subtask struct {
	DefaultModel
	TaskID uuid.UUID           `json:"taskId"`
	Title  string              `json:"title"`
	Amount decimal.NullDecimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date   types.Date          `json:"date"`
}

// ExpenseEntry is a dated expense for a task, optionally paid to a contractor.
type ExpenseEntry struct {
	DefaultModel
	TaskID       uuid.UUID       `json:"taskId"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date         types.Date      `json:"date"`
	ContractorID *uuid.UUID      `json:"contractorId,omitempty"`
	Note         string          `json:"note"`
}

// PausedRange is a range of days in which a paused task is not worked on.
type PausedRange struct {
	DefaultModel
	TaskID uuid.UUID  `json:"taskId"`
	From   types.Date `json:"from"`
	To     types.Date `json:"to"` // Zero while the task is still paused
}

func (t *Task) BeforeSave(_ *gorm.DB) error {
	t.Title = strings.TrimSpace(t.Title)
	return nil
}

func (e *ExpenseEntry) BeforeSave(_ *gorm.DB) error {
	e.Note = strings.TrimSpace(e.Note)
	return nil
}

// Total returns the amount of the payment. If no amount is set,
// it is calculated as quantity times price.
func (p TaskPayment) Total() decimal.Decimal {
	if p.Amount.Valid {
		return p.Amount.Decimal
	}

	if p.Qty.Valid && p.Price.Valid {
		return p.Qty.Decimal.Mul(p.Price.Decimal)
	}

	return decimal.Zero
}

// TaxRate returns the tax rate of the payment in percent, 0 if none is set.
func (p TaskPayment) TaxRate() decimal.Decimal {
	if p.TaxRatePercent.Valid {
		return p.TaxRatePercent.Decimal
	}
	return decimal.Zero
}

// TotalPaid returns the sum of all paid payments, dated or not.
func (t Task) TotalPaid() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range t.Payments {
		if p.Paid {
			sum = sum.Add(p.Total())
		}
	}
	return sum
}

// Remaining returns the part of the budget that has not been paid yet.
func (t Task) Remaining() decimal.Decimal {
	return t.Amount.Sub(t.TotalPaid())
}

// LastPaymentDate returns the date of the most recent paid payment.
// The result is zero if no paid payment has a date.
func (t Task) LastPaymentDate() types.Date {
	var last types.Date
	for _, p := range t.Payments {
		if p.Paid && !p.Date.IsZero() && p.Date.After(last) {
			last = p.Date
		}
	}
	return last
}

// IsClosed reports whether the task is in the closed column.
func (t Task) IsClosed() bool {
	return t.ColumnID == ColumnClosed
}
