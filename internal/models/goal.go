package models

import (
	"strings"

	"github.com/bizdesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyGoal is the income target for a month.
type MonthlyGoal struct {
	DefaultModel
	Month  types.Month     `json:"month" gorm:"uniqueIndex"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"` // The income target for the month
	Note   string          `json:"note"`
}

func (g *MonthlyGoal) BeforeSave(_ *gorm.DB) error {
	g.Note = strings.TrimSpace(g.Note)

	if g.Month.IsZero() {
		return ErrGoalMonthMissing
	}

	if !g.Amount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	return nil
}
