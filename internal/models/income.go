package models

import (
	"strings"

	"github.com/bizdesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is an ad-hoc income that is not related to a task.
type Income struct {
	DefaultModel
	Amount         decimal.Decimal     `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date           types.Date          `json:"date"`
	TaxRatePercent decimal.NullDecimal `json:"taxRatePercent" gorm:"type:DECIMAL(20,8)"` // Informational, reports do not tax ad-hoc incomes
	Note           string              `json:"note"`
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)
	return nil
}
