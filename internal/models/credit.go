package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/bizdesk/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ScheduleType is the amortization method of a credit.
type ScheduleType string

const (
	ScheduleAnnuity        ScheduleType = "annuity"        // Constant total payment
	ScheduleDifferentiated ScheduleType = "differentiated" // Constant principal, declining payment
)

// CreditStatus is the lifecycle state of a credit.
type CreditStatus string

const (
	CreditActive CreditStatus = "active"
	CreditClosed CreditStatus = "closed"
)

// Credit is a loan that is paid back according to a monthly schedule.
type Credit struct {
	DefaultModel
	Name                      string               `json:"name"`
	Amount                    decimal.Decimal      `json:"amount" gorm:"type:DECIMAL(20,8)"`         // Original principal
	CurrentBalance            decimal.Decimal      `json:"currentBalance" gorm:"type:DECIMAL(20,8)"` // Principal still owed
	InterestRatePercentAnnual decimal.Decimal      `json:"interestRatePercentAnnual" gorm:"type:DECIMAL(20,8)"`
	TermMonths                int                  `json:"termMonths"`
	ScheduleType              ScheduleType         `json:"scheduleType"`
	StartDate                 types.Date           `json:"startDate"`
	PaymentDay                int                  `json:"paymentDay"` // Day of month payments are due. The day of StartDate is used if 0
	Status                    CreditStatus         `json:"status"`
	Schedule                  []CreditScheduleItem `json:"schedule" gorm:"constraint:OnDelete:CASCADE"`
}

// CreditScheduleItem is one month of a credit's amortization schedule.
type CreditScheduleItem struct {
	DefaultModel
	CreditID         uuid.UUID           `json:"creditId" gorm:"index"`
	MonthNumber      int                 `json:"monthNumber"`
	PaymentDate      types.Date          `json:"paymentDate"`
	PlannedPayment   decimal.Decimal     `json:"plannedPayment" gorm:"type:DECIMAL(20,8)"`
	InterestPart     decimal.Decimal     `json:"interestPart" gorm:"type:DECIMAL(20,8)"`
	PrincipalPart    decimal.Decimal     `json:"principalPart" gorm:"type:DECIMAL(20,8)"`
	RemainingBalance decimal.Decimal     `json:"remainingBalance" gorm:"type:DECIMAL(20,8)"`
	Paid             bool                `json:"paid"`
	PaidAmount       decimal.NullDecimal `json:"paidAmount" gorm:"type:DECIMAL(20,8)"`
	PaidAt           *time.Time          `json:"paidAt,omitempty"`
}

func (c *Credit) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.ScheduleType == "" {
		c.ScheduleType = ScheduleAnnuity
	}

	if c.ScheduleType != ScheduleAnnuity && c.ScheduleType != ScheduleDifferentiated {
		return fmt.Errorf("%w: %q", ErrInvalidScheduleType, c.ScheduleType)
	}

	if c.Status == "" {
		c.Status = CreditActive
	}

	return nil
}
