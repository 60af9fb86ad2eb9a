package models_test

import (
	"strings"
	"time"

	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/bizdesk/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestGoalBeforeSave() {
	march := types.NewMonth(2024, time.March)

	tests := []struct {
		month  types.Month
		amount decimal.Decimal
		err    error
	}{
		{march, test.D("-10"), models.ErrGoalAmountNotPositive},
		{march, decimal.Zero, models.ErrGoalAmountNotPositive},
		{types.Month{}, test.D("750"), models.ErrGoalMonthMissing},
		{march, test.D("750"), nil},
	}

	for _, tt := range tests {
		g := models.MonthlyGoal{
			Month:  tt.month,
			Amount: tt.amount,
		}

		err := g.BeforeSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	note := " Whitespace    "

	goal := suite.createTestGoal(models.MonthlyGoal{
		Month:  types.NewMonth(2024, time.March),
		Amount: test.D("100000"),
		Note:   note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(note), goal.Note)
}

func (suite *TestSuiteStandard) TestGoalMonthUnique() {
	_ = suite.createTestGoal(models.MonthlyGoal{
		Month:  types.NewMonth(2024, time.March),
		Amount: test.D("100000"),
	})

	err := models.DB.Create(&models.MonthlyGoal{
		Month:  types.NewMonth(2024, time.March),
		Amount: test.D("50000"),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrGoalMonthNotUnique)
}
