package ledger_test

import (
	"time"

	"github.com/bizdesk/backend/internal/events"
	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/bizdesk/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthReport() {
	t := suite.T()

	_ = suite.createTestTask(models.Task{
		Title:  "Landing page",
		Amount: test.D("5000"),
		Payments: []models.TaskPayment{
			{Amount: test.ND("5000"), Paid: true, Date: types.MustParseDate("2024-03-15"), TaxRatePercent: test.ND("6")},
		},
	})
	require.Nil(t, models.DB.Create(&models.Income{Amount: test.D("1000"), Date: types.MustParseDate("2024-03-15")}).Error)

	credit := suite.createTestCredit(models.Credit{StartDate: types.MustParseDate("2024-02-15")})
	_, err := suite.ledger.PayScheduleItem(suite.ctx, credit.ID, credit.Schedule[0].ID, decimal.NullDecimal{}, now)
	require.Nil(t, err)

	_, err = suite.ledger.SetGoal(suite.ctx, models.MonthlyGoal{Month: types.NewMonth(2024, time.March), Amount: test.D("12000")})
	require.Nil(t, err)

	report, err := suite.ledger.MonthReport(suite.ctx, types.NewMonth(2024, time.March), now)
	require.Nil(t, err)

	m := report.Month
	test.AssertDecimal(t, test.D("5000"), m.IncomeFromSites)
	test.AssertDecimal(t, test.D("1000"), m.AdditionalIncome)
	test.AssertDecimal(t, test.D("6000"), m.TotalIncome)
	test.AssertDecimal(t, test.D("300"), m.TotalTaxes)
	test.AssertDecimal(t, test.D("5700"), m.Profit)
	test.AssertDecimal(t, test.D("10661.85"), m.LoanPayments)
	test.AssertDecimal(t, test.D("10661.85"), m.LoanPaid)
	test.AssertDecimal(t, test.D("50"), m.GoalProgress)

	day := report.ByDay["2024-03-15"]
	test.AssertDecimal(t, test.D("5700"), day.Profit)
	assert.True(t, day.HasAdditionalIncome)

	// Nothing happened in April
	report, err = suite.ledger.MonthReport(suite.ctx, types.NewMonth(2024, time.April), now)
	require.Nil(t, err)
	assert.Empty(t, report.ByDay)
	test.AssertDecimal(t, decimal.Zero, report.Month.TotalIncome)
	test.AssertDecimal(t, test.D("10661.85"), report.Month.LoanPayments)
	test.AssertDecimal(t, decimal.Zero, report.Month.LoanPaid)
}

func (suite *TestSuiteStandard) TestMonthReportDatabaseError() {
	suite.CloseDB()

	_, err := suite.ledger.MonthReport(suite.ctx, types.NewMonth(2024, time.March), now)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestSetGoal() {
	t := suite.T()
	march := types.NewMonth(2024, time.March)

	first, err := suite.ledger.SetGoal(suite.ctx, models.MonthlyGoal{Month: march, Amount: test.D("1000")})
	require.Nil(t, err)

	second, err := suite.ledger.SetGoal(suite.ctx, models.MonthlyGoal{Month: march, Amount: test.D("2000"), Note: "More"})
	require.Nil(t, err)
	assert.Equal(t, first.ID, second.ID)

	var goals []models.MonthlyGoal
	require.Nil(t, models.DB.Find(&goals).Error)
	require.Len(t, goals, 1)
	test.AssertDecimal(t, test.D("2000"), goals[0].Amount)
	assert.Equal(t, "More", goals[0].Note)

	_, err = suite.ledger.SetGoal(suite.ctx, models.MonthlyGoal{Amount: test.D("1000")})
	assert.ErrorIs(t, err, models.ErrGoalMonthMissing)

	_, err = suite.ledger.SetGoal(suite.ctx, models.MonthlyGoal{Month: march})
	assert.ErrorIs(t, err, models.ErrGoalAmountNotPositive)
}

func (suite *TestSuiteStandard) TestTaskEvents() {
	t := suite.T()

	_ = suite.createTestTask(models.Task{
		Title: "Website: Bakery",
		Subtasks: []models.Subtask{
			{Title: "Design", Amount: test.ND("400"), Date: types.MustParseDate("2024-03-10")},
		},
	})
	_ = suite.createTestTask(models.Task{
		Title: "Website: Florist",
		Payments: []models.TaskPayment{
			{Qty: test.ND("3"), Price: test.ND("100"), Paid: true, Date: types.MustParseDate("2024-03-05")},
		},
	})
	_ = suite.createTestTask(models.Task{
		Title: "Logo: Bakery",
		ExpenseEntries: []models.ExpenseEntry{
			{Amount: test.D("50"), Date: types.MustParseDate("2024-03-01")},
		},
	})

	tests := []struct {
		pattern string
		amounts []string
	}{
		{"", []string{"50", "300", "400"}},
		{"Website:*", []string{"300", "400"}},
		{"*Bakery", []string{"50", "400"}},
		{"Nothing*", []string{}},
	}

	for _, tt := range tests {
		result, err := suite.ledger.TaskEvents(suite.ctx, tt.pattern)
		require.Nil(t, err)
		require.Len(t, result, len(tt.amounts), "pattern %q", tt.pattern)

		for i, amount := range tt.amounts {
			test.AssertDecimal(t, test.D(amount), result[i].Amount, "pattern %q", tt.pattern)
		}
	}

	result, err := suite.ledger.TaskEvents(suite.ctx, "Logo*")
	require.Nil(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, events.Expense, result[0].Kind)
}
