package models_test

import (
	"time"

	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/bizdesk/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLoadSnapshot() {
	t := suite.T()

	_ = suite.createTestTask(models.Task{
		Title:    "Shop",
		Amount:   test.D("1000"),
		Payments: []models.TaskPayment{{Amount: test.ND("1000"), Paid: true}},
	})
	_ = suite.createTestExtraWork(models.ExtraWork{
		WorkDates: dates("2024-03-04"),
		DailyRate: test.D("1000"),
	})

	creditID := uuid.New()
	_ = suite.createTestCredit(models.Credit{
		DefaultModel: models.DefaultModel{ID: creditID},
		Amount:       test.D("3000"),
		TermMonths:   3,
		Schedule: []models.CreditScheduleItem{
			{MonthNumber: 3},
			{MonthNumber: 1},
			{MonthNumber: 2},
		},
	})
	_ = suite.createTestGoal(models.MonthlyGoal{Month: types.NewMonth(2024, time.March), Amount: test.D("1")})
	require.Nil(t, models.DB.Create(&models.Income{Amount: test.D("10"), Date: types.MustParseDate("2024-03-01")}).Error)

	snapshot, err := models.LoadSnapshot(models.DB)
	require.Nil(t, err)

	require.Len(t, snapshot.Tasks, 1)
	assert.Len(t, snapshot.Tasks[0].Payments, 1)
	require.Len(t, snapshot.ExtraWorks, 1)
	test.AssertDecimal(t, test.D("1000"), snapshot.ExtraWorks[0].TotalAmount)
	require.Len(t, snapshot.Credits, 1)
	assert.Equal(t, creditID, snapshot.Credits[0].ID)
	assert.Equal(t, models.ScheduleAnnuity, snapshot.Credits[0].ScheduleType)
	assert.Equal(t, models.CreditActive, snapshot.Credits[0].Status)

	require.Len(t, snapshot.Credits[0].Schedule, 3)
	for i, item := range snapshot.Credits[0].Schedule {
		assert.Equal(t, i+1, item.MonthNumber, "schedule must be ordered by month number")
	}

	assert.Len(t, snapshot.Goals, 1)
	assert.Len(t, snapshot.Incomes, 1)
}

func (suite *TestSuiteStandard) TestLoadSnapshotClosedDB() {
	suite.CloseDB()

	_, err := models.LoadSnapshot(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestCreditInvalidScheduleType() {
	err := models.DB.Create(&models.Credit{ScheduleType: "balloon"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvalidScheduleType)
}
