package ledger_test

import (
	"encoding/json"

	"github.com/bizdesk/backend/internal/ledger"
	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/bizdesk/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) seed() {
	t := suite.T()

	_ = suite.createTestTask(models.Task{
		Title:    "Shop",
		Amount:   test.D("3000"),
		Subtasks: []models.Subtask{{Title: "Catalog", Amount: test.ND("1000"), Date: types.MustParseDate("2024-03-05")}},
	})
	require.Nil(t, models.DB.Create(&models.Income{Amount: test.D("250"), Date: types.MustParseDate("2024-03-07")}).Error)

	_, err := suite.ledger.CreateExtraWork(suite.ctx, models.ExtraWork{
		WorkDates:   []types.Date{types.MustParseDate("2024-03-04")},
		DailyRate:   test.D("2000"),
		PaymentMode: models.PaymentModeDaily,
	}, types.Date{})
	require.Nil(t, err)

	_ = suite.createTestCredit(models.Credit{TermMonths: 3})
}

func (suite *TestSuiteStandard) TestExportImport() {
	t := suite.T()
	suite.seed()

	exported, err := suite.ledger.Export(suite.ctx)
	require.Nil(t, err)

	data, err := json.Marshal(exported)
	require.Nil(t, err)

	var snapshot models.Snapshot
	require.Nil(t, json.Unmarshal(data, &snapshot))

	err = suite.ledger.Import(suite.ctx, snapshot, false)
	assert.ErrorIs(t, err, ledger.ErrNotEmpty)

	require.Nil(t, suite.ledger.Import(suite.ctx, snapshot, true))

	reimported, err := suite.ledger.Export(suite.ctx)
	require.Nil(t, err)

	require.Len(t, reimported.Tasks, 1)
	assert.Equal(t, exported.Tasks[0].ID, reimported.Tasks[0].ID)
	require.Len(t, reimported.Tasks[0].Subtasks, 1)
	test.AssertDecimal(t, test.D("1000"), reimported.Tasks[0].Subtasks[0].Amount.Decimal)

	require.Len(t, reimported.Incomes, 1)
	require.Len(t, reimported.ExtraWorks, 1)
	require.Len(t, reimported.ExtraWorks[0].Payments, 1)
	test.AssertDecimal(t, test.D("2000"), reimported.ExtraWorks[0].TotalAmount)

	require.Len(t, reimported.Credits, 1)
	require.Len(t, reimported.Credits[0].Schedule, 3)
	for i, item := range reimported.Credits[0].Schedule {
		assert.Equal(t, exported.Credits[0].Schedule[i].ID, item.ID)
		test.AssertDecimal(t, exported.Credits[0].Schedule[i].PlannedPayment, item.PlannedPayment)
	}
}

func (suite *TestSuiteStandard) TestImportIntoEmptyDatabase() {
	t := suite.T()
	suite.seed()

	exported, err := suite.ledger.Export(suite.ctx)
	require.Nil(t, err)

	require.Nil(t, suite.ledger.Cleanup(suite.ctx, ledger.CleanupConfirmation))

	empty, err := suite.ledger.Export(suite.ctx)
	require.Nil(t, err)
	assert.Empty(t, empty.Tasks)
	assert.Empty(t, empty.Credits)

	require.Nil(t, suite.ledger.Import(suite.ctx, exported, false))

	reimported, err := suite.ledger.Export(suite.ctx)
	require.Nil(t, err)
	assert.Len(t, reimported.Tasks, 1)
	assert.Len(t, reimported.Credits, 1)
}

func (suite *TestSuiteStandard) TestImportIsAtomic() {
	t := suite.T()

	snapshot := models.Snapshot{
		Incomes: []models.Income{{Amount: test.D("10"), Date: types.MustParseDate("2024-03-01")}},
		Goals:   []models.MonthlyGoal{{Month: types.NewMonth(2024, 3), Amount: test.D("-1")}},
	}

	err := suite.ledger.Import(suite.ctx, snapshot, false)
	assert.ErrorIs(t, err, models.ErrGoalAmountNotPositive)

	var count int64
	require.Nil(t, models.DB.Model(&models.Income{}).Count(&count).Error)
	assert.Zero(t, count)
}

func (suite *TestSuiteStandard) TestCleanupConfirmation() {
	t := suite.T()
	suite.seed()

	err := suite.ledger.Cleanup(suite.ctx, "yes")
	assert.ErrorIs(t, err, ledger.ErrCleanupConfirmation)

	exported, err := suite.ledger.Export(suite.ctx)
	require.Nil(t, err)
	assert.Len(t, exported.Tasks, 1)
}
