package ledger_test

import (
	"github.com/bizdesk/backend/internal/amortization"
	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateCredit() {
	t := suite.T()
	credit := suite.createTestCredit(models.Credit{Name: " Car "})

	loaded, err := suite.ledger.Credit(suite.ctx, credit.ID)
	require.Nil(t, err)

	assert.Equal(t, "Car", loaded.Name)
	assert.Equal(t, models.CreditActive, loaded.Status)
	assert.Equal(t, models.ScheduleAnnuity, loaded.ScheduleType)
	test.AssertDecimal(t, test.D("120000"), loaded.CurrentBalance)

	require.Len(t, loaded.Schedule, 12)
	for i, item := range loaded.Schedule {
		assert.Equal(t, i+1, item.MonthNumber)
		assert.Equal(t, amortization.ItemID(credit.ID, i+1), item.ID)
	}
	test.AssertDecimal(t, test.D("10661.85"), loaded.Schedule[0].PlannedPayment)
	test.AssertDecimal(t, decimal.Zero, loaded.Schedule[11].RemainingBalance)
	assert.Equal(t, "2024-02-15", loaded.Schedule[0].PaymentDate.String())
}

func (suite *TestSuiteStandard) TestCreateCreditInvalid() {
	t := suite.T()

	_, err := suite.ledger.CreateCredit(suite.ctx, models.Credit{
		Amount:                    test.D("1000"),
		InterestRatePercentAnnual: test.D("5"),
		TermMonths:                -1,
	})
	assert.ErrorIs(t, err, amortization.ErrTermNotPositive)

	var count int64
	require.Nil(t, models.DB.Model(&models.CreditScheduleItem{}).Count(&count).Error)
	assert.Zero(t, count)
	require.Nil(t, models.DB.Model(&models.Credit{}).Count(&count).Error)
	assert.Zero(t, count)
}

func (suite *TestSuiteStandard) TestCreditNotFound() {
	_, err := suite.ledger.Credit(suite.ctx, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestPayScheduleItem() {
	t := suite.T()
	credit := suite.createTestCredit(models.Credit{})

	updated, err := suite.ledger.PayScheduleItem(suite.ctx, credit.ID, credit.Schedule[0].ID, decimal.NullDecimal{}, now)
	require.Nil(t, err)
	test.AssertDecimal(t, test.D("110538.15"), updated.CurrentBalance)

	loaded, err := suite.ledger.Credit(suite.ctx, credit.ID)
	require.Nil(t, err)

	test.AssertDecimal(t, test.D("110538.15"), loaded.CurrentBalance)
	assert.True(t, loaded.Schedule[0].Paid)
	test.AssertDecimal(t, test.D("10661.85"), loaded.Schedule[0].PaidAmount.Decimal)
	require.NotNil(t, loaded.Schedule[0].PaidAt)
	assert.True(t, now.Equal(*loaded.Schedule[0].PaidAt))
	assert.False(t, loaded.Schedule[1].Paid)

	_, err = suite.ledger.PayScheduleItem(suite.ctx, credit.ID, credit.Schedule[0].ID, decimal.NullDecimal{}, now)
	assert.ErrorIs(t, err, amortization.ErrScheduleItemPaid)

	_, err = suite.ledger.PayScheduleItem(suite.ctx, credit.ID, uuid.New(), decimal.NullDecimal{}, now)
	assert.ErrorIs(t, err, amortization.ErrScheduleItemNotFound)

	_, err = suite.ledger.PayScheduleItem(suite.ctx, credit.ID, credit.Schedule[2].ID, decimal.NullDecimal{}, now)
	assert.ErrorIs(t, err, amortization.ErrEarlierItemUnpaid)

	loaded, err = suite.ledger.Credit(suite.ctx, credit.ID)
	require.Nil(t, err)
	assert.False(t, loaded.Schedule[2].Paid)
	test.AssertDecimal(t, test.D("110538.15"), loaded.CurrentBalance)
}

func (suite *TestSuiteStandard) TestPayScheduleItemClosesCredit() {
	t := suite.T()
	credit := suite.createTestCredit(models.Credit{TermMonths: 2, ScheduleType: models.ScheduleDifferentiated})

	var err error
	for _, item := range credit.Schedule {
		credit, err = suite.ledger.PayScheduleItem(suite.ctx, credit.ID, item.ID, decimal.NullDecimal{}, now)
		require.Nil(t, err)
	}

	loaded, err := suite.ledger.Credit(suite.ctx, credit.ID)
	require.Nil(t, err)
	assert.Equal(t, models.CreditClosed, loaded.Status)
	test.AssertDecimal(t, decimal.Zero, loaded.CurrentBalance)
}

func (suite *TestSuiteStandard) TestRebuildCredit() {
	t := suite.T()
	credit := suite.createTestCredit(models.Credit{})

	var err error
	for _, item := range credit.Schedule[:3] {
		credit, err = suite.ledger.PayScheduleItem(suite.ctx, credit.ID, item.ID, decimal.NullDecimal{}, now)
		require.Nil(t, err)
	}

	before, err := suite.ledger.Credit(suite.ctx, credit.ID)
	require.Nil(t, err)

	p := amortization.ParamsFor(before)
	p.AnnualRatePercent = test.D("6")

	_, err = suite.ledger.RebuildCredit(suite.ctx, credit.ID, p)
	require.Nil(t, err)

	after, err := suite.ledger.Credit(suite.ctx, credit.ID)
	require.Nil(t, err)
	require.Len(t, after.Schedule, 12)
	test.AssertDecimal(t, test.D("6"), after.InterestRatePercentAnnual)

	for i := range 3 {
		assert.Equal(t, before.Schedule[i], after.Schedule[i], "paid month %d changed", i+1)
	}

	principal := decimal.Zero
	for _, item := range after.Schedule[3:] {
		assert.False(t, item.Paid)
		principal = principal.Add(item.PrincipalPart)
	}
	test.AssertDecimal(t, before.CurrentBalance, principal)
	test.AssertDecimal(t, decimal.Zero, after.Schedule[11].RemainingBalance)
	assert.True(t, after.Schedule[3].InterestPart.LessThan(before.Schedule[3].InterestPart))
}

func (suite *TestSuiteStandard) TestRebuildCreditTermExhausted() {
	t := suite.T()
	credit := suite.createTestCredit(models.Credit{})

	credit, err := suite.ledger.PayScheduleItem(suite.ctx, credit.ID, credit.Schedule[0].ID, decimal.NullDecimal{}, now)
	require.Nil(t, err)

	p := amortization.ParamsFor(credit)
	p.TermMonths = 1

	_, err = suite.ledger.RebuildCredit(suite.ctx, credit.ID, p)
	assert.ErrorIs(t, err, amortization.ErrTermExhausted)

	loaded, err := suite.ledger.Credit(suite.ctx, credit.ID)
	require.Nil(t, err)
	assert.Len(t, loaded.Schedule, 12, "the schedule must not change on errors")
	assert.Equal(t, 12, loaded.TermMonths)
}

func (suite *TestSuiteStandard) TestCredits() {
	t := suite.T()
	_ = suite.createTestCredit(models.Credit{Name: "Car"})
	_ = suite.createTestCredit(models.Credit{Name: "Laptop", TermMonths: 6})

	credits, err := suite.ledger.Credits(suite.ctx)
	require.Nil(t, err)
	require.Len(t, credits, 2)
	assert.Len(t, credits[0].Schedule, 12)
	assert.Len(t, credits[1].Schedule, 6)
}
