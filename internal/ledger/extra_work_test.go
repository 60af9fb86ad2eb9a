package ledger_test

import (
	"testing"

	"github.com/bizdesk/backend/internal/ledger"
	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/bizdesk/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestCreateExtraWorkModes() {
	workDates := []types.Date{
		types.MustParseDate("2024-03-02"),
		types.MustParseDate("2024-03-04"),
		types.MustParseDate("2024-03-05"),
	}

	tests := []struct {
		name     string
		mode     models.PaymentMode
		payments []string
	}{
		{"single", models.PaymentModeSingle, []string{"7000"}},
		{"default is single", "", []string{"7000"}},
		{"daily", models.PaymentModeDaily, []string{"3000", "2000", "2000"}},
		{"manual", models.PaymentModeManual, []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			work, err := suite.ledger.CreateExtraWork(suite.ctx, models.ExtraWork{
				Title:       tt.name,
				WorkDates:   workDates,
				DailyRate:   test.D("2000"),
				WeekendRate: test.ND("3000"),
				PaymentMode: tt.mode,
			}, types.Date{})
			require.Nil(t, err)

			var loaded models.ExtraWork
			require.Nil(t, models.DB.Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("date") }).First(&loaded, "id = ?", work.ID).Error)

			test.AssertDecimal(t, test.D("7000"), loaded.TotalAmount)
			assert.NotEqual(t, models.PaymentMode(""), loaded.PaymentMode)
			assert.Equal(t, loaded.PaymentMode, loaded.Mode())

			require.Len(t, loaded.Payments, len(tt.payments))
			for i, amount := range tt.payments {
				test.AssertDecimal(t, test.D(amount), loaded.Payments[i].Amount)
				assert.False(t, loaded.Payments[i].Paid)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExtraWorkDueDate() {
	t := suite.T()

	work, err := suite.ledger.CreateExtraWork(suite.ctx, models.ExtraWork{
		WorkDates: []types.Date{types.MustParseDate("2024-03-12"), types.MustParseDate("2024-03-04")},
		DailyRate: test.D("100"),
	}, types.Date{})
	require.Nil(t, err)
	require.Len(t, work.Payments, 1)
	assert.Equal(t, "2024-03-12", work.Payments[0].Date.String())

	work, err = suite.ledger.CreateExtraWork(suite.ctx, models.ExtraWork{
		WorkDates: []types.Date{types.MustParseDate("2024-03-04")},
		DailyRate: test.D("100"),
	}, types.MustParseDate("2024-04-01"))
	require.Nil(t, err)
	assert.Equal(t, "2024-04-01", work.Payments[0].Date.String())
}

func (suite *TestSuiteStandard) TestCreateExtraWorkInvalid() {
	_, err := suite.ledger.CreateExtraWork(suite.ctx, models.ExtraWork{
		DailyRate:   test.D("100"),
		PaymentMode: "weekly",
	}, types.Date{})
	assert.ErrorIs(suite.T(), err, models.ErrInvalidPaymentMode)
}

func (suite *TestSuiteStandard) TestPayExtraWork() {
	t := suite.T()

	work, err := suite.ledger.CreateExtraWork(suite.ctx, models.ExtraWork{
		WorkDates:   []types.Date{types.MustParseDate("2024-03-02"), types.MustParseDate("2024-03-04")},
		DailyRate:   test.D("2000"),
		WeekendRate: test.ND("3000"),
		PaymentMode: models.PaymentModeDaily,
	}, types.Date{})
	require.Nil(t, err)

	payment, err := suite.ledger.PayExtraWork(suite.ctx, work.Payments[0].ID, types.MustParseDate("2024-03-06"))
	require.Nil(t, err)
	assert.True(t, payment.Paid)
	assert.Equal(t, "2024-03-06", payment.Date.String())

	works, err := suite.ledger.ExtraWorks(suite.ctx)
	require.Nil(t, err)
	require.Len(t, works, 1)

	test.AssertDecimal(t, test.D("3000"), works[0].PaidAmount())
	test.AssertDecimal(t, test.D("60"), works[0].PaidPercent())
	assert.Equal(t, models.PaymentStatusPartial, works[0].PaymentStatus())

	_, err = suite.ledger.PayExtraWork(suite.ctx, work.Payments[0].ID, types.Date{})
	assert.ErrorIs(t, err, ledger.ErrPaymentPaid)

	_, err = suite.ledger.PayExtraWork(suite.ctx, uuid.New(), types.Date{})
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}
