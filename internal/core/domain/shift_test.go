package domain_test

import (
	"testing"
	"time"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveShift(t *testing.T) domain.Shift {
	t.Helper()
	shift, err := domain.NewShift("shift-1", "user-1", decimal.NewFromInt(5000), time.Now())
	require.NoError(t, err)
	return shift
}

func TestNewShift_RejectsNegativeFloat(t *testing.T) {
	_, err := domain.NewShift("shift-1", "user-1", decimal.NewFromInt(-1), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidFloat)
}

func TestNewShift_ZeroFloatIsValid(t *testing.T) {
	shift, err := domain.NewShift("shift-1", "user-1", decimal.Zero, time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftActive, shift.Status)
	assert.Equal(t, int64(1), shift.Version)
}

func TestShift_RecordSaleFoldsPayments(t *testing.T) {
	shift := newActiveShift(t)
	ref := "MPE123"
	sale := domain.Sale{
		SaleID: "sale-1",
		Payments: []domain.Payment{
			{Method: domain.PaymentCash, Amount: decimal.NewFromInt(500)},
			{Method: domain.PaymentMobileMoney, Amount: decimal.NewFromInt(200), Reference: &ref},
		},
		Change:    decimal.NewFromInt(50),
		Breakdown: domain.TotalsBreakdown{Total: decimal.NewFromInt(650)},
	}

	require.NoError(t, shift.RecordSale(sale))

	assert.Equal(t, []string{"sale-1"}, shift.SaleIDs)
	assert.True(t, shift.PaymentBreakdown[domain.PaymentCash].Equal(decimal.NewFromInt(500)))
	assert.True(t, shift.PaymentBreakdown[domain.PaymentMobileMoney].Equal(decimal.NewFromInt(200)))
	assert.True(t, shift.ChangeGiven.Equal(decimal.NewFromInt(50)))
	assert.True(t, shift.TotalSales.Equal(decimal.NewFromInt(650)))
}

func TestShift_RecordSaleRequiresActive(t *testing.T) {
	shift := newActiveShift(t)
	require.NoError(t, shift.RequestClose())

	err := shift.RecordSale(domain.Sale{SaleID: "sale-1"})
	assert.ErrorIs(t, err, apperrors.ErrShiftNotActive)
	assert.Empty(t, shift.SaleIDs)
}

func TestShift_CloseLifecycle(t *testing.T) {
	shift := newActiveShift(t)

	require.NoError(t, shift.RequestClose())
	assert.Equal(t, domain.ShiftClosing, shift.Status)

	// Cancelling is repeatable and returns the shift to Active.
	require.NoError(t, shift.CancelClose())
	require.NoError(t, shift.CancelClose())
	assert.Equal(t, domain.ShiftActive, shift.Status)

	require.NoError(t, shift.RequestClose())
	report := domain.CashReport{
		ExpectedCash: decimal.NewFromInt(5750),
		ActualCash:   decimal.NewFromInt(5700),
		Variance:     decimal.NewFromInt(-50),
	}
	now := time.Now()
	require.NoError(t, shift.ConfirmClose(report, decimal.NewFromInt(200), "till short", now))

	assert.Equal(t, domain.ShiftClosed, shift.Status)
	require.NotNil(t, shift.EndTime)
	assert.Equal(t, now, *shift.EndTime)
	assert.True(t, shift.ExpectedCash.Equal(decimal.NewFromInt(5750)))
	assert.True(t, shift.Variance.Equal(decimal.NewFromInt(-50)))
	assert.Equal(t, "till short", shift.Notes)

	// Closed is terminal.
	assert.ErrorIs(t, shift.RequestClose(), apperrors.ErrShiftNotActive)
	assert.ErrorIs(t, shift.CancelClose(), apperrors.ErrShiftNotClosing)
	assert.ErrorIs(t, shift.ConfirmClose(report, decimal.Zero, "", now), apperrors.ErrShiftNotClosing)
}

func TestShift_ConfirmCloseRequiresClosing(t *testing.T) {
	shift := newActiveShift(t)
	err := shift.ConfirmClose(domain.CashReport{}, decimal.Zero, "", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrShiftNotClosing)
	assert.Equal(t, domain.ShiftActive, shift.Status)
}
