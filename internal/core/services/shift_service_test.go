package services_test

import (
	"context"
	"testing"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/core/services"
	"github.com/dukapoint/pos_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ShiftServiceTestSuite struct {
	suite.Suite
	mockShiftRepo    *MockShiftRepository
	mockSaleRepo     *MockSaleRepository
	mockCashflowRepo *MockCashflowRepository
	service          portssvc.ShiftSvcFacade
	userID           string
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockCashflowRepo = new(MockCashflowRepository)
	suite.service = services.NewShiftService(suite.mockShiftRepo, suite.mockSaleRepo, suite.mockCashflowRepo)
	suite.userID = uuid.NewString()
}

func (suite *ShiftServiceTestSuite) activeShift(status domain.ShiftStatus) *domain.Shift {
	return &domain.Shift{
		ShiftID:          uuid.NewString(),
		UserID:           suite.userID,
		Status:           status,
		StartingFloat:    decimal.NewFromInt(5000),
		SaleIDs:          []string{},
		ExpenseIDs:       []string{},
		PaymentBreakdown: map[domain.PaymentMethod]decimal.Decimal{},
		Version:          2,
	}
}

func (suite *ShiftServiceTestSuite) TestStartShift() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(nil).Once()

	shift, err := suite.service.StartShift(ctx, suite.userID, dto.StartShiftRequest{StartingFloat: decimal.NewFromInt(5000)})

	suite.Require().NoError(err)
	suite.Equal(domain.ShiftActive, shift.Status)
	suite.True(shift.StartingFloat.Equal(decimal.NewFromInt(5000)))
	suite.Equal(int64(1), shift.Version)
	suite.NotEmpty(shift.ShiftID)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestStartShift_NegativeFloat() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.StartShift(ctx, suite.userID, dto.StartShiftRequest{StartingFloat: decimal.NewFromInt(-1)})

	suite.Require().ErrorIs(err, apperrors.ErrInvalidFloat)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestStartShift_AlreadyOpen() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(suite.activeShift(domain.ShiftActive), nil).Once()

	_, err := suite.service.StartShift(ctx, suite.userID, dto.StartShiftRequest{StartingFloat: decimal.NewFromInt(100)})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ShiftServiceTestSuite) TestRecordExpense() {
	ctx := context.Background()
	shift := suite.activeShift(domain.ShiftActive)
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(shift, nil).Once()
	suite.mockCashflowRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense"), mock.MatchedBy(func(sh domain.Shift) bool {
		return sh.Version == 3 && len(sh.ExpenseIDs) == 1
	}), int64(2)).Return(nil).Once()

	expense, err := suite.service.RecordExpense(ctx, suite.userID, dto.RecordExpenseRequest{
		Description: "stationery",
		Amount:      decimal.NewFromInt(50),
		Source:      "CASH_DRAWER",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(expense.ShiftID)
	suite.Equal(shift.ShiftID, *expense.ShiftID)
	suite.Equal(domain.SourceCashDrawer, expense.Source)
	suite.mockCashflowRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestRecordExpense_NonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.RecordExpense(ctx, suite.userID, dto.RecordExpenseRequest{
		Description: "bad",
		Amount:      decimal.Zero,
		Source:      "CASH_DRAWER",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShiftServiceTestSuite) TestRecordExpense_ShiftClosing() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(suite.activeShift(domain.ShiftClosing), nil).Once()

	_, err := suite.service.RecordExpense(ctx, suite.userID, dto.RecordExpenseRequest{
		Description: "stationery",
		Amount:      decimal.NewFromInt(50),
		Source:      "CASH_DRAWER",
	})

	suite.Require().ErrorIs(err, apperrors.ErrShiftNotActive)
}

func (suite *ShiftServiceTestSuite) TestRecordSupplierPayment() {
	ctx := context.Background()
	shift := suite.activeShift(domain.ShiftActive)
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(shift, nil).Once()
	suite.mockCashflowRepo.On("SaveSupplierPayment", ctx, mock.MatchedBy(func(p domain.SupplierPayment) bool {
		return p.ShiftID != nil && *p.ShiftID == shift.ShiftID && p.Method == domain.SourceCashDrawer
	})).Return(nil).Once()

	payment, err := suite.service.RecordSupplierPayment(ctx, suite.userID, dto.RecordSupplierPaymentRequest{
		SupplierID: uuid.NewString(),
		Amount:     decimal.NewFromInt(300),
		Method:     "CASH_DRAWER",
	})

	suite.Require().NoError(err)
	suite.True(payment.Amount.Equal(decimal.NewFromInt(300)))
	suite.mockCashflowRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestRecordSupplierPayment_ShiftClosing() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(suite.activeShift(domain.ShiftClosing), nil).Once()

	_, err := suite.service.RecordSupplierPayment(ctx, suite.userID, dto.RecordSupplierPaymentRequest{
		SupplierID: uuid.NewString(),
		Amount:     decimal.NewFromInt(300),
		Method:     "CASH_DRAWER",
	})

	suite.Require().ErrorIs(err, apperrors.ErrShiftNotActive)
	suite.mockCashflowRepo.AssertNotCalled(suite.T(), "SaveSupplierPayment", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestRecordBankDeposit() {
	ctx := context.Background()
	shift := suite.activeShift(domain.ShiftActive)
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(shift, nil).Once()
	suite.mockCashflowRepo.On("SaveBankDeposit", ctx, mock.MatchedBy(func(d domain.BankDeposit) bool {
		return d.ShiftID != nil && *d.ShiftID == shift.ShiftID && d.Reference == "DEP-001"
	})).Return(nil).Once()

	deposit, err := suite.service.RecordBankDeposit(ctx, suite.userID, dto.RecordBankDepositRequest{
		Amount:    decimal.NewFromInt(2000),
		Reference: "DEP-001",
	})

	suite.Require().NoError(err)
	suite.True(deposit.Amount.Equal(decimal.NewFromInt(2000)))
	suite.mockCashflowRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestRecordBankDeposit_NonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.RecordBankDeposit(ctx, suite.userID, dto.RecordBankDepositRequest{Amount: decimal.Zero})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShiftServiceTestSuite) TestRequestClose() {
	ctx := context.Background()
	shift := suite.activeShift(domain.ShiftActive)
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("UpdateShift", ctx, mock.MatchedBy(func(sh domain.Shift) bool {
		return sh.Status == domain.ShiftClosing && sh.Version == 3
	}), int64(2)).Return(nil).Once()

	updated, err := suite.service.RequestClose(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ShiftClosing, updated.Status)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCancelClose() {
	ctx := context.Background()
	shift := suite.activeShift(domain.ShiftClosing)
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("UpdateShift", ctx, mock.MatchedBy(func(sh domain.Shift) bool {
		return sh.Status == domain.ShiftActive
	}), int64(2)).Return(nil).Once()

	updated, err := suite.service.CancelClose(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ShiftActive, updated.Status)
}

func (suite *ShiftServiceTestSuite) TestConfirmClose_Balanced() {
	ctx := context.Background()
	shift := suite.activeShift(domain.ShiftClosing)

	sales := []domain.Sale{{
		SaleID:    uuid.NewString(),
		ShiftID:   shift.ShiftID,
		Type:      domain.SaleTypeSale,
		Breakdown: domain.TotalsBreakdown{Total: decimal.NewFromInt(1000)},
		Payments:  []domain.Payment{{Method: domain.PaymentCash, Amount: decimal.NewFromInt(1000)}},
		Change:    decimal.Zero,
	}}
	expenses := []domain.Expense{{
		ExpenseID: uuid.NewString(),
		ShiftID:   &shift.ShiftID,
		Amount:    decimal.NewFromInt(50),
		Source:    domain.SourceCashDrawer,
	}}
	supplierPayments := []domain.SupplierPayment{{
		PaymentID: uuid.NewString(),
		ShiftID:   &shift.ShiftID,
		Amount:    decimal.NewFromInt(200),
		Method:    domain.SourceCashDrawer,
	}}

	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(shift, nil).Once()
	suite.mockSaleRepo.On("ListSalesByShift", ctx, shift.ShiftID).Return(sales, nil).Once()
	suite.mockCashflowRepo.On("ListExpensesByShift", ctx, shift.ShiftID).Return(expenses, nil).Once()
	suite.mockCashflowRepo.On("ListSupplierPaymentsByShift", ctx, shift.ShiftID).Return(supplierPayments, nil).Once()
	suite.mockCashflowRepo.On("ListBankDepositsByShift", ctx, shift.ShiftID).Return([]domain.BankDeposit{}, nil).Once()
	suite.mockShiftRepo.On("UpdateShift", ctx, mock.AnythingOfType("domain.Shift"), int64(2)).Return(nil).Once()

	// 5000 float + 1000 cash sales - 50 expense - 200 supplier = 5750
	closed, err := suite.service.ConfirmClose(ctx, suite.userID, dto.ConfirmCloseRequest{
		ActualCash: decimal.NewFromInt(5750),
		Notes:      "all good",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.ShiftClosed, closed.Status)
	suite.Require().NotNil(closed.EndTime)
	suite.True(closed.ExpectedCash.Equal(decimal.NewFromInt(5750)), "expected %s", closed.ExpectedCash)
	suite.True(closed.Variance.IsZero(), "variance %s", closed.Variance)
	suite.True(closed.TotalPayouts.Equal(decimal.NewFromInt(250)), "payouts %s", closed.TotalPayouts)
	suite.Equal("all good", closed.Notes)
	suite.Equal(int64(3), closed.Version)
}

func (suite *ShiftServiceTestSuite) TestConfirmClose_Shortage() {
	ctx := context.Background()
	shift := suite.activeShift(domain.ShiftClosing)

	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(shift, nil).Once()
	suite.mockSaleRepo.On("ListSalesByShift", ctx, shift.ShiftID).Return([]domain.Sale{}, nil).Once()
	suite.mockCashflowRepo.On("ListExpensesByShift", ctx, shift.ShiftID).Return([]domain.Expense{}, nil).Once()
	suite.mockCashflowRepo.On("ListSupplierPaymentsByShift", ctx, shift.ShiftID).Return([]domain.SupplierPayment{}, nil).Once()
	suite.mockCashflowRepo.On("ListBankDepositsByShift", ctx, shift.ShiftID).Return([]domain.BankDeposit{}, nil).Once()
	suite.mockShiftRepo.On("UpdateShift", ctx, mock.AnythingOfType("domain.Shift"), int64(2)).Return(nil).Once()

	closed, err := suite.service.ConfirmClose(ctx, suite.userID, dto.ConfirmCloseRequest{
		ActualCash: decimal.NewFromInt(4950),
	})

	suite.Require().NoError(err)
	suite.True(closed.Variance.Equal(decimal.NewFromInt(-50)), "variance %s", closed.Variance)
}

func (suite *ShiftServiceTestSuite) TestConfirmClose_RequiresClosing() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(suite.activeShift(domain.ShiftActive), nil).Once()

	_, err := suite.service.ConfirmClose(ctx, suite.userID, dto.ConfirmCloseRequest{ActualCash: decimal.NewFromInt(5000)})

	suite.Require().ErrorIs(err, apperrors.ErrShiftNotClosing)
}

func (suite *ShiftServiceTestSuite) TestConfirmClose_NegativeCount() {
	ctx := context.Background()

	_, err := suite.service.ConfirmClose(ctx, suite.userID, dto.ConfirmCloseRequest{ActualCash: decimal.NewFromInt(-1)})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShiftServiceTestSuite) TestGetActiveShift_None() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetActiveShift(ctx, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNoActiveShift)
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
