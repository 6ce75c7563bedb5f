package services_test

import (
	"context"
	"testing"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/core/services"
	"github.com/dukapoint/pos_backend/internal/dto"
	"github.com/dukapoint/pos_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CheckoutServiceTestSuite struct {
	suite.Suite
	mockSaleRepo    *MockSaleRepository
	mockShiftRepo   *MockShiftRepository
	mockCustomerSvc *MockCustomerService
	service         portssvc.CheckoutSvcFacade
	cashierID       string
	shift           domain.Shift
}

func (suite *CheckoutServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockCustomerSvc = new(MockCustomerService)

	cfg := &config.Config{
		VATRate:                     decimal.NewFromFloat(0.16),
		LoyaltyRedemptionRate:       decimal.NewFromInt(1),
		LoyaltyMaxRedemptionPercent: decimal.NewFromInt(50),
	}
	suite.service = services.NewCheckoutService(suite.mockSaleRepo, suite.mockShiftRepo, suite.mockCustomerSvc, cfg)

	suite.cashierID = uuid.NewString()
	suite.shift = domain.Shift{
		ShiftID:          uuid.NewString(),
		UserID:           suite.cashierID,
		Status:           domain.ShiftActive,
		StartingFloat:    decimal.NewFromInt(5000),
		SaleIDs:          []string{},
		ExpenseIDs:       []string{},
		PaymentBreakdown: map[domain.PaymentMethod]decimal.Decimal{},
		Version:          3,
	}
}

// cartLines is the running example: 2x50 and 1x100, both tax-exclusive,
// which totals 232.00 at 16% VAT.
func cartLines() []dto.LineItemRequest {
	return []dto.LineItemRequest{
		{ProductID: "milk", UnitPrice: decimal.NewFromInt(50), Quantity: decimal.NewFromInt(2), PricingType: "EXCLUSIVE"},
		{ProductID: "bread", UnitPrice: decimal.NewFromInt(100), Quantity: decimal.NewFromInt(1), PricingType: "EXCLUSIVE"},
	}
}

func payCash(amount int64) []dto.PaymentRequest {
	return []dto.PaymentRequest{{Method: "CASH", Amount: decimal.NewFromInt(amount)}}
}

func (suite *CheckoutServiceTestSuite) TestPreviewTotals() {
	ctx := context.Background()

	breakdown, err := suite.service.PreviewTotals(ctx, dto.ComputeTotalsRequest{Lines: cartLines()})

	suite.Require().NoError(err)
	suite.True(breakdown.GrossSubtotal.Equal(decimal.NewFromInt(200)), "gross %s", breakdown.GrossSubtotal)
	suite.True(breakdown.Tax.Equal(decimal.NewFromInt(32)), "tax %s", breakdown.Tax)
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(232)), "total %s", breakdown.Total)
}

func (suite *CheckoutServiceTestSuite) TestPreviewTotals_NegativeQuantity() {
	ctx := context.Background()
	lines := cartLines()
	lines[0].Quantity = decimal.NewFromInt(-1)

	_, err := suite.service.PreviewTotals(ctx, dto.ComputeTotalsRequest{Lines: lines})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_CashWithChange() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&suite.shift, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.MatchedBy(func(sh domain.Shift) bool {
		return sh.Version == 4 && len(sh.SaleIDs) == 1
	}), int64(3)).Return(nil).Once()

	sale, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines:    cartLines(),
		Payments: payCash(250),
	}, suite.cashierID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.Equal(domain.SaleTypeSale, sale.Type)
	suite.Equal(suite.shift.ShiftID, sale.ShiftID)
	suite.True(sale.Breakdown.Total.Equal(decimal.NewFromInt(232)))
	suite.True(sale.Change.Equal(decimal.NewFromInt(18)), "change %s", sale.Change)
	suite.Equal(suite.cashierID, sale.CreatedBy)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_InsufficientCash() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&suite.shift, nil).Once()

	_, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines:    cartLines(),
		Payments: payCash(200),
	}, suite.cashierID)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientPayment)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_ElectronicOverpayRejected() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&suite.shift, nil).Once()

	_, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines:    cartLines(),
		Payments: []dto.PaymentRequest{{Method: "CARD", Amount: decimal.NewFromInt(240)}},
	}, suite.cashierID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_MixedTender() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&suite.shift, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("domain.Shift"), int64(3)).Return(nil).Once()

	sale, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines: cartLines(),
		Payments: []dto.PaymentRequest{
			{Method: "MOBILE_MONEY", Amount: decimal.NewFromInt(100)},
			{Method: "CASH", Amount: decimal.NewFromInt(150)},
		},
	}, suite.cashierID)

	suite.Require().NoError(err)
	// 232 due, 100 mobile, 150 cash -> 18 change from the cash side only.
	suite.True(sale.Change.Equal(decimal.NewFromInt(18)), "change %s", sale.Change)
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_NoActiveShift() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines:    cartLines(),
		Payments: payCash(250),
	}, suite.cashierID)

	suite.Require().ErrorIs(err, apperrors.ErrNoActiveShift)
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_ShiftClosing() {
	ctx := context.Background()
	closing := suite.shift
	closing.Status = domain.ShiftClosing
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&closing, nil).Once()

	_, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines:    cartLines(),
		Payments: payCash(250),
	}, suite.cashierID)

	suite.Require().ErrorIs(err, apperrors.ErrShiftNotActive)
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_VersionConflict() {
	ctx := context.Background()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&suite.shift, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("domain.Shift"), int64(3)).Return(apperrors.ErrVersionConflict).Once()

	_, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines:    cartLines(),
		Payments: payCash(250),
	}, suite.cashierID)

	suite.Require().ErrorIs(err, apperrors.ErrVersionConflict)
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_PointsAndDeposit() {
	ctx := context.Background()
	customerID := uuid.NewString()
	customer := domain.Customer{CustomerID: customerID, LoyaltyPoints: decimal.NewFromInt(500)}

	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&suite.shift, nil).Once()
	suite.mockCustomerSvc.On("GetCustomerByID", ctx, customerID).Return(&customer, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("domain.Shift"), int64(3)).Return(nil).Once()
	suite.mockCustomerSvc.On("DeductPoints", ctx, customerID, decimal.NewFromInt(50), suite.cashierID).Return(nil).Once()

	// Total 232, deposit 32 -> 200 due. 50 points at rate 1 are within the
	// 50% cap (100), leaving 150 for cash.
	sale, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines:           cartLines(),
		Payments:        payCash(150),
		CustomerID:      &customerID,
		PointsRequested: decimal.NewFromInt(50),
		DepositApplied:  decimal.NewFromInt(32),
	}, suite.cashierID)

	suite.Require().NoError(err)
	suite.True(sale.PointsValue.Equal(decimal.NewFromInt(50)))
	suite.True(sale.DepositApplied.Equal(decimal.NewFromInt(32)))
	suite.True(sale.Change.IsZero(), "change %s", sale.Change)

	// The points portion is carried as its own tender entry.
	var pointsTender *domain.Payment
	for i := range sale.Payments {
		if sale.Payments[i].Method == domain.PaymentPoints {
			pointsTender = &sale.Payments[i]
		}
	}
	suite.Require().NotNil(pointsTender)
	suite.True(pointsTender.Amount.Equal(decimal.NewFromInt(50)))
	suite.mockCustomerSvc.AssertExpectations(suite.T())
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_RedemptionOverBalance() {
	ctx := context.Background()
	customerID := uuid.NewString()
	customer := domain.Customer{CustomerID: customerID, LoyaltyPoints: decimal.NewFromInt(100)}

	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&suite.shift, nil).Once()
	suite.mockCustomerSvc.On("GetCustomerByID", ctx, customerID).Return(&customer, nil).Once()

	_, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines:           cartLines(),
		Payments:        payCash(250),
		CustomerID:      &customerID,
		PointsRequested: decimal.NewFromInt(120),
	}, suite.cashierID)

	suite.Require().ErrorIs(err, apperrors.ErrRedemptionExceedsBalance)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestFinalizeSale_RedemptionOverCapRejected() {
	ctx := context.Background()
	customerID := uuid.NewString()
	customer := domain.Customer{CustomerID: customerID, LoyaltyPoints: decimal.NewFromInt(500)}

	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&suite.shift, nil).Once()
	suite.mockCustomerSvc.On("GetCustomerByID", ctx, customerID).Return(&customer, nil).Once()

	// 400 points exceed the 50% cap of the 232 due; the request is rejected,
	// not clamped down to the cap.
	_, err := suite.service.FinalizeSale(ctx, dto.FinalizeSaleRequest{
		Lines:           cartLines(),
		Payments:        payCash(250),
		CustomerID:      &customerID,
		PointsRequested: decimal.NewFromInt(400),
	}, suite.cashierID)

	suite.Require().ErrorIs(err, apperrors.ErrRedemptionExceedsBalance)
}

func (suite *CheckoutServiceTestSuite) TestReturnSale() {
	ctx := context.Background()
	original := domain.Sale{
		SaleID:  uuid.NewString(),
		ShiftID: uuid.NewString(),
		Type:    domain.SaleTypeSale,
		Breakdown: domain.TotalsBreakdown{
			GrossSubtotal: decimal.NewFromInt(200),
			TaxableAmount: decimal.NewFromInt(200),
			Tax:           decimal.NewFromInt(32),
			Total:         decimal.NewFromInt(232),
		},
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, original.SaleID).Return(&original, nil).Once()
	suite.mockShiftRepo.On("FindActiveShiftByUser", ctx, suite.cashierID).Return(&suite.shift, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("domain.Shift"), int64(3)).Return(nil).Once()

	refund, err := suite.service.ReturnSale(ctx, dto.ReturnSaleRequest{OriginalSaleID: original.SaleID}, suite.cashierID)

	suite.Require().NoError(err)
	suite.Equal(domain.SaleTypeReturn, refund.Type)
	suite.Require().NotNil(refund.OriginalSaleID)
	suite.Equal(original.SaleID, *refund.OriginalSaleID)
	suite.True(refund.Breakdown.Total.Equal(decimal.NewFromInt(-232)))
	suite.Require().Len(refund.Payments, 1)
	suite.Equal(domain.PaymentCash, refund.Payments[0].Method)
	suite.True(refund.Payments[0].Amount.Equal(decimal.NewFromInt(-232)))
}

func (suite *CheckoutServiceTestSuite) TestReturnSale_OfReturnRejected() {
	ctx := context.Background()
	original := domain.Sale{SaleID: uuid.NewString(), Type: domain.SaleTypeReturn}
	suite.mockSaleRepo.On("FindSaleByID", ctx, original.SaleID).Return(&original, nil).Once()

	_, err := suite.service.ReturnSale(ctx, dto.ReturnSaleRequest{OriginalSaleID: original.SaleID}, suite.cashierID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestCheckoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}
