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

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.CustomerSvcFacade
	userID           string
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo)
	suite.userID = uuid.NewString()
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer() {
	ctx := context.Background()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Wanjiku" && c.LoyaltyPoints.IsZero()
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, dto.CreateCustomerRequest{
		Name:  "Wanjiku",
		Phone: "+254700000001",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(customer.CustomerID)
	suite.True(customer.LoyaltyPoints.IsZero())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialFields() {
	ctx := context.Background()
	existing := &domain.Customer{CustomerID: uuid.NewString(), Name: "Wanjiku", Phone: "+254700000001"}
	newPhone := "+254711111111"

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(existing, nil).Once()
	suite.mockCustomerRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Wanjiku" && c.Phone == newPhone
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, existing.CustomerID, dto.UpdateCustomerRequest{Phone: &newPhone}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newPhone, updated.Phone)
}

func (suite *CustomerServiceTestSuite) TestDeductPoints() {
	ctx := context.Background()
	customerID := uuid.NewString()
	suite.mockCustomerRepo.On("AdjustLoyaltyPoints", ctx, customerID, decimal.NewFromInt(-30), suite.userID).Return(nil).Once()

	err := suite.service.DeductPoints(ctx, customerID, decimal.NewFromInt(30), suite.userID)

	suite.Require().NoError(err)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeductPoints_NonPositive() {
	ctx := context.Background()

	err := suite.service.DeductPoints(ctx, uuid.NewString(), decimal.Zero, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "AdjustLoyaltyPoints", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestAwardPoints() {
	ctx := context.Background()
	customerID := uuid.NewString()
	suite.mockCustomerRepo.On("AdjustLoyaltyPoints", ctx, customerID, decimal.NewFromInt(10), suite.userID).Return(nil).Once()

	err := suite.service.AwardPoints(ctx, customerID, decimal.NewFromInt(10), suite.userID)

	suite.Require().NoError(err)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
