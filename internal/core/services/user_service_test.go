package services_test

import (
	"context"
	"testing"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/core/services"
	"github.com/dukapoint/pos_backend/internal/dto"
	"github.com/dukapoint/pos_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	adminID      string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
	suite.adminID = uuid.NewString()
}

func (suite *UserServiceTestSuite) TestCreateUser() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:     "Jane Till",
		Email:    "jane@example.com",
		Password: "correct-horse-battery",
		Role:     "CASHIER",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleCashier, user.Role)
	suite.Equal(suite.adminID, user.CreatedBy)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, existing.Email).Return(existing, nil).Once()

	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Jane Till",
		Email:    existing.Email,
		Password: "whatever-pass",
		Role:     "CASHIER",
	}, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("hunter2hunter2")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil)

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "hunter2hunter2")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)

	_, err = suite.service.AuthenticateUser(ctx, user.Email, "wrong-password")
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost@example.com", "irrelevant")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleUser_Existing() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", Role: domain.RoleManager}
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateGoogleUser(ctx, user.Email, "Jane Till")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleUser_ProvisionsNew() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" && u.Role == domain.RoleCashier
	})).Return(nil).Once()

	user, err := suite.service.AuthenticateGoogleUser(ctx, "new@example.com", "New Cashier")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleCashier, user.Role)
	suite.NotEmpty(user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Name: "Old Name", Role: domain.RoleCashier}
	newName := "New Name"
	newRole := "MANAGER"

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == newName && u.Role == domain.RoleManager
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, user.UserID, dto.UpdateUserRequest{Name: &newName, Role: &newRole}, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(suite.adminID, updated.LastUpdatedBy)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
