package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	portsrepo "github.com/dukapoint/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// customerService manages loyalty-program members.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// GetCustomerByID retrieves a customer. Implements portssvc.CustomerReaderSvc.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	return customer, nil
}

// ListCustomers retrieves a paginated list of customers.
// Implements portssvc.CustomerReaderSvc.
func (s *customerService) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

// CreateCustomer enrolls a new loyalty customer.
// Implements portssvc.CustomerWriterSvc.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          req.Name,
		Phone:         req.Phone,
		LoyaltyPoints: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// UpdateCustomer updates customer details. Nil request fields are unchanged.
// Implements portssvc.CustomerWriterSvc.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer for update: %w", err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	customer.LastUpdatedAt = time.Now().UTC()
	customer.LastUpdatedBy = requestingUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// DeductPoints decrements a customer's loyalty balance after a redemption.
// Implements portssvc.CustomerWriterSvc.
func (s *customerService) DeductPoints(ctx context.Context, customerID string, points decimal.Decimal, requestingUserID string) error {
	if !points.IsPositive() {
		return fmt.Errorf("%w: points to deduct must be positive", apperrors.ErrValidation)
	}
	if err := s.customerRepo.AdjustLoyaltyPoints(ctx, customerID, points.Neg(), requestingUserID); err != nil {
		return fmt.Errorf("failed to deduct loyalty points: %w", err)
	}
	return nil
}

// AwardPoints credits loyalty points. Implements portssvc.CustomerWriterSvc.
func (s *customerService) AwardPoints(ctx context.Context, customerID string, points decimal.Decimal, requestingUserID string) error {
	if !points.IsPositive() {
		return fmt.Errorf("%w: points to award must be positive", apperrors.ErrValidation)
	}
	if err := s.customerRepo.AdjustLoyaltyPoints(ctx, customerID, points, requestingUserID); err != nil {
		return fmt.Errorf("failed to award loyalty points: %w", err)
	}
	return nil
}
