package services

import (
	"context"

	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/dukapoint/pos_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers.
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer enrolls a new loyalty customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// UpdateCustomer updates customer details.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error)

	// DeductPoints decrements a customer's loyalty balance after a
	// redemption. The sale finalizer computes the amount; persisting the
	// decrement happens here, outside the totals math.
	DeductPoints(ctx context.Context, customerID string, points decimal.Decimal, requestingUserID string) error

	// AwardPoints credits loyalty points.
	AwardPoints(ctx context.Context, customerID string, points decimal.Decimal, requestingUserID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
