package repositories

import (
	"context"

	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by their ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomers retrieves a paginated list of customers.
	FindCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// AdjustLoyaltyPoints applies a signed delta to a customer's points
	// balance. The balance never goes below zero.
	AdjustLoyaltyPoints(ctx context.Context, customerID string, delta decimal.Decimal, updatedBy string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
