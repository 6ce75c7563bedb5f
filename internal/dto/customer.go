package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest enrolls a loyalty customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required,msisdn"`
}

// UpdateCustomerRequest updates customer details. Nil fields are unchanged.
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,msisdn"`
}

// AwardPointsRequest credits loyalty points to a customer.
type AwardPointsRequest struct {
	Points decimal.Decimal `json:"points" binding:"required"`
}
