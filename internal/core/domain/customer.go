package domain

import "github.com/shopspring/decimal"

// Customer is a loyalty-program member. The totals engine never touches it;
// the sale finalizer reads LoyaltyPoints to cap redemptions and returns the
// decrement for the caller to persist.
type Customer struct {
	CustomerID    string          `json:"customerID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	LoyaltyPoints decimal.Decimal `json:"loyaltyPoints"`
	AuditFields
}
