package models

import "github.com/shopspring/decimal"

// Customer represents a loyalty-program member row.
type Customer struct {
	CustomerID    string          `json:"customerID" db:"customer_id"`
	Name          string          `json:"name" db:"name"`
	Phone         string          `json:"phone" db:"phone"`
	LoyaltyPoints decimal.Decimal `json:"loyaltyPoints" db:"loyalty_points"`
	AuditFields
}
