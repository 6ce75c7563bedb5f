package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a cash-out row recorded during a shift.
type Expense struct {
	ExpenseID   string          `json:"expenseID" db:"expense_id"`
	ShiftID     *string         `json:"shiftID,omitempty" db:"shift_id"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Source      string          `json:"source" db:"source"`
	Timestamp   time.Time       `json:"timestamp" db:"expense_timestamp"`
	AuditFields
}

// SupplierPayment represents a payout to a supplier.
type SupplierPayment struct {
	PaymentID  string          `json:"paymentID" db:"payment_id"`
	ShiftID    *string         `json:"shiftID,omitempty" db:"shift_id"`
	SupplierID string          `json:"supplierID" db:"supplier_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Method     string          `json:"method" db:"method"`
	Timestamp  time.Time       `json:"timestamp" db:"payment_timestamp"`
	AuditFields
}

// BankDeposit represents cash moved from the drawer to the bank.
type BankDeposit struct {
	DepositID string          `json:"depositID" db:"deposit_id"`
	ShiftID   *string         `json:"shiftID,omitempty" db:"shift_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Reference string          `json:"reference" db:"reference"`
	Timestamp time.Time       `json:"timestamp" db:"deposit_timestamp"`
	AuditFields
}
