package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSource identifies where money for a payout came from. Only Cash Drawer
// movements affect the drawer's expected cash.
type CashSource string

const (
	SourceCashDrawer CashSource = "CASH_DRAWER"
	SourceMobile     CashSource = "MOBILE"
	SourceBank       CashSource = "BANK"
)

// Expense is a cash-out recorded by a cashier (stationery, fuel, etc.).
// Consumed read-only by the reconciler.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	ShiftID     *string         `json:"shiftID,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Source      CashSource      `json:"source"`
	Timestamp   time.Time       `json:"timestamp"`
	AuditFields
}

// SupplierPayment is a payout to a supplier, possibly from the drawer.
type SupplierPayment struct {
	PaymentID  string          `json:"paymentID"`
	ShiftID    *string         `json:"shiftID,omitempty"`
	SupplierID string          `json:"supplierID"`
	Amount     decimal.Decimal `json:"amount"`
	Method     CashSource      `json:"method"`
	Timestamp  time.Time       `json:"timestamp"`
	AuditFields
}

// BankDeposit is cash moved from the drawer to the bank during a shift.
type BankDeposit struct {
	DepositID string          `json:"depositID"`
	ShiftID   *string         `json:"shiftID,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
	Timestamp time.Time       `json:"timestamp"`
	AuditFields
}
