package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift represents a cashier working session row. SaleIDs and ExpenseIDs map
// to text[] columns; PaymentBreakdown maps to a JSONB column keyed by
// payment method.
type Shift struct {
	ShiftID          string                     `json:"shiftID" db:"shift_id"`
	UserID           string                     `json:"userID" db:"user_id"`
	StartTime        time.Time                  `json:"startTime" db:"start_time"`
	EndTime          *time.Time                 `json:"endTime,omitempty" db:"end_time"`
	Status           string                     `json:"status" db:"status"`
	StartingFloat    decimal.Decimal            `json:"startingFloat" db:"starting_float"`
	SaleIDs          []string                   `json:"saleIDs" db:"sale_ids"`
	ExpenseIDs       []string                   `json:"expenseIDs" db:"expense_ids"`
	PaymentBreakdown map[string]decimal.Decimal `json:"paymentBreakdown" db:"payment_breakdown"`
	ChangeGiven      decimal.Decimal            `json:"changeGiven" db:"change_given"`
	TotalSales       decimal.Decimal            `json:"totalSales" db:"total_sales"`
	TotalPayouts     decimal.Decimal            `json:"totalPayouts" db:"total_payouts"`
	ExpectedCash     decimal.Decimal            `json:"expectedCash" db:"expected_cash"`
	ActualCash       decimal.Decimal            `json:"actualCash" db:"actual_cash"`
	Variance         decimal.Decimal            `json:"variance" db:"variance"`
	Notes            string                     `json:"notes" db:"notes"`
	Version          int64                      `json:"version" db:"version"`
	AuditFields
}
