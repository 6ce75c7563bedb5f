package dto

import "github.com/shopspring/decimal"

// StartShiftRequest opens a new shift with the cash placed in the drawer.
type StartShiftRequest struct {
	StartingFloat decimal.Decimal `json:"startingFloat"`
}

// ConfirmCloseRequest commits a close with the physically counted cash.
type ConfirmCloseRequest struct {
	ActualCash decimal.Decimal `json:"actualCash" binding:"required"`
	Notes      string          `json:"notes"`
}

// RecordExpenseRequest records a cash-out against the active shift.
type RecordExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Source      string          `json:"source" binding:"required,oneof=CASH_DRAWER MOBILE BANK"`
}

// RecordSupplierPaymentRequest records a payout to a supplier during the
// active shift.
type RecordSupplierPaymentRequest struct {
	SupplierID string          `json:"supplierID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Method     string          `json:"method" binding:"required,oneof=CASH_DRAWER MOBILE BANK"`
}

// RecordBankDepositRequest records cash moved from the drawer to the bank
// during the active shift.
type RecordBankDepositRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reference string          `json:"reference"`
}

// ListShiftsParams paginates a cashier's shift history.
type ListShiftsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}
