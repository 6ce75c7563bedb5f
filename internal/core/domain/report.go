package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VarianceStatus classifies a cash count against the expected figure.
// It is informational, not an error; shortages are surfaced for operator
// review rather than blocking the close.
type VarianceStatus string

const (
	VarianceBalanced VarianceStatus = "BALANCED"
	VarianceOverage  VarianceStatus = "OVERAGE"
	VarianceShortage VarianceStatus = "SHORTAGE"
)

// CashReport is the reconciliation of a shift's drawer: every term that
// feeds expected cash, the counted amount, and the variance between them.
type CashReport struct {
	ShiftID              string          `json:"shiftID"`
	StartingFloat        decimal.Decimal `json:"startingFloat"`
	CashSales            decimal.Decimal `json:"cashSales"`
	ChangeGiven          decimal.Decimal `json:"changeGiven"`
	CashExpenses         decimal.Decimal `json:"cashExpenses"`
	CashSupplierPayments decimal.Decimal `json:"cashSupplierPayments"`
	CashBanked           decimal.Decimal `json:"cashBanked"`
	ExpectedCash         decimal.Decimal `json:"expectedCash"`
	ActualCash           decimal.Decimal `json:"actualCash"`
	Variance             decimal.Decimal `json:"variance"`
	Status               VarianceStatus  `json:"status"`
}

// SalesSummary aggregates the sales side of a Z-Report.
type SalesSummary struct {
	SaleCount     int             `json:"saleCount"`
	ReturnCount   int             `json:"returnCount"`
	GrossSales    decimal.Decimal `json:"grossSales"`
	LineDiscounts decimal.Decimal `json:"lineDiscounts"`
	CartDiscounts decimal.Decimal `json:"cartDiscounts"`
	VAT           decimal.Decimal `json:"vat"`
	NetSales      decimal.Decimal `json:"netSales"`
}

// PayoutLine is one cash-out entry listed on a Z-Report.
type PayoutLine struct {
	Kind        string          `json:"kind"` // EXPENSE | SUPPLIER_PAYMENT | BANK_DEPOSIT
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
}

// ZReport is the audit summary for a shift. It is a pure projection of the
// shift and its linked records: generating it at close time or replaying it
// later from history yields identical figures.
type ZReport struct {
	Shift         Shift                             `json:"shift"`
	Sales         SalesSummary                      `json:"sales"`
	PaymentTotals map[PaymentMethod]decimal.Decimal `json:"paymentTotals"`
	Payouts       []PayoutLine                      `json:"payouts"`
	Cash          CashReport                        `json:"cash"`
}
