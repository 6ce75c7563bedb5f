package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies the tender used for (part of) a sale.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "CASH"
	PaymentMobileMoney PaymentMethod = "MOBILE_MONEY"
	PaymentCard        PaymentMethod = "CARD"
	PaymentPoints      PaymentMethod = "POINTS"
)

// SaleType distinguishes regular sales from returns. A return never mutates
// the original sale; it is a new record referencing it.
type SaleType string

const (
	SaleTypeSale   SaleType = "SALE"
	SaleTypeReturn SaleType = "RETURN"
)

// Payment is a single tender entry on a sale. Reference carries the external
// confirmation (e.g. a mobile money receipt number) when present.
type Payment struct {
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Reference *string         `json:"reference,omitempty"`
}

// Sale is the immutable record produced by finalizing a cart. It is created
// exactly once and never updated; corrections are Return sales referencing
// the original via OriginalSaleID.
type Sale struct {
	SaleID         string          `json:"saleID"`
	ShiftID        string          `json:"shiftID"`
	CustomerID     *string         `json:"customerID,omitempty"`
	Type           SaleType        `json:"type"`
	OriginalSaleID *string         `json:"originalSaleID,omitempty"`
	Lines          []LineItem      `json:"lines"`
	Breakdown      TotalsBreakdown `json:"breakdown"`
	Payments       []Payment       `json:"payments"`
	Change         decimal.Decimal `json:"change"`
	PointsUsed     decimal.Decimal `json:"pointsUsed"`
	PointsValue    decimal.Decimal `json:"pointsValue"`
	DepositApplied decimal.Decimal `json:"depositApplied"`
	Timestamp      time.Time       `json:"timestamp"`
	AuditFields
}

// PaymentResult is the outcome reported by an external payment gateway for
// an initiated mobile money charge. A successful result becomes a single
// Payment entry; retries and polling are the gateway adapter's concern.
type PaymentResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
}

// CashTendered sums the cash payments on the sale.
func (s Sale) CashTendered() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Payments {
		if p.Method == PaymentCash {
			total = total.Add(p.Amount)
		}
	}
	return total
}
