package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount is the persisted form of a line or cart discount. Stored inside
// the JSONB line payload.
type Discount struct {
	Kind  string          `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// LineItem is the persisted form of one cart line. Sales store their lines
// as a JSONB snapshot so the record stays auditable even if the catalog
// changes later.
type LineItem struct {
	ProductID   string          `json:"productID"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	PricingType string          `json:"pricingType"`
	Discount    *Discount       `json:"discount,omitempty"`
}

// Payment is the persisted form of one tender entry on a sale.
type Payment struct {
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Reference *string         `json:"reference,omitempty"`
}

// TotalsBreakdown is the persisted totals snapshot of a sale.
type TotalsBreakdown struct {
	GrossSubtotal      decimal.Decimal `json:"grossSubtotal"`
	LineDiscountTotal  decimal.Decimal `json:"lineDiscountTotal"`
	CartDiscountAmount decimal.Decimal `json:"cartDiscountAmount"`
	TaxableAmount      decimal.Decimal `json:"taxableAmount"`
	Tax                decimal.Decimal `json:"tax"`
	Total              decimal.Decimal `json:"total"`
}

// Sale represents a finalized sale or return row. Lines, Breakdown and
// Payments map to JSONB columns.
type Sale struct {
	SaleID         string          `json:"saleID" db:"sale_id"`
	ShiftID        string          `json:"shiftID" db:"shift_id"`
	CustomerID     *string         `json:"customerID,omitempty" db:"customer_id"`
	Type           string          `json:"type" db:"sale_type"`
	OriginalSaleID *string         `json:"originalSaleID,omitempty" db:"original_sale_id"`
	Lines          []LineItem      `json:"lines" db:"lines"`
	Breakdown      TotalsBreakdown `json:"breakdown" db:"breakdown"`
	Payments       []Payment       `json:"payments" db:"payments"`
	Change         decimal.Decimal `json:"change" db:"change_given"`
	PointsUsed     decimal.Decimal `json:"pointsUsed" db:"points_used"`
	PointsValue    decimal.Decimal `json:"pointsValue" db:"points_value"`
	DepositApplied decimal.Decimal `json:"depositApplied" db:"deposit_applied"`
	Timestamp      time.Time       `json:"timestamp" db:"sale_timestamp"`
	AuditFields
}
