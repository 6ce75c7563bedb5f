package domain

import "github.com/shopspring/decimal"

// PricingType indicates whether a line's unit price already contains VAT.
type PricingType string

const (
	TaxInclusive PricingType = "INCLUSIVE"
	TaxExclusive PricingType = "EXCLUSIVE"
)

// DiscountKind distinguishes percentage discounts from fixed-amount discounts.
type DiscountKind string

const (
	Percentage DiscountKind = "PERCENTAGE"
	Fixed      DiscountKind = "FIXED"
)

// Discount is a tagged discount variant. The same shape is used for a single
// line and for the whole cart; the effective amount is always clamped to the
// base it is applied to.
type Discount struct {
	Kind  DiscountKind    `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// LineItem is one cart line as supplied by the catalog/cart UI.
// Quantity is a decimal because items sold by weight or length may be
// fractional. Invariant: Quantity >= 0.
type LineItem struct {
	ProductID   string          `json:"productID"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	PricingType PricingType     `json:"pricingType"`
	Discount    *Discount       `json:"discount,omitempty"`
}

// GrossTotal is the undiscounted line total (unitPrice * quantity).
func (l LineItem) GrossTotal() decimal.Decimal {
	return l.UnitPrice.Mul(l.Quantity)
}
