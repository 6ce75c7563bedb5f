package dto

import (
	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DiscountRequest is a percentage or fixed discount as selected at the till.
type DiscountRequest struct {
	Kind  string          `json:"kind" binding:"required,oneof=PERCENTAGE FIXED"`
	Value decimal.Decimal `json:"value" binding:"required"`
}

// LineItemRequest is one cart line as submitted by the cart UI.
type LineItemRequest struct {
	ProductID   string           `json:"productID" binding:"required"`
	Description string           `json:"description"`
	UnitPrice   decimal.Decimal  `json:"unitPrice" binding:"required"`
	Quantity    decimal.Decimal  `json:"quantity" binding:"required"`
	PricingType string           `json:"pricingType" binding:"required,oneof=INCLUSIVE EXCLUSIVE"`
	Discount    *DiscountRequest `json:"discount,omitempty"`
}

// ComputeTotalsRequest asks for a totals preview for the cart as it stands.
type ComputeTotalsRequest struct {
	Lines        []LineItemRequest `json:"lines" binding:"required,min=1,dive"`
	CartDiscount *DiscountRequest  `json:"cartDiscount,omitempty"`
	// VATRate overrides the configured default when present (e.g. "0.16").
	VATRate *decimal.Decimal `json:"vatRate,omitempty"`
}

// PaymentRequest is one tender entry on a finalize request.
type PaymentRequest struct {
	Method    string          `json:"method" binding:"required,oneof=CASH MOBILE_MONEY CARD"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reference *string         `json:"reference,omitempty"`
}

// FinalizeSaleRequest turns the cart into an immutable sale.
type FinalizeSaleRequest struct {
	Lines           []LineItemRequest `json:"lines" binding:"required,min=1,dive"`
	CartDiscount    *DiscountRequest  `json:"cartDiscount,omitempty"`
	VATRate         *decimal.Decimal  `json:"vatRate,omitempty"`
	Payments        []PaymentRequest  `json:"payments" binding:"required,min=1,dive"`
	CustomerID      *string           `json:"customerID,omitempty"`
	PointsRequested decimal.Decimal   `json:"pointsRequested"`
	DepositApplied  decimal.Decimal   `json:"depositApplied"`
}

// ReturnSaleRequest records a correction as a new sale of type Return.
type ReturnSaleRequest struct {
	OriginalSaleID string `json:"originalSaleID" binding:"required"`
}

// ToDomainDiscount converts a discount request, which may be nil.
func (d *DiscountRequest) ToDomainDiscount() *domain.Discount {
	if d == nil {
		return nil
	}
	return &domain.Discount{Kind: domain.DiscountKind(d.Kind), Value: d.Value}
}

// ToDomainLines converts the request lines, rejecting negative quantities.
func ToDomainLines(lines []LineItemRequest) ([]domain.LineItem, error) {
	out := make([]domain.LineItem, len(lines))
	for i, l := range lines {
		if l.Quantity.IsNegative() {
			return nil, apperrors.ErrValidation
		}
		out[i] = domain.LineItem{
			ProductID:   l.ProductID,
			Description: l.Description,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			PricingType: domain.PricingType(l.PricingType),
			Discount:    l.Discount.ToDomainDiscount(),
		}
	}
	return out, nil
}

// ToDomainPayments converts the tender entries.
func ToDomainPayments(payments []PaymentRequest) []domain.Payment {
	out := make([]domain.Payment, len(payments))
	for i, p := range payments {
		out[i] = domain.Payment{
			Method:    domain.PaymentMethod(p.Method),
			Amount:    p.Amount,
			Reference: p.Reference,
		}
	}
	return out
}
