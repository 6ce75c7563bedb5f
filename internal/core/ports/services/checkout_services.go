package services

import (
	"context"

	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/dukapoint/pos_backend/internal/dto"
)

// TotalsPreviewSvc computes a totals breakdown for the cart as it stands,
// without any side effects. The cart UI calls this on every change.
type TotalsPreviewSvc interface {
	// PreviewTotals computes the breakdown for the submitted cart.
	PreviewTotals(ctx context.Context, req dto.ComputeTotalsRequest) (*domain.TotalsBreakdown, error)
}

// SaleFinalizerSvc turns a cart plus tenders into an immutable sale.
type SaleFinalizerSvc interface {
	// FinalizeSale validates payment sufficiency and loyalty redemption,
	// persists the sale, and attributes it to the cashier's active shift
	// atomically. A failed finalize leaves the shift untouched.
	FinalizeSale(ctx context.Context, req dto.FinalizeSaleRequest, cashierID string) (*domain.Sale, error)

	// ReturnSale records a correction as a new Return sale referencing the
	// original; the original sale is never mutated.
	ReturnSale(ctx context.Context, req dto.ReturnSaleRequest, cashierID string) (*domain.Sale, error)

	// GetSaleByID retrieves a sale.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
}

// CheckoutSvcFacade combines the checkout-related service interfaces
type CheckoutSvcFacade interface {
	TotalsPreviewSvc
	SaleFinalizerSvc
}
