package repositories

import (
	"context"

	"github.com/dukapoint/pos_backend/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale by its ID.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSalesByShift retrieves every sale attributed to a shift.
	ListSalesByShift(ctx context.Context, shiftID string) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data.
// Sales are immutable: there is no update operation.
type SaleWriter interface {
	// SaveSale persists the sale and the updated shift in one database
	// transaction, guarded by the shift's optimistic version check. Either
	// both land or neither does.
	SaveSale(ctx context.Context, sale domain.Sale, shift domain.Shift, expectedVersion int64) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
