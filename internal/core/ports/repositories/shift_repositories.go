package repositories

import (
	"context"

	"github.com/dukapoint/pos_backend/internal/core/domain"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a specific shift by its ID.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindActiveShiftByUser retrieves the cashier's Active or Closing shift,
	// if any. At most one such shift exists per cashier.
	FindActiveShiftByUser(ctx context.Context, userID string) (*domain.Shift, error)

	// ListShiftsByUser retrieves a paginated list of the cashier's shifts,
	// newest first.
	ListShiftsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Shift, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// SaveShift persists a newly opened shift. Returns a duplicate error if
	// the cashier already holds a non-closed shift.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// UpdateShift persists shift changes guarded by an optimistic version
	// check: the row's stored version must equal expectedVersion or the
	// write fails with a version conflict and nothing is changed.
	UpdateShift(ctx context.Context, shift domain.Shift, expectedVersion int64) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}
