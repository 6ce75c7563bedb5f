package services

import (
	"context"

	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/dukapoint/pos_backend/internal/dto"
)

// ShiftReaderSvc defines read operations for shift data
type ShiftReaderSvc interface {
	// GetShiftByID retrieves a specific shift.
	GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// GetActiveShift retrieves the cashier's current Active or Closing
	// shift, if any.
	GetActiveShift(ctx context.Context, userID string) (*domain.Shift, error)

	// ListShifts retrieves a paginated list of the cashier's shifts.
	ListShifts(ctx context.Context, userID string, params dto.ListShiftsParams) ([]domain.Shift, error)
}

// ShiftWriterSvc drives the shift lifecycle. All operations on one shift are
// serialized through the repository's optimistic version check.
type ShiftWriterSvc interface {
	// StartShift opens a shift; exactly one non-closed shift per cashier.
	StartShift(ctx context.Context, userID string, req dto.StartShiftRequest) (*domain.Shift, error)

	// RecordExpense records a cash-out against the cashier's active shift.
	RecordExpense(ctx context.Context, userID string, req dto.RecordExpenseRequest) (*domain.Expense, error)

	// RecordSupplierPayment records a payout to a supplier against the
	// cashier's active shift.
	RecordSupplierPayment(ctx context.Context, userID string, req dto.RecordSupplierPaymentRequest) (*domain.SupplierPayment, error)

	// RecordBankDeposit records cash banked from the drawer against the
	// cashier's active shift.
	RecordBankDeposit(ctx context.Context, userID string, req dto.RecordBankDepositRequest) (*domain.BankDeposit, error)

	// RequestClose freezes the shift for reconciliation (Active -> Closing).
	RequestClose(ctx context.Context, userID string) (*domain.Shift, error)

	// CancelClose aborts reconciliation (Closing -> Active).
	CancelClose(ctx context.Context, userID string) (*domain.Shift, error)

	// ConfirmClose reconciles against the counted cash and finalizes the
	// shift (Closing -> Closed, terminal).
	ConfirmClose(ctx context.Context, userID string, req dto.ConfirmCloseRequest) (*domain.Shift, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
}
