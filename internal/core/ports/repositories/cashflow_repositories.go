package repositories

import (
	"context"

	"github.com/dukapoint/pos_backend/internal/core/domain"
)

// CashflowReader defines read operations for the cash-out records a shift
// reconciliation consumes.
type CashflowReader interface {
	// ListExpensesByShift retrieves every expense attributed to a shift.
	ListExpensesByShift(ctx context.Context, shiftID string) ([]domain.Expense, error)

	// ListSupplierPaymentsByShift retrieves supplier payments attributed to a shift.
	ListSupplierPaymentsByShift(ctx context.Context, shiftID string) ([]domain.SupplierPayment, error)

	// ListBankDepositsByShift retrieves bank deposits attributed to a shift.
	ListBankDepositsByShift(ctx context.Context, shiftID string) ([]domain.BankDeposit, error)
}

// CashflowWriter defines write operations for cash-out records
type CashflowWriter interface {
	// SaveExpense persists the expense and the updated shift in one database
	// transaction, guarded by the shift's optimistic version check.
	SaveExpense(ctx context.Context, expense domain.Expense, shift domain.Shift, expectedVersion int64) error

	// SaveSupplierPayment persists a supplier payment.
	SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error

	// SaveBankDeposit persists a bank deposit.
	SaveBankDeposit(ctx context.Context, deposit domain.BankDeposit) error
}

// CashflowRepositoryFacade combines all cashflow repository interfaces
type CashflowRepositoryFacade interface {
	CashflowReader
	CashflowWriter
}
