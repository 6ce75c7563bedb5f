package pgsql

import (
	"context"
	"fmt"

	"github.com/dukapoint/pos_backend/internal/core/domain"
	portsrepo "github.com/dukapoint/pos_backend/internal/core/ports/repositories"
	"github.com/dukapoint/pos_backend/internal/models"
	"github.com/dukapoint/pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashflowRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCashflowRepository creates a new repository for expenses, supplier
// payments and bank deposits.
func NewPgxCashflowRepository(pool *pgxpool.Pool) portsrepo.CashflowRepositoryFacade {
	return &PgxCashflowRepository{pool: pool}
}

// SaveExpense persists the expense and the updated shift in one database
// transaction, guarded by the shift's optimistic version check.
func (r *PgxCashflowRepository) SaveExpense(ctx context.Context, expense domain.Expense, shift domain.Shift, expectedVersion int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	model := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, shift_id, description, amount, source, expense_timestamp, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		model.ExpenseID,
		model.ShiftID,
		model.Description,
		model.Amount,
		model.Source,
		model.Timestamp,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense %s: %w", expense.ExpenseID, err)
	}

	if err := updateShiftRow(ctx, tx, mapping.ToModelShift(shift), expectedVersion); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for expense %s: %w", expense.ExpenseID, err)
	}

	return nil
}

// SaveSupplierPayment persists a supplier payment.
func (r *PgxCashflowRepository) SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error {
	model := mapping.ToModelSupplierPayment(payment)
	query := `
		INSERT INTO supplier_payments (payment_id, shift_id, supplier_id, amount, method, payment_timestamp, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		model.PaymentID,
		model.ShiftID,
		model.SupplierID,
		model.Amount,
		model.Method,
		model.Timestamp,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert supplier payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

// SaveBankDeposit persists a bank deposit.
func (r *PgxCashflowRepository) SaveBankDeposit(ctx context.Context, deposit domain.BankDeposit) error {
	model := mapping.ToModelBankDeposit(deposit)
	query := `
		INSERT INTO bank_deposits (deposit_id, shift_id, amount, reference, deposit_timestamp, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		model.DepositID,
		model.ShiftID,
		model.Amount,
		model.Reference,
		model.Timestamp,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bank deposit %s: %w", deposit.DepositID, err)
	}
	return nil
}

// ListExpensesByShift retrieves every expense attributed to a shift.
func (r *PgxCashflowRepository) ListExpensesByShift(ctx context.Context, shiftID string) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, shift_id, description, amount, source, expense_timestamp, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE shift_id = $1
		ORDER BY expense_timestamp;
	`
	rows, err := r.pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for shift %s: %w", shiftID, err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(
			&expense.ExpenseID,
			&expense.ShiftID,
			&expense.Description,
			&expense.Amount,
			&expense.Source,
			&expense.Timestamp,
			&expense.CreatedAt,
			&expense.CreatedBy,
			&expense.LastUpdatedAt,
			&expense.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row for shift %s: %w", shiftID, err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows for shift %s: %w", shiftID, err)
	}

	return mapping.ToDomainExpenseSlice(expenses), nil
}

// ListSupplierPaymentsByShift retrieves supplier payments attributed to a shift.
func (r *PgxCashflowRepository) ListSupplierPaymentsByShift(ctx context.Context, shiftID string) ([]domain.SupplierPayment, error) {
	query := `
		SELECT payment_id, shift_id, supplier_id, amount, method, payment_timestamp, created_at, created_by, last_updated_at, last_updated_by
		FROM supplier_payments
		WHERE shift_id = $1
		ORDER BY payment_timestamp;
	`
	rows, err := r.pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier payments for shift %s: %w", shiftID, err)
	}
	defer rows.Close()

	payments := []models.SupplierPayment{}
	for rows.Next() {
		var payment models.SupplierPayment
		if err := rows.Scan(
			&payment.PaymentID,
			&payment.ShiftID,
			&payment.SupplierID,
			&payment.Amount,
			&payment.Method,
			&payment.Timestamp,
			&payment.CreatedAt,
			&payment.CreatedBy,
			&payment.LastUpdatedAt,
			&payment.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan supplier payment row for shift %s: %w", shiftID, err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier payment rows for shift %s: %w", shiftID, err)
	}

	return mapping.ToDomainSupplierPaymentSlice(payments), nil
}

// ListBankDepositsByShift retrieves bank deposits attributed to a shift.
func (r *PgxCashflowRepository) ListBankDepositsByShift(ctx context.Context, shiftID string) ([]domain.BankDeposit, error) {
	query := `
		SELECT deposit_id, shift_id, amount, reference, deposit_timestamp, created_at, created_by, last_updated_at, last_updated_by
		FROM bank_deposits
		WHERE shift_id = $1
		ORDER BY deposit_timestamp;
	`
	rows, err := r.pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank deposits for shift %s: %w", shiftID, err)
	}
	defer rows.Close()

	deposits := []models.BankDeposit{}
	for rows.Next() {
		var deposit models.BankDeposit
		if err := rows.Scan(
			&deposit.DepositID,
			&deposit.ShiftID,
			&deposit.Amount,
			&deposit.Reference,
			&deposit.Timestamp,
			&deposit.CreatedAt,
			&deposit.CreatedBy,
			&deposit.LastUpdatedAt,
			&deposit.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bank deposit row for shift %s: %w", shiftID, err)
		}
		deposits = append(deposits, deposit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank deposit rows for shift %s: %w", shiftID, err)
	}

	return mapping.ToDomainBankDepositSlice(deposits), nil
}
