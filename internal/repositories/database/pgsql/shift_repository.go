package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	portsrepo "github.com/dukapoint/pos_backend/internal/core/ports/repositories"
	"github.com/dukapoint/pos_backend/internal/models"
	"github.com/dukapoint/pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShiftRepository struct {
	pool *pgxpool.Pool
}

// NewPgxShiftRepository creates a new repository for shift data.
func NewPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{pool: pool}
}

const shiftColumns = `shift_id, user_id, start_time, end_time, status, starting_float, sale_ids, expense_ids, payment_breakdown, change_given, total_sales, total_payouts, expected_cash, actual_cash, variance, notes, version, created_at, created_by, last_updated_at, last_updated_by`

func scanShift(row pgx.Row) (*models.Shift, error) {
	var shift models.Shift
	err := row.Scan(
		&shift.ShiftID,
		&shift.UserID,
		&shift.StartTime,
		&shift.EndTime,
		&shift.Status,
		&shift.StartingFloat,
		&shift.SaleIDs,
		&shift.ExpenseIDs,
		&shift.PaymentBreakdown,
		&shift.ChangeGiven,
		&shift.TotalSales,
		&shift.TotalPayouts,
		&shift.ExpectedCash,
		&shift.ActualCash,
		&shift.Variance,
		&shift.Notes,
		&shift.Version,
		&shift.CreatedAt,
		&shift.CreatedBy,
		&shift.LastUpdatedAt,
		&shift.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// SaveShift persists a newly opened shift. The partial unique index on
// (user_id) for non-closed shifts rejects a second open shift per cashier.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	model := mapping.ToModelShift(shift)
	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.pool.Exec(ctx, query,
		model.ShiftID,
		model.UserID,
		model.StartTime,
		model.EndTime,
		model.Status,
		model.StartingFloat,
		model.SaleIDs,
		model.ExpenseIDs,
		model.PaymentBreakdown,
		model.ChangeGiven,
		model.TotalSales,
		model.TotalPayouts,
		model.ExpectedCash,
		model.ActualCash,
		model.Variance,
		model.Notes,
		model.Version,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("cashier %s already has an open shift: %w", shift.UserID, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to insert shift %s: %w", shift.ShiftID, err)
	}
	return nil
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx, so the guarded shift
// update can run standalone or inside a sale/expense transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// updateShiftRow writes the shift row guarded by the optimistic version
// check. Zero rows affected means the stored version moved (or the row is
// gone); both read as a conflict to the caller, who reloads and retries.
func updateShiftRow(ctx context.Context, db execer, model models.Shift, expectedVersion int64) error {
	query := `
		UPDATE shifts
		SET end_time = $2, status = $3, sale_ids = $4, expense_ids = $5, payment_breakdown = $6,
			change_given = $7, total_sales = $8, total_payouts = $9, expected_cash = $10,
			actual_cash = $11, variance = $12, notes = $13, version = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE shift_id = $1 AND version = $17;
	`
	tag, err := db.Exec(ctx, query,
		model.ShiftID,
		model.EndTime,
		model.Status,
		model.SaleIDs,
		model.ExpenseIDs,
		model.PaymentBreakdown,
		model.ChangeGiven,
		model.TotalSales,
		model.TotalPayouts,
		model.ExpectedCash,
		model.ActualCash,
		model.Variance,
		model.Notes,
		model.Version,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift %s: %w", model.ShiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s version %d: %w", model.ShiftID, expectedVersion, apperrors.ErrVersionConflict)
	}
	return nil
}

// UpdateShift persists shift changes guarded by the optimistic version check.
func (r *PgxShiftRepository) UpdateShift(ctx context.Context, shift domain.Shift, expectedVersion int64) error {
	return updateShiftRow(ctx, r.pool, mapping.ToModelShift(shift), expectedVersion)
}

// FindShiftByID retrieves a specific shift by its ID.
func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`
	model, err := scanShift(r.pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shift by ID %s: %w", shiftID, err)
	}
	shift := mapping.ToDomainShift(*model)
	return &shift, nil
}

// FindActiveShiftByUser retrieves the cashier's open shift, if any. The
// unique index guarantees at most one row matches.
func (r *PgxShiftRepository) FindActiveShiftByUser(ctx context.Context, userID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE user_id = $1 AND status IN ('ACTIVE', 'CLOSING');`
	model, err := scanShift(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active shift for user %s: %w", userID, err)
	}
	shift := mapping.ToDomainShift(*model)
	return &shift, nil
}

// ListShiftsByUser retrieves a page of the cashier's shifts, newest first.
func (r *PgxShiftRepository) ListShiftsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE user_id = $1
		ORDER BY start_time DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts for user %s: %w", userID, err)
	}
	defer rows.Close()

	shifts := []models.Shift{}
	for rows.Next() {
		model, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift row for user %s: %w", userID, err)
		}
		shifts = append(shifts, *model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift rows for user %s: %w", userID, err)
	}

	return mapping.ToDomainShiftSlice(shifts), nil
}
