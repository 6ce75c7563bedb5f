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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSaleRepository creates a new repository for sale data.
func NewPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{pool: pool}
}

const saleColumns = `sale_id, shift_id, customer_id, sale_type, original_sale_id, lines, breakdown, payments, change_given, points_used, points_value, deposit_applied, sale_timestamp, created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (*models.Sale, error) {
	var sale models.Sale
	err := row.Scan(
		&sale.SaleID,
		&sale.ShiftID,
		&sale.CustomerID,
		&sale.Type,
		&sale.OriginalSaleID,
		&sale.Lines,
		&sale.Breakdown,
		&sale.Payments,
		&sale.Change,
		&sale.PointsUsed,
		&sale.PointsValue,
		&sale.DepositApplied,
		&sale.Timestamp,
		&sale.CreatedAt,
		&sale.CreatedBy,
		&sale.LastUpdatedAt,
		&sale.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// SaveSale persists the sale and the updated shift in one database
// transaction. The shift write carries the optimistic version guard, so a
// concurrent writer makes the whole transaction roll back.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, shift domain.Shift, expectedVersion int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	model := mapping.ToModelSale(sale)
	saleQuery := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, saleQuery,
		model.SaleID,
		model.ShiftID,
		model.CustomerID,
		model.Type,
		model.OriginalSaleID,
		model.Lines,
		model.Breakdown,
		model.Payments,
		model.Change,
		model.PointsUsed,
		model.PointsValue,
		model.DepositApplied,
		model.Timestamp,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale %s: %w", sale.SaleID, err)
	}

	if err := updateShiftRow(ctx, tx, mapping.ToModelShift(shift), expectedVersion); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for sale %s: %w", sale.SaleID, err)
	}

	return nil
}

// FindSaleByID retrieves a sale by its ID.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	model, err := scanSale(r.pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}
	sale := mapping.ToDomainSale(*model)
	return &sale, nil
}

// ListSalesByShift retrieves every sale attributed to a shift in the order
// they were rung up.
func (r *PgxSaleRepository) ListSalesByShift(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE shift_id = $1
		ORDER BY sale_timestamp;
	`
	rows, err := r.pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales for shift %s: %w", shiftID, err)
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		model, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row for shift %s: %w", shiftID, err)
		}
		sales = append(sales, *model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows for shift %s: %w", shiftID, err)
	}

	return mapping.ToDomainSaleSlice(sales), nil
}
