package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	portsrepo "github.com/dukapoint/pos_backend/internal/core/ports/repositories"
	"github.com/dukapoint/pos_backend/internal/models"
	"github.com/dukapoint/pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCustomerRepository creates a new repository for customer data.
func NewPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{pool: pool}
}

// SaveCustomer persists a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	model := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, phone, loyalty_points, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		model.CustomerID,
		model.Name,
		model.Phone,
		model.LoyaltyPoints,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on phone
				return fmt.Errorf("customer with phone %s already exists: %w", customer.Phone, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to insert customer %s: %w", customer.CustomerID, err)
	}
	return nil
}

// UpdateCustomer updates an existing customer's details.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	model := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $2, phone = $3, loyalty_points = $4, last_updated_at = $5, last_updated_by = $6
		WHERE customer_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		model.CustomerID,
		model.Name,
		model.Phone,
		model.LoyaltyPoints,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustLoyaltyPoints applies a signed delta to the stored balance in a
// single statement. GREATEST keeps the balance from going negative when a
// stale caller over-deducts.
func (r *PgxCustomerRepository) AdjustLoyaltyPoints(ctx context.Context, customerID string, delta decimal.Decimal, updatedBy string) error {
	query := `
		UPDATE customers
		SET loyalty_points = GREATEST(loyalty_points + $2, 0), last_updated_at = $3, last_updated_by = $4
		WHERE customer_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, customerID, delta, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to adjust loyalty points for customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCustomerByID retrieves a customer by their ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, phone, loyalty_points, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		WHERE customer_id = $1;
	`
	var model models.Customer
	err := r.pool.QueryRow(ctx, query, customerID).Scan(
		&model.CustomerID,
		&model.Name,
		&model.Phone,
		&model.LoyaltyPoints,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	customer := mapping.ToDomainCustomer(model)
	return &customer, nil
}

// FindCustomers retrieves a paginated list of customers ordered by name.
func (r *PgxCustomerRepository) FindCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, phone, loyalty_points, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var model models.Customer
		if err := rows.Scan(
			&model.CustomerID,
			&model.Name,
			&model.Phone,
			&model.LoyaltyPoints,
			&model.CreatedAt,
			&model.CreatedBy,
			&model.LastUpdatedAt,
			&model.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}

	return mapping.ToDomainCustomerSlice(customers), nil
}
