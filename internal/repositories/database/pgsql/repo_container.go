package pgsql

import (
	portsrepo "github.com/dukapoint/pos_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ShiftRepo:    NewPgxShiftRepository(pool),
		SaleRepo:     NewPgxSaleRepository(pool),
		CashflowRepo: NewPgxCashflowRepository(pool),
		CustomerRepo: NewPgxCustomerRepository(pool),
		UserRepo:     NewPgxUserRepository(pool),
	}
}
