package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the Postgres-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		ItemRepo:    newPgxItemRepository(dbPool),
		VoucherRepo: newPgxVoucherRepository(dbPool),
	}
}
