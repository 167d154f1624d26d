package inmemory

import (
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the in-memory repositories. State lives for the
// lifetime of the process; intended for evaluation and tests.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newMemAccountRepository(),
		ItemRepo:    newMemItemRepository(),
		VoucherRepo: newMemVoucherRepository(),
	}
}
