package services

import (
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Item = NewItemService(repos.ItemRepo)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.AccountRepo, repos.ItemRepo)

	// Reporting derives everything from the rebuilt ledger, so it depends on
	// the ledger service rather than on a reporting repository.
	container.Ledger = NewLedgerService(repos.VoucherRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(container.Ledger, repos.AccountRepo, repos.ItemRepo)

	return container
}
