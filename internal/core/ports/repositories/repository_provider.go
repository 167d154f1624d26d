package repositories

// RepositoryProvider bundles the repositories the service container is built
// from, so bootstrap code swaps storage backends in one place.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	ItemRepo    ItemRepository
	VoucherRepo VoucherRepository
}
