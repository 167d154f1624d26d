package repositories

import (
	"context"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// AccountRepository defines persistence operations for the chart of accounts.
// ListAccounts must preserve creation order: every report iterates the chart
// in that order.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
