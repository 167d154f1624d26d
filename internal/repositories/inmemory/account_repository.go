package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
)

// memAccountRepository is a mutex-guarded in-memory chart of accounts.
// The order slice preserves creation order for ListAccounts.
type memAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	order    []string
}

func newMemAccountRepository() portsrepo.AccountRepository {
	return &memAccountRepository{
		accounts: make(map[string]domain.Account),
	}
}

var _ portsrepo.AccountRepository = (*memAccountRepository)(nil)

func (r *memAccountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountID]; exists {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrDuplicate)
	}
	r.accounts[account.AccountID] = account
	r.order = append(r.order, account.AccountID)
	return nil
}

func (r *memAccountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (r *memAccountRepository) FindAccountsByIDs(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if account, ok := r.accounts[id]; ok {
			result[id] = account
		}
	}
	return result, nil
}

func (r *memAccountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, len(r.order))
	for i, id := range r.order {
		accounts[i] = r.accounts[id]
	}
	return accounts, nil
}
