package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
)

// staticDataService seeds the default chart of accounts and item catalog.
// Seeding only runs against an empty store, so restarting a configured
// installation never duplicates or resets masters.
type staticDataService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	itemRepo    portsrepo.ItemRepository
}

// NewStaticDataService creates a new static data service.
func NewStaticDataService(accountRepo portsrepo.AccountRepository, itemRepo portsrepo.ItemRepository) portssvc.StaticDataService {
	return &staticDataService{
		accountRepo: accountRepo,
		itemRepo:    itemRepo,
	}
}

var _ portssvc.StaticDataService = (*staticDataService)(nil)

// InitializeStaticData seeds default accounts and items if none exist yet.
func (s *staticDataService) InitializeStaticData(ctx context.Context) error {
	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     "seed",
		LastUpdatedAt: now,
		LastUpdatedBy: "seed",
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect chart of accounts: %w", err)
	}
	if len(accounts) == 0 {
		for _, account := range DefaultAccounts() {
			account.AuditFields = audit
			if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
				return fmt.Errorf("failed to seed account %s: %w", account.AccountID, err)
			}
		}
		s.LogInfo(ctx, "Seeded default chart of accounts", slog.Int("count", len(DefaultAccounts())))
	}

	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect item catalog: %w", err)
	}
	if len(items) == 0 {
		for _, item := range DefaultItems() {
			item.AuditFields = audit
			if err := s.itemRepo.SaveItem(ctx, item); err != nil {
				return fmt.Errorf("failed to seed item %s: %w", item.ItemID, err)
			}
		}
		s.LogInfo(ctx, "Seeded default item catalog", slog.Int("count", len(DefaultItems())))
	}

	return nil
}
