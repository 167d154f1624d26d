package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahajlabs/bahikhata/internal/core/accounting"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
)

// ledgerService derives the ledger from stored vouchers. The ledger is never
// persisted: every call replays the full voucher history against the current
// chart of accounts, so reports always reflect the latest tax role tags.
type ledgerService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepository
	accountRepo portsrepo.AccountRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(voucherRepo portsrepo.VoucherRepository, accountRepo portsrepo.AccountRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		voucherRepo: voucherRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// RebuildLedger posts every stored voucher in creation order and returns the
// resulting entries.
func (s *ledgerService) RebuildLedger(ctx context.Context) ([]domain.LedgerEntry, error) {
	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers for ledger rebuild")
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for ledger rebuild")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	entries := accounting.RebuildLedger(vouchers, accounts)
	s.LogDebug(ctx, "Ledger rebuilt",
		slog.Int("vouchers", len(vouchers)),
		slog.Int("entries", len(entries)))
	return entries, nil
}
