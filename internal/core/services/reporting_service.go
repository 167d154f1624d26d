package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/accounting"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/dto"
)

// reportingService derives financial reports from a freshly rebuilt ledger.
// No report state is cached between calls.
type reportingService struct {
	BaseService
	ledgerSvc   portssvc.LedgerSvcFacade
	accountRepo portsrepo.AccountRepository
	itemRepo    portsrepo.ItemRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledgerSvc portssvc.LedgerSvcFacade, accountRepo portsrepo.AccountRepository, itemRepo portsrepo.ItemRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerSvc:   ledgerSvc,
		accountRepo: accountRepo,
		itemRepo:    itemRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) ledgerAndChart(ctx context.Context) ([]domain.LedgerEntry, []domain.Account, error) {
	entries, err := s.ledgerSvc.RebuildLedger(ctx)
	if err != nil {
		return nil, nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for reporting")
		return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return entries, accounts, nil
}

// TrialBalance nets every active account. Orphaned entries are returned to
// the caller and logged so a misconfigured chart never fails silently.
func (s *reportingService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, []domain.LedgerEntry, error) {
	entries, accounts, err := s.ledgerAndChart(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, orphans := accounting.TrialBalance(entries, accounts)
	if len(orphans) > 0 {
		s.LogWarn(ctx, "Trial balance has entries with no matching account",
			slog.Int("orphan_count", len(orphans)))
	}
	return rows, orphans, nil
}

// ProfitAndLoss reports income, expense and net profit from the trial
// balance.
func (s *reportingService) ProfitAndLoss(ctx context.Context) (*domain.PAndLReport, error) {
	rows, _, err := s.TrialBalance(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for reporting")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	report := accounting.ProfitAndLoss(rows, accounts)
	return &report, nil
}

// GSTSummary totals input and output GST across tax-role accounts.
func (s *reportingService) GSTSummary(ctx context.Context) (*domain.GSTSummary, error) {
	entries, accounts, err := s.ledgerAndChart(ctx)
	if err != nil {
		return nil, err
	}

	summary := accounting.SummarizeGST(entries, accounts)
	return &summary, nil
}

// LedgerBook returns the dated entry history of one account with a running
// balance starting from its opening balance.
func (s *reportingService) LedgerBook(ctx context.Context, accountID string) (*domain.LedgerBook, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find account for ledger book", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	entries, err := s.ledgerSvc.RebuildLedger(ctx)
	if err != nil {
		return nil, err
	}

	book := accounting.BuildLedgerBook(entries, *account)
	return &book, nil
}

// CheckCompliance evaluates e-way bill and e-invoice flags for a voucher
// draft. The draft is built with the same line rules CreateVoucher applies,
// so the advisory result matches what recording the voucher would produce.
func (s *reportingService) CheckCompliance(ctx context.Context, req dto.CreateVoucherRequest) (*domain.ComplianceFlags, error) {
	date, err := dto.ParseVoucherDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid voucher date %q", apperrors.ErrValidation, req.Date)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for compliance check")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	draft := domain.Voucher{
		Date:           date,
		Type:           req.Type,
		VoucherNumber:  req.VoucherNumber,
		PartyAccountID: req.PartyAccountID,
		LineItems:      s.buildVoucherLines(ctx, s.itemRepo, req.LineItems),
		Narration:      req.Narration,
	}
	draft.TotalAmount = draft.ComputeTotal()

	flags := accounting.CheckCompliance(draft, accounts)
	return &flags, nil
}
