package services

import (
	"context"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
	"github.com/sahajlabs/bahikhata/internal/dto"
)

// ReportingSvcFacade defines operations for deriving financial reports from the
// ledger. Each report is computed on demand from the current voucher history
// and chart of accounts.
type ReportingSvcFacade interface {
	// TrialBalance returns per-account net rows plus the entries that
	// matched no account (orphans), which callers should surface rather
	// than ignore.
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, []domain.LedgerEntry, error)

	ProfitAndLoss(ctx context.Context) (*domain.PAndLReport, error)

	GSTSummary(ctx context.Context) (*domain.GSTSummary, error)

	LedgerBook(ctx context.Context, accountID string) (*domain.LedgerBook, error)

	// CheckCompliance evaluates advisory flags for a voucher draft that has
	// not been recorded yet.
	CheckCompliance(ctx context.Context, req dto.CreateVoucherRequest) (*domain.ComplianceFlags, error)
}
