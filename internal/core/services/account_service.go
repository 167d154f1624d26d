package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/dto"
)

// accountService manages the chart of accounts. Accounts are create-only:
// reports assume the chart is immutable during a ledger computation.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount adds an account to the chart. A tax role is only meaningful
// on a duties-and-taxes account, so any other sub-group with a role set is
// rejected as a validation error.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if req.TaxRole != domain.TaxRoleNone && req.SubGroup != domain.DutiesTaxes {
		return nil, fmt.Errorf("%w: tax role %s requires the %s sub-group", apperrors.ErrValidation, req.TaxRole, domain.DutiesTaxes)
	}

	accountID := req.AccountID
	if accountID == "" {
		accountID = "acc_" + uuid.NewString()
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      accountID,
		Name:           req.Name,
		Group:          req.Group,
		SubGroup:       req.SubGroup,
		TaxRole:        req.TaxRole,
		OpeningBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "api",
			LastUpdatedAt: now,
			LastUpdatedBy: "api",
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", accountID), slog.String("group", string(account.Group)))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts returns the chart of accounts in creation order.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
