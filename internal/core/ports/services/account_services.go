package services

import (
	"context"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
	"github.com/sahajlabs/bahikhata/internal/dto"
)

// AccountSvcFacade defines operations for managing the chart of accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
