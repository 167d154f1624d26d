package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// CreateAccountRequest is the payload for creating a ledger account.
// AccountID is optional; a UUID-based id is minted when it is empty.
type CreateAccountRequest struct {
	AccountID      string                 `json:"accountID" binding:"omitempty,max=64"`
	Name           string                 `json:"name" binding:"required,max=100"`
	Group          domain.AccountGroup    `json:"group" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	SubGroup       domain.AccountSubGroup `json:"subGroup" binding:"required"`
	TaxRole        domain.TaxRole         `json:"taxRole" binding:"omitempty,oneof=INPUT_CGST INPUT_SGST INPUT_IGST OUTPUT_CGST OUTPUT_SGST OUTPUT_IGST"`
	OpeningBalance decimal.Decimal        `json:"openingBalance"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID      string                 `json:"accountID"`
	Name           string                 `json:"name"`
	Group          domain.AccountGroup    `json:"group"`
	SubGroup       domain.AccountSubGroup `json:"subGroup"`
	TaxRole        domain.TaxRole         `json:"taxRole,omitempty"`
	OpeningBalance decimal.Decimal        `json:"openingBalance"`
}

// ListAccountsResponse wraps the full chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain account to its API representation.
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		Group:          acc.Group,
		SubGroup:       acc.SubGroup,
		TaxRole:        acc.TaxRole,
		OpeningBalance: acc.OpeningBalance,
	}
}

// ToListAccountsResponse converts a slice of domain accounts.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	resp := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i, acc := range accounts {
		resp.Accounts[i] = ToAccountResponse(acc)
	}
	return resp
}
