package services

import (
	"context"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
	"github.com/sahajlabs/bahikhata/internal/dto"
)

// VoucherSvcFacade defines operations for recording and reading vouchers.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
	// GetVoucherEntries returns the ledger entries a stored voucher expands to.
	GetVoucherEntries(ctx context.Context, voucherID string) ([]domain.LedgerEntry, error)
}
