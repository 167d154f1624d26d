package repositories

import (
	"context"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// VoucherRepository defines persistence operations for vouchers. A voucher and
// its line items are saved atomically. ListVouchers returns the full history
// in creation order; the ledger is rebuilt from it on every report.
type VoucherRepository interface {
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	FindVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
}
