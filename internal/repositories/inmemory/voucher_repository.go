package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
)

// memVoucherRepository is a mutex-guarded in-memory voucher store. Voucher
// numbers are kept unique to match the database unique index.
type memVoucherRepository struct {
	mu       sync.RWMutex
	vouchers map[string]domain.Voucher
	byNumber map[string]string
	order    []string
}

func newMemVoucherRepository() portsrepo.VoucherRepository {
	return &memVoucherRepository{
		vouchers: make(map[string]domain.Voucher),
		byNumber: make(map[string]string),
	}
}

var _ portsrepo.VoucherRepository = (*memVoucherRepository)(nil)

// cloneVoucher copies a voucher including its line slice so callers never
// share backing arrays with the store.
func cloneVoucher(v domain.Voucher) domain.Voucher {
	lines := make([]domain.VoucherLineItem, len(v.LineItems))
	copy(lines, v.LineItems)
	v.LineItems = lines
	return v
}

func (r *memVoucherRepository) SaveVoucher(_ context.Context, voucher domain.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vouchers[voucher.VoucherID]; exists {
		return fmt.Errorf("voucher %s: %w", voucher.VoucherID, apperrors.ErrDuplicate)
	}
	if _, exists := r.byNumber[voucher.VoucherNumber]; exists {
		return fmt.Errorf("voucher %s: %w", voucher.VoucherNumber, apperrors.ErrDuplicate)
	}
	r.vouchers[voucher.VoucherID] = cloneVoucher(voucher)
	r.byNumber[voucher.VoucherNumber] = voucher.VoucherID
	r.order = append(r.order, voucher.VoucherID)
	return nil
}

func (r *memVoucherRepository) FindVoucherByID(_ context.Context, voucherID string) (*domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	voucher, ok := r.vouchers[voucherID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	found := cloneVoucher(voucher)
	return &found, nil
}

func (r *memVoucherRepository) FindVoucherByNumber(_ context.Context, voucherNumber string) (*domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	voucherID, ok := r.byNumber[voucherNumber]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	found := cloneVoucher(r.vouchers[voucherID])
	return &found, nil
}

func (r *memVoucherRepository) ListVouchers(_ context.Context) ([]domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vouchers := make([]domain.Voucher, len(r.order))
	for i, id := range r.order {
		vouchers[i] = cloneVoucher(r.vouchers[id])
	}
	return vouchers, nil
}
