package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/accounting"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/dto"
)

var hundred = decimal.NewFromInt(100)

var two = decimal.NewFromInt(2)

// voucherService records vouchers. It is the voucher-construction
// collaborator of the posting engine: the engine itself never validates, so
// well-formedness (date format, known voucher type, unique voucher number,
// total consistency) is enforced here.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepository
	accountRepo portsrepo.AccountRepository
	itemRepo    portsrepo.ItemRepository
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepository, accountRepo portsrepo.AccountRepository, itemRepo portsrepo.ItemRepository) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo: voucherRepo,
		accountRepo: accountRepo,
		itemRepo:    itemRepo,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher records a voucher. Line amounts of item lines are recomputed
// as qty x rate (falling back to the catalog price and GST rate where the
// request leaves them zero), missing tax components of a taxed line default
// to an intra-state CGST/SGST split, and the cached voucher total is always
// recomputed from the lines. Unknown account ids are tolerated but logged:
// the posting engine passes them through and aggregation reports them as
// orphans.
func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error) {
	date, err := dto.ParseVoucherDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid voucher date %q", apperrors.ErrValidation, req.Date)
	}

	existing, err := s.voucherRepo.FindVoucherByNumber(ctx, req.VoucherNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check voucher number uniqueness", slog.String("voucher_number", req.VoucherNumber))
		return nil, fmt.Errorf("failed to check voucher number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: voucher number %s", apperrors.ErrDuplicate, req.VoucherNumber)
	}

	now := time.Now().UTC()
	voucher := domain.Voucher{
		VoucherID:      "vch_" + uuid.NewString(),
		Date:           date,
		Type:           req.Type,
		VoucherNumber:  req.VoucherNumber,
		PartyAccountID: req.PartyAccountID,
		LineItems:      s.buildVoucherLines(ctx, s.itemRepo, req.LineItems),
		Narration:      req.Narration,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "api",
			LastUpdatedAt: now,
			LastUpdatedBy: "api",
		},
	}
	voucher.TotalAmount = voucher.ComputeTotal()

	s.warnOnUnknownAccounts(ctx, voucher)

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("voucher_id", voucher.VoucherID))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	s.LogInfo(ctx, "Voucher recorded",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("type", string(voucher.Type)),
		slog.String("total", voucher.TotalAmount.String()))
	return &voucher, nil
}

// buildVoucherLines converts request lines to domain lines, applying catalog
// pre-fill and the default intra-state tax split. Defined on BaseService so
// the compliance check builds drafts with the same rules vouchers are
// recorded with.
func (s *BaseService) buildVoucherLines(ctx context.Context, itemRepo portsrepo.ItemRepository, reqLines []dto.CreateVoucherLineRequest) []domain.VoucherLineItem {
	lines := make([]domain.VoucherLineItem, len(reqLines))
	for i, lr := range reqLines {
		line := domain.VoucherLineItem{
			LineItemID:  "line_" + uuid.NewString(),
			ItemID:      lr.ItemID,
			AccountID:   lr.AccountID,
			Description: lr.Description,
			Qty:         lr.Qty,
			Rate:        lr.Rate,
			Amount:      lr.Amount,
			GSTRate:     lr.GSTRate,
			IGST:        lr.IGST,
			CGST:        lr.CGST,
			SGST:        lr.SGST,
			IsDebit:     lr.IsDebit,
		}

		if line.ItemID != "" {
			if item, err := itemRepo.FindItemByID(ctx, line.ItemID); err == nil {
				if line.Rate.IsZero() {
					line.Rate = item.Price
				}
				if line.GSTRate.IsZero() {
					line.GSTRate = item.GSTRate
				}
				if line.Description == "" {
					line.Description = item.Name
				}
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogWarn(ctx, "Item lookup failed, using line as entered", slog.String("item_id", line.ItemID), slog.String("error", err.Error()))
			}
		}

		if line.Qty.IsPositive() && line.Rate.IsPositive() {
			line.Amount = line.Qty.Mul(line.Rate)
		}

		// Default to an intra-state split when the client sent a GST rate
		// but no tax amounts.
		if line.GSTRate.IsPositive() && line.IGST.IsZero() && line.CGST.IsZero() && line.SGST.IsZero() {
			tax := line.Amount.Mul(line.GSTRate).Div(hundred)
			line.CGST = tax.Div(two)
			line.SGST = tax.Div(two)
		}

		lines[i] = line
	}
	return lines
}

func (s *voucherService) warnOnUnknownAccounts(ctx context.Context, voucher domain.Voucher) {
	ids := []string{voucher.PartyAccountID}
	for _, line := range voucher.LineItems {
		ids = append(ids, line.AccountID)
	}

	known, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(ids))
	if err != nil {
		s.LogWarn(ctx, "Could not verify voucher account ids", slog.String("error", err.Error()))
		return
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			s.LogWarn(ctx, "Voucher references unknown account; its entries will be orphaned in reports",
				slog.String("voucher_number", voucher.VoucherNumber),
				slog.String("account_id", id))
		}
	}
}

// GetVoucherByID retrieves a single voucher with its lines.
func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find voucher", slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	return voucher, nil
}

// ListVouchers returns the full voucher history in creation order.
func (s *voucherService) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers")
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	return vouchers, nil
}

// GetVoucherEntries expands a stored voucher into the ledger entries it posts
// against the current chart of accounts.
func (s *voucherService) GetVoucherEntries(ctx context.Context, voucherID string) ([]domain.LedgerEntry, error) {
	voucher, err := s.GetVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for posting preview")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounting.PostVoucher(*voucher, accounting.ResolveTaxAccounts(accounts)), nil
}

// uniqueStrings de-duplicates in place, preserving first occurrence order.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	j := 0
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		input[j] = v
		j++
	}
	return input[:j]
}
