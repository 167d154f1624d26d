package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// VoucherDateFormat is the wire format for voucher dates.
const VoucherDateFormat = "2006-01-02"

// CreateVoucherLineRequest is one line of a voucher payload. Amount may be
// omitted for item lines; the service recomputes it as qty x rate.
type CreateVoucherLineRequest struct {
	ItemID      string          `json:"itemID" binding:"omitempty,max=64"`
	AccountID   string          `json:"accountID" binding:"required,max=64"`
	Description string          `json:"description" binding:"max=200"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	GSTRate     decimal.Decimal `json:"gstRate"`
	IGST        decimal.Decimal `json:"igst"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	IsDebit     bool            `json:"isDebit"`
}

// CreateVoucherRequest is the payload for recording a voucher. The cached
// voucher total is never accepted from the client; it is recomputed from the
// lines so the stored total always equals the line sum.
type CreateVoucherRequest struct {
	Date           string                     `json:"date" binding:"required,datetime=2006-01-02"`
	Type           domain.VoucherType         `json:"type" binding:"required,vouchertype"`
	VoucherNumber  string                     `json:"voucherNumber" binding:"required,max=30"`
	PartyAccountID string                     `json:"partyAccountID" binding:"required,max=64"`
	LineItems      []CreateVoucherLineRequest `json:"lineItems" binding:"required,min=1,dive"`
	Narration      string                     `json:"narration" binding:"max=500"`
}

// VoucherLineItemResponse is the API representation of a voucher line.
type VoucherLineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	ItemID      string          `json:"itemID,omitempty"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	GSTRate     decimal.Decimal `json:"gstRate"`
	IGST        decimal.Decimal `json:"igst"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
}

// VoucherResponse is the API representation of a recorded voucher.
type VoucherResponse struct {
	VoucherID      string                    `json:"voucherID"`
	Date           string                    `json:"date"`
	Type           domain.VoucherType        `json:"type"`
	VoucherNumber  string                    `json:"voucherNumber"`
	PartyAccountID string                    `json:"partyAccountID"`
	LineItems      []VoucherLineItemResponse `json:"lineItems"`
	Narration      string                    `json:"narration"`
	TotalAmount    decimal.Decimal           `json:"totalAmount"`
}

// ListVouchersResponse wraps the voucher history in creation order.
type ListVouchersResponse struct {
	Vouchers []VoucherResponse `json:"vouchers"`
}

// LedgerEntryResponse is the API representation of a posted ledger entry.
type LedgerEntryResponse struct {
	EntryID     string             `json:"entryID"`
	Date        string             `json:"date"`
	VoucherID   string             `json:"voucherID"`
	VoucherType domain.VoucherType `json:"voucherType"`
	AccountID   string             `json:"accountID"`
	Description string             `json:"description"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
}

// VoucherEntriesResponse pairs a voucher id with the entries it posts.
type VoucherEntriesResponse struct {
	VoucherID string                `json:"voucherID"`
	Entries   []LedgerEntryResponse `json:"entries"`
}

// ParseVoucherDate parses the wire-format date of a voucher payload.
func ParseVoucherDate(value string) (time.Time, error) {
	return time.Parse(VoucherDateFormat, value)
}

// ToVoucherResponse converts a domain voucher to its API representation.
func ToVoucherResponse(v domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:      v.VoucherID,
		Date:           v.Date.Format(VoucherDateFormat),
		Type:           v.Type,
		VoucherNumber:  v.VoucherNumber,
		PartyAccountID: v.PartyAccountID,
		LineItems:      make([]VoucherLineItemResponse, len(v.LineItems)),
		Narration:      v.Narration,
		TotalAmount:    v.TotalAmount,
	}
	for i, line := range v.LineItems {
		resp.LineItems[i] = VoucherLineItemResponse{
			LineItemID:  line.LineItemID,
			ItemID:      line.ItemID,
			AccountID:   line.AccountID,
			Description: line.Description,
			Qty:         line.Qty,
			Rate:        line.Rate,
			Amount:      line.Amount,
			GSTRate:     line.GSTRate,
			IGST:        line.IGST,
			CGST:        line.CGST,
			SGST:        line.SGST,
		}
	}
	return resp
}

// ToListVouchersResponse converts a slice of domain vouchers.
func ToListVouchersResponse(vouchers []domain.Voucher) ListVouchersResponse {
	resp := ListVouchersResponse{Vouchers: make([]VoucherResponse, len(vouchers))}
	for i, v := range vouchers {
		resp.Vouchers[i] = ToVoucherResponse(v)
	}
	return resp
}

// ToLedgerEntryResponse converts a domain ledger entry.
func ToLedgerEntryResponse(entry domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:     entry.EntryID,
		Date:        entry.Date.Format(VoucherDateFormat),
		VoucherID:   entry.VoucherID,
		VoucherType: entry.VoucherType,
		AccountID:   entry.AccountID,
		Description: entry.Description,
		Debit:       entry.Debit,
		Credit:      entry.Credit,
	}
}

// ToLedgerEntryResponses converts a slice of domain ledger entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		out[i] = ToLedgerEntryResponse(entry)
	}
	return out
}
